package repository

import (
	"context"

	"github.com/fadilmartias/recruit-assistant/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) CreateJob(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(job).Error
	})
}

func (r *JobRepository) FindJobByID(ctx context.Context, id uint) (*model.Job, error) {
	var j model.Job
	err := r.db.WithContext(ctx).Preload("KeySkills", byPosition).First(&j, id).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// GetJobs lists postings newest first.
func (r *JobRepository) GetJobs(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).Preload("KeySkills", byPosition).Order("id DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) DeleteJob(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&model.JobSkill{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Job{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *JobRepository) CountJobs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).Count(&count).Error
	return count, err
}
