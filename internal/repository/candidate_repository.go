package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/recruit-assistant/internal/model"
	"gorm.io/gorm"
)

// CandidateFilter narrows listings. Zero values mean "no filter".
type CandidateFilter struct {
	Status   model.CandidateStatus
	MinScore int
}

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

// Create inserts the candidate and its child rows in one transaction. A
// content hash collision surfaces as gorm.ErrDuplicatedKey.
func (r *CandidateRepository) Create(ctx context.Context, c *model.Candidate) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(c).Error
	})
	return translateUnique(err)
}

func (r *CandidateRepository) ExistsByHash(ctx context.Context, hash string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Candidate{}).Where("content_hash = ?", hash).Count(&count).Error
	return count > 0, err
}

func (r *CandidateRepository) FindByID(ctx context.Context, id uint) (*model.Candidate, error) {
	var c model.Candidate
	err := r.preloadAll(r.db.WithContext(ctx)).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns candidates with all child rows, best score first.
func (r *CandidateRepository) List(ctx context.Context, f CandidateFilter) ([]model.Candidate, error) {
	var out []model.Candidate
	err := r.preloadAll(r.filtered(r.db.WithContext(ctx), f)).
		Order("score DESC").Order("id ASC").
		Find(&out).Error
	return out, err
}

// Page returns one page of candidates plus the total matching the filter.
func (r *CandidateRepository) Page(ctx context.Context, f CandidateFilter, page, pageSize int) ([]model.Candidate, int64, error) {
	var total int64
	if err := r.filtered(r.db.WithContext(ctx).Model(&model.Candidate{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []model.Candidate
	err := r.preloadAll(r.filtered(r.db.WithContext(ctx), f)).
		Order("score DESC").Order("id ASC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&out).Error
	return out, total, err
}

func (r *CandidateRepository) UpdateStatus(ctx context.Context, id uint, status model.CandidateStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Candidate{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the candidate and every child row.
func (r *CandidateRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		children := []any{
			&model.CandidateSkill{}, &model.CandidateEducation{}, &model.CandidateExperience{},
			&model.CandidateLanguage{}, &model.CandidateScoreReason{},
		}
		for _, child := range children {
			if err := tx.Where("candidate_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&model.Candidate{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *CandidateRepository) CountByStatus(ctx context.Context, status model.CandidateStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Candidate{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *CandidateRepository) filtered(db *gorm.DB, f CandidateFilter) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.MinScore > 0 {
		db = db.Where("score >= ?", f.MinScore)
	}
	return db
}

func (r *CandidateRepository) preloadAll(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Skills", byPosition).
		Preload("Education", byPosition).
		Preload("Experience", byPosition).
		Preload("Languages", byPosition).
		Preload("ScoreReasons", byPosition)
}

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// translateUnique maps sqlite's textual unique violation onto
// gorm.ErrDuplicatedKey for dialectors that do not translate it themselves.
func translateUnique(err error) error {
	if err == nil || errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", gorm.ErrDuplicatedKey, err)
	}
	return err
}
