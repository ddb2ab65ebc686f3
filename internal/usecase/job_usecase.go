package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/fadilmartias/recruit-assistant/internal/repository"
	"github.com/fadilmartias/recruit-assistant/internal/service"
)

const minDescriptionLength = 20

type NewJob struct {
	Name         string
	Requirements string
	KeySkills    []string
	Location     string
	ContractType string
}

type JobUsecase struct {
	jobs    *repository.JobRepository
	resumes *service.ResumeService
}

func NewJobUsecase(jobs *repository.JobRepository, resumes *service.ResumeService) *JobUsecase {
	return &JobUsecase{jobs: jobs, resumes: resumes}
}

func (uc *JobUsecase) Create(ctx context.Context, in NewJob) (*model.Job, error) {
	name := strings.TrimSpace(in.Name)
	requirements := strings.TrimSpace(in.Requirements)
	if name == "" || requirements == "" {
		return nil, &ValidationError{Message: "name and requirements are required"}
	}

	job := &model.Job{
		Name:         name,
		Requirements: requirements,
		Location:     strings.TrimSpace(in.Location),
		ContractType: strings.TrimSpace(in.ContractType),
		Status:       model.JobStatusOpen,
	}
	job.SetSkills(in.KeySkills)
	if err := uc.jobs.CreateJob(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (uc *JobUsecase) List(ctx context.Context) ([]model.Job, error) {
	return uc.jobs.GetJobs(ctx)
}

func (uc *JobUsecase) Get(ctx context.Context, id uint) (*model.Job, error) {
	job, err := uc.jobs.FindJobByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (uc *JobUsecase) Delete(ctx context.Context, id uint) error {
	if err := uc.jobs.DeleteJob(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrJobNotFound
		}
		return err
	}
	return nil
}

// SuggestSkills asks the AI for the key skills of a job description.
func (uc *JobUsecase) SuggestSkills(ctx context.Context, description string) ([]string, error) {
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) < minDescriptionLength {
		return nil, ErrDescriptionTooShort
	}
	return uc.resumes.SuggestSkills(ctx, description)
}
