package dto

import (
	"time"

	"github.com/fadilmartias/recruit-assistant/internal/model"
)

type CreateJobRequest struct {
	Name         string   `json:"name"`
	Requirements string   `json:"requirements"`
	KeySkills    []string `json:"key_skills"`
	Location     string   `json:"location"`
	ContractType string   `json:"contract_type"`
}

type SuggestSkillsRequest struct {
	Description string `json:"description"`
}

type JobDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Requirements string    `json:"requirements"`
	KeySkills    []string  `json:"key_skills"`
	Location     string    `json:"location,omitempty"`
	ContractType string    `json:"contract_type,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewJobDTO(j *model.Job) JobDTO {
	return JobDTO{
		ID:           j.ID,
		Name:         j.Name,
		Requirements: j.Requirements,
		KeySkills:    j.SkillNames(),
		Location:     j.Location,
		ContractType: j.ContractType,
		Status:       j.Status,
		CreatedAt:    j.CreatedAt,
	}
}

func NewJobDTOs(jobs []model.Job) []JobDTO {
	out := make([]JobDTO, len(jobs))
	for i := range jobs {
		out[i] = NewJobDTO(&jobs[i])
	}
	return out
}
