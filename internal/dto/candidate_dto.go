package dto

import (
	"time"

	"github.com/fadilmartias/recruit-assistant/internal/model"
)

// CandidateSummaryDTO is a row of a ranking. MatchPercent is only present
// when the ranking was computed against a job.
type CandidateSummaryDTO struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Score        int      `json:"score"`
	Skills       []string `json:"skills"`
	Status       string   `json:"status"`
	MatchPercent *int     `json:"match_percent,omitempty"`
}

type CandidateDetailDTO struct {
	ID            uint               `json:"id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	LinkedIn      string             `json:"linkedin"`
	Age           string             `json:"age"`
	DesiredRole   string             `json:"desired_role"`
	Skills        []string           `json:"skills"`
	Education     []model.Education  `json:"education"`
	Experience    []model.Experience `json:"experience"`
	Languages     []string           `json:"languages"`
	Score         int                `json:"score"`
	ScoreReasons  []string           `json:"score_reasons"`
	Analysis      string             `json:"analysis"`
	Status        string             `json:"status"`
	ProcessedFile string             `json:"processed_file"`
	UploadedAt    time.Time          `json:"uploaded_at"`
}

func NewCandidateSummaryDTO(c *model.Candidate, match *int) CandidateSummaryDTO {
	return CandidateSummaryDTO{
		ID:           c.ID,
		Name:         c.Name,
		Score:        c.Score,
		Skills:       c.SkillNames(),
		Status:       string(c.Status),
		MatchPercent: match,
	}
}

func NewCandidateDetailDTO(c *model.Candidate) CandidateDetailDTO {
	return CandidateDetailDTO{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		LinkedIn:      c.LinkedIn,
		Age:           c.Age,
		DesiredRole:   c.DesiredRole,
		Skills:        c.SkillNames(),
		Education:     c.EducationEntries(),
		Experience:    c.ExperienceEntries(),
		Languages:     c.LanguageNames(),
		Score:         c.Score,
		ScoreReasons:  c.Reasons(),
		Analysis:      c.Analysis,
		Status:        string(c.Status),
		ProcessedFile: c.ProcessedFile,
		UploadedAt:    c.UploadedAt,
	}
}
