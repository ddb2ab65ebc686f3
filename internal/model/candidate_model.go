package model

import (
	"fmt"
	"strings"
	"time"
)

type CandidateStatus string

const (
	StatusActive   CandidateStatus = "active"
	StatusRejected CandidateStatus = "rejected"
)

// Candidate is one ingested résumé. List-valued fields live in child tables
// ordered by Position.
type Candidate struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Email         string          `gorm:"type:varchar(255)" json:"email"`
	Phone         string          `gorm:"type:varchar(64)" json:"phone"`
	LinkedIn      string          `gorm:"type:varchar(512)" json:"linkedin"`
	Age           string          `gorm:"type:varchar(64)" json:"age"`
	DesiredRole   string          `gorm:"type:varchar(255)" json:"desired_role"`
	Score         int             `gorm:"not null;default:0;index" json:"score"`
	Analysis      string          `gorm:"type:text" json:"analysis"`
	Status        CandidateStatus `gorm:"type:varchar(20);not null;default:active;index" json:"status"`
	ContentHash   string          `gorm:"type:varchar(64);not null;uniqueIndex" json:"content_hash"`
	ProcessedFile string          `gorm:"type:varchar(512)" json:"processed_file"`
	UploadedAt    time.Time       `json:"uploaded_at"`

	Skills       []CandidateSkill       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Education    []CandidateEducation   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Experience   []CandidateExperience  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Languages    []CandidateLanguage    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ScoreReasons []CandidateScoreReason `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type CandidateSkill struct {
	ID          uint   `gorm:"primaryKey"`
	CandidateID uint   `gorm:"not null;index"`
	Position    int    `gorm:"not null"`
	Name        string `gorm:"type:varchar(255);not null"`
}

type CandidateEducation struct {
	ID          uint   `gorm:"primaryKey"`
	CandidateID uint   `gorm:"not null;index"`
	Position    int    `gorm:"not null"`
	Course      string `gorm:"type:varchar(255)"`
	Institution string `gorm:"type:varchar(255)"`
	Period      string `gorm:"type:varchar(128)"`
}

type CandidateExperience struct {
	ID          uint   `gorm:"primaryKey"`
	CandidateID uint   `gorm:"not null;index"`
	Position    int    `gorm:"not null"`
	Role        string `gorm:"type:varchar(255)"`
	Company     string `gorm:"type:varchar(255)"`
	Period      string `gorm:"type:varchar(128)"`
	Activities  string `gorm:"type:text"`
}

type CandidateLanguage struct {
	ID          uint   `gorm:"primaryKey"`
	CandidateID uint   `gorm:"not null;index"`
	Position    int    `gorm:"not null"`
	Name        string `gorm:"type:varchar(255);not null"`
}

type CandidateScoreReason struct {
	ID          uint   `gorm:"primaryKey"`
	CandidateID uint   `gorm:"not null;index"`
	Position    int    `gorm:"not null"`
	Reason      string `gorm:"type:varchar(255);not null"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}

func (c *Candidate) IsActive() bool {
	return c.Status == StatusActive
}

func (c *Candidate) SkillNames() []string {
	out := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		out = append(out, s.Name)
	}
	return out
}

func (c *Candidate) LanguageNames() []string {
	out := make([]string, 0, len(c.Languages))
	for _, l := range c.Languages {
		out = append(out, l.Name)
	}
	return out
}

func (c *Candidate) Reasons() []string {
	out := make([]string, 0, len(c.ScoreReasons))
	for _, r := range c.ScoreReasons {
		out = append(out, r.Reason)
	}
	return out
}

func (c *Candidate) EducationEntries() []Education {
	out := make([]Education, 0, len(c.Education))
	for _, e := range c.Education {
		out = append(out, Education{Course: e.Course, Institution: e.Institution, Period: e.Period})
	}
	return out
}

func (c *Candidate) ExperienceEntries() []Experience {
	out := make([]Experience, 0, len(c.Experience))
	for _, e := range c.Experience {
		out = append(out, Experience{Role: e.Role, Company: e.Company, Period: e.Period, Activities: e.Activities})
	}
	return out
}

// String renders an education entry as "course - institution (period)".
func (e Education) String() string {
	return joinEntry(e.Course, e.Institution, e.Period)
}

func (e Experience) String() string {
	return joinEntry(e.Role, e.Company, e.Period)
}

func joinEntry(title, place, period string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{title, place} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	s := strings.Join(parts, " - ")
	if period = strings.TrimSpace(period); period != "" {
		if s == "" {
			return period
		}
		s = fmt.Sprintf("%s (%s)", s, period)
	}
	return s
}
