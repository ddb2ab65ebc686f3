package model

import (
	"strings"
	"time"
)

const JobStatusOpen = "open"

type Job struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Requirements string     `gorm:"type:text;not null" json:"requirements"`
	Location     string     `gorm:"type:varchar(255)" json:"location,omitempty"`
	ContractType string     `gorm:"type:varchar(64)" json:"contract_type,omitempty"`
	Status       string     `gorm:"type:varchar(20);not null;default:open" json:"status"`
	KeySkills    []JobSkill `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}

type JobSkill struct {
	ID       uint   `gorm:"primaryKey"`
	JobID    uint   `gorm:"not null;index"`
	Position int    `gorm:"not null"`
	Name     string `gorm:"type:varchar(255);not null"`
}

func (j *Job) TableName() string {
	return "jobs"
}

func (j *Job) SkillNames() []string {
	out := make([]string, 0, len(j.KeySkills))
	for _, s := range j.KeySkills {
		out = append(out, s.Name)
	}
	return out
}

// SetSkills replaces the key skills, dropping blanks and case-insensitive
// repeats. The first spelling wins.
func (j *Job) SetSkills(skills []string) {
	j.KeySkills = j.KeySkills[:0]
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		j.KeySkills = append(j.KeySkills, JobSkill{Position: len(j.KeySkills), Name: s})
	}
}
