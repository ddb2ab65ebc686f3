package model

import (
	"strings"
	"time"
)

// ResumeData is the structured record extracted from résumé text.
type ResumeData struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	LinkedIn    string       `json:"linkedin"`
	Age         string       `json:"age"`
	DesiredRole string       `json:"desired_role"`
	Skills      []string     `json:"skills"`
	Education   []Education  `json:"education"`
	Experience  []Experience `json:"experience"`
	Languages   []string     `json:"languages"`
}

type Education struct {
	Course      string `json:"course"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
}

type Experience struct {
	Role       string `json:"role"`
	Company    string `json:"company"`
	Period     string `json:"period"`
	Activities string `json:"activities"`
}

// HasName reports whether the record carries the minimum needed to be stored.
func (r ResumeData) HasName() bool {
	return strings.TrimSpace(r.Name) != ""
}

// CandidateRecord bundles everything the upload pipeline produced for one file.
type CandidateRecord struct {
	Resume        ResumeData
	Score         int
	Reasons       []string
	Analysis      string
	ContentHash   string
	ProcessedFile string
	UploadedAt    time.Time
}

// NewCandidate maps a processed record to its persisted form. Empty list
// entries are dropped and positions follow the input order.
func NewCandidate(rec CandidateRecord) *Candidate {
	r := rec.Resume
	c := &Candidate{
		Name:          strings.TrimSpace(r.Name),
		Email:         strings.TrimSpace(r.Email),
		Phone:         strings.TrimSpace(r.Phone),
		LinkedIn:      strings.TrimSpace(r.LinkedIn),
		Age:           strings.TrimSpace(r.Age),
		DesiredRole:   strings.TrimSpace(r.DesiredRole),
		Score:         rec.Score,
		Analysis:      rec.Analysis,
		Status:        StatusActive,
		ContentHash:   rec.ContentHash,
		ProcessedFile: rec.ProcessedFile,
		UploadedAt:    rec.UploadedAt,
	}
	for _, s := range r.Skills {
		if s = strings.TrimSpace(s); s != "" {
			c.Skills = append(c.Skills, CandidateSkill{Position: len(c.Skills), Name: s})
		}
	}
	for _, e := range r.Education {
		if e == (Education{}) {
			continue
		}
		c.Education = append(c.Education, CandidateEducation{
			Position: len(c.Education), Course: e.Course, Institution: e.Institution, Period: e.Period,
		})
	}
	for _, e := range r.Experience {
		if e == (Experience{}) {
			continue
		}
		c.Experience = append(c.Experience, CandidateExperience{
			Position: len(c.Experience), Role: e.Role, Company: e.Company, Period: e.Period, Activities: e.Activities,
		})
	}
	for _, l := range r.Languages {
		if l = strings.TrimSpace(l); l != "" {
			c.Languages = append(c.Languages, CandidateLanguage{Position: len(c.Languages), Name: l})
		}
	}
	for i, reason := range rec.Reasons {
		c.ScoreReasons = append(c.ScoreReasons, CandidateScoreReason{Position: i, Reason: reason})
	}
	return c
}
