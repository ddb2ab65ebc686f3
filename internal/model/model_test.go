package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCandidate(t *testing.T) {
	uploaded := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c := NewCandidate(CandidateRecord{
		Resume: ResumeData{
			Name:       "  Ana Souza ",
			Email:      "ana@example.com",
			Skills:     []string{"Python", " ", "SQL"},
			Education:  []Education{{}, {Course: "Statistics", Institution: "UFRJ"}},
			Experience: []Experience{{Role: "Analyst", Company: "Acme", Activities: "reports"}},
			Languages:  []string{"English", ""},
		},
		Score:       70,
		Reasons:     []string{"has email", "data skill"},
		Analysis:    "Good fit",
		ContentHash: "abc",
		UploadedAt:  uploaded,
	})

	assert.Equal(t, "Ana Souza", c.Name)
	assert.Equal(t, StatusActive, c.Status)
	assert.True(t, c.IsActive())
	assert.Equal(t, []string{"Python", "SQL"}, c.SkillNames())
	assert.Equal(t, []string{"English"}, c.LanguageNames())
	assert.Equal(t, []string{"has email", "data skill"}, c.Reasons())
	require.Len(t, c.Skills, 2)
	assert.Equal(t, 1, c.Skills[1].Position)

	assert.Equal(t, []Education{{Course: "Statistics", Institution: "UFRJ"}}, c.EducationEntries())
	assert.Equal(t, []Experience{{Role: "Analyst", Company: "Acme", Activities: "reports"}}, c.ExperienceEntries())
	assert.Equal(t, uploaded, c.UploadedAt)
}

func TestEntryString(t *testing.T) {
	tests := []struct {
		name  string
		entry interface{ String() string }
		want  string
	}{
		{"full education", Education{Course: "CS", Institution: "USP", Period: "2014 - 2018"}, "CS - USP (2014 - 2018)"},
		{"no period", Education{Course: "CS", Institution: "USP"}, "CS - USP"},
		{"period only", Education{Period: "2020"}, "2020"},
		{"experience", Experience{Role: "Analyst", Company: "Acme", Period: "2019"}, "Analyst - Acme (2019)"},
		{"empty", Experience{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.String())
		})
	}
}

func TestJobSetSkills(t *testing.T) {
	j := &Job{}
	j.SetSkills([]string{"SQL", " sql ", "", "Power BI"})
	assert.Equal(t, []string{"SQL", "Power BI"}, j.SkillNames())

	j.SetSkills([]string{"Go"})
	assert.Equal(t, []string{"Go"}, j.SkillNames())
}

func TestResumeHasName(t *testing.T) {
	assert.False(t, ResumeData{Name: "  "}.HasName())
	assert.True(t, ResumeData{Name: "Ana"}.HasName())
}
