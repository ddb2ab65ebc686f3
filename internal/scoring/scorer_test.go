package scoring

import (
	"testing"

	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestScore_Rules(t *testing.T) {
	oneJob := []model.Experience{{Role: "Analyst", Company: "Acme"}}
	csDegree := []model.Education{{Course: "Bachelor in Computer Science"}}

	tests := []struct {
		name       string
		skills     []string
		experience []model.Experience
		education  []model.Education
		wantScore  int
		wantReason []string
	}{
		{
			name:       "Nothing matches",
			wantScore:  0,
			wantReason: []string{},
		},
		{
			name:       "Data skill and experience",
			skills:     []string{"Python"},
			experience: oneJob,
			wantScore:  80,
			wantReason: []string{ReasonDataSkills, ReasonExperience},
		},
		{
			name:       "All rules fire and the total is capped",
			skills:     []string{"Git", "sql"},
			experience: oneJob,
			education:  csDegree,
			wantScore:  100,
			wantReason: []string{ReasonDataSkills, ReasonExperience, ReasonComputingDegree},
		},
		{
			name:       "Data skill matching ignores case and padding",
			skills:     []string{"  POWER BI "},
			wantScore:  50,
			wantReason: []string{ReasonDataSkills},
		},
		{
			name:       "Degree only",
			education:  []model.Education{{Course: "Tecnólogo em Informática"}},
			wantScore:  20,
			wantReason: []string{ReasonComputingDegree},
		},
		{
			name:       "Unrelated degree and skills",
			skills:     []string{"Photoshop"},
			education:  []model.Education{{Course: "Law"}, {Course: ""}},
			wantScore:  0,
			wantReason: []string{},
		},
		{
			name:       "Partial skill name is not a data skill",
			skills:     []string{"Python scripting"},
			wantScore:  0,
			wantReason: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.skills, tt.experience, tt.education)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantReason, got.Reasons)
			assert.GreaterOrEqual(t, got.Score, 0)
			assert.LessOrEqual(t, got.Score, MaxScore)
		})
	}
}

func TestScoreResume_UsesRecordFields(t *testing.T) {
	got := ScoreResume(model.ResumeData{
		Skills:     []string{"SQL"},
		Experience: []model.Experience{{Role: "Dev"}},
	})
	assert.Equal(t, 80, got.Score)
	assert.Equal(t, []string{ReasonDataSkills, ReasonExperience}, got.Reasons)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-5))
	assert.Equal(t, 100, clamp(130))
	assert.Equal(t, 42, clamp(42))
}
