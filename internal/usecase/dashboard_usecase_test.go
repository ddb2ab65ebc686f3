package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/fadilmartias/recruit-assistant/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil)
	assert.Equal(t, 0, stats.TotalCandidates)
	assert.Equal(t, 0.0, stats.AverageScore)
	assert.Empty(t, stats.Scores)
	assert.Empty(t, stats.TopSkills)
}

func TestAggregate_Counts(t *testing.T) {
	candidates := []model.Candidate{
		{
			Score:      80,
			Skills:     []model.CandidateSkill{{Name: "SQL"}, {Name: "Python"}},
			Experience: []model.CandidateExperience{{Role: "a"}, {Role: "b"}},
			Education:  []model.CandidateEducation{{Course: "Computer Science"}},
			Languages:  []model.CandidateLanguage{{Name: "English: fluent"}, {Name: "Spanish"}},
		},
		{
			Score:      35,
			Skills:     []model.CandidateSkill{{Name: "Python"}},
			Experience: []model.CandidateExperience{{Role: "c"}},
			Education:  []model.CandidateEducation{{Course: ""}},
			Languages:  []model.CandidateLanguage{{Name: "English : basic"}},
		},
		{Score: 0},
	}

	stats := Aggregate(candidates)
	assert.Equal(t, 3, stats.TotalCandidates)
	assert.Equal(t, 38.3, stats.AverageScore)
	assert.Equal(t, []int{80, 35, 0}, stats.Scores)
	assert.Equal(t, 3, stats.TotalExperiences)
	assert.Equal(t, []Count{{"Python", 2}, {"SQL", 1}}, stats.TopSkills)
	assert.Equal(t, []Count{{"Computer Science", 1}, {"N/A", 1}}, stats.TopCourses)
	assert.Equal(t, []Count{{"English", 2}, {"Spanish", 1}}, stats.Languages)
}

func TestAggregate_TopTenLimit(t *testing.T) {
	var skills []model.CandidateSkill
	for i := 0; i < 15; i++ {
		skills = append(skills, model.CandidateSkill{Name: fmt.Sprintf("skill-%02d", i)})
	}
	stats := Aggregate([]model.Candidate{{Skills: skills}})
	require.Len(t, stats.TopSkills, 10)
	assert.Equal(t, "skill-00", stats.TopSkills[0].Name)
	assert.Equal(t, "skill-09", stats.TopSkills[9].Name)
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	candidates := repository.NewCandidateRepository(db)
	jobs := repository.NewJobRepository(db)
	ctx := context.Background()

	insertCandidate(t, candidates, "A", "h1", 80, "Python")
	rejected := insertCandidate(t, candidates, "B", "h2", 20, "Excel")
	require.NoError(t, candidates.UpdateStatus(ctx, rejected.ID, model.StatusRejected))
	require.NoError(t, jobs.CreateJob(ctx, &model.Job{Name: "Job", Requirements: "req", Status: model.JobStatusOpen}))

	stats, err := NewDashboardUsecase(candidates, jobs).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCandidates)
	assert.Equal(t, 80.0, stats.AverageScore)
	assert.Equal(t, int64(1), stats.RejectedCount)
	assert.Equal(t, int64(1), stats.OpenJobs)
	assert.Equal(t, []Count{{"English", 1}, {"Portuguese", 1}}, stats.Languages)
}
