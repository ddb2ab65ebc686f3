package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fadilmartias/recruit-assistant/internal/database"
	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func sampleCandidate(name, hash string, score int) *model.Candidate {
	return model.NewCandidate(model.CandidateRecord{
		Resume: model.ResumeData{
			Name:      name,
			Skills:    []string{"Python", "SQL", "Git"},
			Education: []model.Education{{Course: "Computer Science", Institution: "USP", Period: "2015 - 2019"}},
			Experience: []model.Experience{
				{Role: "Analyst", Company: "Acme", Period: "2020 - 2022"},
				{Role: "Engineer", Company: "Globex", Period: "2022 - now"},
			},
			Languages: []string{"English: fluent"},
		},
		Score:       score,
		Reasons:     []string{"data skills", "experience"},
		ContentHash: hash,
		UploadedAt:  time.Now(),
	})
}

func TestCandidateRepository_CreateAndFindPreservesOrder(t *testing.T) {
	repo := NewCandidateRepository(newTestDB(t))
	ctx := context.Background()

	c := sampleCandidate("Ana", "hash-1", 80)
	require.NoError(t, repo.Create(ctx, c))
	require.NotZero(t, c.ID)

	got, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, model.StatusActive, got.Status)
	assert.Equal(t, []string{"Python", "SQL", "Git"}, got.SkillNames())
	assert.Equal(t, []string{"data skills", "experience"}, got.Reasons())
	require.Len(t, got.Experience, 2)
	assert.Equal(t, "Analyst", got.Experience[0].Role)
	assert.Equal(t, "Engineer", got.Experience[1].Role)
}

func TestCandidateRepository_DuplicateHashRejected(t *testing.T) {
	repo := NewCandidateRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleCandidate("Ana", "same", 50)))
	err := repo.Create(ctx, sampleCandidate("Ana Copy", "same", 50))
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))

	exists, err := repo.ExistsByHash(ctx, "same")
	require.NoError(t, err)
	assert.True(t, exists)

	all, err := repo.List(ctx, CandidateFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCandidateRepository_RejectKeepsRowDeleteRemovesIt(t *testing.T) {
	db := newTestDB(t)
	repo := NewCandidateRepository(db)
	ctx := context.Background()

	a := sampleCandidate("A", "h-a", 90)
	b := sampleCandidate("B", "h-b", 40)
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.UpdateStatus(ctx, a.ID, model.StatusRejected))
	active, err := repo.List(ctx, CandidateFilter{Status: model.StatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "B", active[0].Name)

	stored, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, stored.Status)

	require.NoError(t, repo.Delete(ctx, b.ID))
	_, err = repo.FindByID(ctx, b.ID)
	assert.True(t, IsNotFound(err))

	var orphans int64
	require.NoError(t, db.Model(&model.CandidateSkill{}).Where("candidate_id = ?", b.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	assert.True(t, IsNotFound(repo.Delete(ctx, b.ID)))
	assert.True(t, IsNotFound(repo.UpdateStatus(ctx, 9999, model.StatusRejected)))
}

func TestCandidateRepository_ListAndPageFilters(t *testing.T) {
	repo := NewCandidateRepository(newTestDB(t))
	ctx := context.Background()

	for i, score := range []int{30, 100, 60, 80} {
		require.NoError(t, repo.Create(ctx, sampleCandidate(string(rune('A'+i)), string(rune('a'+i)), score)))
	}

	approved, err := repo.List(ctx, CandidateFilter{Status: model.StatusActive, MinScore: 60})
	require.NoError(t, err)
	require.Len(t, approved, 3)
	assert.Equal(t, []int{100, 80, 60}, []int{approved[0].Score, approved[1].Score, approved[2].Score})

	page, total, err := repo.Page(ctx, CandidateFilter{}, 2, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, page, 1)
	assert.Equal(t, 30, page[0].Score)

	count, err := repo.CountByStatus(ctx, model.StatusActive)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
}

func TestJobRepository_CRUD(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))
	ctx := context.Background()

	first := &model.Job{Name: "Data Analyst", Requirements: "SQL and BI", Status: model.JobStatusOpen}
	first.SetSkills([]string{"SQL", " ", "Power BI"})
	require.NoError(t, repo.CreateJob(ctx, first))
	second := &model.Job{Name: "Backend", Requirements: "Go services", Status: model.JobStatusOpen}
	require.NoError(t, repo.CreateJob(ctx, second))

	got, err := repo.FindJobByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"SQL", "Power BI"}, got.SkillNames())

	jobs, err := repo.GetJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Backend", jobs[0].Name)

	require.NoError(t, repo.DeleteJob(ctx, first.ID))
	_, err = repo.FindJobByID(ctx, first.ID)
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(repo.DeleteJob(ctx, first.ID)))

	count, err := repo.CountJobs(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserRepository_EmailIsCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Name: "Ana", Email: " Ana@Example.com ", PasswordHash: "x"}))
	u, err := repo.FindByEmail(ctx, "ana@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)

	err = repo.Create(ctx, &model.User{Name: "Other", Email: "ana@example.com", PasswordHash: "y"})
	assert.Error(t, err)
}
