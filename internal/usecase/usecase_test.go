package usecase

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fadilmartias/recruit-assistant/internal/database"
	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/fadilmartias/recruit-assistant/internal/repository"
	"github.com/fadilmartias/recruit-assistant/internal/service"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "usecase.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// scriptedLLM answers JSON requests with extraction and plain ones with text.
type scriptedLLM struct {
	extraction string
	text       string
	calls      int
}

func (s *scriptedLLM) Generate(_ context.Context, _ string, opts service.GenerateOptions) (string, error) {
	s.calls++
	if opts.JSON {
		return s.extraction, nil
	}
	return s.text, nil
}

func insertCandidate(t *testing.T, repo *repository.CandidateRepository, name, hash string, score int, skills ...string) *model.Candidate {
	t.Helper()
	c := model.NewCandidate(model.CandidateRecord{
		Resume: model.ResumeData{
			Name:       name,
			Skills:     skills,
			Education:  []model.Education{{Course: "Computer Science", Institution: "USP"}},
			Experience: []model.Experience{{Role: "Analyst", Company: "Acme"}},
			Languages:  []string{"English: fluent", "Portuguese"},
		},
		Score:       score,
		ContentHash: hash,
		UploadedAt:  time.Now(),
	})
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}
