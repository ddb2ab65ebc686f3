package database

import (
	"path/filepath"
	"testing"

	"github.com/fadilmartias/recruit-assistant/internal/config"
	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteMigratesSchema(t *testing.T) {
	cfg := &config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "test.db")}

	db, err := Connect(cfg, false)
	require.NoError(t, err)

	for _, table := range []string{"candidates", "jobs", "users", "candidate_skills", "job_skills"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
	assert.True(t, db.Migrator().HasIndex(&model.Candidate{}, "ContentHash"))
}

func TestConnect_UnknownDriver(t *testing.T) {
	_, err := Connect(&config.DBConfig{Driver: "oracle"}, false)
	assert.Error(t, err)
}
