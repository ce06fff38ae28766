package database

import (
	"exam_quiz_backend/internal/config"
	"exam_quiz_backend/internal/model"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDBSQLiteMigrates(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "nested", "quiz.db"),
		LogLevel: "silent",
	}

	db, err := InitDB(cfg, false)
	require.NoError(t, err)

	for _, table := range []interface{}{
		&model.QuestionProgress{},
		&model.DailyStat{},
		&model.DailyActivity{},
		&model.EarnedBadge{},
		&model.Preference{},
	} {
		assert.True(t, db.Migrator().HasTable(table), "%T", table)
	}
}

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	_, err := Dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestDialectorBuildsServerDrivers(t *testing.T) {
	for _, driver := range []string{config.DriverMySQL, config.DriverPostgres} {
		d, err := Dialector(&config.DatabaseConfig{Driver: driver, Host: "db", Port: 1, DBName: "quiz"})
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.Name())
	}
}
