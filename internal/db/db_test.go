package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesSchema(t *testing.T) {
	database := NewTestDB(t)

	tables := []string{"goals", "moods", "progress", "reminders"}
	for _, table := range tables {
		var count int
		err := database.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=$1",
			table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}

	version, err := MigrationVersion(database.DB, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestInitCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	database, err := Init("sqlite", TestConnection(dir))
	require.NoError(t, err)
	defer database.Close()

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestForeignKeysEnforced(t *testing.T) {
	database := NewTestDB(t)

	_, err := database.Exec(
		`INSERT INTO progress (goal_id, status, created_at) VALUES ($1, $2, $3)`,
		999, "yes", "2025-01-01T00:00:00.000000Z")
	assert.Error(t, err)
}

func TestMigrateDown(t *testing.T) {
	database := NewTestDB(t)

	require.NoError(t, MigrateDown(database.DB, "sqlite"))

	var count int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='reminders'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := getDialect("mysql")
	assert.Error(t, err)
}
