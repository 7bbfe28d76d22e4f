package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMigrationName(t *testing.T) {
	version, name, ok := splitMigrationName("0001_init.sql")
	require.True(t, ok)
	assert.Equal(t, "0001", version)
	assert.Equal(t, "init", name)

	_, _, ok = splitMigrationName("init.sql")
	assert.False(t, ok)
}

func TestMigrationFilesSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0002_cases.sql", "0001_init.sql", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("--"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "0003_dir.sql"), 0o755))

	files, err := migrationFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.sql", "0002_cases.sql"}, files)
}
