package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCopiesStoreFile(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "db.json")
	backupDir := filepath.Join(dir, "backups")
	require.NoError(t, os.WriteFile(storePath, []byte(`{"clients":[]}`), 0o644))

	s := NewBackupService(storePath, backupDir)
	require.True(t, s.Enabled())
	s.Snapshot()

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^db-\d{8}-\d{6}\.json$`, entries[0].Name())

	raw, err := os.ReadFile(filepath.Join(backupDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, `{"clients":[]}`, string(raw))
}

func TestBackupServiceDisabledWithoutDir(t *testing.T) {
	s := NewBackupService("db.json", "")
	assert.False(t, s.Enabled())
	s.StartScheduler() // must be a no-op
	assert.Nil(t, s.cron)
}
