package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *ConnectionConfig {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	cfg := DefaultConnectionConfig()
	cfg.DSN = filepath.Join(t.TempDir(), "nested", "test.db")
	cfg.Logger = logger
	return cfg
}

func TestConnectionManagerMigratesAndConnects(t *testing.T) {
	cm := NewConnectionManager(testConfig(t))
	require.NoError(t, cm.Connect())
	defer cm.Close()

	require.NoError(t, cm.HealthCheck(context.Background()))

	for _, table := range []string{"companies", "invoices", "invoice_entries", "users"} {
		var count int
		err := cm.DB().QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}

	var fk int
	require.NoError(t, cm.DB().QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestConnectTwiceFails(t *testing.T) {
	cm := NewConnectionManager(testConfig(t))
	require.NoError(t, cm.Connect())
	defer cm.Close()

	assert.Error(t, cm.Connect())
}

func TestMigrationManagerStatusAndRollback(t *testing.T) {
	cfg := testConfig(t)
	mm := NewMigrationManager(cfg)

	info, err := mm.Status()
	require.NoError(t, err)
	assert.False(t, info.Applied)

	require.NoError(t, mm.Up())
	require.NoError(t, mm.Up(), "running up twice is a no-op")

	info, err = mm.Status()
	require.NoError(t, err)
	assert.True(t, info.Applied)
	assert.Equal(t, uint(2), info.Version)
	assert.False(t, info.Dirty)

	require.NoError(t, mm.Down(1))
	info, err = mm.Status()
	require.NoError(t, err)
	assert.Equal(t, uint(1), info.Version)

	assert.Error(t, mm.Down(0))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Driver = "oracle"

	_, err := Open(cfg)
	assert.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "a.db?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", sqliteDSN("a.db"))
	assert.Equal(t, "file:a.db?cache=shared&_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", sqliteDSN("file:a.db?cache=shared"))
}
