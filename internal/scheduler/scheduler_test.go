//go:build unit

package scheduler_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hotel-fastbill/internal/domain/pricing"
	"hotel-fastbill/internal/export"
	"hotel-fastbill/internal/pkg/clock"
	"hotel-fastbill/internal/scheduler"
	"hotel-fastbill/internal/usecase/queries"
	"hotel-fastbill/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupWriter(t *testing.T) {
	now := time.Date(2025, 3, 5, 23, 0, 0, 0, time.UTC)
	exports := queries.NewExportQueries(testutil.NewMemoryUoW(t, nil), clock.NewMockClock(now),
		pricing.NewDefaultCalculator(), &testutil.RecorderSpy{})
	dir := filepath.Join(t.TempDir(), "nested", "backups")

	w := scheduler.NewBackupWriter(exports, dir)
	path, err := w.Write(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hotelfastbill_backup_2025-03-05.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	b, err := export.DecodeBackup(raw)
	require.NoError(t, err)
	assert.Empty(t, b.Rooms)
	require.NotNil(t, b.Settings)

	_, err = w.Write(context.Background())
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestService(t *testing.T) {
	svc, err := scheduler.New(testutil.DiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Stop() })

	_, err = svc.AddJob(" ", "* * * * *", func() {})
	assert.ErrorIs(t, err, scheduler.ErrEmptyJobName)

	_, err = svc.AddJob("backup", "", func() {})
	assert.ErrorIs(t, err, scheduler.ErrEmptyCronExpr)

	_, err = svc.AddJob("backup", "not a cron", func() {})
	assert.Error(t, err)

	job, err := svc.AddJob("backup", "0 3 * * *", func() {})
	require.NoError(t, err)
	assert.Equal(t, "backup", job.Name())

	svc.Start()
	require.NoError(t, svc.Stop())
	require.NoError(t, svc.Stop())
}
