package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"hotel-fastbill/internal/pkg/errs"
	"hotel-fastbill/internal/usecase/queries"
)

const (
	BackupJobName  = "backup"
	backupTimeout  = 30 * time.Second
	backupFileMode = 0o644
)

// BackupWriter saves a backup file into a directory. Files of the same day overwrite each
// other, so the directory keeps one snapshot per day.
type BackupWriter struct {
	exports queries.ExportQueries
	dir     string
}

func NewBackupWriter(exports queries.ExportQueries, dir string) *BackupWriter {
	return &BackupWriter{exports: exports, dir: dir}
}

func (w *BackupWriter) Write(ctx context.Context) (string, error) {
	f, err := w.exports.Backup(ctx)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", errs.Wrap(err, "failed to create backup directory")
	}

	path := filepath.Join(w.dir, f.Name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, f.Body, backupFileMode); err != nil {
		return "", errs.Wrap(err, "failed to write backup")
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", errs.Wrap(err, "failed to move backup into place")
	}
	return path, nil
}

// ScheduleBackups registers the periodic backup. Failures are logged; the next run retries.
func (s *Service) ScheduleBackups(cronExpr string, w *BackupWriter) error {
	_, err := s.AddJob(BackupJobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
		defer cancel()

		path, err := w.Write(ctx)
		if err != nil {
			s.logger.Error("Scheduled backup failed", "error", err.Error())
			return
		}
		s.logger.Info("Scheduled backup written", "path", path)
	})
	return err
}
