// services/backup_service.go
package services

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// BackupService snapshots the record store file into a backup directory on a
// daily schedule. Disabled when no backup directory is configured.
type BackupService struct {
	storePath string
	backupDir string
	cron      *cron.Cron
}

func NewBackupService(storePath, backupDir string) *BackupService {
	return &BackupService{
		storePath: storePath,
		backupDir: backupDir,
	}
}

func (s *BackupService) Enabled() bool {
	return s.backupDir != ""
}

func (s *BackupService) StartScheduler() {
	if !s.Enabled() {
		return
	}
	s.cron = cron.New()

	// Run every day at 3 AM
	if _, err := s.cron.AddFunc("0 3 * * *", s.Snapshot); err != nil {
		log.Printf("Failed to schedule backups: %v", err)
		return
	}
	s.Snapshot()

	s.cron.Start()
	log.Println("Backup scheduler started")
}

func (s *BackupService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Snapshot copies the current store file into the backup directory under a
// timestamped name.
func (s *BackupService) Snapshot() {
	raw, err := os.ReadFile(s.storePath)
	if err != nil {
		log.Printf("Backup skipped, cannot read store: %v", err)
		return
	}
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		log.Printf("Backup failed, cannot create directory: %v", err)
		return
	}

	name := "db-" + time.Now().Format("20060102-150405") + ".json"
	target := filepath.Join(s.backupDir, name)
	if err := os.WriteFile(target, raw, 0o644); err != nil {
		log.Printf("Backup failed: %v", err)
		return
	}
	log.Printf("Store snapshot written to %s", target)
}
