package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/julianstephens/zoneline/internal/models"
	"github.com/julianstephens/zoneline/internal/storage"
	"github.com/julianstephens/zoneline/internal/tztable"
)

// setupTestStore creates an initialized SQLite zone store with one fixed
// zone in it and returns the store path.
func setupTestStore(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "zoneline.db")
	store := storage.NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	table, err := tztable.Fixed("IST", 19800)
	if err != nil {
		t.Fatalf("Fixed failed: %v", err)
	}
	zone := models.ZoneRecord{
		ID:        uuid.NewString(),
		Name:      "IST",
		Source:    models.SourceFixed,
		Table:     table,
		CreatedAt: "2023-04-01T00:00:00Z",
	}
	if err := store.AddZone(zone); err != nil {
		t.Fatalf("AddZone failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	return path
}

func TestCreateBackup(t *testing.T) {
	path := setupTestStore(t)

	mgr := NewManager(path)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Fatalf("backup file was not created: %s", backupPath)
	}

	// The snapshot must be a loadable store with the zone intact.
	restored := storage.NewSQLiteStore(backupPath)
	if err := restored.Load(); err != nil {
		t.Fatalf("backup is not a loadable store: %v", err)
	}
	defer restored.Close()

	zone, err := restored.GetZone("IST")
	if err != nil {
		t.Fatalf("GetZone on backup failed: %v", err)
	}
	if len(zone.Table.Zones) == 0 || zone.Table.Zones[0].OffsetSeconds != 19800 {
		t.Errorf("backup lost zone data: %+v", zone)
	}
}

func TestCreateBackup_MissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error backing up a missing store")
	}
}

func TestListBackups(t *testing.T) {
	path := setupTestStore(t)
	mgr := NewManager(path)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("expected no backups, got %d", len(backups))
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
	for _, b := range backups {
		if b.Size == 0 {
			t.Errorf("backup %s has zero size", b.Path)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	path := setupTestStore(t)
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Mutate the live store after the snapshot.
	store := storage.NewSQLiteStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := store.DeleteZone("IST"); err != nil {
		t.Fatalf("DeleteZone failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	restored := storage.NewSQLiteStore(path)
	if err := restored.Load(); err != nil {
		t.Fatalf("Load after restore failed: %v", err)
	}
	defer restored.Close()

	if _, err := restored.GetZone("IST"); err != nil {
		t.Errorf("restored store is missing zone: %v", err)
	}
}

func TestRestoreBackup_InvalidFile(t *testing.T) {
	path := setupTestStore(t)
	mgr := NewManager(path)

	bogus := filepath.Join(t.TempDir(), "zoneline-20230401-1200.db")
	if err := os.WriteFile(bogus, []byte("not a database"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := mgr.RestoreBackup(bogus); err == nil {
		t.Error("expected error restoring an invalid backup")
	}
	if err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("expected error restoring a missing backup")
	}
}

func TestJSONStoreBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoneline.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	mgr := NewManager(path)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("expected .json backup, got %s", backupPath)
	}

	restored := storage.NewJSONStore(backupPath)
	if err := restored.Load(); err != nil {
		t.Fatalf("backup is not a loadable store: %v", err)
	}
}

func TestRotateBackups(t *testing.T) {
	path := setupTestStore(t)
	mgr := NewManager(path)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	// Seed more backups than the retention limit with distinct timestamps.
	for i := 0; i < MaxBackups+3; i++ {
		name := fmt.Sprintf("%s202304%02d-1200.db", BackupFilePrefix, i+1)
		if err := copyFile(path, filepath.Join(mgr.GetBackupDir(), name)); err != nil {
			t.Fatalf("copyFile failed: %v", err)
		}
	}

	if err := mgr.rotateBackups(); err != nil {
		t.Fatalf("rotateBackups failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("rotation kept %d backups, limit is %d", len(backups), MaxBackups)
	}

	// The oldest files are the ones rotated out.
	for _, b := range backups {
		if b.Timestamp.Day() <= 3 {
			t.Errorf("rotation kept old backup %s", b.Path)
		}
	}
}
