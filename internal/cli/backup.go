package cli

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/zoneline/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	fmt.Printf("Backups in %s:\n", mgr.GetBackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04"), filepath.Base(b.Path), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Backup file to restore, as printed by 'backup list'."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	path := c.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(mgr.GetBackupDir(), path)
	}

	// The restore swaps the store file underneath us, so release it first.
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close store before restore: %w", err)
	}

	if err := mgr.RestoreBackup(path); err != nil {
		return err
	}
	fmt.Printf("Restored store from %s\n", filepath.Base(path))
	return nil
}
