package console

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/anicoll/rfid-console/internal/pkg/device"
	"go.uber.org/zap"
)

var ErrNoFileSelected = errors.New("no backup file selected")

// Export downloads the flat-text backup of one resource type into the
// download directory and returns the written path.
func (c *Console) Export(ctx context.Context, typ device.BackupType) (string, error) {
	text, err := c.dev.Backup(ctx, typ)
	if err != nil {
		c.notify.Notify("Backup failed.")
		return "", err
	}
	path := filepath.Join(c.downloadDir, c.exportFileName("backup-"+typ.String()))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		c.notify.Notify("Backup failed.")
		return "", err
	}
	c.logger.Info("backup exported", zap.String("type", typ.String()), zap.String("path", path))
	return path, nil
}

// Restore reads the chosen backup file and transmits it verbatim. Every
// failure mode, transport or validation, collapses into one uniform status;
// the device does not tell us which it was and the user cannot act on the
// difference anyway.
func (c *Console) Restore(ctx context.Context, path string) error {
	if path == "" {
		c.view.SetLine(LineRestore, "Select a backup file first.")
		return ErrNoFileSelected
	}
	data, err := os.ReadFile(path)
	if err != nil {
		c.view.SetLine(LineRestore, "Restore failed.")
		return err
	}
	if err := c.dev.Restore(ctx, string(data)); err != nil {
		c.view.SetLine(LineRestore, "Restore failed.")
		return err
	}
	c.view.SetLine(LineRestore, "Restore complete. Reboot if needed.")
	return c.RefreshAll(ctx)
}
