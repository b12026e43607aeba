package console

import (
	"context"
	"os"
	"path/filepath"

	"github.com/anicoll/rfid-console/internal/pkg/device"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// ClearLogs wipes one destructive scope: the recent in-memory ring or
// everything persisted on the device filesystem.
func (c *Console) ClearLogs(ctx context.Context, scope device.LogScope) error {
	prompt := "Clear last 50 RAM logs?"
	if scope == device.ScopeAll {
		prompt = "Clear all logs in LittleFS?"
	}
	if !c.confirm.Confirm(prompt) {
		return nil
	}
	if err := c.dev.ClearLogs(ctx, scope); err != nil {
		return err
	}
	return c.RefreshAll(ctx)
}

// DownloadLogs saves the plain-text log dump into the download directory
// and returns the written path.
func (c *Console) DownloadLogs(ctx context.Context) (string, error) {
	text, err := c.dev.ExportLogs(ctx)
	if err != nil {
		c.notify.Notify("Download failed.")
		return "", err
	}
	path := filepath.Join(c.downloadDir, c.exportFileName("logs"))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		c.notify.Notify("Download failed.")
		return "", err
	}
	c.logger.Info("logs exported", zap.String("path", path))
	return path, nil
}

// exportFileName prefixes downloads with the device name when one is known,
// so exports from different devices stay distinguishable.
func (c *Console) exportFileName(kind string) string {
	c.mu.Lock()
	name := c.deviceName
	c.mu.Unlock()
	if name == "" {
		return kind + ".txt"
	}
	return slug.Make(name) + "-" + kind + ".txt"
}
