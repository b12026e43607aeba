package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/anicoll/rfid-console/internal/pkg/config"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		DeviceCfg: &config.DeviceConfig{Host: "127.0.0.1:1"},
		PollCfg: &config.PollConfig{
			StatusInterval: 50 * time.Millisecond,
			ScanInterval:   50 * time.Millisecond,
			LogInterval:    50 * time.Millisecond,
		},
		DownloadDir: ".",
		LogLevel:    "ERROR",
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "NOT_A_LEVEL"

	err := run(context.Background(), cfg)
	assert.Error(t, err)
}

// run keeps polling through an unreachable device; only the context ends it.
func TestRun_UnreachableDeviceUntilContextDone(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := run(ctx, testConfig())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
