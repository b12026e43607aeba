package cmd

import (
	"context"
	"errors"

	"github.com/anicoll/rfid-console/internal/pkg/config"
	"github.com/anicoll/rfid-console/internal/pkg/console"
	"github.com/anicoll/rfid-console/internal/pkg/device"
	"github.com/anicoll/rfid-console/internal/pkg/scheduler"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func ConsoleCommand(ctx *cli.Context) error {
	cfg := &config.Config{
		DeviceCfg: &config.DeviceConfig{
			Host:   ctx.String("device-host"),
			Ssl:    ctx.Bool("device-ssl"),
			ApiKey: ctx.String("api-key"),
		},
		PollCfg: &config.PollConfig{
			StatusInterval: ctx.Duration("status-interval"),
			ScanInterval:   ctx.Duration("scan-interval"),
			LogInterval:    ctx.Duration("log-interval"),
		},
		DownloadDir: ctx.String("download-dir"),
		LogLevel:    ctx.String("log-level"),
	}

	return run(ctx.Context, cfg)
}

func run(ctx context.Context, cfg *config.Config) error {
	errorChan := make(chan error, 1000)
	var err error

	eg, ctx := errgroup.WithContext(ctx)
	logCfg := zap.NewProductionConfig()

	logCfg.Level, err = zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logCfg.OutputPaths = []string{"stdout"}
	logCfg.ErrorOutputPaths = []string{"stdout"}
	logCfg.Sampling = nil
	logger := zap.Must(logCfg.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)))
	defer func() {
		_ = logger.Sync() // flushes buffer, if any.
	}()
	zap.ReplaceGlobals(logger)

	// a 401 from any endpoint ends the run: the headless analogue of the
	// login redirect. Whatever call was in flight is treated as failed.
	dev := device.New(cfg.DeviceCfg, device.WithSessionExpiredHook(func() {
		errorChan <- device.ErrSessionExpired
	}))
	defer dev.Close()

	cons := console.New(dev,
		console.WithDownloadDir(cfg.DownloadDir),
		console.WithNotifier(console.NotifierFunc(func(msg string) {
			logger.Info(msg)
		})),
		console.WithLoginRedirect(func() {
			errorChan <- device.ErrSessionExpired
		}),
	)

	sched := scheduler.New(cons, cfg.PollCfg, errorChan)

	eg.Go(func() error {
		return sched.Start(ctx)
	})

	eg.Go(func() error {
		// handle any async errors from the pollers and the request layer.
		for {
			select {
			case err := <-errorChan:
				if errors.Is(err, device.ErrSessionExpired) {
					logger.Error("session expired, sign in on the device login page", zap.Error(err))
					return err
				}
				logger.Error("poll error", zap.Error(err))
			case <-ctx.Done():
				logger.Info("context done")
				return ctx.Err()
			}
		}
	})

	return eg.Wait()
}
