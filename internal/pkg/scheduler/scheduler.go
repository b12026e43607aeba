package scheduler

import (
	"context"
	"time"

	"github.com/anicoll/rfid-console/internal/pkg/config"
	"github.com/anicoll/rfid-console/internal/pkg/console"
	"github.com/anicoll/rfid-console/internal/pkg/contxt"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

type consoleAPI interface {
	RefreshAll(ctx context.Context) error
	LoadStatus(ctx context.Context) error
	LoadLastScan(ctx context.Context) error
	LoadLogs(ctx context.Context) error
	ActivePage() console.Page
}

// everySchedule is a constant-delay cron.Schedule with millisecond
// resolution; the stock @every descriptor truncates to whole seconds.
type everySchedule struct {
	delay time.Duration
}

func (s everySchedule) Next(t time.Time) time.Time {
	return t.Add(s.delay)
}

func every(d time.Duration) everySchedule {
	if d <= 0 {
		d = time.Second
	}
	return everySchedule{delay: d}
}

// Scheduler drives the periodic loaders. Jobs are fire-and-forget: cron
// runs each tick in its own goroutine and never coalesces, so a slow poll
// and the next tick may overlap. Accepted, not mitigated.
type Scheduler struct {
	cron    *cron.Cron
	console consoleAPI
	cfg     *config.PollConfig
	errChan chan<- error
	logger  *zap.Logger
}

func New(cons consoleAPI, cfg *config.PollConfig, errChan chan<- error) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		console: cons,
		cfg:     cfg,
		errChan: errChan,
		logger:  zap.L(), // returns the global logger.
	}
}

// Start performs one immediate full refresh, registers the three periodic
// loaders and blocks until ctx is done. Poll failures are reported, never
// retried; each loader simply runs again at its next tick.
func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.console.RefreshAll(ctx); err != nil {
		s.errChan <- err
	}

	s.cron.Schedule(every(s.cfg.StatusInterval), s.job("status", s.console.LoadStatus))
	s.cron.Schedule(every(s.cfg.ScanInterval), s.job("last-scan", s.console.LoadLastScan))
	// the page guard is evaluated at tick time, not cached: a job already
	// in flight when the user navigates away still completes and renders.
	s.cron.Schedule(every(s.cfg.LogInterval), s.job("logs", func(ctx context.Context) error {
		if s.console.ActivePage() != console.PageLogs {
			return nil
		}
		return s.console.LoadLogs(ctx)
	}))

	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	return ctx.Err()
}

func (s *Scheduler) job(name string, fn func(ctx context.Context) error) cron.Job {
	return cron.FuncJob(func() {
		if err := fn(contxt.NewContext(requestTimeout)); err != nil {
			s.logger.Debug("poll failed", zap.String("task", name), zap.Error(err))
			s.errChan <- err
		}
	})
}
