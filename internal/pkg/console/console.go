package console

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/anicoll/rfid-console/internal/pkg/device"
	"github.com/anicoll/rfid-console/internal/pkg/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoCard is the "no card scanned" outcome of a last-scan lookup; a
// failed lookup surfaces as this, never as a raw transport error.
var ErrNoCard = errors.New("no card scanned")

type deviceAPI interface {
	Status(ctx context.Context) (model.StatusSnapshot, error)
	Users(ctx context.Context) (model.UserList, error)
	Logs(ctx context.Context) (model.LogList, error)
	LastScan(ctx context.Context) (model.LastScan, error)
	Settings(ctx context.Context) (model.SettingsSnapshot, error)
	CreateUser(ctx context.Context, user model.UserRecord) error
	DeleteUser(ctx context.Context, uid string) error
	ClearLogs(ctx context.Context, scope device.LogScope) error
	ExportLogs(ctx context.Context) (string, error)
	SaveSettings(ctx context.Context, form url.Values) (model.Ack, error)
	Rtc(ctx context.Context) (model.RtcReading, error)
	SetRtc(ctx context.Context, datetime string) error
	SendRelayCommand(ctx context.Context, cmd model.RelayCommand) error
	FormatFilesystem(ctx context.Context) error
	Reboot(ctx context.Context) error
	UartTest(ctx context.Context) (bool, error)
	ReaderTest(ctx context.Context, reader int, action device.ReaderAction) error
	Logout(ctx context.Context) error
	Backup(ctx context.Context, typ device.BackupType) (string, error)
	Restore(ctx context.Context, raw string) error
}

// Confirmer is the interactive confirmation surface. Whether an action asks
// at all is a caller-supplied policy value, not an implicit UI check.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// AutoConfirm approves everything; the headless default.
type AutoConfirm struct{}

func (AutoConfirm) Confirm(string) bool {
	return true
}

// Notifier receives the one-line user alerts ("Save failed.", ...).
type Notifier interface {
	Notify(msg string)
}

type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) {
	f(msg)
}

// Console keeps the device's resources reflected in a View and pushes user
// mutations back through the device client.
type Console struct {
	dev           deviceAPI
	view          *View
	confirm       Confirmer
	notify        Notifier
	logger        *zap.Logger
	downloadDir   string
	loginRedirect func()

	mu         sync.Mutex
	deviceName string
	settings   model.SettingsSnapshot
}

type Option func(*Console)

func WithConfirmer(c Confirmer) Option {
	return func(con *Console) {
		con.confirm = c
	}
}

func WithNotifier(n Notifier) Option {
	return func(con *Console) {
		con.notify = n
	}
}

func WithDownloadDir(dir string) Option {
	return func(con *Console) {
		con.downloadDir = dir
	}
}

// WithLoginRedirect installs the navigation to the login surface used after
// an explicit logout.
func WithLoginRedirect(fn func()) Option {
	return func(con *Console) {
		con.loginRedirect = fn
	}
}

func New(dev deviceAPI, opts ...Option) *Console {
	c := &Console{
		dev:         dev,
		view:        NewView(),
		confirm:     AutoConfirm{},
		logger:      zap.L(), // returns the global logger.
		downloadDir: ".",
	}
	c.notify = NotifierFunc(func(msg string) {
		c.logger.Info(msg)
	})
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) View() *View {
	return c.view
}

func (c *Console) ActivePage() Page {
	return c.view.ActivePage()
}

// Navigate switches the active page and runs that page's one-shot load
// synchronously before returning; background polls keep running unordered
// against it (last writer wins on the region, as on the device's own UI).
func (c *Console) Navigate(ctx context.Context, page Page) error {
	c.view.setActivePage(page)
	switch page {
	case PageLogs:
		return c.LoadLogs(ctx)
	case PageSettings:
		return c.LoadSettings(ctx)
	case PageBackup:
		c.view.SetLine(LineRestore, "")
	}
	return nil
}

func (c *Console) LoadStatus(ctx context.Context) error {
	snap, err := c.dev.Status(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.deviceName = snap.Device.Name
	c.mu.Unlock()
	c.view.SetRegion(RegionStatus, RenderStatus(snap))
	return nil
}

func (c *Console) LoadUsers(ctx context.Context) error {
	list, err := c.dev.Users(ctx)
	if err != nil {
		return err
	}
	c.view.SetRegion(RegionUsers, RenderUsers(list.Users))
	return nil
}

func (c *Console) LoadLogs(ctx context.Context) error {
	list, err := c.dev.Logs(ctx)
	if err != nil {
		return err
	}
	c.view.SetRegion(RegionLogs, RenderLogs(list.Logs))
	return nil
}

func (c *Console) LoadLastScan(ctx context.Context) error {
	scan, err := c.dev.LastScan(ctx)
	if err != nil {
		return err
	}
	c.view.SetRegion(RegionLastScan, RenderLastScan(scan))
	return nil
}

func (c *Console) LoadSettings(ctx context.Context) error {
	snap, err := c.dev.Settings(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.settings = snap
	c.mu.Unlock()
	c.view.SetRegion(RegionSettings, RenderSettings(snap))
	c.view.SetLine(LineRtcStatus, RtcStatusText(snap))
	// the mask is the only key representation we ever re-display.
	if snap.AuthEnabled && snap.ApiKeyMask != "" {
		c.view.SetLine(LineApiKey, "API key: "+snap.ApiKeyMask)
	} else {
		c.view.SetLine(LineApiKey, "")
	}
	return nil
}

// RefreshAll fans out all five loaders and resolves only when every one
// has; a single failure fails the aggregate. Each loader re-renders its own
// region on its own later poll, so no partial-success policy is needed.
func (c *Console) RefreshAll(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return c.LoadStatus(ctx) })
	eg.Go(func() error { return c.LoadUsers(ctx) })
	eg.Go(func() error { return c.LoadLogs(ctx) })
	eg.Go(func() error { return c.LoadLastScan(ctx) })
	eg.Go(func() error { return c.LoadSettings(ctx) })
	return eg.Wait()
}

// lastUid resolves the most recently scanned card for enrollment.
func (c *Console) lastUid(ctx context.Context) (string, error) {
	scan, err := c.dev.LastScan(ctx)
	if err != nil || scan.Rfid.Uid == "" {
		return "", ErrNoCard
	}
	return scan.Rfid.Uid, nil
}

func (c *Console) currentSettings() model.SettingsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

func (c *Console) relayLabel(relay int) string {
	s := c.currentSettings()
	name := s.Relay1Name
	fallback := "Relay 1"
	if relay == 2 {
		name = s.Relay2Name
		fallback = "Relay 2"
	}
	if name == "" {
		return fallback
	}
	return name
}
