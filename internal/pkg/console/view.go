package console

import "sync"

type Page string

const (
	PageStatus      Page = "status"
	PageUsers       Page = "users"
	PageLogs        Page = "logs"
	PageSettings    Page = "settings"
	PageMaintenance Page = "maintenance"
	PageBackup      Page = "backup"
)

type Region string

const (
	RegionStatus   Region = "status"
	RegionUsers    Region = "users"
	RegionLogs     Region = "logs"
	RegionLastScan Region = "rfid"
	RegionSettings Region = "settings"
)

// Line names a single inline status/message slot next to a control.
type Line string

const (
	LineRtcStatus   Line = "rtc-status"
	LineRtcDatetime Line = "rtc-datetime"
	LineRestore     Line = "restore-status"
	LineUartTest    Line = "uart-test-status"
	LineApiKey      Line = "api-key-display"
)

// View is the rendered state. Every region is replaced wholesale from the
// latest snapshot; nothing is merged or diffed. Concurrent polls may
// interleave with user-initiated writes, so last writer wins on a region.
type View struct {
	mu      sync.RWMutex
	active  Page
	regions map[Region]string
	lines   map[Line]string
}

func NewView() *View {
	return &View{
		active:  PageStatus,
		regions: make(map[Region]string),
		lines:   make(map[Line]string),
	}
}

func (v *View) SetRegion(r Region, text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.regions[r] = text
}

func (v *View) Region(r Region) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.regions[r]
}

func (v *View) SetLine(l Line, text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lines[l] = text
}

func (v *View) Line(l Line) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.lines[l]
}

func (v *View) ActivePage() Page {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.active
}

func (v *View) setActivePage(p Page) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.active = p
}
