package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/anicoll/rfid-console/internal/pkg/model"
	"github.com/samber/lo"
)

// Render helpers are pure: snapshot in, region text out. Absent fields
// become placeholders, never panics.

const placeholder = "-"

func FormatBytes(bytes int64) string {
	if bytes <= 0 {
		return "0 KB"
	}
	kb := int64(math.Round(float64(bytes) / 1024))
	return fmt.Sprintf("%d KB", kb)
}

// UsageBar renders one memory pool. A zero total reads as an empty pool,
// not a division error.
func UsageBar(free, total int64) string {
	pct := 0
	if total > 0 {
		used := max(0, total-free)
		pct = min(100, int(math.Round(float64(used)/float64(total)*100)))
	}
	return fmt.Sprintf("%d%% used | %s Free / %s Total", pct, FormatBytes(free), FormatBytes(total))
}

func orPlaceholder(s string) string {
	return lo.Ternary(s != "", s, placeholder)
}

func RenderStatus(snap model.StatusSnapshot) string {
	d, m, n := snap.Device, snap.Memory, snap.Network
	lines := []string{
		"Name:    " + orPlaceholder(d.Name),
		"Model:   " + orPlaceholder(d.ChipModel),
		"Rev:     " + lo.Ternary(d.ChipRev != 0, fmt.Sprintf("%d", d.ChipRev), placeholder),
		"Cores:   " + lo.Ternary(d.Cores != 0, fmt.Sprintf("%d", d.Cores), placeholder),
		"CPU:     " + lo.Ternary(d.CpuMhz != 0, fmt.Sprintf("%d MHz", d.CpuMhz), placeholder),
		"Uptime:  " + lo.Ternary(d.UptimeMs != 0, fmt.Sprintf("%d s", d.UptimeMs/1000), placeholder),
		"Heap:    " + UsageBar(m.HeapFree, m.HeapTotal),
		"Flash:   " + UsageBar(m.FlashFree, m.FlashTotal),
		"FS:      " + UsageBar(m.LittlefsFree, m.LittlefsTotal),
		"Mode:    " + orPlaceholder(n.Mode),
		"SSID:    " + orPlaceholder(n.Ssid),
		"IP:      " + orPlaceholder(n.Ip),
		"Gateway: " + orPlaceholder(n.Gateway),
		"Mask:    " + orPlaceholder(n.Mask),
		"MAC:     " + orPlaceholder(n.Mac),
	}
	return strings.Join(lines, "\n")
}

func RenderUsers(users []model.UserRecord) string {
	if len(users) == 0 {
		return "No users"
	}
	lines := lo.Map(users, func(u model.UserRecord, _ int) string {
		return fmt.Sprintf("%s - %s (R1: %s, R2: %s)",
			u.Uid, u.Name,
			lo.Ternary(u.Relay1, "Y", "N"),
			lo.Ternary(u.Relay2, "Y", "N"))
	})
	return strings.Join(lines, "\n")
}

func RenderLogs(logs []model.LogEntry) string {
	if len(logs) == 0 {
		return "No logs"
	}
	lines := lo.Map(logs, func(l model.LogEntry, _ int) string {
		return l.Ts + " " + l.Msg
	})
	return strings.Join(lines, "\n")
}

func RenderLastScan(scan model.LastScan) string {
	if scan.Rfid.Uid == "" {
		return "No card scanned."
	}
	return "Last card UID: " + scan.Rfid.Uid
}

func relayName(name, fallback string) string {
	return lo.Ternary(name != "", name, fallback)
}

// RenderSettings shows each gated section exactly when its gating flag is
// on; hidden sections leave no residue in the region (notably the masked
// API key disappears with auth).
func RenderSettings(s model.SettingsSnapshot) string {
	vis := ComputeVisibility(s)
	lines := []string{
		"RTC enabled:  " + onOff(s.RtcEnabled),
	}
	if vis.RtcConfig {
		lines = append(lines, "  "+RtcStatusText(s))
	}
	lines = append(lines, "WiFi client:  "+onOff(s.WifiClient))
	if vis.WifiClientFields {
		lines = append(lines, "  SSID:       "+orPlaceholder(s.WifiSsid))
		lines = append(lines, "  Static IP:  "+onOff(s.WifiStatic))
		if vis.WifiStaticFields {
			lines = append(lines,
				"    IP:       "+orPlaceholder(s.WifiIp),
				"    Gateway:  "+orPlaceholder(s.WifiGateway),
				"    Mask:     "+orPlaceholder(s.WifiMask),
			)
		}
	}
	r1 := relayName(s.Relay1Name, "Relay 1")
	r2 := relayName(s.Relay2Name, "Relay 2")
	lines = append(lines,
		fmt.Sprintf("%s: %s", r1, lo.Ternary(s.Relay1State, "ON", "OFF")),
		fmt.Sprintf("%s: %s", r2, lo.Ternary(s.Relay2State, "ON", "OFF")),
		"Auth enabled: "+onOff(s.AuthEnabled),
	)
	if vis.AuthFields {
		lines = append(lines, "  User:       "+orPlaceholder(s.AuthUser))
		if s.ApiKeyMask != "" {
			lines = append(lines, "  API key:    "+s.ApiKeyMask)
		}
	}
	return strings.Join(lines, "\n")
}

func onOff(v bool) string {
	return lo.Ternary(v, "on", "off")
}
