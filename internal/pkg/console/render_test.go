package console

import (
	"testing"

	"github.com/anicoll/rfid-console/internal/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := map[string]struct {
		bytes int64
		want  string
	}{
		"zero":        {bytes: 0, want: "0 KB"},
		"negative":    {bytes: -1024, want: "0 KB"},
		"one kb":      {bytes: 1024, want: "1 KB"},
		"rounds up":   {bytes: 1536, want: "2 KB"},
		"rounds down": {bytes: 1400, want: "1 KB"},
		"large":       {bytes: 4 * 1024 * 1024, want: "4096 KB"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestUsageBar(t *testing.T) {
	assert.Equal(t, "0% used | 0 KB Free / 0 KB Total", UsageBar(0, 0), "zero total must not divide")
	assert.Equal(t, "50% used | 512 KB Free / 1024 KB Total", UsageBar(512*1024, 1024*1024))
	assert.Equal(t, "100% used | 0 KB Free / 1024 KB Total", UsageBar(0, 1024*1024))
	// free above total never exceeds the scale.
	assert.Equal(t, "0% used | 2048 KB Free / 1024 KB Total", UsageBar(2048*1024, 1024*1024))
}

func TestRenderStatus_Placeholders(t *testing.T) {
	out := RenderStatus(model.StatusSnapshot{})
	assert.Contains(t, out, "Name:    -")
	assert.Contains(t, out, "CPU:     -")
	assert.Contains(t, out, "Uptime:  -")
	assert.Contains(t, out, "0% used | 0 KB Free / 0 KB Total")
	assert.Contains(t, out, "MAC:     -")
}

func TestRenderStatus_Uptime(t *testing.T) {
	snap := model.StatusSnapshot{}
	snap.Device.UptimeMs = 93500
	out := RenderStatus(snap)
	assert.Contains(t, out, "Uptime:  93 s", "uptime floors to whole seconds")
}

func TestRenderUsers(t *testing.T) {
	assert.Equal(t, "No users", RenderUsers(nil))

	out := RenderUsers([]model.UserRecord{
		{Uid: "04AB9F21", Name: "alice", Relay1: true},
		{Uid: "11223344", Name: "bob", Relay2: true},
	})
	assert.Contains(t, out, "04AB9F21 - alice (R1: Y, R2: N)")
	assert.Contains(t, out, "11223344 - bob (R1: N, R2: Y)")
}

func TestRenderLogs(t *testing.T) {
	assert.Equal(t, "No logs", RenderLogs(nil))
	out := RenderLogs([]model.LogEntry{{Ts: "2026-01-02 10:00:00", Msg: "access granted"}})
	assert.Equal(t, "2026-01-02 10:00:00 access granted", out)
}

func TestRenderLastScan(t *testing.T) {
	assert.Equal(t, "No card scanned.", RenderLastScan(model.LastScan{}))
	scan := model.LastScan{}
	scan.Rfid.Uid = "04AB9F21"
	assert.Equal(t, "Last card UID: 04AB9F21", RenderLastScan(scan))
}

func TestRenderSettings_GatedSections(t *testing.T) {
	snap := model.SettingsSnapshot{
		RtcEnabled:   true,
		RtcTimeValid: true,
		WifiClient:   true,
		WifiSsid:     "barn",
		WifiStatic:   true,
		WifiIp:       "192.168.4.10",
		WifiGateway:  "192.168.4.1",
		WifiMask:     "255.255.255.0",
		Relay1Name:   "Front door",
		AuthEnabled:  true,
		AuthUser:     "admin",
		ApiKeyMask:   "ab****ef",
	}
	out := RenderSettings(snap)
	assert.Contains(t, out, "RTC is set.")
	assert.Contains(t, out, "SSID:       barn")
	assert.Contains(t, out, "IP:       192.168.4.10")
	assert.Contains(t, out, "Front door: OFF")
	assert.Contains(t, out, "Relay 2: OFF", "empty relay name falls back")
	assert.Contains(t, out, "API key:    ab****ef")

	// flipping the gates off removes the dependent sections wholesale.
	out = RenderSettings(model.SettingsSnapshot{WifiSsid: "barn", AuthUser: "admin", ApiKeyMask: "ab****ef"})
	assert.NotContains(t, out, "RTC is set.")
	assert.NotContains(t, out, "SSID")
	assert.NotContains(t, out, "admin")
	assert.NotContains(t, out, "ab****ef", "masked key leaves no residue when auth is off")
}
