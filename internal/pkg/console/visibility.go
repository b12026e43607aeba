package console

import "github.com/anicoll/rfid-console/internal/pkg/model"

// Visibility of the toggle-gated settings sections. Always derived from the
// current snapshot, never stored, so it cannot drift from the flags.
type Visibility struct {
	RtcConfig        bool
	WifiClientFields bool
	WifiStaticFields bool
	AuthFields       bool
}

// ComputeVisibility maps each gating flag to its dependent section.
// Each section tracks exactly its own flag; the static-IP block is
// additionally nested under the WiFi client fields at render time.
func ComputeVisibility(s model.SettingsSnapshot) Visibility {
	return Visibility{
		RtcConfig:        s.RtcEnabled,
		WifiClientFields: s.WifiClient,
		WifiStaticFields: s.WifiStatic,
		AuthFields:       s.AuthEnabled,
	}
}

// RtcStatusText derives the RTC status line: the enablement flag gates the
// block, a separate time-validity flag picks the wording.
func RtcStatusText(s model.SettingsSnapshot) string {
	switch {
	case s.RtcEnabled && s.RtcTimeValid:
		return "RTC is set."
	case s.RtcEnabled:
		return "RTC not set."
	default:
		return ""
	}
}
