package model

import "strconv"

type RelayAction string

func (ra RelayAction) String() string {
	return string(ra)
}

const (
	RelayOn    RelayAction = "on"
	RelayOff   RelayAction = "off"
	RelayPulse RelayAction = "pulse"
)

const (
	MinPulseMs = 50
	MaxPulseMs = 10000
)

type RelayCommand struct {
	Relay      int // 1 or 2
	Action     RelayAction
	DurationMs int // pulse only
}

// ParsePulseDuration clamps raw pulse input to [MinPulseMs, MaxPulseMs].
// Unparseable input clamps to the minimum rather than being rejected.
func ParsePulseDuration(raw string) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < MinPulseMs {
		return MinPulseMs
	}
	if value > MaxPulseMs {
		return MaxPulseMs
	}
	return value
}
