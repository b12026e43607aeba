package console

import (
	"context"
	"fmt"

	"github.com/anicoll/rfid-console/internal/pkg/model"
	"github.com/samber/lo"
)

// SetRelayState switches a relay persistently on or off. confirmToggle is a
// caller-supplied policy: the live toggle control's own change event passes
// false, everything else asks first. A successful change reloads the
// settings snapshot so the rendered live state follows.
func (c *Console) SetRelayState(ctx context.Context, relay int, enabled, confirmToggle bool) error {
	if confirmToggle {
		prompt := fmt.Sprintf("%s %s?", lo.Ternary(enabled, "Turn on", "Turn off"), c.relayLabel(relay))
		if !c.confirm.Confirm(prompt) {
			return nil
		}
	}
	cmd := model.RelayCommand{
		Relay:  relay,
		Action: lo.Ternary(enabled, model.RelayOn, model.RelayOff),
	}
	if err := c.dev.SendRelayCommand(ctx, cmd); err != nil {
		return err
	}
	return c.LoadSettings(ctx)
}

// PulseRelay fires a momentary activation, always confirmed. The raw
// duration is clamped, never rejected. No reload afterwards: the device
// returns the relay to off autonomously and the console does not wait.
func (c *Console) PulseRelay(ctx context.Context, relay int, rawDuration string) error {
	if !c.confirm.Confirm(fmt.Sprintf("Pulse %s?", c.relayLabel(relay))) {
		return nil
	}
	return c.dev.SendRelayCommand(ctx, model.RelayCommand{
		Relay:      relay,
		Action:     model.RelayPulse,
		DurationMs: model.ParsePulseDuration(rawDuration),
	})
}
