package console

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/anicoll/rfid-console/internal/pkg/device"
	"go.uber.org/zap"
)

// Client-side validation failures: reported inline, the request is never
// issued.
var (
	ErrSsidRequired        = errors.New("ssid is required for client mode")
	ErrStaticIpIncomplete  = errors.New("static ip requires ip, gateway and mask")
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrDatetimeRequired    = errors.New("no date/time selected")
)

// SaveRelayNames transmits only the two display names.
func (c *Console) SaveRelayNames(ctx context.Context, relay1, relay2 string) error {
	form := url.Values{}
	form.Set("relay1", strings.TrimSpace(relay1))
	form.Set("relay2", strings.TrimSpace(relay2))
	if _, err := c.dev.SaveSettings(ctx, form); err != nil {
		c.notify.Notify("Failed to save relay names.")
		return err
	}
	c.notify.Notify("Relay names saved.")
	return c.LoadSettings(ctx)
}

// SaveRtcEnabled transmits only the enablement flag and reloads the
// snapshot so the gated block follows it.
func (c *Console) SaveRtcEnabled(ctx context.Context, enabled bool) error {
	form := url.Values{}
	form.Set("rtc_enabled", boolParam(enabled))
	if _, err := c.dev.SaveSettings(ctx, form); err != nil {
		c.view.SetLine(LineRtcStatus, "Failed to update settings.")
		return err
	}
	if err := c.LoadSettings(ctx); err != nil {
		return err
	}
	if enabled {
		c.view.SetLine(LineRtcStatus, "RTC enabled.")
	} else {
		c.view.SetLine(LineRtcStatus, "RTC disabled.")
	}
	return nil
}

// SetRtcTime pushes a wall-clock value to the device RTC.
func (c *Console) SetRtcTime(ctx context.Context, datetime string) error {
	if datetime == "" {
		c.view.SetLine(LineRtcStatus, "Select a date/time first.")
		return ErrDatetimeRequired
	}
	if err := c.dev.SetRtc(ctx, datetime); err != nil {
		c.view.SetLine(LineRtcStatus, "RTC update failed.")
		return err
	}
	c.view.SetLine(LineRtcStatus, "RTC updated.")
	return nil
}

// ReadRtcTime pulls the device clock into the datetime line, normalized to
// the editable ISO form.
func (c *Console) ReadRtcTime(ctx context.Context) error {
	reading, err := c.dev.Rtc(ctx)
	if err != nil {
		c.view.SetLine(LineRtcStatus, "RTC read failed.")
		return err
	}
	if reading.Datetime != "" {
		iso := strings.Replace(reading.Datetime, " ", "T", 1)
		if len(iso) > 16 {
			iso = iso[:16]
		}
		c.view.SetLine(LineRtcDatetime, iso)
		c.view.SetLine(LineRtcStatus, "RTC read successful.")
	}
	return nil
}

type WifiSettings struct {
	Client  bool
	Ssid    string
	Pass    string
	Static  bool
	Ip      string
	Gateway string
	Mask    string
}

// SaveWifi validates client-side before anything is transmitted, then sends
// the full WiFi field subset in one partial update.
func (c *Console) SaveWifi(ctx context.Context, w WifiSettings) error {
	ssid := strings.TrimSpace(w.Ssid)
	ip := strings.TrimSpace(w.Ip)
	gateway := strings.TrimSpace(w.Gateway)
	mask := strings.TrimSpace(w.Mask)

	if w.Client && ssid == "" {
		c.notify.Notify("SSID is required for client mode.")
		return ErrSsidRequired
	}
	if w.Static && (ip == "" || gateway == "" || mask == "") {
		c.notify.Notify("Static IP requires IP, Gateway, and Mask.")
		return ErrStaticIpIncomplete
	}

	form := url.Values{}
	form.Set("wifi_client", boolParam(w.Client))
	form.Set("wifi_ssid", ssid)
	form.Set("wifi_pass", w.Pass)
	form.Set("wifi_static", boolParam(w.Static))
	form.Set("wifi_ip", ip)
	form.Set("wifi_gateway", gateway)
	form.Set("wifi_mask", mask)

	ack, err := c.dev.SaveSettings(ctx, form)
	if err != nil {
		c.notify.Notify("Failed to save WiFi settings.")
		return err
	}
	if ack.Reboot {
		c.notify.Notify("WiFi settings saved. Reboot the device to switch mode.")
	} else {
		c.notify.Notify("WiFi settings saved.")
	}
	return c.LoadSettings(ctx)
}

// SaveAuth enables or disables authentication. A freshly issued API key in
// the ack is shown once and the snapshot is deliberately not reloaded, so
// the full key stays visible until the user navigates away; every later
// load shows only the mask.
func (c *Console) SaveAuth(ctx context.Context, enabled bool, user, pass string) error {
	user = strings.TrimSpace(user)
	if enabled && (user == "" || pass == "") {
		c.notify.Notify("Username and password are required.")
		return ErrCredentialsRequired
	}

	form := url.Values{}
	form.Set("auth_enabled", boolParam(enabled))
	form.Set("auth_user", user)
	form.Set("auth_pass", pass)

	ack, err := c.dev.SaveSettings(ctx, form)
	if err != nil {
		c.notify.Notify("Failed to save authentication settings.")
		return err
	}
	if ack.ApiKey != "" {
		c.view.SetLine(LineApiKey, "API key: "+ack.ApiKey)
		c.notify.Notify("Authentication enabled. Save the API key now.")
		return nil
	}
	c.notify.Notify("Authentication settings saved.")
	return c.LoadSettings(ctx)
}

// Logout clears the server session, then navigates to the login surface.
func (c *Console) Logout(ctx context.Context) error {
	err := c.dev.Logout(ctx)
	if err != nil && !errors.Is(err, device.ErrSessionExpired) {
		c.logger.Error("logout failed", zap.Error(err))
	}
	if c.loginRedirect != nil {
		c.loginRedirect()
	}
	return err
}

func boolParam(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
