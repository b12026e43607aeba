package device

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/anicoll/rfid-console/internal/pkg/model"
)

// SendRelayCommand drives a relay. The device acks and, for a pulse,
// returns the relay to off on its own; the console never waits for that.
func (c *Client) SendRelayCommand(ctx context.Context, cmd model.RelayCommand) error {
	form := url.Values{}
	form.Set("relay", strconv.Itoa(cmd.Relay))
	form.Set("action", cmd.Action.String())
	if cmd.Action == model.RelayPulse {
		form.Set("duration_ms", strconv.Itoa(cmd.DurationMs))
	}
	_, err := c.postForm(ctx, "/maintenance/relay", form)
	return err
}

func (c *Client) FormatFilesystem(ctx context.Context) error {
	_, err := c.postForm(ctx, "/maintenance/format", url.Values{})
	return err
}

func (c *Client) Reboot(ctx context.Context) error {
	_, err := c.postForm(ctx, "/maintenance/reboot", url.Values{})
	return err
}

// UartTest pings the companion board over the UART link. A missing or
// non-true ok in the ack means no response.
func (c *Client) UartTest(ctx context.Context) (bool, error) {
	res, err := c.do(ctx, http.MethodPost, "/maintenance/uart-test", nil, "", nil)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()
	ack := decodeAck(res.Body)
	return success(res.StatusCode) && ack.Ok != nil && *ack.Ok, nil
}

type ReaderAction string

func (ra ReaderAction) String() string {
	return string(ra)
}

const (
	ReaderAllow ReaderAction = "allow"
	ReaderDeny  ReaderAction = "deny"
)

// ReaderTest flashes a reader's feedback LED/beeper as if a card had been
// allowed or denied.
func (c *Client) ReaderTest(ctx context.Context, reader int, action ReaderAction) error {
	form := url.Values{}
	form.Set("reader", strconv.Itoa(reader))
	form.Set("action", action.String())
	_, err := c.postForm(ctx, "/maintenance/reader-test", form)
	return err
}

// Logout clears the server-side session. The caller redirects to the login
// surface afterwards regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.postForm(ctx, "/auth/logout", url.Values{})
	return err
}
