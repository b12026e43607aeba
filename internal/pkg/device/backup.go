package device

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

type BackupType string

func (bt BackupType) String() string {
	return string(bt)
}

const (
	BackupUsers    BackupType = "users"
	BackupSettings BackupType = "settings"
)

// Backup exports the user registry or the settings snapshot as the
// device's portable flat-text form.
func (c *Client) Backup(ctx context.Context, typ BackupType) (string, error) {
	query := url.Values{}
	query.Set("type", typ.String())
	return c.getText(ctx, "/backup", query)
}

// Restore transmits a previously exported backup verbatim. The body is not
// parsed client-side; the device decides what it is restoring.
func (c *Client) Restore(ctx context.Context, raw string) error {
	res, err := c.do(ctx, http.MethodPost, "/restore", nil, "text/plain", strings.NewReader(raw))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	ack := decodeAck(res.Body)
	if !success(res.StatusCode) || ack.Rejected() {
		return &StatusError{Code: res.StatusCode, Reason: ack.Error}
	}
	return nil
}
