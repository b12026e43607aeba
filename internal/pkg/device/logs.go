package device

import (
	"context"
	"net/url"
)

type LogScope string

func (ls LogScope) String() string {
	return string(ls)
}

const (
	// ScopeRam clears the recent in-memory ring; ScopeAll also wipes the
	// persisted log file on the device filesystem.
	ScopeRam LogScope = "ram"
	ScopeAll LogScope = "all"
)

func (c *Client) ClearLogs(ctx context.Context, scope LogScope) error {
	query := url.Values{}
	query.Set("scope", scope.String())
	return c.delete(ctx, "/logs", query)
}

// ExportLogs returns the plain-text log dump.
func (c *Client) ExportLogs(ctx context.Context) (string, error) {
	return c.getText(ctx, "/logs/export", nil)
}
