package device

import (
	"context"

	"github.com/anicoll/rfid-console/internal/pkg/model"
)

func (c *Client) Status(ctx context.Context) (model.StatusSnapshot, error) {
	return getJSON[model.StatusSnapshot](ctx, c, "/status")
}

func (c *Client) Users(ctx context.Context) (model.UserList, error) {
	return getJSON[model.UserList](ctx, c, "/users")
}

func (c *Client) Logs(ctx context.Context) (model.LogList, error) {
	return getJSON[model.LogList](ctx, c, "/logs")
}

func (c *Client) LastScan(ctx context.Context) (model.LastScan, error) {
	return getJSON[model.LastScan](ctx, c, "/rfid")
}

func (c *Client) Settings(ctx context.Context) (model.SettingsSnapshot, error) {
	return getJSON[model.SettingsSnapshot](ctx, c, "/settings")
}
