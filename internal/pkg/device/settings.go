package device

import (
	"context"
	"net/url"

	"github.com/anicoll/rfid-console/internal/pkg/model"
)

// SaveSettings issues a field-scoped partial update: only the keys present
// in form are transmitted, the device leaves the rest untouched. The ack
// may carry reboot=true or a freshly issued api_key.
func (c *Client) SaveSettings(ctx context.Context, form url.Values) (model.Ack, error) {
	return c.postForm(ctx, "/settings", form)
}

func (c *Client) Rtc(ctx context.Context) (model.RtcReading, error) {
	return getJSON[model.RtcReading](ctx, c, "/rtc")
}

func (c *Client) SetRtc(ctx context.Context, datetime string) error {
	form := url.Values{}
	form.Set("datetime", datetime)
	_, err := c.postForm(ctx, "/rtc", form)
	return err
}
