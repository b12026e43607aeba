package device

import (
	"context"
	"errors"
	"net/url"

	"github.com/anicoll/rfid-console/internal/pkg/model"
)

const reasonUidExists = "uid_exists"

// CreateUser enrolls a card. A duplicate UID is the one rejection the
// device names explicitly; everything else surfaces as a generic failure.
func (c *Client) CreateUser(ctx context.Context, user model.UserRecord) error {
	form := url.Values{}
	form.Set("uid", user.Uid)
	form.Set("name", user.Name)
	form.Set("relay1", boolParam(user.Relay1))
	form.Set("relay2", boolParam(user.Relay2))

	_, err := c.postForm(ctx, "/users", form)
	var serr *StatusError
	if errors.As(err, &serr) && serr.Reason == reasonUidExists {
		return ErrUidExists
	}
	return err
}

func (c *Client) DeleteUser(ctx context.Context, uid string) error {
	query := url.Values{}
	query.Set("uid", uid)
	return c.delete(ctx, "/users", query)
}

func boolParam(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
