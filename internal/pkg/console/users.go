package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anicoll/rfid-console/internal/pkg/device"
	"github.com/anicoll/rfid-console/internal/pkg/model"
)

var ErrNoUsersSelected = errors.New("no users selected")

// CreateUser enrolls a card. A blank UID falls back to the most recently
// scanned card; without one the form never leaves the console.
func (c *Console) CreateUser(ctx context.Context, uid, name string, relay1, relay2 bool) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		var err error
		if uid, err = c.lastUid(ctx); err != nil {
			c.notify.Notify("Card not scanned. Scan a card first.")
			return err
		}
	}

	err := c.dev.CreateUser(ctx, model.UserRecord{
		Uid:    uid,
		Name:   name,
		Relay1: relay1,
		Relay2: relay2,
	})
	if errors.Is(err, device.ErrUidExists) {
		c.notify.Notify("This UID is already registered.")
		return err
	}
	if err != nil {
		c.notify.Notify("Save failed.")
		return err
	}
	return c.RefreshAll(ctx)
}

// UseLastScanned resolves the last scanned UID for the enrollment form.
func (c *Console) UseLastScanned(ctx context.Context) (string, error) {
	uid, err := c.lastUid(ctx)
	if err != nil {
		c.notify.Notify("Card not scanned. Scan a card first.")
		return "", err
	}
	return uid, nil
}

func (c *Console) DeleteUser(ctx context.Context, uid, name string) error {
	prompt := fmt.Sprintf("Delete user %s?", uid)
	if name != "" {
		prompt = fmt.Sprintf("Delete user %s - %s?", uid, name)
	}
	if !c.confirm.Confirm(prompt) {
		return nil
	}
	if err := c.dev.DeleteUser(ctx, uid); err != nil {
		return err
	}
	return c.RefreshAll(ctx)
}

// DeleteSelected issues one independent delete per UID, in order, then one
// full refresh. Not a transaction: a mid-sequence failure leaves the
// earlier deletes applied.
func (c *Console) DeleteSelected(ctx context.Context, uids []string) error {
	if len(uids) == 0 {
		c.notify.Notify("Select at least one user.")
		return ErrNoUsersSelected
	}
	if !c.confirm.Confirm(fmt.Sprintf("Delete %d users?", len(uids))) {
		return nil
	}
	for _, uid := range uids {
		if err := c.dev.DeleteUser(ctx, uid); err != nil {
			return err
		}
	}
	return c.RefreshAll(ctx)
}
