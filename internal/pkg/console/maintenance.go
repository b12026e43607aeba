package console

import (
	"context"

	"github.com/anicoll/rfid-console/internal/pkg/device"
)

func (c *Console) FormatFilesystem(ctx context.Context) error {
	if !c.confirm.Confirm("Format LittleFS? All records will be deleted.") {
		return nil
	}
	if err := c.dev.FormatFilesystem(ctx); err != nil {
		c.notify.Notify("Format failed.")
		return err
	}
	c.notify.Notify("Format completed. Reboot the device if needed.")
	return c.RefreshAll(ctx)
}

func (c *Console) RebootDevice(ctx context.Context) error {
	if !c.confirm.Confirm("Reboot the device now?") {
		return nil
	}
	if err := c.dev.Reboot(ctx); err != nil {
		c.notify.Notify("Reboot failed.")
		return err
	}
	c.notify.Notify("Rebooting...")
	return nil
}

// UartTest checks the companion-board link and reports into its status
// line; a transport failure reads the same as a silent board.
func (c *Console) UartTest(ctx context.Context) error {
	c.view.SetLine(LineUartTest, "Testing UART link...")
	ok, err := c.dev.UartTest(ctx)
	if ok {
		c.view.SetLine(LineUartTest, "Nano link OK.")
	} else {
		c.view.SetLine(LineUartTest, "No response from Nano.")
	}
	return err
}

// ReaderTest drives a reader's allow/deny feedback, fire-and-forget.
func (c *Console) ReaderTest(ctx context.Context, reader int, action device.ReaderAction) error {
	return c.dev.ReaderTest(ctx, reader, action)
}
