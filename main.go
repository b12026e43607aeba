package main

import (
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/anicoll/rfid-console/cmd"
)

func main() {
	app := &cli.App{
		Name:   "rfid-console",
		Usage:  "control console for the esp32 rfid access device",
		Action: cmd.ConsoleCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "device-host",
				EnvVars:  []string{"DEVICE_HOST"},
				Required: true,
			},
			&cli.BoolFlag{
				Name:    "device-ssl",
				EnvVars: []string{"DEVICE_SSL"},
				Value:   false,
			},
			&cli.StringFlag{
				Name:    "api-key",
				EnvVars: []string{"DEVICE_API_KEY"},
				Value:   "",
			},
			&cli.StringFlag{
				Name:    "download-dir",
				EnvVars: []string{"DOWNLOAD_DIR"},
				Value:   ".",
			},
			&cli.DurationFlag{
				Name:    "status-interval",
				EnvVars: []string{"STATUS_INTERVAL"},
				Value:   2000 * time.Millisecond,
			},
			&cli.DurationFlag{
				Name:    "scan-interval",
				EnvVars: []string{"SCAN_INTERVAL"},
				Value:   1500 * time.Millisecond,
			},
			&cli.DurationFlag{
				Name:    "log-interval",
				EnvVars: []string{"LOG_INTERVAL"},
				Value:   1200 * time.Millisecond,
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"LOG_LEVEL"},
				Value:   "INFO",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
