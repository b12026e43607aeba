package config

import "time"

type Config struct {
	DeviceCfg   *DeviceConfig
	PollCfg     *PollConfig
	DownloadDir string
	LogLevel    string
}

type DeviceConfig struct {
	Host   string
	Ssl    bool
	ApiKey string
}

// PollConfig holds the cadence of each periodic loader.
type PollConfig struct {
	StatusInterval time.Duration
	ScanInterval   time.Duration
	LogInterval    time.Duration
}
