package model

// Snapshots are transient: each one is rebuilt wholesale from the latest
// device response and replaces whatever was rendered before. Fields missing
// from a response decode to zero values and render as placeholders.

type StatusSnapshot struct {
	Device  DeviceInfo  `json:"device"`
	Memory  MemoryInfo  `json:"memory"`
	Network NetworkInfo `json:"network"`
}

type DeviceInfo struct {
	Name      string `json:"name"`
	ChipModel string `json:"chip_model"`
	ChipRev   int    `json:"chip_rev"`
	Cores     int    `json:"cores"`
	CpuMhz    int    `json:"cpu_mhz"`
	UptimeMs  int64  `json:"uptime_ms"`
}

type MemoryInfo struct {
	HeapFree      int64 `json:"heap_free"`
	HeapTotal     int64 `json:"heap_total"`
	FlashFree     int64 `json:"flash_free"`
	FlashTotal    int64 `json:"flash_total"`
	LittlefsFree  int64 `json:"littlefs_free"`
	LittlefsTotal int64 `json:"littlefs_total"`
}

type NetworkInfo struct {
	Mode    string `json:"mode"`
	Ssid    string `json:"ssid"`
	Ip      string `json:"ip"`
	Gateway string `json:"gateway"`
	Mask    string `json:"mask"`
	Mac     string `json:"mac"`
}

type UserRecord struct {
	Uid    string `json:"uid"`
	Name   string `json:"name"`
	Relay1 bool   `json:"relay1"`
	Relay2 bool   `json:"relay2"`
}

type UserList struct {
	Users []UserRecord `json:"users"`
}

type LogEntry struct {
	Ts  string `json:"ts"`
	Msg string `json:"msg"`
}

type LogList struct {
	Logs []LogEntry `json:"logs"`
}

// LastScan is the most recently read card. Uid is empty when no card has
// been scanned since boot.
type LastScan struct {
	Rfid struct {
		Uid string `json:"uid"`
	} `json:"rfid"`
}

type SettingsSnapshot struct {
	RtcEnabled   bool   `json:"rtc_enabled"`
	RtcTimeValid bool   `json:"rtc_time_valid"`
	WifiClient   bool   `json:"wifi_client"`
	WifiSsid     string `json:"wifi_ssid"`
	WifiStatic   bool   `json:"wifi_static"`
	WifiIp       string `json:"wifi_ip"`
	WifiGateway  string `json:"wifi_gateway"`
	WifiMask     string `json:"wifi_mask"`
	Relay1Name   string `json:"relay1"`
	Relay2Name   string `json:"relay2"`
	Relay1State  bool   `json:"relay1_state"`
	Relay2State  bool   `json:"relay2_state"`
	AuthEnabled  bool   `json:"auth_enabled"`
	AuthUser     string `json:"auth_user"`
	ApiKeyMask   string `json:"api_key_mask"`
}

type RtcReading struct {
	Datetime string `json:"datetime"`
}

// Ack is the device's generic write acknowledgment. Ok is a pointer because
// only an explicit false counts as a rejection; an absent field is success.
type Ack struct {
	Ok     *bool  `json:"ok"`
	Error  string `json:"error"`
	Reboot bool   `json:"reboot"`
	ApiKey string `json:"api_key"`
}

func (a Ack) Rejected() bool {
	return a.Ok != nil && !*a.Ok
}
