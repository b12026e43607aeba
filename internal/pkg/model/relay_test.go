package model

import (
	"encoding/json"
	"testing"

	"github.com/anicoll/rfid-console/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestParsePulseDuration(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want int
	}{
		"below minimum clamps up":   {raw: "10", want: 50},
		"above maximum clamps down": {raw: "999999", want: 10000},
		"unparseable clamps up":     {raw: "abc", want: 50},
		"empty clamps up":           {raw: "", want: 50},
		"in range passes through":   {raw: "600", want: 600},
		"minimum boundary":          {raw: "50", want: 50},
		"maximum boundary":          {raw: "10000", want: 10000},
		"negative clamps up":        {raw: "-5", want: 50},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePulseDuration(tt.raw))
		})
	}
}

func TestAckRejected(t *testing.T) {
	assert.False(t, Ack{}.Rejected(), "absent ok is success")
	assert.False(t, Ack{Ok: utils.ToPtr(true)}.Rejected())
	assert.True(t, Ack{Ok: utils.ToPtr(false)}.Rejected())
}

func TestSettingsSnapshot_ToleratesAbsentFields(t *testing.T) {
	snap := SettingsSnapshot{}
	err := json.Unmarshal([]byte(`{"rtc_enabled":true}`), &snap)
	assert.NoError(t, err)
	assert.True(t, snap.RtcEnabled)
	assert.Empty(t, snap.WifiSsid)
	assert.False(t, snap.Relay1State)
	assert.Empty(t, snap.ApiKeyMask)
}
