package device

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/anicoll/rfid-console/internal/pkg/config"
	"github.com/anicoll/rfid-console/internal/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return New(&config.DeviceConfig{Host: u.Host}, opts...)
}

func TestClient_SessionExpired(t *testing.T) {
	expired := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), WithSessionExpiredHook(func() {
		expired = true
	}))

	_, err := c.Status(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, expired, "401 must trigger the login redirect hook")

	// plain-text endpoints share the same detection.
	expired = false
	_, err = c.ExportLogs(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, expired)
}

func TestClient_StatusErrorCarriesCode(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.Users(context.Background())
	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusInternalServerError, serr.Code)
}

func TestClient_ApiKeyHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	c := New(&config.DeviceConfig{Host: u.Host, ApiKey: "secret123"})
	_, err = c.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret123", gotKey)

	// Close wipes the held key; later requests go out without it.
	c.Close()
	_, err = c.Settings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotKey)
}

func TestClient_CreateUser(t *testing.T) {
	tests := map[string]struct {
		status  int
		body    string
		wantErr error
	}{
		"created":       {status: http.StatusOK, body: `{"ok":true}`, wantErr: nil},
		"duplicate uid": {status: http.StatusConflict, body: `{"ok":false,"error":"uid_exists"}`, wantErr: ErrUidExists},
		"garbage ack on success is tolerated": {status: http.StatusOK, body: `not json`, wantErr: nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var form url.Values
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseForm())
				form = r.PostForm
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			err := c.CreateUser(context.Background(), model.UserRecord{
				Uid:    "04AB9F21",
				Name:   "alice",
				Relay1: true,
				Relay2: false,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "04AB9F21", form.Get("uid"))
			assert.Equal(t, "alice", form.Get("name"))
			assert.Equal(t, "1", form.Get("relay1"))
			assert.Equal(t, "0", form.Get("relay2"))
		})
	}
}

func TestClient_DeleteUserAndClearLogs(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"ok":true}`))
	}))

	require.NoError(t, c.DeleteUser(context.Background(), "04AB9F21"))
	assert.Equal(t, "/users", gotPath)
	assert.Equal(t, "04AB9F21", gotQuery.Get("uid"))

	require.NoError(t, c.ClearLogs(context.Background(), ScopeRam))
	assert.Equal(t, "/logs", gotPath)
	assert.Equal(t, "ram", gotQuery.Get("scope"))
}

func TestClient_RelayCommandEncoding(t *testing.T) {
	var form url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Write([]byte(`{"ok":true}`))
	}))

	require.NoError(t, c.SendRelayCommand(context.Background(), model.RelayCommand{Relay: 2, Action: model.RelayOn}))
	assert.Equal(t, "2", form.Get("relay"))
	assert.Equal(t, "on", form.Get("action"))
	assert.Empty(t, form.Get("duration_ms"), "duration is pulse-only")

	require.NoError(t, c.SendRelayCommand(context.Background(), model.RelayCommand{Relay: 1, Action: model.RelayPulse, DurationMs: 600}))
	assert.Equal(t, "pulse", form.Get("action"))
	assert.Equal(t, "600", form.Get("duration_ms"))
}

func TestClient_BackupAndRestore(t *testing.T) {
	const dump = "uid=04AB9F21;name=alice;relay1=1;relay2=0\n"
	var restored string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/backup":
			assert.Equal(t, "users", r.URL.Query().Get("type"))
			w.Write([]byte(dump))
		case "/restore":
			data, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			restored = string(data)
			w.Write([]byte(`{"ok":true}`))
		}
	}))

	text, err := c.Backup(context.Background(), BackupUsers)
	require.NoError(t, err)
	assert.Equal(t, dump, text)

	require.NoError(t, c.Restore(context.Background(), dump))
	assert.Equal(t, dump, restored, "restore body is transmitted verbatim, unparsed")
}

func TestClient_RestoreExplicitRejection(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false}`))
	}))

	err := c.Restore(context.Background(), "bogus")
	var serr *StatusError
	assert.ErrorAs(t, err, &serr, "ok:false on a 200 is still a rejection")
}

func TestClient_UartTest(t *testing.T) {
	tests := map[string]struct {
		body string
		want bool
	}{
		"link ok":     {body: `{"ok":true}`, want: true},
		"no response": {body: `{"ok":false}`, want: false},
		"garbage ack": {body: `nope`, want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			ok, err := c.UartTest(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestClient_SaveSettingsAck(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"api_key":"XYZ"}`))
	}))

	form := url.Values{}
	form.Set("auth_enabled", "1")
	ack, err := c.SaveSettings(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "XYZ", ack.ApiKey)
	assert.False(t, ack.Reboot)
}
