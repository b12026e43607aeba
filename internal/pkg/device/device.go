package device

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/anicoll/rfid-console/internal/pkg/config"
	"github.com/anicoll/rfid-console/internal/pkg/model"
	"go.uber.org/zap"
)

var (
	// ErrSessionExpired is returned for any endpoint that answers 401. The
	// in-flight call is dead; the caller must not act on its body.
	ErrSessionExpired = errors.New("device session expired")
	ErrUidExists      = errors.New("uid already registered")
)

// StatusError is the generic HTTP failure, carrying the response status and
// the device's error slug when it sent one.
type StatusError struct {
	Code   int
	Reason string
}

func (e *StatusError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("HTTP %d", e.Code)
}

const formContentType = "application/x-www-form-urlencoded"

// Client wraps every call to the device API. The cookie jar carries the
// login session; the API key header rides alongside when configured.
type Client struct {
	cfg       *config.DeviceConfig
	http      *http.Client
	logger    *zap.Logger
	mu        sync.Mutex
	apiKey    string
	onExpired func()
}

type Option func(*Client)

// WithSessionExpiredHook installs the login-redirect surface: called once
// per 401 response, from the goroutine that hit it.
func WithSessionExpiredHook(hook func()) Option {
	return func(c *Client) {
		c.onExpired = hook
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func New(cfg *config.DeviceConfig, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		cfg:    cfg,
		logger: zap.L(), // returns the global logger.
		apiKey: cfg.ApiKey,
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				// the device serves a self-signed certificate in ssl mode.
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		c.http.Jar = jar
	}
	return c
}

// Close drops any short-lived credential material held by the client. The
// session cookie stays server-side; only our copy of the key is wiped.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = ""
}

func (c *Client) endpoint(path string, query url.Values) string {
	scheme := "http"
	if c.cfg.Ssl {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: c.cfg.Host, Path: path, RawQuery: query.Encode()}
	return u.String()
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.mu.Lock()
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	c.mu.Unlock()

	c.logger.Debug("sending request", zap.String("method", method), zap.String("path", path))
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode == http.StatusUnauthorized {
		_ = res.Body.Close()
		c.logger.Info("session expired", zap.String("path", path))
		if c.onExpired != nil {
			c.onExpired()
		}
		return nil, ErrSessionExpired
	}
	return res, nil
}

func success(code int) bool {
	return code >= 200 && code < 300
}

// getJSON fetches one resource snapshot. Non-2xx or an unparseable body
// fails the whole load; the caller re-renders on its next cycle.
func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	res, err := c.do(ctx, http.MethodGet, path, nil, "", nil)
	if err != nil {
		return out, err
	}
	defer res.Body.Close()
	if !success(res.StatusCode) {
		return out, &StatusError{Code: res.StatusCode}
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

// decodeAck parses a write acknowledgment leniently: garbage or an empty
// body is an empty ack, never an error. Downstream code tolerates the
// absent fields.
func decodeAck(r io.Reader) model.Ack {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Ack{}
	}
	ack := model.Ack{}
	if err := json.Unmarshal(data, &ack); err != nil {
		return model.Ack{}
	}
	return ack
}

// postForm issues a urlencoded write. The ack is returned even on failure
// so callers can pick up one-time fields like a freshly issued API key.
func (c *Client) postForm(ctx context.Context, path string, form url.Values) (model.Ack, error) {
	res, err := c.do(ctx, http.MethodPost, path, nil, formContentType, strings.NewReader(form.Encode()))
	if err != nil {
		return model.Ack{}, err
	}
	defer res.Body.Close()
	ack := decodeAck(res.Body)
	if !success(res.StatusCode) || ack.Rejected() {
		return ack, &StatusError{Code: res.StatusCode, Reason: ack.Error}
	}
	return ack, nil
}

func (c *Client) delete(ctx context.Context, path string, query url.Values) error {
	res, err := c.do(ctx, http.MethodDelete, path, query, "", nil)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if !success(res.StatusCode) {
		return &StatusError{Code: res.StatusCode}
	}
	return nil
}

// getText fetches a plain-text endpoint (log dump, backup export). Shares
// the 401 handling, skips JSON decoding.
func (c *Client) getText(ctx context.Context, path string, query url.Values) (string, error) {
	res, err := c.do(ctx, http.MethodGet, path, query, "", nil)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if !success(res.StatusCode) {
		return "", &StatusError{Code: res.StatusCode}
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
