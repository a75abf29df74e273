package confluence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"conflow/pkg/logger"
)

const (
	defaultPollInterval = 5 * time.Second
	defaultMaxPolls     = 120
)

// Client talks to the Confluence REST API over an injected HTTP client.
// All configuration is explicit; there is no package-level state.
type Client struct {
	baseURL  string
	username string
	apiToken string
	flavor   string
	client   *http.Client
	logger   *logger.Logger
	limiter  *rate.Limiter

	pollInterval time.Duration
	maxPolls     int
	sleep        func(context.Context, time.Duration) error
}

// Option adjusts optional client behavior.
type Option func(*Client)

// WithFlavor selects the API flavor ("cloud" or "server"). PDF exports on
// the cloud flavor go through the long-running-task poller.
func WithFlavor(flavor string) Option {
	return func(c *Client) { c.flavor = flavor }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithRateLimit throttles outgoing requests to rps requests per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithPollInterval sets the delay between export status polls.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithMaxPolls bounds the number of export status polls per invocation.
func WithMaxPolls(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxPolls = n
		}
	}
}

func New(baseURL, username, apiToken string) *Client {
	return NewClient(baseURL, username, apiToken, nil)
}

func NewClient(baseURL, username, apiToken string, log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		username:     username,
		apiToken:     apiToken,
		client:       &http.Client{},
		logger:       log,
		pollInterval: defaultPollInterval,
		maxPolls:     defaultMaxPolls,
		sleep:        sleepCtx,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// formTokenHeaders are required by the legacy non-REST actions
// (attachment removal, exports).
func formTokenHeaders() http.Header {
	h := make(http.Header)
	h.Set("X-Atlassian-Token", "no-check")
	return h
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimPrefix(path, "/")
}

func (c *Client) newRequest(ctx context.Context, method, path string, params url.Values, body io.Reader) (*http.Request, error) {
	u := c.url(path)
	if len(params) > 0 {
		if strings.Contains(u, "?") {
			u += "&" + params.Encode()
		} else {
			u += "?" + params.Encode()
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.apiToken)
	return req, nil
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	return resp, nil
}

// doJSON issues a request with an optional JSON payload and decodes the
// JSON response into out when out is non-nil.
func (c *Client) doJSON(method, path string, params url.Values, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		// Keep storage-format HTML readable on the wire instead of the
		// encoder's default < escapes.
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = &buf
	}

	req, err := c.newRequest(context.Background(), method, path, params, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// getRaw issues a GET and returns the undecoded response body. The export
// endpoints answer with HTML fragments or file bytes, not JSON.
func (c *Client) getRaw(ctx context.Context, path string, params url.Values, headers http.Header) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
}

func (c *Client) debugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(format, args...)
	}
}

func (c *Client) infof(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Info(format, args...)
	}
}

func (c *Client) warnf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Warn(format, args...)
	}
}

func (c *Client) errorf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Error(format, args...)
	}
}
