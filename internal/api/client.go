package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HTTPClient lets tests substitute the transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies an optional bearer token layered on top of the cookie
// session. A nil source means cookie-only auth.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

const (
	defaultTimeout  = 15 * time.Second
	maxGetAttempts  = 3
	retryBackoff    = 250 * time.Millisecond
	requestIDHeader = "X-Request-Id"
)

type Client struct {
	baseURL string
	http    HTTPClient
	tokens  TokenSource
	log     *logrus.Entry
}

type Option func(*Client)

func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) { c.http = hc }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) { c.log = logger.WithField("component", "api") }
}

// New builds a client for the backend at baseURL, e.g.
// "http://localhost:8080/api". The default transport keeps a cookie jar so the
// backend's session cookie rides along on every call.
func New(baseURL string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: defaultTimeout,
		},
		log: logrus.StandardLogger().WithField("component", "api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.call(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.call(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.call(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, body, out interface{}) error {
	return c.call(ctx, http.MethodDelete, path, nil, body, out)
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
	}

	// Only idempotent reads are retried; mutations get a single attempt so a
	// timeout never turns into a duplicate submission.
	attempts := 1
	if method == http.MethodGet {
		attempts = maxGetAttempts
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return &Error{Kind: KindTransient, Message: ctx.Err().Error(), cause: ctx.Err()}
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
		}

		err := c.once(ctx, method, path, query, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !IsTransient(err) {
			return err
		}
		c.log.WithError(err).WithFields(logrus.Fields{
			"method": method, "path": path, "attempt": attempt + 1,
		}).Debug("transient failure, retrying")
	}
	return lastErr
}

func (c *Client) once(ctx context.Context, method, path string, query url.Values, payload []byte, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.log.WithError(err).Warn("token source failed, continuing with cookie auth only")
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransient, Message: err.Error(), cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
