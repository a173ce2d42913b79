// Package oanda is a typed client for the OANDA v20 REST trading API.
//
// The client mirrors the externally defined API surface: request
// builders per endpoint group, wire-faithful response types in the
// entity package, and the codec package reconciling the API's
// inconsistent JSON encodings with typed values. It performs no
// retries and keeps no state between calls; retry policy belongs to
// the caller.
package oanda

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/go-oanda/entity"
)

const (
	// PracticeHost serves demo accounts.
	PracticeHost = "api-fxpractice.oanda.com"
	// TradeHost serves live accounts.
	TradeHost = "api-fxtrade.oanda.com"

	datetimeFormat = "RFC3339"
)

// Client talks to one v20 API host with one bearer token. It is safe
// for concurrent use.
type Client struct {
	baseURL    string
	streamURL  string
	token      string
	http       *http.Client
	streamHTTP *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for REST calls.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithStreamHost overrides the streaming host derived from the REST host.
func WithStreamHost(host string) Option {
	return func(c *Client) {
		c.streamURL = "https://" + host
	}
}

// WithBaseURL replaces the REST base URL entirely, scheme included.
// Meant for tests and proxies.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithStreamURL replaces the stream base URL entirely, scheme included.
func WithStreamURL(u string) Option {
	return func(c *Client) {
		c.streamURL = strings.TrimSuffix(u, "/")
	}
}

// WithTimeout sets the per-request timeout for REST calls. Streams are
// unaffected: they live until their context is cancelled.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// NewClient builds a client for the given REST host, e.g. PracticeHost.
func NewClient(host, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: "https://" + host,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
		// No timeout here: stream requests are long-lived and bounded
		// by their context instead.
		streamHTTP: &http.Client{},
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.streamURL == "" {
		c.streamURL = "https://" + strings.Replace(host, "api-", "stream-", 1)
	}

	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept-Datetime-Format", datetimeFormat)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", method, path)
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	// A malformed field fails the whole response: never hand the caller
	// a partially decoded trading payload.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", path)
	}
	return nil
}

// decodeAPIError turns a non-2xx response into an *APIError, or an
// *OrderRejectError when the body carries a reject transaction.
func decodeAPIError(resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{
			StatusCode:   resp.StatusCode,
			ErrorCode:    "UNPARSEABLE_RESPONSE",
			ErrorMessage: "could not read error response",
		}
	}

	var body struct {
		ErrorCode              string              `json:"errorCode"`
		ErrorMessage           string              `json:"errorMessage"`
		OrderRejectTransaction *entity.Transaction `json:"orderRejectTransaction"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return &APIError{
			StatusCode:   resp.StatusCode,
			ErrorCode:    "UNPARSEABLE_RESPONSE",
			ErrorMessage: "could not parse error response",
		}
	}

	if body.ErrorCode == "" {
		body.ErrorCode = "UNKNOWN_ERROR_CODE"
	}
	if body.ErrorMessage == "" {
		body.ErrorMessage = "Unknown error"
	}

	if tx := body.OrderRejectTransaction; tx != nil {
		return &OrderRejectError{
			Instrument:   tx.Instrument,
			Units:        tx.Units,
			RejectReason: tx.RejectReason,
			ErrorCode:    body.ErrorCode,
			ErrorMessage: body.ErrorMessage,
		}
	}

	return &APIError{
		StatusCode:   resp.StatusCode,
		ErrorCode:    body.ErrorCode,
		ErrorMessage: body.ErrorMessage,
	}
}

func queryTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
