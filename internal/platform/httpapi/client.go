// Package httpapi is the JSON-over-HTTP client shared by platform adapters.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultTimeout    = 15 * time.Second
	defaultMaxRetries = 2
	defaultRateWindow = 60 * time.Second
	maxBodyBytes      = 4 << 20
)

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RPS        int
	MaxRetries int
}

// StatusError is a non-retryable response from the platform.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// Request describes one call. Header is merged into the outgoing request.
type Request struct {
	Operation string
	Method    string
	Path      string
	Query     map[string]string
	Header    http.Header
	Body      any
}

type Client struct {
	baseURL    string
	http       *http.Client
	limiter    ratelimit.Limiter
	maxRetries uint64
	newBackOff func() backoff.BackOff
	now        func() time.Time
	metrics    Metrics
	logger     *zap.Logger
}

func New(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("platform base url is required")
	}
	if metrics == nil {
		return nil, errors.New("platform metrics is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		http:       &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
		maxRetries: uint64(cfg.MaxRetries),
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(250*time.Millisecond),
				backoff.WithMaxInterval(2*time.Second),
			)
		},
		now:     time.Now,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Do sends req and decodes a 2xx JSON response into out when out is not
// nil. Server errors and network failures are retried a small fixed number
// of times; once exhausted they surface as PlatformUnavailable. A 429 is
// never retried here and surfaces as RateLimited with the platform's reset
// window. Other statuses are returned as *StatusError.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	start := time.Now()
	var err error
	defer func() {
		c.metrics.Observe(req.Operation, err, start)
	}()

	var body []byte
	if req.Body != nil {
		if body, err = json.Marshal(req.Body); err != nil {
			err = fmt.Errorf("encode %s request: %w", req.Operation, err)
			return err
		}
	}

	op := func() error {
		return c.once(ctx, req, body, out)
	}
	notify := func(opErr error, wait time.Duration) {
		c.logger.Warn("platform call failed, retrying",
			zap.String("operation", req.Operation), zap.Error(opErr), zap.Duration("wait", wait))
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.maxRetries), ctx)
	err = backoff.RetryNotify(op, bo, notify)
	if err == nil {
		return nil
	}

	var se *StatusError
	var ae *apperr.Error
	switch {
	case errors.As(err, &ae):
		if ae.Kind == apperr.KindRateLimited {
			c.metrics.ObserveRateLimited(req.Operation)
		}
	case errors.As(err, &se):
	case ctx.Err() != nil:
		err = ctx.Err()
	default:
		err = apperr.Wrap(apperr.KindPlatformUnavailable, err, "%s failed", req.Operation)
	}
	return err
}

func (c *Client) once(ctx context.Context, req Request, body []byte, out any) error {
	c.limiter.Take()

	url := c.baseURL + req.Path
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, reader)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("build %s request: %w", req.Operation, err))
	}
	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s: %w", req.Operation, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || resp.StatusCode == http.StatusNoContent {
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
			return nil
		}
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode %s response: %w", req.Operation, err))
		}
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return backoff.Permanent(apperr.RateLimited(c.rateWindow(resp.Header), fmt.Errorf("%s rate limited", req.Operation)))
	case resp.StatusCode >= 500:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return fmt.Errorf("%s: status %d", req.Operation, resp.StatusCode)
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return backoff.Permanent(&StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))})
	}
}

// rateWindow reads Retry-After (seconds) or x-rate-limit-reset (unix
// seconds) and falls back to a fixed window.
func (c *Client) rateWindow(h http.Header) time.Duration {
	if v := strings.TrimSpace(h.Get("Retry-After")); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	if v := strings.TrimSpace(h.Get("x-rate-limit-reset")); v != "" {
		if reset, err := strconv.ParseInt(v, 10, 64); err == nil {
			if d := time.Unix(reset, 0).Sub(c.now()); d > 0 {
				return d
			}
			return 0
		}
	}
	return defaultRateWindow
}
