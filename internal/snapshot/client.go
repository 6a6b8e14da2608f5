// Package snapshot reads holder snapshots from an external balance index.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/tokengate-backend/internal/clock"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultPageSize    = 1000
	defaultMaxAttempts = 5
	defaultRetryAfter  = 5 * time.Second
	maxBodyBytes       = 8 << 20
)

// TokenRef identifies a token on a chain.
type TokenRef struct {
	ChainID      uint64
	TokenAddress string
}

// Page is one page of holders sorted by descending balance.
type Page struct {
	Owners     []model.HolderLeaf
	NextCursor string
}

type Config struct {
	BaseURL     string
	APIKey      string
	PageSize    int
	RPS         int
	Timeout     time.Duration
	MaxAttempts int
}

type Client struct {
	baseURL     *url.URL
	apiKey      string
	pageSize    int
	maxAttempts int
	http        *http.Client
	limiter     ratelimit.Limiter
	metrics     Metrics
	sleep       func(context.Context, time.Duration) error
	newBackOff  func() backoff.BackOff
	logger      *zap.Logger
}

func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("balance index url is required")
	}
	if metrics == nil {
		return nil, errors.New("snapshot metrics is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse balance index url: %w", err)
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	return &Client{
		baseURL:     base,
		apiKey:      cfg.APIKey,
		pageSize:    cfg.PageSize,
		maxAttempts: cfg.MaxAttempts,
		http:        &http.Client{Timeout: cfg.Timeout},
		limiter:     limiter,
		metrics:     metrics,
		sleep:       clock.Sleep,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(500*time.Millisecond),
				backoff.WithMaxInterval(10*time.Second),
			)
		},
		logger: logger.Named("snapshot"),
	}, nil
}

type holdersResponse struct {
	Owners []struct {
		Address string `json:"address"`
		Balance string `json:"balance"`
	} `json:"owners"`
	NextCursor string `json:"nextCursor"`
}

type statusError struct {
	code       int
	retryAfter time.Duration
}

func (e *statusError) Error() string {
	return fmt.Sprintf("balance index returned status %d", e.code)
}

// ListTopHolders fetches one page of holders. Rate-limit responses are
// waited out and server errors retried with backoff, both bounded by the
// configured attempt count.
func (c *Client) ListTopHolders(ctx context.Context, token TokenRef, cursor string) (Page, error) {
	start := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("list_top_holders", err, start)
	}()

	bo := c.newBackOff()
	var page Page
	for attempt := 1; ; attempt++ {
		page, err = c.fetch(ctx, token, cursor)
		if err == nil {
			return page, nil
		}

		if attempt >= c.maxAttempts || ctx.Err() != nil {
			return Page{}, err
		}
		wait := bo.NextBackOff()
		var se *statusError
		if errors.As(err, &se) {
			switch {
			case se.code == http.StatusTooManyRequests:
				c.metrics.ObserveRateLimited("list_top_holders")
				wait = se.retryAfter
			case se.code < 500:
				return Page{}, err
			}
		}
		c.logger.Warn("balance index request failed, retrying",
			zap.Error(err), zap.Int("attempt", attempt), zap.Duration("wait", wait))
		if sleepErr := c.sleep(ctx, wait); sleepErr != nil {
			err = sleepErr
			return Page{}, err
		}
	}
}

func (c *Client) fetch(ctx context.Context, token TokenRef, cursor string) (Page, error) {
	c.limiter.Take()

	u := *c.baseURL
	u.Path = fmt.Sprintf("%s/v1/tokens/%d/%s/holders", u.Path, token.ChainID, model.NormalizeAddress(token.TokenAddress))
	q := u.Query()
	q.Set("limit", strconv.Itoa(c.pageSize))
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("build holders request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("get holders: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return Page{}, &statusError{code: resp.StatusCode, retryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	}

	var body holdersResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return Page{}, fmt.Errorf("decode holders: %w", err)
	}
	page := Page{NextCursor: body.NextCursor, Owners: make([]model.HolderLeaf, 0, len(body.Owners))}
	for _, o := range body.Owners {
		balance, ok := new(big.Int).SetString(o.Balance, 10)
		if !ok {
			return Page{}, fmt.Errorf("invalid balance %q for %s", o.Balance, o.Address)
		}
		page.Owners = append(page.Owners, model.HolderLeaf{Address: model.NormalizeAddress(o.Address), Balance: balance})
	}
	return page, nil
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return defaultRetryAfter
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
		return 0
	}
	return defaultRetryAfter
}
