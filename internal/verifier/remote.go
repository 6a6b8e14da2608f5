package verifier

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"go.uber.org/zap"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 2
	maxResponseBytes  = 1 << 20
)

type RemoteConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
}

// Remote delegates verification to an external verifying service.
type Remote struct {
	PublicInputs

	endpoint   string
	apiKey     string
	maxRetries uint64
	http       *http.Client
	newBackOff func() backoff.BackOff
	metrics    Metrics
	logger     *zap.Logger
}

func NewRemote(cfg RemoteConfig, metrics Metrics, logger *zap.Logger) (*Remote, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("verifier url is required")
	}
	if metrics == nil {
		return nil, errors.New("verifier metrics is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	} else if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	return &Remote{
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + "/v1/verify",
		apiKey:     cfg.APIKey,
		maxRetries: uint64(cfg.MaxRetries),
		http:       &http.Client{Timeout: cfg.Timeout},
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(200*time.Millisecond),
				backoff.WithMaxInterval(2*time.Second),
			)
		},
		metrics: metrics,
		logger:  logger.Named("verifier"),
	}, nil
}

type verifyRequest struct {
	Proof        string   `json:"proof"`
	PublicInputs []string `json:"publicInputs"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

// Verify returns false for a proof the service rejects and an error only
// when the service cannot give an answer.
func (r *Remote) Verify(ctx context.Context, proof model.Proof) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("verify", err, start)
	}()

	body, err := json.Marshal(verifyRequest{
		Proof:        "0x" + hex.EncodeToString(proof.Proof),
		PublicInputs: proof.PublicInputs,
	})
	if err != nil {
		return false, fmt.Errorf("encode verify request: %w", err)
	}

	var valid bool
	op := func() error {
		v, callErr := r.call(ctx, body)
		if callErr != nil {
			r.logger.Debug("verify call failed", zap.Error(callErr))
			return callErr
		}
		valid = v
		return nil
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), r.maxRetries), ctx)
	if err = backoff.Retry(op, bo); err != nil {
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			err = perm.Err
		}
		err = apperr.Wrap(apperr.KindPlatformUnavailable, err, "proof verifier unavailable")
		return false, err
	}
	return valid, nil
}

func (r *Remote) call(ctx context.Context, body []byte) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, backoff.Permanent(fmt.Errorf("build verify request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("X-API-Key", r.apiKey)
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("post verify: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		// The service could not parse the proof at all.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return false, nil
	case resp.StatusCode >= 500:
		return false, fmt.Errorf("verifier returned status %d", resp.StatusCode)
	default:
		return false, backoff.Permanent(fmt.Errorf("verifier returned status %d", resp.StatusCode))
	}

	var out verifyResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return false, backoff.Permanent(fmt.Errorf("decode verify response: %w", err))
	}
	return out.Valid, nil
}
