// Package app assembles the platform adapters and action handlers shared by
// the gateway and the dispatch worker.
package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokengate-backend/internal/engine"
	"github.com/goodnatureofminers/tokengate-backend/internal/engine/handler"
	"github.com/goodnatureofminers/tokengate-backend/internal/filter"
	"github.com/goodnatureofminers/tokengate-backend/internal/metrics"
	"github.com/goodnatureofminers/tokengate-backend/internal/platform"
	"github.com/goodnatureofminers/tokengate-backend/internal/platform/farcaster"
	"github.com/goodnatureofminers/tokengate-backend/internal/platform/httpapi"
	"github.com/goodnatureofminers/tokengate-backend/internal/platform/twitter"
)

// PlatformConfig carries the credentials for every adapter. An adapter
// whose credentials are empty is left out and its target reports as
// unavailable.
type PlatformConfig struct {
	Timeout    time.Duration
	RPS        int
	MaxRetries int

	NeynarURL     string
	NeynarAPIKey  string
	NeynarSigners map[string]string

	TwitterURL      string
	TwitterAppToken string
	TwitterTokens   map[string]string
}

func Platforms(cfg PlatformConfig, logger *zap.Logger) (*platform.Set, error) {
	var adapters []platform.PostingPlatform

	if cfg.NeynarAPIKey != "" {
		api, err := httpapi.New(httpapi.Config{
			BaseURL:    orDefault(cfg.NeynarURL, farcaster.DefaultBaseURL),
			Timeout:    cfg.Timeout,
			RPS:        cfg.RPS,
			MaxRetries: cfg.MaxRetries,
		}, metrics.NewPlatformClient("farcaster"), logger.Named("farcaster"))
		if err != nil {
			return nil, fmt.Errorf("farcaster http client: %w", err)
		}
		fc, err := farcaster.New(api, farcaster.Config{APIKey: cfg.NeynarAPIKey, Signers: cfg.NeynarSigners})
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, fc)
	}

	if cfg.TwitterAppToken != "" || len(cfg.TwitterTokens) > 0 {
		api, err := httpapi.New(httpapi.Config{
			BaseURL:    orDefault(cfg.TwitterURL, twitter.DefaultBaseURL),
			Timeout:    cfg.Timeout,
			RPS:        cfg.RPS,
			MaxRetries: cfg.MaxRetries,
		}, metrics.NewPlatformClient("twitter"), logger.Named("twitter"))
		if err != nil {
			return nil, fmt.Errorf("twitter http client: %w", err)
		}
		tw, err := twitter.New(api, twitter.Config{Tokens: cfg.TwitterTokens, AppToken: cfg.TwitterAppToken})
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, tw)
	}

	if len(adapters) == 0 {
		logger.Warn("No platform adapters configured, every action will fail as unavailable")
	}
	return platform.NewSet(adapters...), nil
}

// Handlers builds one handler per action type. rulesPath may be empty to
// use the built-in promotion rules.
func Handlers(platforms *platform.Set, graph handler.GraphStore, rulesPath string, logger *zap.Logger) ([]engine.Handler, error) {
	if platforms == nil || graph == nil {
		return nil, errors.New("platforms and graph store are required")
	}
	classifier, err := loadFilter(rulesPath)
	if err != nil {
		return nil, err
	}

	create, err := handler.NewCreatePost(platforms, graph, logger)
	if err != nil {
		return nil, err
	}
	del, err := handler.NewDeletePost(platforms, graph, logger)
	if err != nil {
		return nil, err
	}
	promote, err := handler.NewPromotePost(platforms, graph, classifier, logger)
	if err != nil {
		return nil, err
	}
	return []engine.Handler{create, del, promote}, nil
}

func loadFilter(path string) (*filter.Classifier, error) {
	c, err := filter.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load promotion rules: %w", err)
	}
	return c, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
