// Package handler holds the side-effect implementations bound to each
// action type.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/internal/payload"
	"go.uber.org/zap"
)

var revealHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

type CreatePost struct {
	platforms Platforms
	graph     GraphStore
	now       func() time.Time
	logger    *zap.Logger
}

func NewCreatePost(platforms Platforms, graph GraphStore, logger *zap.Logger) (*CreatePost, error) {
	if platforms == nil || graph == nil {
		return nil, errors.New("platforms and graph store are required")
	}
	return &CreatePost{platforms: platforms, graph: graph, now: time.Now, logger: logger.Named("create_post")}, nil
}

func (h *CreatePost) Type() model.ActionType {
	return model.CreatePost
}

// Execute publishes through the definition's own account and records the
// canonical post keyed by the platform's id.
func (h *CreatePost) Execute(ctx context.Context, def model.ActionDefinition, raw json.RawMessage) (model.ActionResponse, error) {
	p, err := payload.DecodeCreatePost(raw)
	if err != nil {
		return model.ActionResponse{}, err
	}
	if p.RevealHash != "" && !revealHashPattern.MatchString(p.RevealHash) {
		return model.ActionResponse{}, apperr.New(apperr.KindInvalidPayload, "revealHash must be a 32-byte hex value")
	}

	poster, err := h.platforms.Get(def.Target)
	if err != nil {
		return model.ActionResponse{}, err
	}
	content := p.Content()
	published, err := poster.CreatePost(ctx, def.TargetAccount, content)
	if err != nil {
		return model.ActionResponse{}, err
	}

	post := model.Post{
		Hash:          published.ID,
		Target:        def.Target,
		OriginAccount: def.TargetAccount,
		Content:       content,
		CreatedAt:     h.now(),
	}
	if p.RevealHash != "" {
		post.Reveal = &model.RevealCommitment{RevealHash: p.RevealHash}
	}
	if err := h.graph.CreatePost(ctx, post); err != nil {
		h.logger.Error("post published but not recorded",
			zap.String("action_id", def.ID), zap.String("hash", published.ID), zap.Error(err))
		return model.ActionResponse{}, err
	}

	resp := model.ActionResponse{Success: true, Hash: published.ID}
	if def.Target == model.Twitter {
		resp.TweetID = published.ID
	}
	return resp, nil
}
