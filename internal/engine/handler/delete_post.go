package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/internal/payload"
	"go.uber.org/zap"
)

type DeletePost struct {
	platforms Platforms
	graph     GraphStore
	logger    *zap.Logger
}

func NewDeletePost(platforms Platforms, graph GraphStore, logger *zap.Logger) (*DeletePost, error) {
	if platforms == nil || graph == nil {
		return nil, errors.New("platforms and graph store are required")
	}
	return &DeletePost{platforms: platforms, graph: graph, logger: logger.Named("delete_post")}, nil
}

func (h *DeletePost) Type() model.ActionType {
	return model.DeletePost
}

// Execute deletes the canonical post when the deleting account owns it and
// every platform copy on other accounts. Per-platform failures are reported
// in the response; the request only fails when every attempted deletion
// failed with a retryable error.
func (h *DeletePost) Execute(ctx context.Context, def model.ActionDefinition, raw json.RawMessage) (model.ActionResponse, error) {
	p, err := payload.DecodeDeletePost(raw)
	if err != nil {
		return model.ActionResponse{}, err
	}
	post, err := h.graph.GetPost(ctx, p.Hash)
	if err != nil {
		return model.ActionResponse{}, err
	}
	rels, err := h.graph.RelationshipsForPost(ctx, post.Hash)
	if err != nil {
		return model.ActionResponse{}, fmt.Errorf("list copies of %s: %w", post.Hash, err)
	}

	owner := def.Primary()
	resp := model.ActionResponse{Hash: post.Hash}
	var attempted, retryable int
	var firstRetryable error

	attempt := func(target model.Target, account, id string) bool {
		attempted++
		err := h.delete(ctx, target, account, id)
		if err == nil {
			resp.Deleted = append(resp.Deleted, model.PostCopy{Target: target, TargetAccount: account, TargetID: id})
			return true
		}
		h.logger.Warn("platform delete failed",
			zap.String("hash", post.Hash), zap.String("target", string(target)),
			zap.String("account", account), zap.Error(err))
		resp.Failures = append(resp.Failures, model.PlatformFailure{Target: target, TargetAccount: account, Error: err.Error()})
		if apperr.IsRetryable(err) {
			retryable++
			if firstRetryable == nil {
				firstRetryable = err
			}
		}
		return false
	}

	if post.Target == owner.Target && post.OriginAccount == owner.Account {
		if attempt(post.Target, post.OriginAccount, post.Hash) {
			if err := h.graph.MarkPostDeleted(ctx, post.Hash); err != nil {
				return model.ActionResponse{}, fmt.Errorf("mark %s deleted: %w", post.Hash, err)
			}
		}
	}

	for _, rel := range rels {
		if rel.Target == owner.Target && rel.TargetAccount == owner.Account {
			continue
		}
		if !attempt(rel.Target, rel.TargetAccount, rel.TargetID) {
			continue
		}
		if err := h.graph.DeleteRelationship(ctx, rel.PostHash, rel.Target, rel.TargetAccount); err != nil {
			return model.ActionResponse{}, fmt.Errorf("remove copy edge: %w", err)
		}
		// The reverse edge written at promotion time.
		if err := h.graph.DeleteRelationship(ctx, rel.TargetID, post.Target, post.OriginAccount); err != nil {
			h.logger.Warn("reverse edge not removed", zap.String("target_id", rel.TargetID), zap.Error(err))
		}
	}

	if attempted > 0 && retryable == attempted {
		return model.ActionResponse{}, fmt.Errorf("no deletion of %s succeeded: %w", post.Hash, firstRetryable)
	}
	resp.Success = true
	return resp, nil
}

func (h *DeletePost) delete(ctx context.Context, target model.Target, account, id string) error {
	poster, err := h.platforms.Get(target)
	if err != nil {
		return err
	}
	return poster.DeletePost(ctx, account, id)
}
