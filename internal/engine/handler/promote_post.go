package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/internal/payload"
	"go.uber.org/zap"
)

var mentionPattern = regexp.MustCompile(`(^|[^\w@])@([A-Za-z0-9_][A-Za-z0-9_.\-]{0,30})`)

type PromotePost struct {
	platforms Platforms
	graph     GraphStore
	filter    ContentFilter
	now       func() time.Time
	logger    *zap.Logger
}

func NewPromotePost(platforms Platforms, graph GraphStore, filter ContentFilter, logger *zap.Logger) (*PromotePost, error) {
	if platforms == nil || graph == nil || filter == nil {
		return nil, errors.New("platforms, graph store and content filter are required")
	}
	return &PromotePost{
		platforms: platforms,
		graph:     graph,
		filter:    filter,
		now:       time.Now,
		logger:    logger.Named("promote_post"),
	}, nil
}

func (h *PromotePost) Type() model.ActionType {
	return model.PromotePost
}

// Execute copies a post to each promotion destination that does not have a
// copy yet. Content is classified before any publish call.
func (h *PromotePost) Execute(ctx context.Context, def model.ActionDefinition, raw json.RawMessage) (model.ActionResponse, error) {
	p, err := payload.DecodePromotePost(raw)
	if err != nil {
		return model.ActionResponse{}, err
	}
	post, err := h.source(ctx, def, p)
	if err != nil {
		return model.ActionResponse{}, err
	}

	resp := model.ActionResponse{Hash: post.Hash}
	var attempted, retryable int
	var firstErr, firstRetryable error
	for _, dest := range def.PromotionDestinations() {
		if dest.Target == post.Target && dest.Account == post.OriginAccount {
			continue
		}
		existing, ok, err := h.graph.GetRelationship(ctx, post.Hash, dest.Target, dest.Account)
		if err != nil {
			return model.ActionResponse{}, fmt.Errorf("check copy on %s: %w", dest.Target, err)
		}
		if ok {
			resp.Copies = append(resp.Copies, copyOf(existing))
			h.setTweetID(&resp, existing.Target, existing.TargetID)
			continue
		}

		attempted++
		rel, err := h.publish(ctx, post, dest, p.AsReply)
		if err != nil {
			h.logger.Warn("promotion publish failed",
				zap.String("hash", post.Hash), zap.String("target", string(dest.Target)),
				zap.String("account", dest.Account), zap.Error(err))
			resp.Failures = append(resp.Failures, model.PlatformFailure{Target: dest.Target, TargetAccount: dest.Account, Error: err.Error()})
			if firstErr == nil {
				firstErr = err
			}
			if apperr.IsRetryable(err) {
				retryable++
				if firstRetryable == nil {
					firstRetryable = err
				}
			}
			continue
		}
		resp.Copies = append(resp.Copies, copyOf(rel))
		h.setTweetID(&resp, rel.Target, rel.TargetID)
	}

	if attempted > 0 && len(resp.Failures) == attempted {
		if retryable == attempted {
			return model.ActionResponse{}, fmt.Errorf("no promotion of %s succeeded: %w", post.Hash, firstRetryable)
		}
		return model.ActionResponse{}, fmt.Errorf("no promotion of %s succeeded: %w", post.Hash, firstErr)
	}
	resp.Success = true
	return resp, nil
}

// source loads the promoted post, materializing an externally observed
// post from the payload or from its origin platform. Rejected content is
// never stored.
func (h *PromotePost) source(ctx context.Context, def model.ActionDefinition, p payload.PromotePost) (model.Post, error) {
	post, err := h.graph.GetPost(ctx, p.Hash)
	if err == nil {
		return post, h.classify(post.Content)
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		return model.Post{}, fmt.Errorf("load post %s: %w", p.Hash, err)
	}

	if p.Post != nil {
		post = model.Post{
			Hash:          p.Hash,
			Target:        def.Target,
			OriginAccount: p.Post.Author,
			Content: model.Content{
				Text:    p.Post.Text,
				Embeds:  p.Post.Embeds,
				Quote:   p.Post.Quote,
				Channel: p.Post.Channel,
				Parent:  p.Post.Parent,
			},
			CreatedAt: h.now(),
		}
		if err := h.classify(post.Content); err != nil {
			return model.Post{}, err
		}
	} else {
		fetcher, ok := h.platforms.Fetcher(def.Target)
		if !ok {
			return model.Post{}, apperr.New(apperr.KindInvalidPayload, "post %s is unknown and no content was supplied", p.Hash)
		}
		post, err = fetcher.GetPost(ctx, p.Hash)
		if err != nil {
			return model.Post{}, err
		}
		if err := h.classify(post.Content); err != nil {
			return model.Post{}, err
		}
		if post.CreatedAt.IsZero() {
			post.CreatedAt = h.now()
		}
	}

	created, err := h.graph.UpsertPost(ctx, post)
	if err != nil {
		return model.Post{}, fmt.Errorf("store observed post %s: %w", post.Hash, err)
	}
	if created {
		return post, nil
	}
	// The row exists but was not live: either it was deleted, or a
	// concurrent promotion stored it first.
	stored, err := h.graph.GetPost(ctx, post.Hash)
	switch {
	case apperr.KindOf(err) == apperr.KindNotFound:
		return model.Post{}, apperr.New(apperr.KindNotFound, "post %s was deleted", post.Hash)
	case err != nil:
		return model.Post{}, fmt.Errorf("load post %s: %w", post.Hash, err)
	}
	return stored, nil
}

func (h *PromotePost) classify(content model.Content) error {
	verdict := h.filter.Classify(content.Text, content.Embeds)
	if !verdict.Allowed {
		return apperr.New(apperr.KindContentRejected, "content matched rule %s", verdict.Rule)
	}
	return nil
}

// publish creates one copy and writes the forward edge and the reverse
// edge from the copy back to the canonical post.
func (h *PromotePost) publish(ctx context.Context, post model.Post, dest model.Destination, asReply bool) (model.PostRelationship, error) {
	poster, err := h.platforms.Get(dest.Target)
	if err != nil {
		return model.PostRelationship{}, err
	}
	content, err := h.contentFor(ctx, post, dest, asReply)
	if err != nil {
		return model.PostRelationship{}, err
	}
	published, err := poster.CreatePost(ctx, dest.Account, content)
	if err != nil {
		return model.PostRelationship{}, err
	}

	rel := model.PostRelationship{
		PostHash:      post.Hash,
		Target:        dest.Target,
		TargetAccount: dest.Account,
		TargetID:      published.ID,
		CreatedAt:     h.now(),
	}
	if _, err := h.graph.CreateRelationship(ctx, rel); err != nil {
		h.logger.Error("copy published but edge not recorded",
			zap.String("hash", post.Hash), zap.String("target_id", published.ID), zap.Error(err))
		return rel, nil
	}
	reverse := model.PostRelationship{
		PostHash:      published.ID,
		Target:        post.Target,
		TargetAccount: post.OriginAccount,
		TargetID:      post.Hash,
		CreatedAt:     rel.CreatedAt,
	}
	if _, err := h.graph.CreateRelationship(ctx, reverse); err != nil {
		h.logger.Warn("reverse edge not recorded", zap.String("target_id", published.ID), zap.Error(err))
	}
	return rel, nil
}

// contentFor adapts the post for a destination. References to other posts
// are only kept when the referenced post already has a copy there.
func (h *PromotePost) contentFor(ctx context.Context, post model.Post, dest model.Destination, asReply bool) (model.Content, error) {
	content := model.Content{Text: post.Content.Text, Embeds: post.Content.Embeds}
	if dest.Target == post.Target {
		content.Channel = post.Content.Channel
	}
	if post.Content.Quote != "" {
		id, err := h.copyID(ctx, post.Content.Quote, post.Target, dest)
		if err != nil {
			return model.Content{}, err
		}
		content.Quote = id
	}
	if asReply && post.Content.Parent != "" {
		id, err := h.copyID(ctx, post.Content.Parent, post.Target, dest)
		if err != nil {
			return model.Content{}, err
		}
		content.Parent = id
	}
	if dest.Target != post.Target {
		content.Text = h.rewriteMentions(ctx, content.Text, post.Target, dest.Target)
	}
	return content, nil
}

func (h *PromotePost) copyID(ctx context.Context, ref string, origin model.Target, dest model.Destination) (string, error) {
	if origin == dest.Target {
		return ref, nil
	}
	rel, ok, err := h.graph.GetRelationship(ctx, ref, dest.Target, dest.Account)
	if err != nil {
		return "", fmt.Errorf("look up copy of %s: %w", ref, err)
	}
	if !ok {
		return "", nil
	}
	return rel.TargetID, nil
}

// rewriteMentions maps @handles to the destination platform when a mapping
// is known. Unresolved mentions are left as written.
func (h *PromotePost) rewriteMentions(ctx context.Context, text string, from, to model.Target) string {
	resolver, ok := h.platforms.Resolver(from)
	return mentionPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := mentionPattern.FindStringSubmatch(m)
		prefix, handle := sub[1], sub[2]
		if ok {
			mapped, found, err := resolver.ResolveHandle(ctx, handle, to)
			if err != nil {
				h.logger.Debug("mention not resolved", zap.String("handle", handle), zap.Error(err))
			} else if found && mapped != "" {
				return prefix + "@" + strings.TrimPrefix(mapped, "@")
			}
		}
		return m
	})
}

func (h *PromotePost) setTweetID(resp *model.ActionResponse, target model.Target, id string) {
	if target == model.Twitter && resp.TweetID == "" {
		resp.TweetID = id
	}
}

func copyOf(rel model.PostRelationship) model.PostCopy {
	return model.PostCopy{Target: rel.Target, TargetAccount: rel.TargetAccount, TargetID: rel.TargetID}
}
