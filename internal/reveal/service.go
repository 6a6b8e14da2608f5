// Package reveal verifies and records the reveal phase of a post's
// commit-reveal authorship claim.
package reveal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"go.uber.org/zap"
)

type Request struct {
	PostHash  string `json:"-"`
	Phrase    string `json:"phrase"`
	Signature string `json:"signature"`
	Address   string `json:"address"`
}

type Service struct {
	store  PostStore
	now    func() time.Time
	logger *zap.Logger
}

func NewService(store PostStore, logger *zap.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("post store is required")
	}
	return &Service{store: store, now: time.Now, logger: logger.Named("reveal")}, nil
}

// Reveal checks the phrase against the post's commitment and the signature
// against the claimed address, then stores the reveal once.
func (s *Service) Reveal(ctx context.Context, req Request) (model.RevealCommitment, error) {
	if req.Phrase == "" || req.Signature == "" || req.Address == "" {
		return model.RevealCommitment{}, apperr.New(apperr.KindInvalidPayload, "phrase, signature and address are required")
	}
	post, err := s.store.GetPost(ctx, req.PostHash)
	if err != nil {
		return model.RevealCommitment{}, fmt.Errorf("get post: %w", err)
	}
	if post.Reveal == nil || post.Reveal.RevealHash == "" {
		return model.RevealCommitment{}, apperr.New(apperr.KindInvalidPayload, "post %s has no reveal commitment", req.PostHash)
	}
	if post.Reveal.Revealed() {
		return *post.Reveal, apperr.New(apperr.KindAlreadyExecuted, "post %s already revealed", req.PostHash)
	}
	if !strings.EqualFold(CommitmentHash(req.Phrase), post.Reveal.RevealHash) {
		return model.RevealCommitment{}, apperr.New(apperr.KindInvalidProof, "phrase does not match commitment")
	}
	signer, err := RecoverAddress(req.Phrase, req.Signature)
	if err != nil {
		return model.RevealCommitment{}, apperr.Wrap(apperr.KindInvalidProof, err, "recover signer")
	}
	if signer != model.NormalizeAddress(req.Address) {
		return model.RevealCommitment{}, apperr.New(apperr.KindInvalidProof, "signature does not match address")
	}

	now := s.now().UTC()
	commitment := model.RevealCommitment{
		RevealHash: post.Reveal.RevealHash,
		Phrase:     req.Phrase,
		Signature:  req.Signature,
		Address:    signer,
		RevealedAt: &now,
	}
	updated, err := s.store.RevealPost(ctx, req.PostHash, commitment)
	if err != nil {
		return model.RevealCommitment{}, fmt.Errorf("store reveal: %w", err)
	}
	if !updated {
		return model.RevealCommitment{}, apperr.New(apperr.KindAlreadyExecuted, "post %s already revealed", req.PostHash)
	}
	s.logger.Info("post revealed", zap.String("post_hash", req.PostHash), zap.String("address", signer))
	return commitment, nil
}
