package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

// RevealPost writes the reveal fields once. It reports false when the post
// was already revealed or the commitment does not match.
func (r *Repository) RevealPost(ctx context.Context, hash string, reveal model.RevealCommitment) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("reveal_post", err, start)
	}()

	revealedAt := r.now().UTC()
	if reveal.RevealedAt != nil {
		revealedAt = reveal.RevealedAt.UTC()
	}
	res := r.db.WithContext(ctx).Model(&postRow{}).
		Where("hash = ? AND reveal_hash = ? AND revealed_at IS NULL", hash, reveal.RevealHash).
		Updates(map[string]any{
			"reveal_phrase":    reveal.Phrase,
			"reveal_signature": reveal.Signature,
			"reveal_address":   reveal.Address,
			"revealed_at":      &revealedAt,
		})
	if err = res.Error; err != nil {
		return false, fmt.Errorf("reveal post %s: %w", hash, err)
	}
	return res.RowsAffected == 1, nil
}
