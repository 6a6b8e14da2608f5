package credential

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/internal/snapshot"
)

// FetchHolders pages through the balance index and returns at most capacity
// eligible holders. The index is sorted by descending balance, so paging
// stops at the first balance under the threshold and truncation keeps the
// largest holders.
func FetchHolders(ctx context.Context, lister HolderLister, cred model.Credential, capacity int) ([]model.HolderLeaf, error) {
	token := snapshot.TokenRef{ChainID: cred.ChainID, TokenAddress: cred.TokenAddress}
	holders := make([]model.HolderLeaf, 0, capacity)
	seen := make(map[string]struct{}, capacity)

	cursor := ""
	for {
		page, err := lister.ListTopHolders(ctx, token, cursor)
		if err != nil {
			return nil, fmt.Errorf("list holders for %s: %w", cred.ID, err)
		}
		for _, owner := range page.Owners {
			if owner.Balance == nil || owner.Balance.Cmp(cred.MinBalance) < 0 {
				return holders, nil
			}
			if owner.IsSentinel() {
				continue
			}
			addr := model.NormalizeAddress(owner.Address)
			if _, dup := seen[addr]; dup {
				continue
			}
			seen[addr] = struct{}{}
			holders = append(holders, model.HolderLeaf{Address: addr, Balance: owner.Balance})
			if len(holders) == capacity {
				return holders, nil
			}
		}
		if page.NextCursor == "" || len(page.Owners) == 0 {
			return holders, nil
		}
		cursor = page.NextCursor
	}
}

// Pad fills holders up to capacity with sentinel leaves.
func Pad(holders []model.HolderLeaf, capacity int) []model.HolderLeaf {
	out := make([]model.HolderLeaf, len(holders), capacity)
	copy(out, holders)
	for len(out) < capacity {
		out = append(out, model.HolderLeaf{Address: model.ZeroAddress})
	}
	return out
}
