package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"gorm.io/gorm/clause"
)

// UpsertCredential defines a credential. Existing credentials are immutable
// and are left as they are.
func (r *Repository) UpsertCredential(ctx context.Context, c model.Credential) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_credential", err, start)
	}()

	if c.MinBalance == nil {
		err = errors.New("credential min balance is required")
		return err
	}
	now := r.now().UTC()
	row := credentialRow{
		ID:           c.ID,
		ChainID:      c.ChainID,
		TokenAddress: model.NormalizeAddress(c.TokenAddress),
		MinBalance:   c.MinBalance.String(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("upsert credential %s: %w", c.ID, err)
	}
	return nil
}

func (r *Repository) GetCredential(ctx context.Context, id string) (model.Credential, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_credential", err, start)
	}()

	var row credentialRow
	if err = r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return model.Credential{}, notFound(err, "credential %s", id)
	}
	return row.toModel()
}

func (r *Repository) ListCredentials(ctx context.Context) ([]model.Credential, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_credentials", err, start)
	}()

	var rows []credentialRow
	if err = r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	out := make([]model.Credential, 0, len(rows))
	for _, row := range rows {
		c, convErr := row.toModel()
		if convErr != nil {
			err = convErr
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
