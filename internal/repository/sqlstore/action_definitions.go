package sqlstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"gorm.io/gorm/clause"
)

// UpsertActionDefinition creates or replaces an operator-defined action.
func (r *Repository) UpsertActionDefinition(ctx context.Context, def model.ActionDefinition) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_action_definition", err, start)
	}()

	destinations := ""
	if len(def.Destinations) > 0 {
		raw, marshalErr := json.Marshal(def.Destinations)
		if marshalErr != nil {
			err = marshalErr
			return fmt.Errorf("encode destinations: %w", err)
		}
		destinations = string(raw)
	}
	now := r.now().UTC()
	row := actionDefinitionRow{
		ID:            def.ID,
		Type:          string(def.Type),
		CredentialID:  def.CredentialID,
		Target:        string(def.Target),
		TargetAccount: def.TargetAccount,
		Destinations:  destinations,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "credential_id", "target", "target_account", "destinations", "updated_at"}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("upsert action definition %s: %w", def.ID, err)
	}
	return nil
}

func (r *Repository) GetActionDefinition(ctx context.Context, id string) (model.ActionDefinition, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_action_definition", err, start)
	}()

	var row actionDefinitionRow
	if err = r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return model.ActionDefinition{}, notFound(err, "action %s", id)
	}
	return row.toModel()
}

func (r *Repository) ListActionDefinitions(ctx context.Context) ([]model.ActionDefinition, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_action_definitions", err, start)
	}()

	var rows []actionDefinitionRow
	if err = r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list action definitions: %w", err)
	}
	out := make([]model.ActionDefinition, 0, len(rows))
	for _, row := range rows {
		def, convErr := row.toModel()
		if convErr != nil {
			err = convErr
			return nil, err
		}
		out = append(out, def)
	}
	return out, nil
}
