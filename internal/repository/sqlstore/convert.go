package sqlstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"gorm.io/gorm"
)

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.KindNotFound, err, format, args...)
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

func (row credentialRow) toModel() (model.Credential, error) {
	minBalance, ok := new(big.Int).SetString(row.MinBalance, 10)
	if !ok {
		return model.Credential{}, fmt.Errorf("credential %s: invalid min balance %q", row.ID, row.MinBalance)
	}
	return model.Credential{
		ID:           row.ID,
		ChainID:      row.ChainID,
		TokenAddress: row.TokenAddress,
		MinBalance:   minBalance,
	}, nil
}

func (row actionDefinitionRow) toModel() (model.ActionDefinition, error) {
	actionType, err := model.ParseActionType(row.Type)
	if err != nil {
		return model.ActionDefinition{}, err
	}
	def := model.ActionDefinition{
		ID:            row.ID,
		Type:          actionType,
		CredentialID:  row.CredentialID,
		Target:        model.Target(row.Target),
		TargetAccount: row.TargetAccount,
	}
	if row.Destinations != "" {
		if err := json.Unmarshal([]byte(row.Destinations), &def.Destinations); err != nil {
			return model.ActionDefinition{}, fmt.Errorf("action %s: decode destinations: %w", row.ID, err)
		}
	}
	return def, nil
}

func (row actionExecutionRow) toModel() model.ActionExecution {
	exec := model.ActionExecution{
		ActionID:  row.ActionID,
		DataHash:  row.DataHash,
		Status:    model.ExecutionStatus(row.Status),
		Owner:     row.Owner,
		Error:     row.Error,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Response != "" {
		exec.Response = json.RawMessage(row.Response)
	}
	return exec
}

func newPostRow(p model.Post) (postRow, error) {
	embeds, err := json.Marshal(p.Content.Embeds)
	if err != nil {
		return postRow{}, fmt.Errorf("encode embeds: %w", err)
	}
	row := postRow{
		Hash:          p.Hash,
		Target:        string(p.Target),
		OriginAccount: p.OriginAccount,
		Text:          p.Content.Text,
		Embeds:        string(embeds),
		Quote:         p.Content.Quote,
		Channel:       p.Content.Channel,
		Parent:        p.Content.Parent,
		CreatedAt:     p.CreatedAt,
	}
	if p.Reveal != nil {
		row.RevealHash = p.Reveal.RevealHash
	}
	return row, nil
}

func (row postRow) toModel() (model.Post, error) {
	p := model.Post{
		Hash:          row.Hash,
		Target:        model.Target(row.Target),
		OriginAccount: row.OriginAccount,
		Content: model.Content{
			Text:    row.Text,
			Quote:   row.Quote,
			Channel: row.Channel,
			Parent:  row.Parent,
		},
		CreatedAt: row.CreatedAt,
	}
	if row.Embeds != "" && row.Embeds != "null" {
		if err := json.Unmarshal([]byte(row.Embeds), &p.Content.Embeds); err != nil {
			return model.Post{}, fmt.Errorf("post %s: decode embeds: %w", row.Hash, err)
		}
	}
	if row.RevealHash != "" {
		p.Reveal = &model.RevealCommitment{
			RevealHash: row.RevealHash,
			Phrase:     row.RevealPhrase,
			Signature:  row.RevealSignature,
			Address:    row.RevealAddress,
			RevealedAt: row.RevealedAt,
		}
	}
	return p, nil
}

func (row postRelationshipRow) toModel() model.PostRelationship {
	return model.PostRelationship{
		PostHash:      row.PostHash,
		Target:        model.Target(row.Target),
		TargetAccount: row.TargetAccount,
		TargetID:      row.TargetID,
		CreatedAt:     row.CreatedAt,
	}
}

func (row dispatchJobRow) toModel() model.Job {
	job := model.Job{
		ID:          row.ID,
		ActionID:    row.ActionID,
		ActionType:  model.ActionType(row.ActionType),
		DataHash:    row.DataHash,
		Payload:     json.RawMessage(row.Payload),
		ProofDigest: row.ProofDigest,
		Owner:       row.Owner,
		Status:      model.JobStatus(row.Status),
		Attempts:    row.Attempts,
		MaxAttempts: row.MaxAttempts,
		NextRunAt:   time.UnixMilli(row.NextRunAt).UTC(),
		LastError:   row.LastError,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.LockedUntil > 0 {
		locked := time.UnixMilli(row.LockedUntil).UTC()
		job.LockedUntil = &locked
	}
	return job
}
