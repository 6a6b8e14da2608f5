package registry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"gopkg.in/yaml.v3"
)

// File is the operator-maintained YAML description of credentials and
// actions.
type File struct {
	Credentials []CredentialEntry `yaml:"credentials"`
	Actions     []ActionEntry     `yaml:"actions"`
}

type CredentialEntry struct {
	ID           string `yaml:"id"`
	ChainID      uint64 `yaml:"chainId"`
	TokenAddress string `yaml:"token"`
	MinBalance   string `yaml:"minBalance"`
}

type ActionEntry struct {
	ID           string              `yaml:"id"`
	Type         string              `yaml:"type"`
	Credential   string              `yaml:"credential"`
	Target       string              `yaml:"target"`
	Account      string              `yaml:"account"`
	Destinations []model.Destination `yaml:"destinations"`
}

func LoadFile(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseFile(raw)
}

func ParseFile(raw []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode actions file: %w", err)
	}
	return f, nil
}

// Definitions validates the file and converts it to domain types. Every
// action must reference a credential declared in the same file.
func (f File) Definitions() ([]model.Credential, []model.ActionDefinition, error) {
	creds := make([]model.Credential, 0, len(f.Credentials))
	known := make(map[string]struct{}, len(f.Credentials))
	for _, c := range f.Credentials {
		if c.ID == "" || c.TokenAddress == "" {
			return nil, nil, errors.New("credential id and token are required")
		}
		if _, dup := known[c.ID]; dup {
			return nil, nil, fmt.Errorf("duplicate credential %s", c.ID)
		}
		minBalance, ok := new(big.Int).SetString(c.MinBalance, 10)
		if !ok || minBalance.Sign() < 0 {
			return nil, nil, fmt.Errorf("credential %s: invalid min balance %q", c.ID, c.MinBalance)
		}
		known[c.ID] = struct{}{}
		creds = append(creds, model.Credential{
			ID:           c.ID,
			ChainID:      c.ChainID,
			TokenAddress: model.NormalizeAddress(c.TokenAddress),
			MinBalance:   minBalance,
		})
	}

	defs := make([]model.ActionDefinition, 0, len(f.Actions))
	seen := make(map[string]struct{}, len(f.Actions))
	for _, a := range f.Actions {
		if a.ID == "" {
			return nil, nil, errors.New("action id is required")
		}
		if _, dup := seen[a.ID]; dup {
			return nil, nil, fmt.Errorf("duplicate action %s", a.ID)
		}
		seen[a.ID] = struct{}{}
		typ, err := model.ParseActionType(a.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("action %s: %w", a.ID, err)
		}
		if _, ok := known[a.Credential]; !ok {
			return nil, nil, fmt.Errorf("action %s: unknown credential %q", a.ID, a.Credential)
		}
		target, err := parseTarget(a.Target)
		if err != nil {
			return nil, nil, fmt.Errorf("action %s: %w", a.ID, err)
		}
		for _, d := range a.Destinations {
			if _, err := parseTarget(string(d.Target)); err != nil {
				return nil, nil, fmt.Errorf("action %s destination: %w", a.ID, err)
			}
		}
		defs = append(defs, model.ActionDefinition{
			ID:            a.ID,
			Type:          typ,
			CredentialID:  a.Credential,
			Target:        target,
			TargetAccount: a.Account,
			Destinations:  a.Destinations,
		})
	}
	return creds, defs, nil
}

func parseTarget(raw string) (model.Target, error) {
	switch t := model.Target(raw); t {
	case model.Farcaster, model.Twitter:
		return t, nil
	default:
		return "", fmt.Errorf("unknown target %q", raw)
	}
}

// Import writes the file's credentials and actions. Credentials are
// immutable once defined, so re-importing an existing id keeps the stored
// value.
func Import(ctx context.Context, w Writer, f File) (int, int, error) {
	creds, defs, err := f.Definitions()
	if err != nil {
		return 0, 0, err
	}
	for _, c := range creds {
		if err := w.UpsertCredential(ctx, c); err != nil {
			return 0, 0, fmt.Errorf("import credential %s: %w", c.ID, err)
		}
	}
	for _, d := range defs {
		if err := w.UpsertActionDefinition(ctx, d); err != nil {
			return 0, 0, fmt.Errorf("import action %s: %w", d.ID, err)
		}
	}
	return len(creds), len(defs), nil
}
