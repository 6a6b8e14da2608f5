package model

import (
	"encoding/json"
	"fmt"
	"time"
)

type ActionType string

const (
	CreatePost  ActionType = "CREATE_POST"
	DeletePost  ActionType = "DELETE_POST"
	PromotePost ActionType = "PROMOTE_POST"
)

// ParseActionType validates a raw action type value.
func ParseActionType(raw string) (ActionType, error) {
	switch t := ActionType(raw); t {
	case CreatePost, DeletePost, PromotePost:
		return t, nil
	default:
		return "", fmt.Errorf("unknown action type %q", raw)
	}
}

type Target string

const (
	Farcaster Target = "farcaster"
	Twitter   Target = "twitter"
)

// Destination is a platform account a post is published to.
type Destination struct {
	Target  Target `json:"target" yaml:"target"`
	Account string `json:"account" yaml:"account"`
}

// ActionDefinition binds an action id to a handler type, a platform account
// and the credential that gates it.
type ActionDefinition struct {
	ID            string
	Type          ActionType
	CredentialID  string
	Target        Target
	TargetAccount string
	// Destinations lists the promotion targets. Empty means the primary
	// target and account only.
	Destinations []Destination
}

// Primary returns the definition's own platform account.
func (d ActionDefinition) Primary() Destination {
	return Destination{Target: d.Target, Account: d.TargetAccount}
}

// PromotionDestinations returns Destinations or the primary account.
func (d ActionDefinition) PromotionDestinations() []Destination {
	if len(d.Destinations) == 0 {
		return []Destination{d.Primary()}
	}
	return d.Destinations
}

type ExecutionStatus string

const (
	ExecutionPending ExecutionStatus = "PENDING"
	ExecutionSuccess ExecutionStatus = "SUCCESS"
	ExecutionFailed  ExecutionStatus = "FAILED"
)

// ActionExecution is the idempotency record keyed by (ActionID, DataHash).
type ActionExecution struct {
	ActionID  string
	DataHash  string
	Status    ExecutionStatus
	Owner     string
	Response  json.RawMessage
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Proof is a membership proof as submitted by a client.
type Proof struct {
	Proof        []byte   `json:"proof"`
	PublicInputs []string `json:"publicInputs"`
}

// ActionResponse is what a handler returns on success and what is cached for
// idempotent replays.
type ActionResponse struct {
	Success  bool              `json:"success"`
	Hash     string            `json:"hash,omitempty"`
	TweetID  string            `json:"tweetId,omitempty"`
	Copies   []PostCopy        `json:"copies,omitempty"`
	Deleted  []PostCopy        `json:"deleted,omitempty"`
	Failures []PlatformFailure `json:"failures,omitempty"`
}

// PostCopy names a platform copy touched by a handler.
type PostCopy struct {
	Target        Target `json:"target"`
	TargetAccount string `json:"targetAccount"`
	TargetID      string `json:"targetId"`
}

// PlatformFailure reports a per-platform error inside a multi-platform action.
type PlatformFailure struct {
	Target        Target `json:"target"`
	TargetAccount string `json:"targetAccount"`
	Error         string `json:"error"`
}
