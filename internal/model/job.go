package model

import (
	"encoding/json"
	"time"
)

type JobStatus string

const (
	JobQueued  JobStatus = "queued"
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobDead    JobStatus = "dead"
)

// Job is a dispatch queue entry. The proof itself is never persisted, only
// its digest.
type Job struct {
	ID          string
	ActionID    string
	ActionType  ActionType
	DataHash    string
	Payload     json.RawMessage
	ProofDigest string
	// Owner is the claim token of the execution the job was queued from.
	Owner       string
	Status      JobStatus
	Attempts    int
	MaxAttempts int
	NextRunAt   time.Time
	LockedUntil *time.Time
	LastError   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
