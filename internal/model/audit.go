package model

import "time"

type AuditStatus string

const (
	AuditRejected   AuditStatus = "rejected"
	AuditReplayed   AuditStatus = "replayed"
	AuditSucceeded  AuditStatus = "succeeded"
	AuditFailed     AuditStatus = "failed"
	AuditProcessing AuditStatus = "processing"
	AuditQueued     AuditStatus = "queued"
)

// AuditEvent is an append-only record of a submission or job execution.
type AuditEvent struct {
	ActionID    string
	ActionType  ActionType
	DataHash    string
	ProofDigest string
	Roots       []string
	Status      AuditStatus
	ErrorKind   string
	Error       string
	Source      string
	Duration    time.Duration
	At          time.Time
}
