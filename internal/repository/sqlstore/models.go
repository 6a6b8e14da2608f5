package sqlstore

import "time"

var migrateModels = []any{
	&credentialRow{},
	&credentialRootRow{},
	&actionDefinitionRow{},
	&actionExecutionRow{},
	&postRow{},
	&postRelationshipRow{},
	&dispatchJobRow{},
}

type credentialRow struct {
	ID           string `gorm:"primaryKey;size:64"`
	ChainID      uint64 `gorm:"not null"`
	TokenAddress string `gorm:"size:42;not null"`
	MinBalance   string `gorm:"size:80;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (credentialRow) TableName() string {
	return "credentials"
}

type credentialRootRow struct {
	ID           uint   `gorm:"primaryKey"`
	CredentialID string `gorm:"index:idx_credential_roots_credential;size:64;not null"`
	Root         string `gorm:"size:66;not null"`
	CreatedAt    time.Time
}

func (credentialRootRow) TableName() string {
	return "credential_roots"
}

type actionDefinitionRow struct {
	ID            string `gorm:"primaryKey;size:128"`
	Type          string `gorm:"size:32;not null"`
	CredentialID  string `gorm:"size:64;not null"`
	Target        string `gorm:"size:32;not null"`
	TargetAccount string `gorm:"size:128;not null"`
	Destinations  string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (actionDefinitionRow) TableName() string {
	return "action_definitions"
}

type actionExecutionRow struct {
	ActionID string `gorm:"primaryKey;size:128"`
	DataHash string `gorm:"primaryKey;size:66"`
	Status   string `gorm:"size:16;not null;index"`
	// Owner is the claim token allowed to run and finish a PENDING row.
	Owner string `gorm:"size:36"`
	// ClaimedAt is unix milliseconds of the last claim or adoption.
	ClaimedAt int64  `gorm:"not null;default:0"`
	Response  string `gorm:"type:text"`
	Error     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (actionExecutionRow) TableName() string {
	return "action_executions"
}

type postRow struct {
	Hash            string `gorm:"primaryKey;size:128"`
	Target          string `gorm:"size:32;not null"`
	OriginAccount   string `gorm:"size:128;not null"`
	Text            string `gorm:"type:text"`
	Embeds          string `gorm:"type:text"`
	Quote           string `gorm:"size:128"`
	Channel         string `gorm:"size:128"`
	Parent          string `gorm:"size:128"`
	RevealHash      string `gorm:"size:66"`
	RevealPhrase    string `gorm:"type:text"`
	RevealSignature string `gorm:"size:132"`
	RevealAddress   string `gorm:"size:42"`
	RevealedAt      *time.Time
	DeletedAt       *time.Time
	CreatedAt       time.Time
}

func (postRow) TableName() string {
	return "posts"
}

type postRelationshipRow struct {
	PostHash      string `gorm:"primaryKey;size:128"`
	Target        string `gorm:"primaryKey;size:32"`
	TargetAccount string `gorm:"primaryKey;size:128"`
	TargetID      string `gorm:"size:128;not null;index"`
	CreatedAt     time.Time
}

func (postRelationshipRow) TableName() string {
	return "post_relationships"
}

type dispatchJobRow struct {
	ID          string `gorm:"primaryKey;size:36"`
	ActionID    string `gorm:"size:128;not null;index:idx_dispatch_jobs_key"`
	ActionType  string `gorm:"size:32;not null"`
	DataHash    string `gorm:"size:66;not null;index:idx_dispatch_jobs_key"`
	Payload     string `gorm:"type:text;not null"`
	ProofDigest string `gorm:"size:66"`
	Owner       string `gorm:"size:36"`
	Status      string `gorm:"size:16;not null;index:idx_dispatch_jobs_due"`
	Attempts    int    `gorm:"not null"`
	MaxAttempts int    `gorm:"not null"`
	// Scheduling columns are unix milliseconds so comparisons behave the
	// same on every backend.
	NextRunAt   int64 `gorm:"not null;index:idx_dispatch_jobs_due"`
	LockedUntil int64 `gorm:"not null"`
	LastError   string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (dispatchJobRow) TableName() string {
	return "dispatch_jobs"
}
