package model

import "time"

type Content struct {
	Text    string   `json:"text"`
	Embeds  []string `json:"embeds,omitempty"`
	Quote   string   `json:"quote,omitempty"`
	Channel string   `json:"channel,omitempty"`
	Parent  string   `json:"parent,omitempty"`
}

// Post is the canonical record of a logical post. Hash is the id assigned by
// the platform the post was first published on.
type Post struct {
	Hash          string
	Target        Target
	OriginAccount string
	Content       Content
	Reveal        *RevealCommitment
	CreatedAt     time.Time
}

// PostRelationship is a platform copy of a canonical post.
type PostRelationship struct {
	PostHash      string
	Target        Target
	TargetAccount string
	TargetID      string
	CreatedAt     time.Time
}

// RevealCommitment holds the commit hash set at creation and the reveal
// fields that are written at most once.
type RevealCommitment struct {
	RevealHash string
	Phrase     string
	Signature  string
	Address    string
	RevealedAt *time.Time
}

// Revealed reports whether the reveal fields are populated.
func (r *RevealCommitment) Revealed() bool {
	return r != nil && r.RevealedAt != nil
}

// PostGraph is the read-side view of a post and its connected copies.
type PostGraph struct {
	Post     Post
	Copies   []PostRelationship
	Parent   *Post
	Siblings []PostRelationship
}
