package payload

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

type CreatePost struct {
	Text       string   `json:"text"`
	Embeds     []string `json:"embeds,omitempty"`
	Quote      string   `json:"quote,omitempty"`
	Channel    string   `json:"channel,omitempty"`
	Parent     string   `json:"parent,omitempty"`
	RevealHash string   `json:"revealHash,omitempty"`
}

func (p CreatePost) Content() model.Content {
	return model.Content{
		Text:    p.Text,
		Embeds:  p.Embeds,
		Quote:   p.Quote,
		Channel: p.Channel,
		Parent:  p.Parent,
	}
}

type DeletePost struct {
	Hash string `json:"hash"`
}

// ObservedPost is externally observed content supplied with a promotion.
type ObservedPost struct {
	Author  string   `json:"author,omitempty"`
	Text    string   `json:"text"`
	Embeds  []string `json:"embeds,omitempty"`
	Quote   string   `json:"quote,omitempty"`
	Channel string   `json:"channel,omitempty"`
	Parent  string   `json:"parent,omitempty"`
}

type PromotePost struct {
	Hash    string        `json:"hash"`
	AsReply bool          `json:"asReply,omitempty"`
	Post    *ObservedPost `json:"post,omitempty"`
}

func DecodeCreatePost(raw json.RawMessage) (CreatePost, error) {
	var p CreatePost
	if err := decode(raw, &p); err != nil {
		return p, err
	}
	if strings.TrimSpace(p.Text) == "" && len(p.Embeds) == 0 {
		return p, apperr.New(apperr.KindInvalidPayload, "text or embeds required")
	}
	return p, nil
}

func DecodeDeletePost(raw json.RawMessage) (DeletePost, error) {
	var p DeletePost
	if err := decode(raw, &p); err != nil {
		return p, err
	}
	if p.Hash == "" {
		return p, apperr.New(apperr.KindInvalidPayload, "hash required")
	}
	return p, nil
}

func DecodePromotePost(raw json.RawMessage) (PromotePost, error) {
	var p PromotePost
	if err := decode(raw, &p); err != nil {
		return p, err
	}
	if p.Hash == "" {
		return p, apperr.New(apperr.KindInvalidPayload, "hash required")
	}
	return p, nil
}

func decode(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(v); err != nil {
		return apperr.Wrap(apperr.KindInvalidPayload, err, "decode payload")
	}
	return nil
}
