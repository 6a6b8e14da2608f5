// Package farcaster publishes casts through a Neynar-style REST API.
package farcaster

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/internal/platform"
	"github.com/goodnatureofminers/tokengate-backend/internal/platform/httpapi"
)

const DefaultBaseURL = "https://api.neynar.com"

type Config struct {
	APIKey string
	// Signers maps an account (fid) to the managed signer that posts for it.
	Signers map[string]string
}

type Client struct {
	api     *httpapi.Client
	apiKey  string
	signers map[string]string
}

var (
	_ platform.PostingPlatform = (*Client)(nil)
	_ platform.PostFetcher     = (*Client)(nil)
	_ platform.HandleResolver  = (*Client)(nil)
)

func New(api *httpapi.Client, cfg Config) (*Client, error) {
	if api == nil {
		return nil, errors.New("farcaster http client is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("farcaster api key is required")
	}
	return &Client{api: api, apiKey: cfg.APIKey, signers: cfg.Signers}, nil
}

func (c *Client) Target() model.Target {
	return model.Farcaster
}

type embed struct {
	URL string `json:"url,omitempty"`
}

type castRequest struct {
	SignerUUID string  `json:"signer_uuid"`
	Text       string  `json:"text"`
	Embeds     []embed `json:"embeds,omitempty"`
	Parent     string  `json:"parent,omitempty"`
	ChannelID  string  `json:"channel_id,omitempty"`
}

type castResponse struct {
	Success bool `json:"success"`
	Cast    struct {
		Hash   string `json:"hash"`
		Author struct {
			FID int64 `json:"fid"`
		} `json:"author"`
	} `json:"cast"`
}

func (c *Client) CreatePost(ctx context.Context, account string, content model.Content) (platform.PublishResult, error) {
	signer, err := c.signer(account)
	if err != nil {
		return platform.PublishResult{}, err
	}
	req := castRequest{
		SignerUUID: signer,
		Text:       content.Text,
		Parent:     content.Parent,
		ChannelID:  content.Channel,
	}
	for _, e := range content.Embeds {
		req.Embeds = append(req.Embeds, embed{URL: e})
	}
	if content.Quote != "" {
		req.Embeds = append(req.Embeds, embed{URL: CastURL(content.Quote)})
	}

	var out castResponse
	if err := c.api.Do(ctx, httpapi.Request{
		Operation: "create_post",
		Method:    http.MethodPost,
		Path:      "/v2/farcaster/cast",
		Header:    c.header(),
		Body:      req,
	}, &out); err != nil {
		return platform.PublishResult{}, err
	}
	if out.Cast.Hash == "" {
		return platform.PublishResult{}, apperr.New(apperr.KindPlatformUnavailable, "farcaster returned no cast hash")
	}
	return platform.PublishResult{ID: out.Cast.Hash, URL: CastURL(out.Cast.Hash)}, nil
}

type deleteRequest struct {
	SignerUUID string `json:"signer_uuid"`
	TargetHash string `json:"target_hash"`
}

// DeletePost treats an already missing cast as deleted.
func (c *Client) DeletePost(ctx context.Context, account, id string) error {
	signer, err := c.signer(account)
	if err != nil {
		return err
	}
	err = c.api.Do(ctx, httpapi.Request{
		Operation: "delete_post",
		Method:    http.MethodDelete,
		Path:      "/v2/farcaster/cast",
		Header:    c.header(),
		Body:      deleteRequest{SignerUUID: signer, TargetHash: id},
	}, nil)
	if httpapi.IsStatus(err, http.StatusNotFound) {
		return nil
	}
	return err
}

type lookupResponse struct {
	Cast struct {
		Hash       string  `json:"hash"`
		Text       string  `json:"text"`
		ParentHash string  `json:"parent_hash"`
		Timestamp  string  `json:"timestamp"`
		Embeds     []embed `json:"embeds"`
		Author     struct {
			FID      int64  `json:"fid"`
			Username string `json:"username"`
		} `json:"author"`
		Channel *struct {
			ID string `json:"id"`
		} `json:"channel"`
	} `json:"cast"`
}

func (c *Client) GetPost(ctx context.Context, id string) (model.Post, error) {
	var out lookupResponse
	err := c.api.Do(ctx, httpapi.Request{
		Operation: "get_post",
		Method:    http.MethodGet,
		Path:      "/v2/farcaster/cast",
		Query:     map[string]string{"identifier": id, "type": "hash"},
		Header:    c.header(),
	}, &out)
	if httpapi.IsStatus(err, http.StatusNotFound) {
		return model.Post{}, apperr.Wrap(apperr.KindNotFound, err, "cast %s not found", id)
	}
	if err != nil {
		return model.Post{}, err
	}

	post := model.Post{
		Hash:          out.Cast.Hash,
		Target:        model.Farcaster,
		OriginAccount: strconv.FormatInt(out.Cast.Author.FID, 10),
		Content: model.Content{
			Text:   out.Cast.Text,
			Parent: out.Cast.ParentHash,
		},
	}
	for _, e := range out.Cast.Embeds {
		if e.URL != "" {
			post.Content.Embeds = append(post.Content.Embeds, e.URL)
		}
	}
	if out.Cast.Channel != nil {
		post.Content.Channel = out.Cast.Channel.ID
	}
	if ts, err := time.Parse(time.RFC3339, out.Cast.Timestamp); err == nil {
		post.CreatedAt = ts
	}
	return post, nil
}

type userResponse struct {
	User struct {
		FID              int64 `json:"fid"`
		VerifiedAccounts []struct {
			Platform string `json:"platform"`
			Username string `json:"username"`
		} `json:"verified_accounts"`
	} `json:"user"`
}

// ResolveHandle maps a farcaster username to the user's verified X handle.
func (c *Client) ResolveHandle(ctx context.Context, handle string, to model.Target) (string, bool, error) {
	if to != model.Twitter {
		return "", false, nil
	}
	var out userResponse
	err := c.api.Do(ctx, httpapi.Request{
		Operation: "resolve_handle",
		Method:    http.MethodGet,
		Path:      "/v2/farcaster/user/by_username",
		Query:     map[string]string{"username": strings.TrimPrefix(handle, "@")},
		Header:    c.header(),
	}, &out)
	if httpapi.IsStatus(err, http.StatusNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	for _, a := range out.User.VerifiedAccounts {
		if a.Platform == "x" || a.Platform == "twitter" {
			return a.Username, true, nil
		}
	}
	return "", false, nil
}

func (c *Client) signer(account string) (string, error) {
	s, ok := c.signers[account]
	if !ok || s == "" {
		return "", fmt.Errorf("no farcaster signer configured for account %s", account)
	}
	return s, nil
}

func (c *Client) header() http.Header {
	return http.Header{"X-Api-Key": []string{c.apiKey}}
}

// CastURL is the public link to a cast.
func CastURL(hash string) string {
	return "https://warpcast.com/~/conversations/" + hash
}
