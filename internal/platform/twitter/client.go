// Package twitter publishes posts through the X API v2.
package twitter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/internal/platform"
	"github.com/goodnatureofminers/tokengate-backend/internal/platform/httpapi"
)

const DefaultBaseURL = "https://api.twitter.com"

type Config struct {
	// Tokens maps an account handle to its user-context bearer token.
	Tokens map[string]string
	// AppToken is used for reads.
	AppToken string
}

type Client struct {
	api      *httpapi.Client
	tokens   map[string]string
	appToken string
}

var (
	_ platform.PostingPlatform = (*Client)(nil)
	_ platform.PostFetcher     = (*Client)(nil)
)

func New(api *httpapi.Client, cfg Config) (*Client, error) {
	if api == nil {
		return nil, errors.New("twitter http client is required")
	}
	return &Client{api: api, tokens: cfg.Tokens, appToken: cfg.AppToken}, nil
}

func (c *Client) Target() model.Target {
	return model.Twitter
}

type tweetRequest struct {
	Text         string        `json:"text"`
	QuoteTweetID string        `json:"quote_tweet_id,omitempty"`
	Reply        *replySetting `json:"reply,omitempty"`
}

type replySetting struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

type tweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// CreatePost posts a tweet. Embeds are appended to the text as links since
// the API has no separate embed field; channels have no equivalent.
func (c *Client) CreatePost(ctx context.Context, account string, content model.Content) (platform.PublishResult, error) {
	token, err := c.token(account)
	if err != nil {
		return platform.PublishResult{}, err
	}
	req := tweetRequest{Text: composeText(content), QuoteTweetID: content.Quote}
	if content.Parent != "" {
		req.Reply = &replySetting{InReplyToTweetID: content.Parent}
	}

	var out tweetResponse
	if err := c.api.Do(ctx, httpapi.Request{
		Operation: "create_post",
		Method:    http.MethodPost,
		Path:      "/2/tweets",
		Header:    bearer(token),
		Body:      req,
	}, &out); err != nil {
		return platform.PublishResult{}, err
	}
	if out.Data.ID == "" {
		return platform.PublishResult{}, apperr.New(apperr.KindPlatformUnavailable, "twitter returned no tweet id")
	}
	return platform.PublishResult{ID: out.Data.ID, URL: TweetURL(account, out.Data.ID)}, nil
}

// DeletePost treats an already missing tweet as deleted.
func (c *Client) DeletePost(ctx context.Context, account, id string) error {
	token, err := c.token(account)
	if err != nil {
		return err
	}
	err = c.api.Do(ctx, httpapi.Request{
		Operation: "delete_post",
		Method:    http.MethodDelete,
		Path:      "/2/tweets/" + id,
		Header:    bearer(token),
	}, nil)
	if httpapi.IsStatus(err, http.StatusNotFound) {
		return nil
	}
	return err
}

type lookupResponse struct {
	Data struct {
		ID               string `json:"id"`
		Text             string `json:"text"`
		AuthorID         string `json:"author_id"`
		CreatedAt        string `json:"created_at"`
		ReferencedTweets []struct {
			Type string `json:"type"`
			ID   string `json:"id"`
		} `json:"referenced_tweets"`
	} `json:"data"`
	Includes struct {
		Users []struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"users"`
	} `json:"includes"`
}

func (c *Client) GetPost(ctx context.Context, id string) (model.Post, error) {
	if c.appToken == "" {
		return model.Post{}, errors.New("twitter app token is not configured")
	}
	var out lookupResponse
	err := c.api.Do(ctx, httpapi.Request{
		Operation: "get_post",
		Method:    http.MethodGet,
		Path:      "/2/tweets/" + id,
		Query: map[string]string{
			"expansions":   "author_id",
			"tweet.fields": "created_at,referenced_tweets",
			"user.fields":  "username",
		},
		Header: bearer(c.appToken),
	}, &out)
	if httpapi.IsStatus(err, http.StatusNotFound) {
		return model.Post{}, apperr.Wrap(apperr.KindNotFound, err, "tweet %s not found", id)
	}
	if err != nil {
		return model.Post{}, err
	}
	if out.Data.ID == "" {
		return model.Post{}, apperr.New(apperr.KindNotFound, "tweet %s not found", id)
	}

	post := model.Post{
		Hash:          out.Data.ID,
		Target:        model.Twitter,
		OriginAccount: out.Data.AuthorID,
		Content:       model.Content{Text: out.Data.Text},
	}
	for _, u := range out.Includes.Users {
		if u.ID == out.Data.AuthorID {
			post.OriginAccount = u.Username
		}
	}
	for _, ref := range out.Data.ReferencedTweets {
		switch ref.Type {
		case "replied_to":
			post.Content.Parent = ref.ID
		case "quoted":
			post.Content.Quote = ref.ID
		}
	}
	if ts, err := time.Parse(time.RFC3339, out.Data.CreatedAt); err == nil {
		post.CreatedAt = ts
	}
	return post, nil
}

func (c *Client) token(account string) (string, error) {
	t, ok := c.tokens[strings.TrimPrefix(account, "@")]
	if !ok || t == "" {
		return "", fmt.Errorf("no twitter token configured for account %s", account)
	}
	return t, nil
}

func composeText(content model.Content) string {
	parts := make([]string, 0, 1+len(content.Embeds))
	if t := strings.TrimSpace(content.Text); t != "" {
		parts = append(parts, t)
	}
	parts = append(parts, content.Embeds...)
	return strings.Join(parts, "\n")
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

// TweetURL is the public link to a tweet.
func TweetURL(account, id string) string {
	return fmt.Sprintf("https://x.com/%s/status/%s", strings.TrimPrefix(account, "@"), id)
}
