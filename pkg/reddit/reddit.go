// Package reddit is a minimal Reddit API client for a script-type bot
// account: list the newest submissions of one subreddit and reply to
// a submission. Nothing more.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deutschesbot/wortbot/models"
)

const (
	DefaultAuthURL = "https://www.reddit.com/api/v1/access_token"
	DefaultAPIURL  = "https://oauth.reddit.com"
)

// Config carries the script-app credentials. AuthURL and APIURL exist
// so tests can point the client at local servers.
type Config struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	UserAgent    string
	AuthURL      string
	APIURL       string
	HTTPClient   *http.Client
}

type Client struct {
	clientID     string
	clientSecret string
	username     string
	password     string
	userAgent    string
	authURL      string
	apiURL       string
	client       *http.Client

	token       string
	tokenExpiry time.Time
}

func New(cfg Config) *Client {
	c := &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		username:     cfg.Username,
		password:     cfg.Password,
		userAgent:    cfg.UserAgent,
		authURL:      cfg.AuthURL,
		apiURL:       cfg.APIURL,
		client:       cfg.HTTPClient,
	}
	if c.userAgent == "" {
		c.userAgent = fmt.Sprintf("wortbot/0.1 by u/%s", cfg.Username)
	}
	if c.authURL == "" {
		c.authURL = DefaultAuthURL
	}
	if c.apiURL == "" {
		c.apiURL = DefaultAPIURL
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: 15 * time.Second}
	}
	return c
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Error       string `json:"error"`
}

// authenticate performs the password-grant login and stores the
// bearer token with its expiry.
func (c *Client) authenticate(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", c.username)
	form.Set("password", c.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach token endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to authenticate, status code: %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return fmt.Errorf("failed to decode token response: %w", err)
	}
	if token.Error != "" {
		return fmt.Errorf("failed to authenticate: %s", token.Error)
	}
	if token.AccessToken == "" {
		return fmt.Errorf("token endpoint returned an empty access token")
	}

	c.token = token.AccessToken
	// Renew a little before the server-side expiry.
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - 30*time.Second)
	return nil
}

func (c *Client) ensureToken(ctx context.Context) error {
	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return nil
	}
	return c.authenticate(ctx)
}

type listing struct {
	Data struct {
		Children []struct {
			Data struct {
				ID         string  `json:"id"`
				Name       string  `json:"name"`
				Title      string  `json:"title"`
				Permalink  string  `json:"permalink"`
				Subreddit  string  `json:"subreddit"`
				CreatedUTC float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// NewPosts lists the newest submissions of a subreddit, newest first,
// in the order the forum returns them.
func (c *Client) NewPosts(ctx context.Context, subreddit string, limit int) ([]models.Post, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/r/%s/new?limit=%d&raw_json=1", c.apiURL, url.PathEscape(subreddit), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build listing request: %w", err)
	}
	c.decorate(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subreddit listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch listing, status code: %d", resp.StatusCode)
	}

	var feed listing
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode listing: %w", err)
	}

	posts := make([]models.Post, 0, len(feed.Data.Children))
	for _, child := range feed.Data.Children {
		d := child.Data
		posts = append(posts, models.Post{
			ID:        d.ID,
			Fullname:  d.Name,
			Title:     d.Title,
			Permalink: "https://www.reddit.com" + d.Permalink,
			Subreddit: d.Subreddit,
			Created:   time.Unix(int64(d.CreatedUTC), 0).UTC(),
		})
	}
	return posts, nil
}

type commentResponse struct {
	JSON struct {
		Errors [][]any `json:"errors"`
	} `json:"json"`
}

// Reply posts a comment under the submission named by fullname
// (the t3_-prefixed thing id).
func (c *Client) Reply(ctx context.Context, fullname, text string) error {
	if err := c.ensureToken(ctx); err != nil {
		return err
	}

	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("thing_id", fullname)
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/api/comment", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build comment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.decorate(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit comment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to submit comment, status code: %d", resp.StatusCode)
	}

	var result commentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode comment response: %w", err)
	}
	if len(result.JSON.Errors) > 0 {
		return fmt.Errorf("comment rejected: %v", result.JSON.Errors[0])
	}
	return nil
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", c.userAgent)
}
