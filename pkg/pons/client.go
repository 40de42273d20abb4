// Package pons is a client for the PONS bilingual dictionary API and
// turns its raw responses into clean lookup results.
package pons

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/deutschesbot/wortbot/models"
)

const (
	DefaultAPIURL  = "https://api.pons.com/v1/dictionary"
	DefaultPageURL = "https://en.pons.com/translate"

	// deen is German-English; queries go in as German.
	DefaultDictionary = "deen"
	DefaultSourceLang = "de"
	DefaultTargetLang = "en"
)

// Config carries everything the client needs. Only Secret is required;
// zero values fall back to the public PONS endpoints and the de→en
// dictionary.
type Config struct {
	Secret     string
	APIURL     string
	PageURL    string
	Dictionary string
	SourceLang string
	TargetLang string
	HTTPClient *http.Client
}

type Client struct {
	secret  string
	apiURL  string
	pageURL string
	dict    string
	inLang  string
	outLang string
	client  *http.Client
}

func New(cfg Config) *Client {
	c := &Client{
		secret:  cfg.Secret,
		apiURL:  cfg.APIURL,
		pageURL: cfg.PageURL,
		dict:    cfg.Dictionary,
		inLang:  cfg.SourceLang,
		outLang: cfg.TargetLang,
		client:  cfg.HTTPClient,
	}
	if c.apiURL == "" {
		c.apiURL = DefaultAPIURL
	}
	if c.pageURL == "" {
		c.pageURL = DefaultPageURL
	}
	if c.dict == "" {
		c.dict = DefaultDictionary
	}
	if c.inLang == "" {
		c.inLang = DefaultSourceLang
	}
	if c.outLang == "" {
		c.outLang = DefaultTargetLang
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: 15 * time.Second}
	}
	return c
}

// Search performs one dictionary request and returns the most relevant
// hit. Exactly one outbound request is made; there is no retry. Any
// status other than 200 maps to a LookupError carrying the documented
// reason for that status.
func (c *Client) Search(ctx context.Context, word string) (*Hit, error) {
	params := url.Values{}
	params.Set("l", c.dict)
	params.Set("q", word)
	params.Set("in", c.inLang)
	params.Set("language", c.outLang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("X-Secret", c.secret)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach dictionary API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &LookupError{Status: resp.StatusCode, Reason: ReasonForStatus(resp.StatusCode)}
	}

	var results []langResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary response: %w", err)
	}
	if len(results) == 0 || len(results[0].Hits) == 0 {
		return nil, ErrNoHits
	}
	return &results[0].Hits[0], nil
}

// Lookup runs the whole pipeline for one word: search, pick the most
// relevant hit, and resolve it into a display-ready result.
func (c *Client) Lookup(ctx context.Context, word string) (*models.LookupResult, error) {
	hit, err := c.Search(ctx, word)
	if err != nil {
		return nil, err
	}
	return c.Resolve(hit)
}

// SearchPageURL is the public translate page for a word, used as the
// reference link in replies.
func (c *Client) SearchPageURL(word string) string {
	return fmt.Sprintf("%s?q=%s&l=%s&in=%s&language=%s",
		c.pageURL, url.QueryEscape(word), c.dict, c.inLang, c.outLang)
}
