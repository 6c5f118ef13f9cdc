// Package rmp retrieves professor rating distributions from
// RateMyProfessors pages. The site embeds its relay store as a JSON blob
// in a script tag; the distribution is the object whose __typename is
// "ratingsDistribution".
package rmp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

var (
	// ErrNoRelayStore means the page did not contain the relay store blob
	ErrNoRelayStore = errors.New("relay store not found in page")
	// ErrNoDistribution means the relay store had no ratingsDistribution object
	ErrNoDistribution = errors.New("no rating distribution in relay store")
)

var relayStoreRe = regexp.MustCompile(`(?s)window\.__RELAY_STORE__\s*=\s*(\{.*?\});`)

// Distribution holds the 1-5 star rating counts for a professor
type Distribution struct {
	R1 int `json:"r1"`
	R2 int `json:"r2"`
	R3 int `json:"r3"`
	R4 int `json:"r4"`
	R5 int `json:"r5"`
}

// Total returns the number of ratings in the distribution
func (d Distribution) Total() int {
	return d.R1 + d.R2 + d.R3 + d.R4 + d.R5
}

// Client fetches professor pages over HTTP
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Client with the given request timeout. Relative
// professor links are resolved against baseURL; pass "" to require
// absolute links.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// FetchDistribution downloads a professor page and extracts the rating
// distribution from its relay store.
func (c *Client) FetchDistribution(ctx context.Context, pageURL string) (*Distribution, error) {
	if strings.HasPrefix(pageURL, "/") && c.baseURL != "" {
		pageURL = c.baseURL + pageURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "courseatlas-ratingsync/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professor page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, pageURL)
	}

	// Page sizes run a few hundred KB; cap reads to keep a hostile
	// response from exhausting memory.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read professor page: %w", err)
	}

	return ExtractDistribution(body)
}

// ExtractDistribution pulls the rating distribution out of a raw HTML page.
func ExtractDistribution(page []byte) (*Distribution, error) {
	store, err := ParseRelayStore(page)
	if err != nil {
		return nil, err
	}

	for _, raw := range store {
		var probe struct {
			TypeName string `json:"__typename"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			continue
		}
		if probe.TypeName != "ratingsDistribution" {
			continue
		}

		var dist Distribution
		if err := json.Unmarshal(raw, &dist); err != nil {
			return nil, fmt.Errorf("failed to decode rating distribution: %w", err)
		}
		return &dist, nil
	}

	return nil, ErrNoDistribution
}

// ParseRelayStore extracts the relay store JSON object from a page body.
func ParseRelayStore(page []byte) (map[string]json.RawMessage, error) {
	match := relayStoreRe.FindSubmatch(page)
	if match == nil {
		return nil, ErrNoRelayStore
	}

	var store map[string]json.RawMessage
	if err := json.Unmarshal(match[1], &store); err != nil {
		return nil, fmt.Errorf("failed to parse relay store: %w", err)
	}

	return store, nil
}
