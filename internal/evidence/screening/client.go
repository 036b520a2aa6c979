// Package screening matches entity names against a PEP and sanctions
// watchlist service with an OpenSanctions-compatible search API.
package screening

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"broker/internal/evidence/upstream"
	platformstrings "broker/pkg/platform/strings"
)

// MaxHits caps how many matches are requested and kept.
const MaxHits = 5

// ScreeningHit is one watchlist match in upstream ranking order.
type ScreeningHit struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Schema     string   `json:"schema"`
	Datasets   []string `json:"datasets"`
	Topics     []string `json:"topics"`
	Similarity float64  `json:"similarity"`
}

// ScreeningResult holds the normalized matches for one query. HitCount is
// the number of hits kept, not an upstream total.
type ScreeningResult struct {
	Query    string         `json:"query"`
	HitCount int            `json:"hit_count"`
	Hits     []ScreeningHit `json:"hits"`
}

type searchResponse struct {
	Results  []rawHit `json:"results"`
	Entities []rawHit `json:"entities"`
}

type rawHit struct {
	ID         string   `json:"id"`
	Caption    string   `json:"caption"`
	Name       string   `json:"name"`
	Schema     string   `json:"schema"`
	Datasets   []string `json:"datasets"`
	Topics     []string `json:"topics"`
	Properties *struct {
		Topics []string `json:"topics"`
	} `json:"properties"`
}

// Getter is the JSON transport the lookup runs on.
type Getter interface {
	GetJSON(ctx context.Context, path string, query url.Values, out any) error
}

// Client queries the screening service.
type Client struct {
	http Getter
}

// NewClient creates a screening lookup on top of an upstream client.
func NewClient(http Getter) *Client {
	return &Client{http: http}
}

// Screen searches the watchlist for name. A blank name returns nil without
// calling the service; a 404 returns nil.
func (c *Client) Screen(ctx context.Context, name string) (*ScreeningResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", name)
	params.Set("limit", strconv.Itoa(MaxHits))

	var resp searchResponse
	if err := c.http.GetJSON(ctx, "", params, &resp); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("screen %q: %w", name, err)
	}

	raw := resp.Results
	if len(raw) == 0 {
		raw = resp.Entities
	}
	if len(raw) > MaxHits {
		raw = raw[:MaxHits]
	}

	hits := make([]ScreeningHit, 0, len(raw))
	for _, h := range raw {
		hits = append(hits, normalize(name, h))
	}
	return &ScreeningResult{
		Query:    name,
		HitCount: len(hits),
		Hits:     hits,
	}, nil
}

func normalize(query string, h rawHit) ScreeningHit {
	name := h.Caption
	if name == "" {
		name = h.Name
	}
	topics := h.Topics
	if len(topics) == 0 && h.Properties != nil {
		topics = h.Properties.Topics
	}
	return ScreeningHit{
		ID:         h.ID,
		Name:       name,
		Schema:     h.Schema,
		Datasets:   platformstrings.DedupeFold(h.Datasets),
		Topics:     platformstrings.DedupeFold(topics),
		Similarity: similarity(query, name),
	}
}

// similarity is 1 minus the normalized Levenshtein distance between a and b,
// compared case-insensitively and rounded to three decimals.
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return math.Round((1-float64(d)/float64(longest))*1000) / 1000
}
