// Package entities looks up legal entities in the central entity registry
// (Enhetsregisteret) and normalizes them into EntitySummary values.
package entities

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"broker/internal/evidence/upstream"
	"broker/pkg/domain"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Getter is the JSON transport the lookup runs on.
type Getter interface {
	GetJSON(ctx context.Context, path string, query url.Values, out any) error
}

// Client queries the entity registry.
type Client struct {
	http Getter
}

// NewClient creates an entity registry lookup on top of an upstream client.
func NewClient(http Getter) *Client {
	return &Client{http: http}
}

// Search returns up to q.Size entities matching q.Name, in upstream order.
// No matches, including a 404, yield an empty slice.
func (c *Client) Search(ctx context.Context, q SearchQuery) ([]EntitySummary, error) {
	params := url.Values{}
	params.Set("navn", q.Name)
	params.Set("size", strconv.Itoa(clampSize(q.Size)))
	if q.MunicipalityCode != "" {
		params.Set("kommunenummer", q.MunicipalityCode)
	}

	var resp enheterResponse
	if err := c.http.GetJSON(ctx, "", params, &resp); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return []EntitySummary{}, nil
		}
		return nil, fmt.Errorf("search entities: %w", err)
	}

	items := resp.items()
	results := make([]EntitySummary, 0, len(items))
	for _, e := range items {
		results = append(results, normalize(e))
	}
	return results, nil
}

// Get looks up one entity by organisation number. It returns nil, nil when
// the registry has no match. Only the first record is used.
func (c *Client) Get(ctx context.Context, orgnr domain.OrgNumber) (*EntitySummary, error) {
	params := url.Values{}
	params.Set("organisasjonsnummer", orgnr.String())

	var resp enheterResponse
	if err := c.http.GetJSON(ctx, "", params, &resp); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entity %s: %w", orgnr, err)
	}

	items := resp.items()
	if len(items) == 0 {
		return nil, nil
	}
	summary := normalize(items[0])
	return &summary, nil
}

func clampSize(size int) int {
	switch {
	case size <= 0:
		return DefaultPageSize
	case size > MaxPageSize:
		return MaxPageSize
	default:
		return size
	}
}
