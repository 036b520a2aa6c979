// Package financials fetches annual filings from the financial statement
// registry (Regnskapsregisteret) and flattens the latest one.
package financials

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"broker/internal/evidence/upstream"
	"broker/pkg/domain"
)

// Getter is the JSON transport the lookup runs on.
type Getter interface {
	GetJSON(ctx context.Context, path string, query url.Values, out any) error
}

// Client queries the financial statement registry.
type Client struct {
	http Getter
}

// NewClient creates a financial statement lookup on top of an upstream client.
func NewClient(http Getter) *Client {
	return &Client{http: http}
}

// GetLatest returns the flattened filing with the latest period-end year.
// A 404 or an empty filing list yields nil, nil.
func (c *Client) GetLatest(ctx context.Context, orgnr domain.OrgNumber) (*FinancialStatement, error) {
	var fs filings
	if err := c.http.GetJSON(ctx, "/"+url.PathEscape(orgnr.String()), nil, &fs); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get financial statements %s: %w", orgnr, err)
	}

	chosen, ok := selectLatest(fs)
	if !ok {
		return nil, nil
	}
	statement := flatten(chosen)
	return &statement, nil
}
