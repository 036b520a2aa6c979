// Package licenses looks up regulatory licenses in the financial supervisory
// authority's registry (Finanstilsynet) and flattens them to one row per license.
package licenses

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"broker/internal/evidence/upstream"
	"broker/pkg/domain"
)

// The registry is only read from its first page. Entities beyond the first
// hundred matches are dropped.
const (
	pageSize  = 100
	pageIndex = 0
)

// LicenseRecord is one (entity, license) pair with entity fields denormalized.
type LicenseRecord struct {
	OrgNumber   string  `json:"orgnr"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	EntityType  string  `json:"entity_type"`
	LicenseID   *string `json:"license_id"`
	Type        *string `json:"license_type"`
	Status      *string `json:"license_status"`
	ValidFrom   *string `json:"license_from"`
	ValidTo     *string `json:"license_to"`
	Description *string `json:"license_description"`
}

type registryResponse struct {
	Entities []registryEntity `json:"entities"`
	Items    []registryEntity `json:"items"`
}

type registryEntity struct {
	Name               flexString   `json:"name"`
	OrganizationNumber flexString   `json:"organizationNumber"`
	Country            flexString   `json:"country"`
	EntityType         flexString   `json:"entityType"`
	Licenses           []rawLicense `json:"licenses"`
}

type rawLicense struct {
	ID          flexString `json:"id"`
	Type        flexString `json:"type"`
	Status      flexString `json:"status"`
	ValidFrom   flexString `json:"validFrom"`
	ValidTo     flexString `json:"validTo"`
	Description flexString `json:"description"`
}

// Getter is the JSON transport the lookup runs on.
type Getter interface {
	GetJSON(ctx context.Context, path string, query url.Values, out any) error
}

// Client queries the license registry.
type Client struct {
	http Getter
}

// NewClient creates a license lookup on top of an upstream client.
func NewClient(http Getter) *Client {
	return &Client{http: http}
}

// Get returns every license held by entities matching orgnr. A 404 yields an
// empty slice.
func (c *Client) Get(ctx context.Context, orgnr domain.OrgNumber) ([]LicenseRecord, error) {
	params := url.Values{}
	params.Set("organizationNumber", orgnr.String())
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("pageIndex", strconv.Itoa(pageIndex))

	var resp registryResponse
	if err := c.http.GetJSON(ctx, "", params, &resp); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return []LicenseRecord{}, nil
		}
		return nil, fmt.Errorf("get licenses %s: %w", orgnr, err)
	}

	entities := resp.Entities
	if len(entities) == 0 {
		entities = resp.Items
	}
	return flatten(orgnr, entities), nil
}

func flatten(orgnr domain.OrgNumber, entities []registryEntity) []LicenseRecord {
	records := []LicenseRecord{}
	for _, e := range entities {
		owner := e.OrganizationNumber.value
		if owner == "" {
			owner = orgnr.String()
		}
		for _, lic := range e.Licenses {
			records = append(records, LicenseRecord{
				OrgNumber:   owner,
				Name:        e.Name.value,
				Country:     e.Country.value,
				EntityType:  e.EntityType.value,
				LicenseID:   lic.ID.ptr(),
				Type:        lic.Type.ptr(),
				Status:      lic.Status.ptr(),
				ValidFrom:   lic.ValidFrom.ptr(),
				ValidTo:     lic.ValidTo.ptr(),
				Description: lic.Description.ptr(),
			})
		}
	}
	return records
}
