package handler

import (
	"broker/internal/evidence/entities"
	"broker/internal/evidence/licenses"
	"broker/pkg/platform/circuit"
)

// StatusResponse is returned by GET /ping.
type StatusResponse struct {
	Status string `json:"status"`
}

// HealthResponse is returned by GET /health. Upstreams maps each source to
// its breaker state.
type HealthResponse struct {
	Status    string            `json:"status"`
	Upstreams map[string]string `json:"upstreams"`
}

// SearchResponse is returned by GET /search.
type SearchResponse struct {
	Query   string                   `json:"query"`
	Count   int                      `json:"count"`
	Results []entities.EntitySummary `json:"results"`
}

// LicensesResponse is returned by GET /org/{orgnr}/licenses.
type LicensesResponse struct {
	OrgNumber string                   `json:"orgnr"`
	Licenses  []licenses.LicenseRecord `json:"licenses"`
}

func toHealthResponse(breakers []*circuit.Breaker) *HealthResponse {
	resp := &HealthResponse{
		Status:    "ok",
		Upstreams: make(map[string]string, len(breakers)),
	}
	for _, b := range breakers {
		state := b.State()
		resp.Upstreams[b.Name()] = state.String()
		if state == circuit.StateOpen {
			resp.Status = "degraded"
		}
	}
	return resp
}

func toSearchResponse(query string, results []entities.EntitySummary) *SearchResponse {
	if results == nil {
		results = []entities.EntitySummary{}
	}
	return &SearchResponse{Query: query, Count: len(results), Results: results}
}

func toLicensesResponse(orgnr string, records []licenses.LicenseRecord) *LicensesResponse {
	if records == nil {
		records = []licenses.LicenseRecord{}
	}
	return &LicensesResponse{OrgNumber: orgnr, Licenses: records}
}
