package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies and routing downstream.
type EventCategory string

const (
	// CategoryCompliance covers lookups whose results feed a broker decision.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers routine activity that can be sampled.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory `json:"category"`
	Timestamp time.Time     `json:"timestamp"`
	Subject   string        `json:"subject"` // organisation number or search text
	Action    string        `json:"action"`
	RequestID string        `json:"request_id,omitempty"`
	Decision  string        `json:"decision,omitempty"`
	Reason    string        `json:"reason,omitempty"`
}

type AuditEvent string

const (
	EventSearchPerformed AuditEvent = "search_performed"
	EventProfileComputed AuditEvent = "profile_computed"
	EventLicensesFetched AuditEvent = "licenses_fetched"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventProfileComputed: CategoryCompliance,
	EventLicensesFetched: CategoryCompliance,
	EventSearchPerformed: CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}
