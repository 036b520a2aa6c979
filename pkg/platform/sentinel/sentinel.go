package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores, caches and upstream clients
// return these (optionally wrapped) so services can translate them into domain errors.
//
// - ErrNotFound: record does not exist in a store or upstream registry
// - ErrExpired: cached record is older than its TTL
// - ErrUnavailable: dependency temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrExpired     = errors.New("expired")
	ErrUnavailable = errors.New("unavailable")
)
