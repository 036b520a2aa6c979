package testutil

import (
	"net/http"

	"broker/pkg/requestcontext"
)

// WithRequestID sets the request id the requestid middleware would assign.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
