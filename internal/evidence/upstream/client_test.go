package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"broker/pkg/platform/circuit"
)

type payload struct {
	Name string `json:"name"`
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientGetJSON(t *testing.T) {
	t.Run("decodes 2xx body and forwards query and headers", func(t *testing.T) {
		var gotQuery url.Values
		var gotAccept, gotAuth, gotPath string
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query()
			gotAccept = r.Header.Get("Accept")
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name":"Equinor ASA"}`))
		})

		client := New("test", srv.URL+"/", WithHeader("Authorization", "ApiKey secret"))
		var out payload
		err := client.GetJSON(context.Background(), "/923609016", url.Values{"size": {"5"}}, &out)

		require.NoError(t, err)
		assert.Equal(t, "Equinor ASA", out.Name)
		assert.Equal(t, "/923609016", gotPath)
		assert.Equal(t, "5", gotQuery.Get("size"))
		assert.Equal(t, "application/json", gotAccept)
		assert.Equal(t, "ApiKey secret", gotAuth)
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		var out payload
		err := New("test", srv.URL).GetJSON(context.Background(), "", nil, &out)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.False(t, IsUpstream(err))
	})

	t.Run("status codes map to categories", func(t *testing.T) {
		tests := []struct {
			status   int
			category ErrorCategory
		}{
			{http.StatusUnauthorized, ErrorAuthentication},
			{http.StatusForbidden, ErrorAuthentication},
			{http.StatusTooManyRequests, ErrorRateLimited},
			{http.StatusInternalServerError, ErrorProviderOutage},
			{http.StatusServiceUnavailable, ErrorProviderOutage},
			{http.StatusBadRequest, ErrorRejected},
		}
		for _, tt := range tests {
			t.Run(http.StatusText(tt.status), func(t *testing.T) {
				srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
				})

				var out payload
				err := New("test", srv.URL).GetJSON(context.Background(), "", nil, &out)

				require.Error(t, err)
				var ue *Error
				require.True(t, errors.As(err, &ue))
				assert.Equal(t, tt.category, ue.Category)
				assert.Equal(t, tt.status, ue.StatusCode)
				assert.Equal(t, "test", ue.Source)
			})
		}
	})

	t.Run("malformed body is bad data", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{invalid json`))
		})

		var out payload
		err := New("test", srv.URL).GetJSON(context.Background(), "", nil, &out)

		assert.Equal(t, ErrorBadData, GetCategory(err))
	})

	t.Run("slow upstream times out", func(t *testing.T) {
		release := make(chan struct{})
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)

		var out payload
		err := New("test", srv.URL, WithTimeout(50*time.Millisecond)).
			GetJSON(context.Background(), "", nil, &out)

		assert.Equal(t, ErrorTimeout, GetCategory(err))
	})

	t.Run("unreachable upstream is an outage", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		addr := srv.URL
		srv.Close()

		var out payload
		err := New("test", addr).GetJSON(context.Background(), "", nil, &out)

		assert.Equal(t, ErrorProviderOutage, GetCategory(err))
	})
}

func TestClientBreakerTracksHealth(t *testing.T) {
	var failing atomic.Bool
	failing.Store(true)
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	})

	breaker := circuit.New("test", circuit.WithFailureThreshold(2), circuit.WithSuccessThreshold(1))
	client := New("test", srv.URL, WithBreaker(breaker))
	var out payload

	_ = client.GetJSON(context.Background(), "", nil, &out)
	assert.False(t, client.Breaker().IsOpen())
	_ = client.GetJSON(context.Background(), "", nil, &out)
	assert.True(t, client.Breaker().IsOpen())

	// an open breaker never short-circuits the call
	failing.Store(false)
	err := client.GetJSON(context.Background(), "", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Name)
	assert.False(t, client.Breaker().IsOpen())
}
