package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"broker/internal/platform/config"
	audit "broker/pkg/platform/audit"
)

func TestNewUpstreamsScreeningAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	screeningServer := func(t *testing.T, auth *string) string {
		t.Helper()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*auth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"results":[],"total":{"value":0}}`))
		}))
		t.Cleanup(srv.Close)
		return srv.URL + "/match/default"
	}

	t.Run("configured key is sent as ApiKey", func(t *testing.T) {
		var auth string
		t.Setenv("SCREENING_URL", screeningServer(t, &auth))
		t.Setenv("SCREENING_API_KEY", "s3cret")

		u := NewUpstreams(config.Load(), logger)
		_, err := u.Screening.Screen(context.Background(), "Equinor ASA")

		require.NoError(t, err)
		assert.Equal(t, "ApiKey s3cret", auth)
	})

	t.Run("no key sends no authorization header", func(t *testing.T) {
		var auth string
		t.Setenv("SCREENING_URL", screeningServer(t, &auth))
		t.Setenv("SCREENING_API_KEY", "")

		u := NewUpstreams(config.Load(), logger)
		_, err := u.Screening.Screen(context.Background(), "Equinor ASA")

		require.NoError(t, err)
		assert.Empty(t, auth)
	})

	t.Run("one breaker per registry", func(t *testing.T) {
		u := NewUpstreams(config.Load(), logger)
		assert.Len(t, u.Breakers, 4)
	})
}

func TestStartAuditInMemory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	a, err := StartAudit(ctx, config.Audit{BufferSize: 8, MemoryCapacity: 2}, logger)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, a.Publisher.Emit(ctx, audit.Event{Action: string(audit.EventSearchPerformed)}))
	}

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	a.Stop(stopCtx)

	assert.NotPanics(t, func() {
		require.NoError(t, a.Publisher.Emit(ctx, audit.Event{Action: string(audit.EventProfileComputed)}))
	})
	assert.Equal(t, int64(1), a.Publisher.Dropped())
}
