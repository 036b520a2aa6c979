// Package upstream is the single HTTP JSON client used by every registry
// lookup. It owns the per-call timeout, the error taxonomy, tracing, metrics
// and circuit breaker bookkeeping so the lookups only deal with payloads.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"broker/pkg/platform/circuit"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 16 << 20
	tracerName     = "broker/internal/evidence/upstream"
)

// Client performs GET requests against one upstream registry.
type Client struct {
	source  string
	baseURL string
	http    *http.Client
	timeout time.Duration
	headers http.Header
	breaker *circuit.Breaker
	logger  *slog.Logger
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-call budget. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if value != "" {
			c.headers.Set(key, value)
		}
	}
}

// WithBreaker sets the circuit breaker tracking this upstream's health.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

// WithLogger sets a logger for breaker transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for source rooted at baseURL.
func New(source, baseURL string, opts ...Option) *Client {
	c := &Client{
		source:  source,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: defaultTimeout,
		headers: http.Header{},
		tracer:  otel.Tracer(tracerName),
	}
	c.headers.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(c)
	}
	if c.breaker == nil {
		c.breaker = circuit.New(source)
	}
	return c
}

// Source names the upstream in logs, metrics and errors.
func (c *Client) Source() string {
	return c.source
}

// Breaker exposes the health breaker for readiness reporting.
func (c *Client) Breaker() *circuit.Breaker {
	return c.breaker
}

// GetJSON issues GET baseURL+path?query and decodes the body into out.
// A 404 yields ErrNotFound; every other failure is an *Error.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	ctx, span := c.tracer.Start(ctx, "upstream "+c.source,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("upstream.source", c.source),
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.full", target),
		),
	)
	defer span.End()

	start := time.Now()
	status, err := c.do(ctx, target, out)
	elapsed := time.Since(start).Seconds()
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	switch {
	case err == nil:
		callDuration.WithLabelValues(c.source, "ok").Observe(elapsed)
		c.recordSuccess(ctx)
		return nil
	case errors.Is(err, ErrNotFound):
		callDuration.WithLabelValues(c.source, "not_found").Observe(elapsed)
		c.recordSuccess(ctx)
		return err
	default:
		callDuration.WithLabelValues(c.source, "error").Observe(elapsed)
		callFailures.WithLabelValues(c.source, string(GetCategory(err))).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.recordFailure(ctx, err)
		return err
	}
}

func (c *Client) do(ctx context.Context, target string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, NewError(ErrorRejected, c.source, "build request", err)
	}
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return 0, NewError(ErrorTimeout, c.source, "request timed out", err)
		}
		return 0, NewError(ErrorProviderOutage, c.source, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return resp.StatusCode, fmt.Errorf("%s: %w", c.source, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ue := NewError(categoryForStatus(resp.StatusCode), c.source,
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
		ue.StatusCode = resp.StatusCode
		return resp.StatusCode, ue
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(ctx, err) {
			return resp.StatusCode, NewError(ErrorTimeout, c.source, "reading body timed out", err)
		}
		return resp.StatusCode, NewError(ErrorProviderOutage, c.source, "read body", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, NewError(ErrorBadData, c.source, "decode body", err)
	}
	return resp.StatusCode, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (c *Client) recordSuccess(ctx context.Context) {
	if _, change := c.breaker.RecordSuccess(); change.Closed {
		breakerOpen.WithLabelValues(c.source).Set(0)
		if c.logger != nil {
			c.logger.InfoContext(ctx, "upstream circuit closed", "source", c.source)
		}
	}
}

func (c *Client) recordFailure(ctx context.Context, err error) {
	if _, change := c.breaker.RecordFailure(); change.Opened {
		breakerOpen.WithLabelValues(c.source).Set(1)
		if c.logger != nil {
			c.logger.WarnContext(ctx, "upstream circuit opened",
				"source", c.source,
				"error", err,
			)
		}
	}
}
