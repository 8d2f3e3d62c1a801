// Package apiclient performs the GET-and-decode round trip shared by every
// public API client: it applies the per-API timeout, sets the User-Agent,
// classifies failures into serrors kinds and records OpenTelemetry metrics
// and spans for each call.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"pubapis/pkg/logger"
	"pubapis/pkg/metrics"
	"pubapis/pkg/serrors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "pubapis/pkg/apiclient"

// maxErrorBody bounds how much of a failed response body ends up in errors.
const maxErrorBody = 200

// Options configures a Client.
type Options struct {
	// HTTPClient performs the requests. A zero http.Client is used when nil.
	HTTPClient *http.Client
	// UserAgent is sent with every request. Reddit rejects requests without one.
	UserAgent string
	// Timeout bounds a single request when the Request does not set its own.
	Timeout time.Duration
	// MeterProvider receives request counters and latency histograms.
	MeterProvider metric.MeterProvider
	// TracerProvider receives one span per request. Defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Request describes a single GET call.
type Request struct {
	// API names the upstream for logs, metrics and error messages, e.g. "coingecko".
	API string
	// URL is the absolute endpoint URL. Query parameters already present are kept.
	URL string
	// Query is merged into the URL's query string.
	Query url.Values
	// Header is added to the request headers.
	Header http.Header
	// Timeout overrides Options.Timeout when positive.
	Timeout time.Duration
}

// StatusError is the cause attached to errors produced for non-2xx answers.
type StatusError struct {
	StatusCode int
	Body       string
	// RetryAfter is parsed from the Retry-After header; zero when absent.
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}

	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
	tracer     trace.Tracer
	requests   metric.Int64Counter
	duration   metric.Float64Histogram
}

// New constructs a Client from opts.
func New(opts Options) (*Client, error) {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	if opts.MeterProvider == nil {
		opts.MeterProvider = metrics.Noop()
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}

	meter := opts.MeterProvider.Meter(instrumentationName)
	requests, err := meter.Int64Counter("api.client.requests",
		metric.WithDescription("Outbound public API requests by API and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}
	duration, err := meter.Float64Histogram("api.client.duration",
		metric.WithDescription("Outbound public API request latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Client{
		httpClient: opts.HTTPClient,
		userAgent:  opts.UserAgent,
		timeout:    opts.Timeout,
		tracer:     opts.TracerProvider.Tracer(instrumentationName),
		requests:   requests,
		duration:   duration,
	}, nil
}

// Get issues the request and returns the body of a 2xx answer. Failures carry
// a serrors kind: ErrTimeout, ErrUnavailable, or the kind serrors.ForStatus
// picks for the response status (with a *StatusError cause).
func (c *Client) Get(ctx context.Context, r Request) ([]byte, error) {
	u, err := url.Parse(r.URL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "invalid %s URL", r.API)
	}
	if len(r.Query) > 0 {
		q := u.Query()
		for k, vs := range r.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	timeout := c.timeout
	if r.Timeout > 0 {
		timeout = r.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ctx, span := c.tracer.Start(ctx, "GET "+r.API,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("api.name", r.API),
			attribute.String("url.full", u.String()),
		))
	defer span.End()

	start := time.Now()
	body, status, err := c.do(ctx, r, u)
	elapsed := time.Since(start)

	outcome := "ok"
	if err != nil {
		outcome = strings.ToLower(kindName(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	attrs := metric.WithAttributes(
		attribute.String("api", r.API),
		attribute.Int("status_code", status),
		attribute.String("outcome", outcome),
	)
	c.requests.Add(ctx, 1, attrs)
	c.duration.Record(ctx, elapsed.Seconds(), attrs)
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	logger.Debug(ctx, "api request finished",
		zap.String("api", r.API),
		zap.String("url", u.String()),
		zap.Int("status", status),
		zap.Duration("elapsed", elapsed),
		zap.Error(err))

	return body, err
}

func (c *Client) do(ctx context.Context, r Request, u *url.URL) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, 0, serrors.Wrap(serrors.ErrInternal, err, "could not create %s request", r.API)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, serrors.FromTransport(err, "could not reach %s", r.API)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, serrors.FromTransport(err, "could not read %s response", r.API)
	}

	if kind := serrors.ForStatus(resp.StatusCode); kind != nil {
		body := truncate(strings.TrimSpace(string(b)), maxErrorBody)

		return nil, resp.StatusCode, serrors.Wrap(kind, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       body,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
		}, "%s request failed", r.API)
	}

	return b, resp.StatusCode, nil
}

// GetJSON issues the request and decodes a 2xx JSON body into v.
func (c *Client) GetJSON(ctx context.Context, r Request, v any) error {
	b, err := c.Get(ctx, r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return serrors.Wrap(serrors.ErrUpstream, err, "could not decode %s response", r.API)
	}

	return nil
}

// RetryAfter extracts the server-provided wait from a rate limited error.
func RetryAfter(err error) (time.Duration, bool) {
	var se *StatusError
	if !errors.Is(err, serrors.ErrRateLimited) || !errors.As(err, &se) || se.RetryAfter <= 0 {
		return 0, false
	}

	return se.RetryAfter, true
}

// parseRetryAfter accepts both delta-seconds and HTTP-date forms.
func parseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}

		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := t.Sub(now); d > 0 {
			return d
		}
	}

	return 0
}

func kindName(err error) string {
	if k := serrors.KindOf(err); k != nil {
		return k.Error()
	}

	return "error"
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n]
}
