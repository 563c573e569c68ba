package fipe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/guttosm/fipepulse/internal/logger"
)

// HTTPOptions configures the retrying HTTP client shared by the catalog and
// pricing clients.
type HTTPOptions struct {
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// DefaultHTTPOptions mirrors the configuration defaults.
var DefaultHTTPOptions = HTTPOptions{
	Timeout:      15 * time.Second,
	RetryMax:     2,
	RetryWaitMin: 200 * time.Millisecond,
	RetryWaitMax: 2 * time.Second,
}

// NewHTTPClient builds a retryablehttp client with exponential backoff, an
// OpenTelemetry-instrumented transport and zerolog-backed retry logging.
//
// Connection errors and 5xx responses are retried up to RetryMax times; once
// retries are exhausted Do returns an error instead of the response.
func NewHTTPClient(opts HTTPOptions) *retryablehttp.Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultHTTPOptions.Timeout
	}
	if opts.RetryMax < 0 {
		opts.RetryMax = 0
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.RetryMax
	if opts.RetryWaitMin > 0 {
		rc.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		rc.RetryWaitMax = opts.RetryWaitMax
	}
	rc.HTTPClient = &http.Client{
		Timeout:   opts.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport.(*http.Transport).Clone()),
	}
	rc.Logger = retryLogger{l: logger.With("http")}
	return rc
}

// retryLogger adapts zerolog to retryablehttp.LeveledLogger.
type retryLogger struct {
	l zerolog.Logger
}

func (r retryLogger) Error(msg string, kv ...interface{}) { r.l.Error().Fields(kv).Msg(msg) }
func (r retryLogger) Warn(msg string, kv ...interface{})  { r.l.Warn().Fields(kv).Msg(msg) }
func (r retryLogger) Info(msg string, kv ...interface{})  { r.l.Debug().Fields(kv).Msg(msg) }
func (r retryLogger) Debug(msg string, kv ...interface{}) { r.l.Debug().Fields(kv).Msg(msg) }

// transport performs one request against a base URL and returns the raw body.
type transport struct {
	client  *retryablehttp.Client
	baseURL string
	headers map[string]string
}

func newTransport(client *retryablehttp.Client, baseURL string, headers map[string]string) *transport {
	if client == nil {
		client = NewHTTPClient(DefaultHTTPOptions)
	}
	return &transport{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
	}
}

// do issues the request. Network failures and non-2xx responses are wrapped in
// ErrCatalogUnavailable; the status code is returned alongside so callers can
// refine the classification (e.g. 404 → ErrVehicleNotFound).
func (t *transport) do(ctx context.Context, method, path string, body []byte) ([]byte, int, error) {
	url := t.baseURL + "/" + strings.TrimLeft(path, "/")

	var payload interface{}
	if body != nil {
		payload = body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, 0, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s %s: %v", ErrCatalogUnavailable, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read %s: %v", ErrCatalogUnavailable, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return raw, resp.StatusCode, fmt.Errorf("%w: %s %s: status %d", ErrCatalogUnavailable, method, path, resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}
