// Package backend is the HTTP client for the reservation backend. Every call
// goes through Dispatch, which turns the response into a domain.Result and
// hands failures to the error normalizer.
package backend

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/labreserve/switch-console/internal/core/apierror"
	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/ports"
	"github.com/labreserve/switch-console/internal/pkg/metrics"
)

// Options configures the client.
type Options struct {
	BaseURL string
	// CSRFCookie names the cookie whose value is echoed in X-CSRFToken.
	// Empty disables the header.
	CSRFCookie  string
	InsecureTLS bool
	// Timeout bounds a whole call. Zero means no limit.
	Timeout time.Duration
}

type Client struct {
	base *url.URL
	http *http.Client
	log  zerolog.Logger
}

var _ ports.Dispatcher = (*Client)(nil)

// New builds a client for opts.BaseURL. tokens is consulted on every request.
func New(opts Options, tokens ports.TokenSource, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend url %q must be absolute", opts.BaseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	inner := http.DefaultTransport.(*http.Transport).Clone()
	if opts.InsecureTLS {
		inner.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // lab switches use self-signed certs
	}

	return &Client{
		base: base,
		http: &http.Client{
			Jar:     jar,
			Timeout: opts.Timeout,
			Transport: &authTransport{
				base:       inner,
				tokens:     tokens,
				jar:        jar,
				csrfCookie: opts.CSRFCookie,
			},
		},
		log: log.With().Str("component", "backend").Logger(),
	}, nil
}

// BaseURL returns the resolved base URL, always with a trailing slash.
func (c *Client) BaseURL() string { return c.base.String() }

// Dispatch issues req and normalizes the outcome. It never panics on backend
// misbehaviour and never returns a bare error.
func (c *Client) Dispatch(ctx context.Context, req ports.BackendRequest) domain.Result[json.RawMessage] {
	op := string(req.Operation)
	start := time.Now()
	requestID := uuid.NewString()

	status, raw, err := c.do(ctx, req, requestID)
	metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	var f *apierror.Failure
	switch {
	case err != nil:
		metrics.BackendRequestsTotal.WithLabelValues(op, "transport_error").Inc()
		f = apierror.FromTransport(err)
	case status < 200 || status > 299:
		metrics.BackendRequestsTotal.WithLabelValues(op, "server_error").Inc()
		f = apierror.FromResponse(status, raw)
	default:
		metrics.BackendRequestsTotal.WithLabelValues(op, "success").Inc()
		c.log.Debug().
			Str("operation", op).
			Int("status", status).
			Str("request_id", requestID).
			Dur("elapsed", time.Since(start)).
			Msg("backend call")
		return domain.OK(json.RawMessage(raw), status)
	}

	f.RequestID = requestID
	f.Method = req.Method
	f.Path = req.Path
	apierror.Log(c.log, f, req.Context)
	return domain.Fail[json.RawMessage](apierror.Classify(f, req.Context), f.ResultStatus())
}

func (c *Client) do(ctx context.Context, req ports.BackendRequest, requestID string) (int, []byte, error) {
	target := c.base.ResolveReference(&url.URL{Path: strings.TrimPrefix(req.Path, "/")})

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return 0, nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(headerRequestID, requestID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp.StatusCode, raw, nil
}

// Ping checks that the backend answers at all. Any HTTP status counts as
// reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.base.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}
