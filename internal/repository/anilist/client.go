package anilist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PizzaHomicide/anicompare/internal/log"
	"github.com/PizzaHomicide/anicompare/internal/version"
	"github.com/cenkalti/backoff/v4"
	"github.com/machinebox/graphql"
)

const DefaultEndpoint = "https://graphql.anilist.co"

// Options configures a Client.  Zero values fall back to sensible defaults.
type Options struct {
	Endpoint string
	// Timeout applies to each individual attempt, not the whole retried call
	Timeout    time.Duration
	MaxRetries int
	// HTTPClient is wrapped so the status code of every response can be captured
	HTTPClient *http.Client
}

// Client is the generic AniList client for making queries to the AniList graphql API
type Client struct {
	client     *graphql.Client
	timeout    time.Duration
	maxRetries int
	newBackOff func() backoff.BackOff
}

func NewClient(opts Options) *Client {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	hc := &http.Client{}
	if opts.HTTPClient != nil {
		*hc = *opts.HTTPClient
	}
	next := hc.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	hc.Transport = &statusTransport{next: next}

	return &Client{
		client:     graphql.NewClient(endpoint, graphql.WithHTTPClient(hc)),
		timeout:    opts.Timeout,
		maxRetries: max(opts.MaxRetries, 0),
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
}

// Query runs a GraphQL query and decodes its data into result.  The returned status is the HTTP status code of the
// last attempt, or 0 when no response was received at all.  Network failures, rate limiting and server errors are
// retried up to MaxRetries times.
func (c *Client) Query(ctx context.Context, query string, variables map[string]any, result any) (int, error) {
	var status int

	attempt := func() error {
		status = 0
		err := c.run(ctx, query, variables, result, &status)
		if err == nil && status != http.StatusOK {
			// The graphql client accepts any JSON body without an errors field, whatever the status
			err = fmt.Errorf("unexpected status %d without errors", status)
		}
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}

		switch {
		case status == 0:
			return NetworkError{Err: err}
		case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
			return &StatusError{Code: status, Err: err}
		default:
			return backoff.Permanent(&StatusError{Code: status, Err: err})
		}
	}

	b := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(c.maxRetries)), ctx)
	err := backoff.RetryNotify(attempt, b, func(err error, wait time.Duration) {
		log.Warn("AniList request failed, retrying", "error", err, "status", status, "wait", wait)
	})
	return status, err
}

func (c *Client) run(ctx context.Context, query string, variables map[string]any, result any, status *int) error {
	ctx = context.WithValue(ctx, statusKey{}, status)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := graphql.NewRequest(query)
	req.Header.Set("User-Agent", version.UserAgent())
	for key, value := range variables {
		req.Var(key, value)
	}

	start := time.Now()
	err := c.client.Run(ctx, req, result)
	log.Trace("AniList request finished", "status", *status, "duration", time.Since(start), "error", err)
	return err
}

type statusKey struct{}

// statusTransport records the status code of each response in the *int stored in the request context.  The graphql
// client only surfaces the status code when the body is not valid JSON, and AniList answers errors with JSON.
type statusTransport struct {
	next http.RoundTripper
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if status, ok := req.Context().Value(statusKey{}).(*int); ok {
		*status = resp.StatusCode
	}
	return resp, nil
}

// NetworkError is returned when AniList could not be reached at all
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}

// StatusError is returned when AniList answered, but not with a usable response
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("anilist returned status %d: %v", e.Code, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err was caused by a failure to reach AniList
func IsNetworkError(err error) bool {
	var netErr NetworkError
	return errors.As(err, &netErr)
}
