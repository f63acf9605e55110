// Package webhook provides a crm.Client that POSTs leads as JSON to a
// configurable CRM webhook endpoint.
package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"advisor/internal/config"
	"advisor/pkg/crm"
	"advisor/pkg/domain"
	"advisor/pkg/serrors"

	"github.com/go-faster/jx"
)

// maxErrorBody caps how much of an error response is kept in error messages.
const maxErrorBody = 512

// Options configure the webhook client.
type Options struct {
	// URL is the CRM endpoint leads are POSTed to.
	URL string
	// Token is sent as a bearer token when not empty.
	Token string
	// Timeout bounds a single request.
	Timeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		URL:     cfg.Leads.WebhookURL,
		Token:   cfg.Leads.Token,
		Timeout: cfg.Leads.Timeout,
	}
}

// Client talks to the CRM webhook and fulfills the crm.Client interface. It is
// safe for concurrent use.
type Client struct {
	httpClient *http.Client
	url        string
	token      string
	now        func() time.Time
}

// Ensure Client conforms to the crm.Client interface at compile time.
var _ crm.Client = (*Client)(nil)

// New constructs a Client. A nil httpClient uses a client with options.Timeout.
func New(httpClient *http.Client, options Options) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}

	return &Client{
		httpClient: httpClient,
		url:        options.URL,
		token:      options.Token,
		now:        time.Now,
	}
}

// ParseRateLimit extracts rate-limit information from the response headers.
// It understands X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset
// (unix seconds), falling back to Retry-After (seconds or HTTP date) for the
// reset time. Missing headers yield a zero status.
func ParseRateLimit(h http.Header, now time.Time) (crm.RateLimitStatus, error) {
	atoi := func(s string) int {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}

		return 0
	}

	status := crm.RateLimitStatus{
		Limit:     atoi(h.Get("X-RateLimit-Limit")),
		Remaining: atoi(h.Get("X-RateLimit-Remaining")),
	}

	if reset := strings.TrimSpace(h.Get("X-RateLimit-Reset")); reset != "" {
		sec, err := strconv.ParseInt(reset, 10, 64)
		if err != nil {
			return crm.RateLimitStatus{}, fmt.Errorf("could not parse rate limit reset %q: %w", reset, err)
		}
		status.ResetAt = time.Unix(sec, 0).UTC()

		return status, nil
	}

	if retry := strings.TrimSpace(h.Get("Retry-After")); retry != "" {
		if sec, err := strconv.Atoi(retry); err == nil {
			status.ResetAt = now.Add(time.Duration(sec) * time.Second)

			return status, nil
		}
		at, err := http.ParseTime(retry)
		if err != nil {
			return crm.RateLimitStatus{}, fmt.Errorf("could not parse retry after %q: %w", retry, err)
		}
		status.ResetAt = at

		return status, nil
	}

	return crm.RateLimitStatus{}, nil
}

// EncodeLead renders the webhook payload of a lead.
func EncodeLead(e *jx.Encoder, lead domain.Lead) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(lead.ID.String())
	e.FieldStart("createdAt")
	e.Str(lead.CreatedAt.UTC().Format(time.RFC3339))
	e.FieldStart("profile")
	lead.Profile.Encode(e)
	e.FieldStart("recommended")
	e.ArrStart()
	for _, id := range lead.Recommended {
		e.Str(id)
	}
	e.ArrEnd()
	e.FieldStart("catalogVersion")
	e.Str(lead.CatalogVersion)
	e.ObjEnd()
}

// ForwardLead POSTs the lead to the webhook. It returns the rate-limit status
// reported by the CRM together with an error classified by serrors kind.
func (c *Client) ForwardLead(ctx context.Context, lead domain.Lead) (crm.RateLimitStatus, error) {
	var e jx.Encoder
	EncodeLead(&e, lead)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(e.Bytes()))
	if err != nil {
		return crm.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", lead.ID.String())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return crm.RateLimitStatus{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header, c.now())
	if err != nil {
		return crm.RateLimitStatus{}, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return rl, fmt.Errorf("could not read response body: %w", err)
	}
	body := strings.TrimSpace(string(b))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return rl, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", body)
	case resp.StatusCode == http.StatusConflict:
		return rl, serrors.With(serrors.ErrConflict, "lead already exists: %s", body)
	case resp.StatusCode == http.StatusRequestTimeout:
		return rl, serrors.With(serrors.ErrTimeout, "crm timed out: %s", body)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return rl, serrors.With(serrors.ErrBadRequest, "lead rejected with status %d: %s", resp.StatusCode, body)
	default:
		return rl, serrors.With(serrors.ErrUnavailable, "crm failed with status %d: %s", resp.StatusCode, body)
	}
}
