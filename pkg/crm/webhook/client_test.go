package webhook_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"advisor/pkg/crm/webhook"
	"advisor/pkg/domain"
	"advisor/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *webhook.Client {
	return webhook.New(&http.Client{Transport: fn}, webhook.Options{
		URL:   "https://crm.example.com/hooks/leads",
		Token: "test-token",
	})
}

func respond(status int, h http.Header, body string) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		if h == nil {
			h = http.Header{}
		}

		return &http.Response{
			StatusCode: status,
			Header:     h,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func testLead() domain.Lead {
	return domain.Lead{
		ID: domain.LeadID(uuid.MustParse("3f2c1f6e-5d1b-4c1a-9c11-0a8c2b7e9d10")),
		Profile: domain.Profile{
			PrimaryBlockchain: "solana",
			Blockchains:       domain.NewSet("solana"),
			Exchanges:         domain.NewSet("Phantom"),
			Country:           "Canada",
		},
		Recommended:    []string{"Netrunner", "Awaken.tax"},
		CatalogVersion: "v1",
		CreatedAt:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestParseRateLimit(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("rate limit headers", func(t *testing.T) {
		h := http.Header{}
		h.Set("X-RateLimit-Limit", "120")
		h.Set("X-RateLimit-Remaining", "80")
		h.Set("X-RateLimit-Reset", "1735787045")

		rl, err := webhook.ParseRateLimit(h, now)
		require.NoError(t, err)
		require.Equal(t, 120, rl.Limit)
		require.Equal(t, 80, rl.Remaining)
		require.True(t, rl.ResetAt.Equal(time.Unix(1735787045, 0)))
		require.True(t, rl.Known())
	})

	t.Run("retry after seconds", func(t *testing.T) {
		h := http.Header{}
		h.Set("Retry-After", "30")

		rl, err := webhook.ParseRateLimit(h, now)
		require.NoError(t, err)
		require.True(t, rl.ResetAt.Equal(now.Add(30*time.Second)))
	})

	t.Run("retry after date", func(t *testing.T) {
		at := now.Add(time.Minute)
		h := http.Header{}
		h.Set("Retry-After", at.Format(http.TimeFormat))

		rl, err := webhook.ParseRateLimit(h, now)
		require.NoError(t, err)
		require.True(t, rl.ResetAt.Equal(at))
	})

	t.Run("no headers", func(t *testing.T) {
		rl, err := webhook.ParseRateLimit(http.Header{}, now)
		require.NoError(t, err)
		require.False(t, rl.Known())
	})

	t.Run("bad reset", func(t *testing.T) {
		h := http.Header{}
		h.Set("X-RateLimit-Reset", "soon")

		_, err := webhook.ParseRateLimit(h, now)
		require.Error(t, err)
	})
}

func TestClient_ForwardLead_Success(t *testing.T) {
	var (
		got    []byte
		gotReq *http.Request
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		got, _ = io.ReadAll(r.Body)

		w.Header().Set("X-RateLimit-Limit", "10")
		w.Header().Set("X-RateLimit-Remaining", "9")
		w.Header().Set("X-RateLimit-Reset", "1735787045")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := webhook.New(srv.Client(), webhook.Options{URL: srv.URL + "/hooks/leads", Token: "secret"})
	rl, err := c.ForwardLead(context.Background(), testLead())
	require.NoError(t, err)
	require.Equal(t, 9, rl.Remaining)

	require.Equal(t, http.MethodPost, gotReq.Method)
	require.Equal(t, "/hooks/leads", gotReq.URL.Path)
	require.Equal(t, "application/json", gotReq.Header.Get("Content-Type"))
	require.Equal(t, "Bearer secret", gotReq.Header.Get("Authorization"))
	require.Equal(t, testLead().ID.String(), gotReq.Header.Get("Idempotency-Key"))

	require.JSONEq(t, `{
		"id": "3f2c1f6e-5d1b-4c1a-9c11-0a8c2b7e9d10",
		"createdAt": "2025-03-01T12:00:00Z",
		"profile": {
			"country": "Canada",
			"exchanges": ["Phantom"],
			"blockchain": "solana",
			"blockchains": ["solana"],
			"nft": false,
			"defi": false
		},
		"recommended": ["Netrunner", "Awaken.tax"],
		"catalogVersion": "v1"
	}`, string(got))
}

func TestClient_ForwardLead_NoToken(t *testing.T) {
	c := webhook.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Empty(t, r.Header.Get("Authorization"))

		return respond(http.StatusOK, nil, "")(r)
	})}, webhook.Options{URL: "https://crm.example.com"})

	_, err := c.ForwardLead(context.Background(), testLead())
	require.NoError(t, err)
}

func TestClient_ForwardLead_Errors(t *testing.T) {
	rateLimited := http.Header{}
	rateLimited.Set("Retry-After", "60")

	cases := []struct {
		name   string
		status int
		header http.Header
		kind   serrors.Kind
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, header: rateLimited, kind: serrors.ErrRateLimited},
		{name: "conflict", status: http.StatusConflict, kind: serrors.ErrConflict},
		{name: "request timeout", status: http.StatusRequestTimeout, kind: serrors.ErrTimeout},
		{name: "rejected", status: http.StatusUnprocessableEntity, kind: serrors.ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, kind: serrors.ErrBadRequest},
		{name: "server error", status: http.StatusBadGateway, kind: serrors.ErrUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(respond(tc.status, tc.header, "nope"))

			rl, err := c.ForwardLead(context.Background(), testLead())
			require.Error(t, err)
			require.ErrorIs(t, err, tc.kind)
			if tc.kind == serrors.ErrRateLimited {
				require.True(t, rl.Known())
			}
		})
	}
}

func TestClient_ForwardLead_TransportError(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := c.ForwardLead(context.Background(), testLead())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
