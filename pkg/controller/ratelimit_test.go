package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"advisor/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithRateLimit_LimitsPerClient(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := controller.WithRateLimit(2, time.Minute)(next)

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/score", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		return rec
	}

	require.Equal(t, http.StatusOK, do("1.1.1.1").Code)
	require.Equal(t, http.StatusOK, do("1.1.1.1").Code)

	limited := do("1.1.1.1")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	require.JSONEq(t, `{"code":"RATE_LIMITED","message":"too many requests"}`, limited.Body.String())

	// other clients keep their own budget
	require.Equal(t, http.StatusOK, do("2.2.2.2").Code)
}

func TestWithRateLimit_Disabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := controller.WithRateLimit(-1, time.Minute)(next)

	for range 10 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
