package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"advisor/internal/api/handler/v1handler"
	"advisor/internal/recommend"
	"advisor/pkg/logger"
	"advisor/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	_ = logger.Setup(logger.DevelopmentEnvironment, "debug")
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "invalid payload: missing country")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid payload: missing country", res.Response.Message)
}

func TestNewError_SemanticWrap_Unavailable(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("connection refused")
	err := serrors.Wrap(serrors.ErrUnavailable, cause, "catalog unavailable")
	res := h.NewError(ctx, err)
	require.Equal(t, 503, res.StatusCode)
	require.Equal(t, serrors.ErrUnavailable.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "catalog unavailable", res.Response.Message)
}

func TestNewError_StatusMapping(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	tests := []struct {
		kind   serrors.Kind
		status int
	}{
		{serrors.ErrRateLimited, 429},
		{serrors.ErrTimeout, 504},
		{serrors.ErrConflict, 409},
		{serrors.ErrDataIntegrity, 500},
	}
	for _, tt := range tests {
		t.Run(tt.kind.Error(), func(t *testing.T) {
			res := h.NewError(ctx, serrors.KindOnly(tt.kind))
			require.Equal(t, tt.status, res.StatusCode)
		})
	}
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_ValidationFields(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := fmt.Errorf("could not score: %w", &recommend.ValidationError{Fields: []recommend.FieldError{
		{Field: "country", Message: "must not be empty"},
		{Field: "exchanges", Message: "must contain at least one exchange"},
	}})
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid profile", res.Response.Message)
	require.Equal(t, []v1handler.FieldError{
		{Field: "country", Message: "must not be empty"},
		{Field: "exchanges", Message: "must contain at least one exchange"},
	}, res.Response.Fields)
}
