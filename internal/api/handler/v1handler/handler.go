// Package v1handler implements the version 1 HTTP endpoints of the advisor API.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"advisor/internal/advisor"
	"advisor/internal/recommend"
	"advisor/pkg/logger"
	"advisor/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps holds the services used by the handlers.
type Deps struct {
	Advisor advisor.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// FieldError is one invalid request field.
type FieldError struct {
	Field   string
	Message string
}

// ErrorBody is the JSON error payload.
type ErrorBody struct {
	Code    string
	Message string
	Fields  []FieldError
}

// Encode writes the payload as JSON.
func (b ErrorBody) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(b.Code)
	e.FieldStart("message")
	e.Str(b.Message)
	if len(b.Fields) > 0 {
		e.FieldStart("fields")
		e.ArrStart()
		for _, f := range b.Fields {
			e.ObjStart()
			e.FieldStart("field")
			e.Str(f.Field)
			e.FieldStart("message")
			e.Str(f.Message)
			e.ObjEnd()
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}

// ErrorResponse pairs an ErrorBody with its HTTP status code.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

// NewError converts err into an ErrorResponse. A kinded error is reported
// with its kind's status and code and, below 500, its own message. Server
// errors and errors without a kind collapse to a generic INTERNAL body.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	k := serrors.KindOf(err)
	if k == nil || k.Status() == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorBody{
				Code:    serrors.ErrInternal.Error(),
				Message: serrors.ErrInternal.Public(),
			},
		}
	}

	res := &ErrorResponse{
		StatusCode: k.Status(),
		Response:   ErrorBody{Code: k.Error(), Message: k.Public()},
	}

	var verr *recommend.ValidationError
	var serr *serrors.Error
	switch {
	case errors.As(err, &verr):
		res.Response.Message = "invalid profile"
		for _, f := range verr.Fields {
			res.Response.Fields = append(res.Response.Fields, FieldError{Field: f.Field, Message: f.Message})
		}
	case errors.As(err, &serr) && serr.Message() != "":
		res.Response.Message = serr.Message()
	}

	if res.StatusCode >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return res
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response.Encode)
}
