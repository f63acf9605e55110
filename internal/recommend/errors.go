package recommend

import (
	"fmt"
	"strings"

	"advisor/pkg/serrors"
)

// FieldError describes one invalid profile field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a profile is malformed or incomplete. It
// lists every offending field and matches serrors.ErrBadRequest.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}

	return "invalid profile: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the semantic kind.
func (e *ValidationError) Unwrap() error { return serrors.ErrBadRequest }

// DataIntegrityError reports a candidate that a ranking step referenced but
// the catalog does not contain. It matches serrors.ErrDataIntegrity.
type DataIntegrityError struct {
	CandidateID string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("candidate %q is missing from the catalog", e.CandidateID)
}

// Unwrap exposes the semantic kind.
func (e *DataIntegrityError) Unwrap() error { return serrors.ErrDataIntegrity }
