package v1handler

import (
	"errors"
	"io"
	"net/http"

	"advisor/pkg/domain"
	"advisor/pkg/serrors"

	"github.com/go-faster/jx"
)

// DecodeProfile reads a questionnaire submission from body.
func DecodeProfile(body io.Reader) (domain.Profile, error) {
	var p domain.Profile

	data, err := io.ReadAll(body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return p, serrors.With(serrors.ErrBadRequest, "request body too large")
		}

		return p, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	d := jx.DecodeBytes(data)
	if err := p.Decode(d); err != nil {
		return p, serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
	}
	// Only whitespace may follow the object.
	if err := d.Skip(); !errors.Is(err, io.EOF) {
		return p, serrors.With(serrors.ErrBadRequest, "invalid JSON body")
	}

	return p, nil
}

// Score handles POST /v1/score.
func (h Handler) Score(w http.ResponseWriter, r *http.Request) {
	p, err := DecodeProfile(r.Body)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	recs, err := h.deps.Advisor.Recommend(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		domain.EncodeRecommendations(e, recs)
	})
}
