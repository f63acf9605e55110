package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

func (h Handler) writeItems(w http.ResponseWriter, r *http.Request, items []string, err error) {
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("items")
		e.ArrStart()
		for _, item := range items {
			e.Str(item)
		}
		e.ArrEnd()
		e.ObjEnd()
	})
}

// Countries handles GET /v1/options/countries.
func (h Handler) Countries(w http.ResponseWriter, r *http.Request) {
	items, err := h.deps.Advisor.Countries(r.Context())
	h.writeItems(w, r, items, err)
}

// Exchanges handles GET /v1/options/exchanges?country=.
func (h Handler) Exchanges(w http.ResponseWriter, r *http.Request) {
	items, err := h.deps.Advisor.Exchanges(r.Context(), r.URL.Query().Get("country"))
	h.writeItems(w, r, items, err)
}

// Blockchains handles GET /v1/options/blockchains?country=&exchange=.
func (h Handler) Blockchains(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.deps.Advisor.Blockchains(r.Context(), q.Get("country"), q.Get("exchange"))
	h.writeItems(w, r, items, err)
}
