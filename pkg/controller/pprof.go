package controller

import (
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
)

// PprofPath is where Pprof is expected to be mounted. The index handler
// resolves profile names relative to it.
const PprofPath = "/debug/pprof/"

// Pprof returns a router serving the net/http/pprof endpoints. Named runtime
// profiles such as heap or goroutine are resolved by the index handler.
func Pprof() chi.Router {
	r := chi.NewRouter()

	r.Get("/", pprof.Index)
	r.Get("/cmdline", pprof.Cmdline)
	r.Get("/profile", pprof.Profile)
	r.Get("/symbol", pprof.Symbol)
	r.Post("/symbol", pprof.Symbol)
	r.Get("/trace", pprof.Trace)
	r.Get("/{profile}", pprof.Index)

	return r
}
