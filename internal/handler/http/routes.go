package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the route table and wraps it, outermost first, in panic
// recovery, request tracing, CORS and the request timeout. HEAD is served
// by the GET handler of the same path.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	router.Use(h.withTraceID, withLogging)
	router.Use(h.withCORS())
	router.Use(withTimeout(h.requestTimeout))

	router.Get("/", h.index)

	router.Route("/link", func(r chi.Router) {
		r.Get("/wiki", h.wiki)
		r.Get("/github", h.github)
	})

	return router
}
