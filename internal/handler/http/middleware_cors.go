package http

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Methods and request headers a cross-origin caller may use.
var (
	corsAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut}
	corsAllowedHeaders = []string{"Authorization"}
)

// withCORS answers preflight requests and adds Access-Control-Allow-* headers
// for requests whose Origin is in the configured allow list. Requests from
// other origins pass through without CORS headers.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: corsAllowedMethods,
		AllowedHeaders: corsAllowedHeaders,
		Debug:          h.debugEnabled(),
	})
	if c.Log != nil {
		c.Log = &h.logger.Logger
	}

	return c.Handler
}

// debugEnabled reports whether debug entries of h.logger would be written.
func (h *Handler) debugEnabled() bool {
	level := h.logger.GetLevel()
	if global := zerolog.GlobalLevel(); global > level {
		level = global
	}

	return level <= zerolog.DebugLevel
}
