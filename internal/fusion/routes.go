// internal/fusion/routes.go

package fusion

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/imadgeboyega/destiny-fusion/internal/common/utils"
)

// BasePath is where the fusion API is mounted
const BasePath = "/api/v1/fusion"

// RegisterRoutes registers all fusion routes
func RegisterRoutes(r chi.Router, handler *Handler) {
	r.Route(BasePath, func(r chi.Router) {
		// Pair analyses
		r.Post("/compatibility", handler.Compatibility)
		r.Post("/daeun", handler.Daeun)
		r.Post("/seun", handler.Seun)
		r.Post("/yongsin", handler.Yongsin)

		// Destiny matrix
		r.Post("/matrix", handler.Matrix)
		r.Get("/matrix/summary", handler.MatrixSummary)

		// Cache administration
		r.Get("/cache/stats", handler.CacheStats)
		r.Delete("/cache", handler.ClearCache)
	})
}

// NewRouter returns a chi router serving every fusion route under BasePath
func NewRouter(handler *Handler) chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusNotFound, "route not found: "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
	})
	RegisterRoutes(r, handler)
	return r
}
