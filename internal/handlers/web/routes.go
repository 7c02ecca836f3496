package web

import (
	"github.com/go-chi/chi/v5"
)

// Routes builds the router for the public flow and the admin surface
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(h.requestLogger)

	// Public picker flow
	r.Get("/", h.ServeIndex)
	r.Post("/assign", h.ServeAssign)

	// Admin surface, gated by the shared password
	r.Get("/panel", h.ServePanel)
	r.Route("/admin/assignments", func(ar chi.Router) {
		ar.Get("/", h.AdminList)
		ar.Post("/", h.AdminUpdate)
		ar.Delete("/", h.AdminDelete)
		ar.Get("/excel", h.AdminDownloadExcel)
	})

	return r
}
