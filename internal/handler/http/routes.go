package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestLogger)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/token", h.issueToken)
	})

	// drive API, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/account", h.account)
		r.Post("/api/files", h.createFile)
		r.Put("/api/files/{fileID}", h.overwriteFile)
		r.Get("/api/files/{fileID}", h.downloadFile)
		r.Get("/api/folders/children", h.listChildren)
	})

	return router
}
