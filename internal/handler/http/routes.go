package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Post("/token", h.login)
		r.Post("/users/", h.register)
	})

	// routes with mandatory authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/", h.listUsers)
	})

	router.Route("/tasks", func(r chi.Router) {
		r.With(h.optionalAuth).Get("/", h.listTasks)
		r.With(h.auth).Post("/", h.createTask)
		r.Get("/{taskID}", h.getTask)
		r.Put("/{taskID}", h.updateTask)
		r.Delete("/{taskID}", h.deleteTask)
	})

	return router
}
