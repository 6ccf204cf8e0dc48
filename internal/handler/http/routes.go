package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
// Middleware order: panic recovery, trace id, access log, CORS, gzip and the
// per-request timeout. Authentication is applied per route group.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Route("/users", func(r chi.Router) {
			r.Post("/otp", h.requestOTP)
			r.Post("/register", h.register)
			r.Post("/login", h.login)

			r.With(h.auth).Delete("/account", h.deleteAccount)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(h.optionalAuth)
				r.Get("/", h.listPosts)
				r.Get("/{id}", h.getPost)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createPost)
				r.Put("/{id}", h.updatePost)
				r.Delete("/{id}", h.deletePost)
				r.Post("/{id}/like", h.likePost)
				r.Post("/{id}/dislike", h.dislikePost)
			})
		})
	})

	return router
}
