package http

import (
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/v1", func(r chi.Router) {
		// authentication routes, no token required
		r.Group(func(r chi.Router) {
			r.With(h.validate(validators.NewLoginSchema())).Post("/login", h.login)
			r.With(h.validate(validators.NewSignupSchema())).Put("/signup", h.signup)
		})

		// user management routes, bearer-token protected
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/users", h.getAllUsers)
			r.Get("/users/{id}", h.getUserByID)
			r.With(h.validate(validators.NewUserSchema())).Post("/users", h.createUser)
			r.With(h.validate(validators.NewUserUpdateSchema())).Patch("/users/{id}", h.updateUser)
			r.Delete("/users/{id}", h.deleteUser)
		})
	})

	return router
}
