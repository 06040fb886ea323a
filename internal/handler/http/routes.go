package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cors.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		AllowCredentials: true,
	}))
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/reset-password", h.resetPassword)

		r.Get("/api/movies", h.listMovies)
		r.Get("/api/movies/{movieID}", h.getMovie)
		r.Get("/api/movies/{movieID}/reviews", h.listMovieReviews)
	})

	// routes behind the token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/user/profile", h.profile)
		r.Delete("/api/user", h.deleteAccount)

		r.Post("/api/movies", h.createMovie)
		r.Put("/api/movies/{movieID}", h.updateMovie)
		r.Delete("/api/movies/{movieID}", h.deleteMovie)

		r.Post("/api/movies/{movieID}/reviews", h.createReview)
		r.Put("/api/reviews/{reviewID}", h.updateReview)
		r.Delete("/api/reviews/{reviewID}", h.deleteReview)

		r.Put("/api/movies/{movieID}/favorite", h.addFavorite)
		r.Delete("/api/movies/{movieID}/favorite", h.removeFavorite)
		r.Get("/api/user/favorites", h.listFavorites)
	})

	return router
}
