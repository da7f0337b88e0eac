package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/recetasnicas/recipebook-be/internal/api/handlers"
	"github.com/recetasnicas/recipebook-be/internal/auth"
	"github.com/recetasnicas/recipebook-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	tokens *auth.TokenManager,
	allowedOrigins []string,
	authService services.AuthServiceProvider,
	catalogService services.CatalogServiceProvider,
	cookbookService services.CookbookServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for the SPA frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokens)
	recipeHandler := handlers.NewRecipeHandler(catalogService)
	cookbookHandler := handlers.NewCookbookHandler(cookbookService)

	r.Route("/api", func(r chi.Router) {
		// Public authentication endpoints
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Everything else requires a verified bearer token
		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware())

			r.Route("/recipes", func(r chi.Router) {
				r.Get("/", recipeHandler.GetAll)
				r.Post("/", recipeHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", recipeHandler.Get)
					r.Put("/", recipeHandler.Update)
					r.Delete("/", recipeHandler.Delete)
				})
			})

			r.Route("/user/cookbook", func(r chi.Router) {
				r.Get("/", cookbookHandler.Get)
				r.Post("/add", cookbookHandler.Add)
				r.Post("/remove", cookbookHandler.Remove)
			})
		})
	})

	return r
}
