package routes

import (
	"net/http"

	"seoblog/internal/config"
	"seoblog/internal/handlers"
	"seoblog/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	articleH *handlers.ArticleHandler,
	commentH *handlers.CommentHandler,
	profileH *handlers.ProfileHandler,
	sitemapH *handlers.SitemapHandler,
	healthH *handlers.HealthHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	router.HandleFunc("/healthz", healthH.Healthz).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	// список статей: авторизация не требуется, но валидный токен сужает выдачу
	api.Handle("/articles",
		middleware.JWTOptional(cfg.JWTSecret)(http.HandlerFunc(articleH.GetAll)),
	).Methods("GET")
	api.HandleFunc("/articles/slug/{slug}", articleH.GetBySlug).Methods("GET")
	api.HandleFunc("/articles/{id}", articleH.GetByID).Methods("GET")
	api.HandleFunc("/comments", commentH.List).Methods("GET")
	api.HandleFunc("/sitemap", sitemapH.Sitemap).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))

	protected.HandleFunc("/articles", articleH.Generate).Methods("POST")
	protected.HandleFunc("/comments", commentH.Create).Methods("POST")
	protected.HandleFunc("/profile", profileH.Me).Methods("GET")

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.OnlyRole("admin"))
	admin.HandleFunc("/articles/{id}", articleH.Delete).Methods("DELETE")
}
