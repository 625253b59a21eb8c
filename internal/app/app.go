package app

import (
	"seoblog/internal/config"
	"seoblog/internal/handlers"
	"seoblog/internal/repository"
	"seoblog/internal/routes"
	"seoblog/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitApp собирает приложение вокруг явно переданного пула: репозитории,
// сервисы, хендлеры, маршруты. Жизненным циклом пула владеет main.
func InitApp(cfg *config.Config, pool *pgxpool.Pool) *mux.Router {
	// Репозитории
	articleRepo := repository.NewArticleRepo(pool)
	commentRepo := repository.NewCommentRepo(pool)

	// Сервисы
	generator := services.NewOpenRouterService(
		cfg.OpenRouterAPIKey,
		cfg.OpenRouterBaseURL,
		cfg.OpenRouterModel,
		cfg.GetGenerationTimeout(),
	)
	articleSvc := services.NewArticleService(articleRepo, generator)
	commentSvc := services.NewCommentService(commentRepo)

	// Хендлеры
	articleH := handlers.NewArticleHandler(articleSvc)
	commentH := handlers.NewCommentHandler(commentSvc)
	profileH := handlers.NewProfileHandler()
	sitemapH := handlers.NewSitemapHandler(articleSvc, cfg.SiteURL)
	healthH := handlers.NewHealthHandler(pool)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, articleH, commentH, profileH, sitemapH, healthH)

	return router
}
