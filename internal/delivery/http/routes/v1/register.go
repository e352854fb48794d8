package v1

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/ai"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/config"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/database"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/delivery/http/handler"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/delivery/http/middleware"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/skillgraph"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/pkg/jwt"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/repository"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/usecase"
)

// Deps carries everything the v1 API needs wired in.
type Deps struct {
	Config  config.Config
	DB      database.DB
	Logger  *zap.Logger
	Graph   *skillgraph.Graph
	Primary ai.Recommender
	Cache   usecase.RecommendationCache
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(deps.Config.JWT.AccessSecret, deps.Config.JWT.AccessExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	employeeRepo := repository.NewPostgresEmployeeRepository(deps.DB)
	projectRepo := repository.NewPostgresProjectRepository(deps.DB)

	matcher := usecase.NewSkillMatcher(deps.Graph)
	fallback := usecase.NewHeuristicRecommender(matcher)
	engine := usecase.NewOrchestrator(deps.Primary, fallback, deps.Logger)

	recommendationUC := usecase.NewRecommendationUsecase(
		employeeRepo,
		projectRepo,
		engine,
		deps.Cache,
		deps.Config.Matching.CacheTTL,
	)

	recommendationHandler := handler.NewRecommendationHandler(recommendationUC)

	protected := r.Group("", authMw.Middleware())
	recommendationHandler.RegisterRoutes(protected)
}
