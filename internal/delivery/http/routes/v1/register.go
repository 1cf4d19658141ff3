package v1

import (
	"log"
	"time"

	"vaga-hub/internal/config"
	"vaga-hub/internal/database"
	"vaga-hub/internal/delivery/http/handler"
	"vaga-hub/internal/delivery/http/middleware"
	"vaga-hub/internal/infrastructure/ai/gemini"
	"vaga-hub/internal/infrastructure/persistence/postgres"
	"vaga-hub/internal/pkg/jwt"
	"vaga-hub/internal/repository"
	"vaga-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	listingsCacheTTL        = 5 * time.Minute
	recommendationsCacheTTL = 10 * time.Minute
)

// Deps carries the shared infrastructure built at bootstrap. Explainer is
// nil when no Gemini API key is configured; compatibility then serves the
// local explanation only.
type Deps struct {
	Config    config.Config
	DB        database.DB
	Cache     usecase.SearchCache
	Events    usecase.EventPublisher
	Explainer *gemini.Explainer
	Logger    *log.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := postgres.NewUserRepository(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	reportRepo := repository.NewPostgresJobReportRepository(deps.DB)
	savedJobRepo := repository.NewPostgresSavedJobRepository(deps.DB)
	applicationRepo := repository.NewPostgresApplicationRepository(deps.DB)
	savedFilterRepo := repository.NewPostgresSavedFilterRepository(deps.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(userRepo, deps.Cache)
	listUC := usecase.NewJobListUsecase(jobRepo, deps.Cache, listingsCacheTTL, deps.Logger)
	jobUC := usecase.NewJobUsecase(jobRepo, reportRepo, deps.Logger)
	sessionUC := usecase.NewSessionUsecase(deps.Cache)
	recommendationUC := usecase.NewJobRecommendationUsecase(userRepo, jobRepo, deps.Cache, recommendationsCacheTTL, deps.Logger)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, jobRepo, deps.Logger)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, deps.Logger)
	savedFilterUC := usecase.NewSavedFilterUsecase(savedFilterRepo)
	adminUC := usecase.NewJobAdminUsecase(jobRepo, reportRepo, deps.Cache, deps.Events, deps.Logger)

	var compatibilityUC usecase.CompatibilityUsecase
	if deps.Explainer != nil {
		compatibilityUC = usecase.NewCompatibilityUsecase(userRepo, jobRepo, deps.Explainer, deps.Logger)
	} else {
		compatibilityUC = usecase.NewCompatibilityUsecase(userRepo, jobRepo, nil, deps.Logger)
	}

	authGroup := r.Group("/auth")
	handler.NewAuthHandler(authUC).RegisterRoutes(authGroup)

	// The static /jobs routes must be registered before the public /jobs/:id
	// wildcard or the param route would swallow them.
	protectedJobs := r.Group("/jobs", authMw.Middleware())
	handler.NewRecommendationHandler(recommendationUC).RegisterRoutes(protectedJobs.Group("/recommendations"))
	handler.NewCompatibilityHandler(compatibilityUC).RegisterRoutes(protectedJobs)

	// Listings stay readable without an account; Optional decodes a token
	// when one is sent so the search limit does not apply to logged-in users.
	jobsGroup := r.Group("/jobs", authMw.Optional())
	handler.NewJobsHandler(listUC, jobUC, sessionUC).RegisterRoutes(jobsGroup)

	sessionGroup := r.Group("/session")
	handler.NewSessionHandler(sessionUC).RegisterRoutes(sessionGroup)

	profileHandler := handler.NewProfileHandler(profileUC)
	profileHandler.RegisterPublicRoutes(r.Group("/profiles"))

	protected := r.Group("", authMw.Middleware())

	profileHandler.RegisterRoutes(protected.Group("/profile"))

	savedJobsHandler := handler.NewSavedJobsHandler(savedJobUC)
	savedJobsHandler.RegisterRoutes(protected.Group("/saved-jobs"))
	savedJobsHandler.RegisterFolderRoutes(protected.Group("/folders"))

	handler.NewApplicationsHandler(applicationUC).RegisterRoutes(protected.Group("/applications"))
	handler.NewSavedFiltersHandler(savedFilterUC).RegisterRoutes(protected.Group("/filters"))

	admin := protected.Group("/admin", authMw.RequireAdmin())
	handler.NewAdminHandler(adminUC).RegisterRoutes(admin)
}
