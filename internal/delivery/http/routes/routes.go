package routes

import (
	"context"

	"vaga-hub/internal/delivery/http/handler"
	v1 "vaga-hub/internal/delivery/http/routes/v1"
	"vaga-hub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type handlerCachePinger interface {
	Ping(ctx context.Context) error
}

type Registry struct {
	deps   v1.Deps
	health *handler.HealthHandler
	feed   *ws.Handler
}

func NewRegistry(deps v1.Deps, hub *ws.Hub) *Registry {
	var health *handler.HealthHandler
	if pinger, ok := deps.Cache.(handlerCachePinger); ok {
		health = handler.NewHealthHandler(deps.DB, pinger)
	} else {
		health = handler.NewHealthHandler(deps.DB, nil)
	}

	return &Registry{
		deps:   deps,
		health: health,
		feed:   ws.NewHandler(hub, deps.Logger),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerFeed(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerFeed(app *fiber.App) {
	if r.feed == nil {
		return
	}

	app.Get("/ws/jobs", r.feed.HandleJobsFeed)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
