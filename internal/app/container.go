package app

import (
	"context"
	"log"
	"os"
	"time"

	"vaga-hub/internal/config"
	"vaga-hub/internal/database"
	"vaga-hub/internal/database/migration"
	dbpostgres "vaga-hub/internal/database/postgres"
	"vaga-hub/internal/infrastructure/ai/gemini"
	"vaga-hub/internal/infrastructure/cache"
	"vaga-hub/internal/ws"
)

// Container owns every long-lived dependency: the Postgres pool, the Redis
// wrapper, the websocket hub and the optional Gemini explainer. Close tears
// them down in reverse order of construction.
type Container struct {
	Config    config.Config
	Logger    *log.Logger
	DB        database.DB
	Cache     *cache.Redis
	Hub       *ws.Hub
	Publisher *ws.Publisher
	Explainer *gemini.Explainer
}

const migrationsDir = "migrations"

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: migrationsDir}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()

	c := &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     redisCache,
		Hub:       hub,
		Publisher: ws.NewPublisher(hub),
	}

	if cfg.AI.GeminiAPIKey != "" {
		generator, err := gemini.NewGenerator(ctx, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		if err != nil {
			logger.Printf("[AI] Gemini disabled: %v", err)
		} else {
			c.Explainer = gemini.NewExplainer(generator, logger)
		}
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
