package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/ai"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/ai/gemini"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/config"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/database"
	dbpostgres "github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/database/postgres"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/skillgraph"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/infrastructure/cache"
)

type Container struct {
	Config  config.Config
	Logger  *zap.Logger
	DB      database.DB
	Cache   *cache.Redis
	Graph   *skillgraph.Graph
	Primary ai.Recommender
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	graph := skillgraph.Default()
	if cfg.Matching.SkillGraphPath != "" {
		graph, err = skillgraph.LoadFile(cfg.Matching.SkillGraphPath)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("loaded skill relationship graph",
			zap.String("path", cfg.Matching.SkillGraphPath),
			zap.Int("skills", graph.Len()),
		)
	}

	var primary ai.Recommender
	if cfg.Gemini.APIKey != "" {
		gen, err := gemini.NewGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		primary = gemini.NewRecommender(gen, cfg.Gemini.Timeout, logger)
	} else {
		logger.Warn("gemini api key not set, recommendations run heuristic-only")
	}

	return &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Cache:   cache.NewRedis(logger),
		Graph:   graph,
		Primary: primary,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
