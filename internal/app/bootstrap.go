package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/config"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/delivery/http/middleware"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/delivery/http/routes"
	v1 "github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/delivery/http/routes/v1"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	routes.NewRegistry(v1.Deps{
		Config:  c.Config,
		DB:      c.DB,
		Logger:  c.Logger,
		Graph:   c.Graph,
		Primary: c.Primary,
		Cache:   c.Cache,
	}).Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(container), container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
