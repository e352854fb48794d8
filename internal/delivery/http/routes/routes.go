package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/delivery/http/handler"
	v1 "github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/delivery/http/routes/v1"
)

type Registry struct {
	deps   v1.Deps
	health *handler.HealthHandler
}

func NewRegistry(deps v1.Deps) *Registry {
	return &Registry{deps: deps, health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps)
}
