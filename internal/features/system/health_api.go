package system

import (
	"github.com/gofiber/fiber/v2"
)

type HealthApi struct {
	HealthController *HealthController
}

func NewHealthApi(healthController *HealthController) *HealthApi {
	return &HealthApi{
		HealthController: healthController,
	}
}

func (api *HealthApi) Setup(app *fiber.App) {
	app.Get("/api/health", api.HealthController.Health)
}
