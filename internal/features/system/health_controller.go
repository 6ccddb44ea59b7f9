package system

import (
	"go-shipdata/internal/database"

	"github.com/gofiber/fiber/v2"
)

type HealthController struct {
	Mongo    *database.MongodbDB
	Postgres *database.PostgresDB
}

func NewHealthController(mongo *database.MongodbDB, postgres *database.PostgresDB) *HealthController {
	return &HealthController{
		Mongo:    mongo,
		Postgres: postgres,
	}
}

// Health reports the service and its two stores. Degraded stores flip the
// status but the endpoint itself still answers 200 so monitors can read the
// detail.
func (c *HealthController) Health(ctx *fiber.Ctx) error {
	status := "ok"

	postgres := "ok"
	if err := c.Postgres.DB.PingContext(ctx.Context()); err != nil {
		postgres = err.Error()
		status = "degraded"
	}

	mongo := "ok"
	if err := c.Mongo.DB.Client().Ping(ctx.Context(), nil); err != nil {
		mongo = err.Error()
		status = "degraded"
	}

	return ctx.JSON(fiber.Map{
		"status":   status,
		"postgres": postgres,
		"mongodb":  mongo,
	})
}
