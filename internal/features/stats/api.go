package stats

import (
	"github.com/gofiber/fiber/v2"
)

type StatsApi struct {
	StatsController *StatsController
}

func NewStatsApi(statsController *StatsController) *StatsApi {
	return &StatsApi{
		StatsController: statsController,
	}
}

func (api *StatsApi) Setup(app *fiber.App) {
	// Customer and city rankings sit under their own prefixes; only the
	// shipment-scoped aggregates share the /api/stats group.
	app.Get("/api/customers/top", api.StatsController.TopCustomers)
	app.Get("/api/cities/top", api.StatsController.TopCities)

	group := app.Group("/api/stats")
	group.Get("/shipments/by-city", api.StatsController.ShipmentsByCity)
	group.Get("/average-weight", api.StatsController.AverageWeight)
	group.Get("/total", api.StatsController.Total)
}
