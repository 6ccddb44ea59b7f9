package stats

import (
	"strconv"

	"go-shipdata/internal/query"

	"github.com/gofiber/fiber/v2"
)

type StatsController struct {
	StatsService StatsService
}

func NewStatsController(statsService StatsService) *StatsController {
	return &StatsController{
		StatsService: statsService,
	}
}

func limitFromQuery(ctx *fiber.Ctx, def int) int {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit < 1 {
		return def
	}
	return limit
}

func (c *StatsController) TopCustomers(ctx *fiber.Ctx) error {
	dateToken := ctx.Query("date_filter", "total")
	limit := limitFromQuery(ctx, defaultTopLimit)

	rows, sampled, err := c.StatsService.TopCustomers(ctx.Context(), dateToken, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	resp := fiber.Map{"data": rows, "date_filter": dateToken, "limit": limit}
	if sampled {
		resp["note"] = query.SampleNote
	}
	return ctx.JSON(resp)
}

func (c *StatsController) TopCities(ctx *fiber.Ctx) error {
	dateToken := ctx.Query("date_filter", "total")
	limit := limitFromQuery(ctx, defaultTopLimit)

	rows, sampled, err := c.StatsService.TopCities(ctx.Context(), dateToken, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	resp := fiber.Map{"data": rows, "date_filter": dateToken, "limit": limit}
	if sampled {
		resp["note"] = query.SampleNote
	}
	return ctx.JSON(resp)
}

func (c *StatsController) ShipmentsByCity(ctx *fiber.Ctx) error {
	city := ctx.Query("city")
	if city == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "city parameter required"})
	}

	limit := limitFromQuery(ctx, defaultByCityLimit)
	rows, err := c.StatsService.ShipmentsByCity(ctx.Context(), city, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"data": rows, "limit": limit, "note": query.SampleNote})
}

func (c *StatsController) AverageWeight(ctx *fiber.Ctx) error {
	dateToken := ctx.Query("date_filter", "total")

	avg, count, err := c.StatsService.AverageWeight(ctx.Context(), dateToken)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"data":        fiber.Map{"average_weight": avg, "total_shipments": count},
		"date_filter": dateToken,
		"note":        query.SampleNote,
	})
}

func (c *StatsController) Total(ctx *fiber.Ctx) error {
	dateToken := ctx.Query("date_filter", "total")

	total, err := c.StatsService.Total(ctx.Context(), dateToken)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"data": fiber.Map{"total": total}, "date_filter": dateToken})
}
