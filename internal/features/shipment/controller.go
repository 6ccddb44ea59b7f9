package shipment

import (
	"database/sql"
	"errors"
	"strconv"

	"go-shipdata/internal/query"

	"github.com/gofiber/fiber/v2"
)

type ShipmentController struct {
	ShipmentService ShipmentService
}

func NewShipmentController(shipmentService ShipmentService) *ShipmentController {
	return &ShipmentController{
		ShipmentService: shipmentService,
	}
}

// pageFromQuery reads page/limit query params, defaulting anything missing
// or malformed.
func pageFromQuery(ctx *fiber.Ctx, defaultLimit int) query.PageRequest {
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	return query.NormalizePage(page, limit, defaultLimit)
}

func (c *ShipmentController) List(ctx *fiber.Ctx) error {
	dateToken := ctx.Query("date_filter", "total")
	page := pageFromQuery(ctx, defaultListLimit)

	result, err := c.ShipmentService.List(ctx.Context(), dateToken,
		ctx.Query("start_date"), ctx.Query("end_date"), page)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"data":       result.Data,
		"pagination": result.Pagination,
		"filter":     dateToken,
	})
}

func (c *ShipmentController) Recent(ctx *fiber.Ctx) error {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultRecentLimit
	}

	rows, err := c.ShipmentService.Recent(ctx.Context(), limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"data": rows, "count": len(rows)})
}

func (c *ShipmentController) FilterByColumn(ctx *fiber.Ctx) error {
	column := ctx.Query("column")
	value := ctx.Query("value")
	if column == "" || value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "column and value parameters required"})
	}

	dateToken := ctx.Query("date_filter", "total")
	page := pageFromQuery(ctx, defaultFilterLimit)

	result, err := c.ShipmentService.FilterByColumn(ctx.Context(), column, value, dateToken, page)
	if err != nil {
		if errors.Is(err, ErrUnknownColumn) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"data":       result.Data,
		"pagination": result.Pagination,
		"filter":     dateToken,
	})
}

func (c *ShipmentController) AdvancedSearch(ctx *fiber.Ctx) error {
	params := map[string]string{}
	applied := fiber.Map{}
	for _, name := range query.AdvancedFieldNames() {
		if v := ctx.Query(name); v != "" {
			params[name] = v
			applied[name] = v
		}
	}

	page := pageFromQuery(ctx, defaultAdvancedLimit)

	result, err := c.ShipmentService.AdvancedSearch(ctx.Context(), params, page)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"data":       result.Data,
		"pagination": result.Pagination,
		"filters":    applied,
	})
}

func (c *ShipmentController) GetByID(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shipment id"})
	}

	row, err := c.ShipmentService.GetByID(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shipment not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"data": row})
}

func (c *ShipmentController) ByWeight(ctx *fiber.Ctx) error {
	rows, err := c.ShipmentService.ByWeightRange(
		ctx.Context(),
		ctx.Query("min_weight"),
		ctx.Query("max_weight"),
		defaultLookupLimit,
	)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"data": rows, "count": len(rows)})
}

func (c *ShipmentController) ByShipper(ctx *fiber.Ctx) error {
	name := ctx.Query("name")
	if name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name parameter required"})
	}

	rows, err := c.ShipmentService.ByShipper(ctx.Context(), name, defaultLookupLimit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"data": rows, "count": len(rows)})
}

func (c *ShipmentController) ByConsignee(ctx *fiber.Ctx) error {
	name := ctx.Query("name")
	if name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name parameter required"})
	}

	rows, err := c.ShipmentService.ByConsignee(ctx.Context(), name, defaultLookupLimit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"data": rows, "count": len(rows)})
}
