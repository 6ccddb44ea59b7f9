package search

import (
	"strconv"

	"go-shipdata/internal/query"

	"github.com/gofiber/fiber/v2"
)

const defaultSearchLimit = 20

type SearchController struct {
	SearchService SearchService
}

func NewSearchController(searchService SearchService) *SearchController {
	return &SearchController{
		SearchService: searchService,
	}
}

func (c *SearchController) Search(ctx *fiber.Ctx) error {
	term := ctx.Query("q")
	if term == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "q parameter required"})
	}

	dateToken := ctx.Query("date_filter", "total")
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	pageReq := query.NormalizePage(page, limit, defaultSearchLimit)

	result, err := c.SearchService.Search(ctx.Context(), term, dateToken, pageReq)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"data":       result.Data,
		"pagination": result.Pagination,
		"search":     term,
		"filter":     dateToken,
	})
}
