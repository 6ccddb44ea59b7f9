package saved_search

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SavedSearchController struct {
	SearchService SavedSearchService
}

func NewSavedSearchController(searchService SavedSearchService) *SavedSearchController {
	return &SavedSearchController{
		SearchService: searchService,
	}
}

func (c *SavedSearchController) Create(ctx *fiber.Ctx) error {
	var search SavedSearch
	if err := ctx.BodyParser(&search); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := c.SearchService.CreateSearch(ctx.Context(), &search); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      search.ID.Hex(),
		"data":    search,
	})
}

func (c *SavedSearchController) List(ctx *fiber.Ctx) error {
	searches, err := c.SearchService.ListSearches(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": searches})
}

func (c *SavedSearchController) Get(ctx *fiber.Ctx) error {
	search, err := c.SearchService.GetSearch(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Saved search not found"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": search})
}

func (c *SavedSearchController) Update(ctx *fiber.Ctx) error {
	var search SavedSearch
	if err := ctx.BodyParser(&search); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	objID, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	search.ID = objID

	if err := c.SearchService.UpdateSearch(ctx.Context(), &search); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Saved search not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": search})
}

func (c *SavedSearchController) Delete(ctx *fiber.Ctx) error {
	if err := c.SearchService.DeleteSearch(ctx.Context(), ctx.Params("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Saved search not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Saved search deleted"})
}

func (c *SavedSearchController) RecordUsage(ctx *fiber.Ctx) error {
	if err := c.SearchService.RecordUsage(ctx.Context(), ctx.Params("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Saved search not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Usage recorded"})
}
