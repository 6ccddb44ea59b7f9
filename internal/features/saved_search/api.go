package saved_search

import (
	"github.com/gofiber/fiber/v2"
)

type SavedSearchApi struct {
	SearchController *SavedSearchController
}

func NewSavedSearchApi(searchController *SavedSearchController) *SavedSearchApi {
	return &SavedSearchApi{
		SearchController: searchController,
	}
}

func (api *SavedSearchApi) Setup(app *fiber.App) {
	group := app.Group("/api/saved-searches")

	group.Post("/", api.SearchController.Create)
	group.Get("/", api.SearchController.List)
	group.Get("/:id", api.SearchController.Get)
	group.Put("/:id", api.SearchController.Update)
	group.Delete("/:id", api.SearchController.Delete)
	group.Put("/:id/usage", api.SearchController.RecordUsage)
}
