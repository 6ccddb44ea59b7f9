package search

import (
	"github.com/gofiber/fiber/v2"
)

type SearchApi struct {
	SearchController *SearchController
}

func NewSearchApi(searchController *SearchController) *SearchApi {
	return &SearchApi{
		SearchController: searchController,
	}
}

func (api *SearchApi) Setup(app *fiber.App) {
	app.Get("/api/search", api.SearchController.Search)
}
