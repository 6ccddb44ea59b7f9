package export

import (
	"github.com/gofiber/fiber/v2"
)

type ExportApi struct {
	ExportController *ExportController
}

func NewExportApi(exportController *ExportController) *ExportApi {
	return &ExportApi{
		ExportController: exportController,
	}
}

func (api *ExportApi) Setup(app *fiber.App) {
	app.Post("/api/export", api.ExportController.Export)
	app.Get("/api/download/:filename", api.ExportController.Download)
}
