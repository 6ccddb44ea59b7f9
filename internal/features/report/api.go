package report

import (
	"github.com/gofiber/fiber/v2"
)

type ReportApi struct {
	ReportController *ReportController
}

func NewReportApi(reportController *ReportController) *ReportApi {
	return &ReportApi{
		ReportController: reportController,
	}
}

func (api *ReportApi) Setup(app *fiber.App) {
	group := app.Group("/api/reports")

	group.Post("/", api.ReportController.Create)
	group.Get("/", api.ReportController.List)
	group.Get("/:id", api.ReportController.Get)
	group.Put("/:id", api.ReportController.Update)
	group.Delete("/:id", api.ReportController.Delete)
	group.Post("/:id/run", api.ReportController.Run)
	group.Get("/:id/export", api.ReportController.Export)
}
