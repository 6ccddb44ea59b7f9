package schedule

import (
	"github.com/gofiber/fiber/v2"
)

type ScheduleApi struct {
	ScheduleController *ScheduleController
}

func NewScheduleApi(scheduleController *ScheduleController) *ScheduleApi {
	return &ScheduleApi{
		ScheduleController: scheduleController,
	}
}

func (api *ScheduleApi) Setup(app *fiber.App) {
	group := app.Group("/api/schedules")

	group.Post("/", api.ScheduleController.Create)
	group.Get("/", api.ScheduleController.List)
	group.Get("/:id", api.ScheduleController.Get)
	group.Put("/:id", api.ScheduleController.Update)
	group.Delete("/:id", api.ScheduleController.Delete)
}
