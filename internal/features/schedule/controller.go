package schedule

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ScheduleController struct {
	ScheduleService ScheduleService
}

func NewScheduleController(scheduleService ScheduleService) *ScheduleController {
	return &ScheduleController{
		ScheduleService: scheduleService,
	}
}

func (c *ScheduleController) Create(ctx *fiber.Ctx) error {
	var schedule ScheduledReport
	if err := ctx.BodyParser(&schedule); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := c.ScheduleService.CreateSchedule(ctx.Context(), &schedule); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      schedule.ID.Hex(),
		"data":    schedule,
	})
}

func (c *ScheduleController) List(ctx *fiber.Ctx) error {
	schedules, err := c.ScheduleService.ListSchedules(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": schedules})
}

func (c *ScheduleController) Get(ctx *fiber.Ctx) error {
	schedule, err := c.ScheduleService.GetSchedule(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Schedule not found"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": schedule})
}

func (c *ScheduleController) Update(ctx *fiber.Ctx) error {
	var schedule ScheduledReport
	if err := ctx.BodyParser(&schedule); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	objID, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	schedule.ID = objID

	if err := c.ScheduleService.UpdateSchedule(ctx.Context(), &schedule); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Schedule not found"})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": schedule})
}

func (c *ScheduleController) Delete(ctx *fiber.Ctx) error {
	if err := c.ScheduleService.DeleteSchedule(ctx.Context(), ctx.Params("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Schedule not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Schedule deleted"})
}
