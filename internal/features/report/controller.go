package report

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleCascade removes the schedules bound to a report when the report
// goes away. Implemented by the schedule feature and wired in via an adapter
// to avoid a package cycle.
type ScheduleCascade interface {
	DeleteByReport(ctx context.Context, reportID string) error
}

type ReportController struct {
	ReportService   ReportService
	ScheduleCascade ScheduleCascade
}

func NewReportController(reportService ReportService, scheduleCascade ScheduleCascade) *ReportController {
	return &ReportController{
		ReportService:   reportService,
		ScheduleCascade: scheduleCascade,
	}
}

func (c *ReportController) Create(ctx *fiber.Ctx) error {
	var report CustomReport
	if err := ctx.BodyParser(&report); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := c.ReportService.CreateReport(ctx.Context(), &report); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      report.ID.Hex(),
		"data":    report,
	})
}

func (c *ReportController) List(ctx *fiber.Ctx) error {
	reports, err := c.ReportService.ListReports(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": reports})
}

func (c *ReportController) Get(ctx *fiber.Ctx) error {
	report, err := c.ReportService.GetReport(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": report})
}

func (c *ReportController) Update(ctx *fiber.Ctx) error {
	var report CustomReport
	if err := ctx.BodyParser(&report); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	objID, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	report.ID = objID

	if err := c.ReportService.UpdateReport(ctx.Context(), &report); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": report})
}

func (c *ReportController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := c.ReportService.DeleteReport(ctx.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.ScheduleCascade.DeleteByReport(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Report deleted"})
}

func (c *ReportController) Run(ctx *fiber.Ctx) error {
	result, err := c.ReportService.RunReport(ctx.Context(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    result.Data,
		"count":   result.Count,
	})
}

func (c *ReportController) Export(ctx *fiber.Ctx) error {
	format := ctx.Query("format", "csv")

	data, filename, err := c.ReportService.ExportReport(ctx.Context(), ctx.Params("id"), format)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	ctx.Set(fiber.HeaderContentType, "text/csv")
	return ctx.Send(data)
}
