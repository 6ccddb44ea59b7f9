package export

import (
	"github.com/gofiber/fiber/v2"
)

type ExportController struct {
	ExportService ExportService
}

func NewExportController(exportService ExportService) *ExportController {
	return &ExportController{
		ExportService: exportService,
	}
}

var validFormats = map[string]bool{"csv": true, "xlsx": true, "pdf": true}

func (c *ExportController) Export(ctx *fiber.Ctx) error {
	var req ExportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	if !validFormats[req.Format] {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format must be csv, xlsx or pdf"})
	}

	result, err := c.ExportService.Export(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(result)
}

func (c *ExportController) Download(ctx *fiber.Ctx) error {
	path, err := c.ExportService.ResolvePath(ctx.Params("filename"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found"})
	}

	return ctx.SendFile(path)
}
