package shipment

import (
	"github.com/gofiber/fiber/v2"
)

type ShipmentApi struct {
	ShipmentController *ShipmentController
}

func NewShipmentApi(shipmentController *ShipmentController) *ShipmentApi {
	return &ShipmentApi{
		ShipmentController: shipmentController,
	}
}

func (api *ShipmentApi) Setup(app *fiber.App) {
	group := app.Group("/api/shipments")

	group.Get("/", api.ShipmentController.List)
	group.Get("/recent", api.ShipmentController.Recent)
	group.Get("/filter", api.ShipmentController.FilterByColumn)
	group.Get("/advanced-search", api.ShipmentController.AdvancedSearch)
	group.Get("/by-weight", api.ShipmentController.ByWeight)
	group.Get("/by-shipper", api.ShipmentController.ByShipper)
	group.Get("/by-consignee", api.ShipmentController.ByConsignee)

	// Keep the wildcard last so it does not shadow the fixed paths.
	group.Get("/:id", api.ShipmentController.GetByID)
}
