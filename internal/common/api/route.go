package api

import "github.com/gofiber/fiber/v2"

// Route is implemented by every feature's API registrar. Implementations are
// collected into an fx value group and wired up at startup.
type Route interface {
	Setup(app *fiber.App)
}
