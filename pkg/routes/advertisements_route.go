package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harvestly/market-backend/app/controllers"
)

func RegisterAdvertisementRoutes(app *fiber.App) {
	app.Post("/advertisements", controllers.CreateAdvertisement)
	app.Get("/advertisements", controllers.GetAdvertisements)
	app.Get("/advertisements/vendor/:email", controllers.GetAdvertisementsByVendor)
	app.Get("/advertisements/:id", controllers.GetAdvertisementByID)
	app.Put("/advertisements/:id", controllers.UpdateAdvertisement)
	app.Patch("/advertisements/:id/status", controllers.UpdateAdvertisementStatus)
	app.Delete("/advertisements/:id", controllers.DeleteAdvertisement)
}
