package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harvestly/market-backend/app/controllers"
)

func RegisterProductRoutes(app *fiber.App) {
	app.Post("/products", controllers.CreateProduct)
	app.Get("/products", controllers.GetProducts)
	// registered before /products/:id so "vendor" is not taken as an id
	app.Get("/products/vendor/:email", controllers.GetProductsByVendor)
	app.Get("/products/:id", controllers.GetProductByID)
	app.Put("/products/:id", controllers.UpdateProduct)
	app.Patch("/products/:id/price", controllers.UpdateProductPrice)
	app.Patch("/products/:id/status", controllers.UpdateProductStatus)
	app.Delete("/products/:id", controllers.DeleteProduct)

	app.Get("/approved-limited-products", controllers.GetApprovedLimitedProducts)
}
