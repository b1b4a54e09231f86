package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harvestly/market-backend/app/controllers"
)

func RegisterUserRoutes(app *fiber.App) {
	app.Post("/users", controllers.RegisterUser)
	app.Get("/users", controllers.GetUsers)
	app.Get("/users/role/:email", controllers.GetUserRole)
	app.Patch("/users/:id/role", controllers.UpdateUserRole)
}
