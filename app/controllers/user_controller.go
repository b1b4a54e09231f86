package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/harvestly/market-backend/app/models"
	"github.com/harvestly/market-backend/app/queries"
	"github.com/harvestly/market-backend/pkg/database"
	"github.com/harvestly/market-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// RegisterUser creates a user on first sight of an email and is a no-op for
// repeat calls with the same email. last_login is set at creation only and
// deliberately not refreshed on repeats.
func RegisterUser(c *fiber.Ctx) error {
	var doc bson.M
	if err := json.Unmarshal(c.Body(), &doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	email, _ := doc["user_email"].(string)
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email is required"})
	}
	email = strings.ToLower(email)

	userQueries := queries.UserQueries{Coll: database.Users()}
	existing, err := userQueries.GetUserByEmail(c.Context(), email)
	if err == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "User already exists",
			"user":    existing,
		})
	}
	if !errors.Is(err, queries.ErrUserNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	now := time.Now()
	doc["user_email"] = email
	doc["created_at"] = now
	doc["last_login"] = now

	result, err := userQueries.CreateUser(c.Context(), doc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    result,
	})
}

func GetUsers(c *fiber.Ctx) error {
	userQueries := queries.UserQueries{Coll: database.Users()}
	users, err := userQueries.GetAllUsers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// GetUserRole returns the stored role for an email, defaulting to "user"
// when the user exists but carries no role.
func GetUserRole(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email is required"})
	}
	email = strings.ToLower(email)

	userQueries := queries.UserQueries{Coll: database.Users()}
	user, err := userQueries.GetUserByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	role := user.UserRole
	if role == "" {
		role = utils.RoleUser
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"role": role})
}

func UpdateUserRole(c *fiber.Ctx) error {
	payload := &models.UpdateRoleRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid role"})
	}
	if !utils.IsValidRole(payload.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid role"})
	}

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		log.Println("error parsing user id:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	userQueries := queries.UserQueries{Coll: database.Users()}
	result, err := userQueries.UpdateUserRole(c.Context(), id, payload.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "result": result})
}
