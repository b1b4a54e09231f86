package controllers

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harvestly/market-backend/app/models"
	"github.com/harvestly/market-backend/app/queries"
	"github.com/harvestly/market-backend/pkg/database"
	"github.com/harvestly/market-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateAdvertisement inserts an ad with status forced to "pending"
// regardless of anything the caller sends.
func CreateAdvertisement(c *fiber.Ctx) error {
	payload := &models.CreateAdvertisementRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	now := time.Now()
	ad := &models.Advertisement{
		VendorEmail: strings.ToLower(payload.VendorEmail),
		AdTitle:     payload.AdTitle,
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
		Status:      utils.AdPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	adQueries := queries.AdvertisementQueries{Coll: database.Advertisements()}
	result, err := adQueries.CreateAdvertisement(c.Context(), ad)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Advertisement created successfully",
		"insertedId": result.InsertedID,
	})
}

func GetAdvertisements(c *fiber.Ctx) error {
	adQueries := queries.AdvertisementQueries{Coll: database.Advertisements()}
	ads, err := adQueries.GetAllAdvertisements(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}
	return c.Status(fiber.StatusOK).JSON(ads)
}

func GetAdvertisementByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		log.Println("error parsing advertisement id:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	adQueries := queries.AdvertisementQueries{Coll: database.Advertisements()}
	ad, err := adQueries.GetAdvertisementByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrAdvertisementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Advertisement not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}
	return c.Status(fiber.StatusOK).JSON(ad)
}

func GetAdvertisementsByVendor(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email is required"})
	}
	email = strings.ToLower(email)

	adQueries := queries.AdvertisementQueries{Coll: database.Advertisements()}
	ads, err := adQueries.GetAdvertisementsByVendor(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}
	return c.Status(fiber.StatusOK).JSON(ads)
}

// UpdateAdvertisement overwrites the mutable fields unconditionally, so a
// partial payload blanks whatever it omits.
func UpdateAdvertisement(c *fiber.Ctx) error {
	payload := &models.UpdateAdvertisementRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		log.Println("error parsing advertisement id:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	adQueries := queries.AdvertisementQueries{Coll: database.Advertisements()}
	result, err := adQueries.UpdateAdvertisement(c.Context(), id, payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Advertisement updated successfully",
		"result":  result,
	})
}

func UpdateAdvertisementStatus(c *fiber.Ctx) error {
	payload := &models.AdvertisementStatusRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid status"})
	}
	if !utils.IsValidAdStatus(payload.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid status"})
	}

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		log.Println("error parsing advertisement id:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	adQueries := queries.AdvertisementQueries{Coll: database.Advertisements()}
	result, err := adQueries.UpdateAdvertisementStatus(c.Context(), id, payload.Status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "result": result})
}

func DeleteAdvertisement(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		log.Println("error parsing advertisement id:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	adQueries := queries.AdvertisementQueries{Coll: database.Advertisements()}
	if err := adQueries.DeleteAdvertisement(c.Context(), id); err != nil {
		if errors.Is(err, queries.ErrAdvertisementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Advertisement not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Advertisement deleted successfully",
	})
}
