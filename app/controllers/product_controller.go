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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateProduct inserts a listing with status forced to "pending" and the
// price history seeded with today's entry, so a fresh product already
// satisfies the one-entry-per-day shape.
func CreateProduct(c *fiber.Ctx) error {
	payload := &models.CreateProductRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	now := time.Now()
	vendorEmail := strings.ToLower(payload.VendorEmail)
	product := &models.Product{
		VendorEmail:       vendorEmail,
		VendorName:        payload.VendorName,
		MarketName:        payload.MarketName,
		MarketDescription: payload.MarketDescription,
		ItemName:          payload.ItemName,
		ItemDescription:   payload.ItemDescription,
		ImageURL:          payload.ImageURL,
		PricePerUnit:      payload.PricePerUnit,
		Prices: []models.PriceEntry{{
			Date:      now.UTC().Format("2006-01-02"),
			Price:     payload.PricePerUnit,
			UpdatedBy: vendorEmail,
		}},
		Status:    utils.ProductPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	productQueries := queries.ProductQueries{Coll: database.Products()}
	result, err := productQueries.CreateProduct(c.Context(), product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Product created successfully",
		"insertedId": result.InsertedID,
	})
}

func GetProducts(c *fiber.Ctx) error {
	productQueries := queries.ProductQueries{Coll: database.Products()}
	products, err := productQueries.GetAllProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

func GetProductByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		log.Println("error parsing product id:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	productQueries := queries.ProductQueries{Coll: database.Products()}
	product, err := productQueries.GetProductByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// UpdateProduct is the full-payload PUT: display fields are overwritten
// unconditionally (empty values included) and the price lands in today's
// history entry. Callers must send the complete document.
func UpdateProduct(c *fiber.Ctx) error {
	payload := &models.UpdateProductRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Price is required"})
	}

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		log.Println("error parsing product id:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	display := bson.M{
		"vendor_name":        payload.VendorName,
		"market_name":        payload.MarketName,
		"market_description": payload.MarketDescription,
		"item_name":          payload.ItemName,
		"item_description":   payload.ItemDescription,
		"image_url":          payload.ImageURL,
	}

	productQueries := queries.ProductQueries{Coll: database.Products()}
	result, err := productQueries.UpsertDailyPrice(c.Context(), id, payload.PricePerUnit, payload.UpdatedBy, display)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"result":  result,
	})
}

func UpdateProductPrice(c *fiber.Ctx) error {
	payload := &models.UpdatePriceRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Price is required"})
	}

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		log.Println("error parsing product id:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	productQueries := queries.ProductQueries{Coll: database.Products()}
	result, err := productQueries.UpsertDailyPrice(c.Context(), id, payload.Price, payload.UpdatedBy, nil)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Price updated successfully",
		"result":  result,
	})
}

func UpdateProductStatus(c *fiber.Ctx) error {
	payload := &models.ProductStatusRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid status"})
	}
	if !utils.IsValidProductStatus(payload.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid status"})
	}

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		log.Println("error parsing product id:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	productQueries := queries.ProductQueries{Coll: database.Products()}
	result, err := productQueries.UpdateProductStatus(c.Context(), id, payload.Status, payload.Reason, payload.Feedback)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "result": result})
}

func DeleteProduct(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		log.Println("error parsing product id:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	productQueries := queries.ProductQueries{Coll: database.Products()}
	if err := productQueries.DeleteProduct(c.Context(), id); err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}

func GetProductsByVendor(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email is required"})
	}
	email = strings.ToLower(email)

	productQueries := queries.ProductQueries{Coll: database.Products()}
	products, err := productQueries.GetProductsByVendor(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

func GetApprovedLimitedProducts(c *fiber.Ctx) error {
	productQueries := queries.ProductQueries{Coll: database.Products()}
	products, err := productQueries.GetApprovedLimitedProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}
	return c.Status(fiber.StatusOK).JSON(products)
}
