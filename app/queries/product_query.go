package queries

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/harvestly/market-backend/app/models"
	"github.com/harvestly/market-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrProductNotFound = errors.New("product not found")

// homepageLimit caps the curated listing at one product per market.
const homepageLimit = 6

type ProductQueries struct {
	Coll *mongo.Collection
}

func (q *ProductQueries) CreateProduct(ctx context.Context, p *models.Product) (*mongo.InsertOneResult, error) {
	result, err := q.Coll.InsertOne(ctx, p)
	if err != nil {
		log.Println("error creating product:", err)
		return nil, errors.New("unable to create product, DB error")
	}
	return result, nil
}

func (q *ProductQueries) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := q.Coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("error listing products:", err)
		return products, errors.New("unable to query products")
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &products); err != nil {
		log.Println("error decoding products:", err)
		return products, errors.New("unable to decode products")
	}
	return products, nil
}

func (q *ProductQueries) GetProductByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	product := models.Product{}

	err := q.Coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, ErrProductNotFound
		}
		log.Println("error fetching product:", err)
		return product, errors.New("unable to get product, DB error")
	}

	return product, nil
}

func (q *ProductQueries) GetProductsByVendor(ctx context.Context, email string) ([]models.Product, error) {
	var products []models.Product

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := q.Coll.Find(ctx, bson.M{"vendor_email": email}, opts)
	if err != nil {
		log.Println("error listing vendor products:", err)
		return products, errors.New("unable to query vendor products")
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &products); err != nil {
		log.Println("error decoding vendor products:", err)
		return products, errors.New("unable to decode vendor products")
	}
	return products, nil
}

// GetApprovedLimitedProducts builds the homepage feed: approved products
// only, at most one per market name (the most recently updated one), newest
// first, capped at homepageLimit.
func (q *ProductQueries) GetApprovedLimitedProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "status", Value: utils.ProductApproved}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "updated_at", Value: -1}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$market_name"},
			{Key: "doc", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
		}}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$doc"}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "updated_at", Value: -1}}}},
		bson.D{{Key: "$limit", Value: homepageLimit}},
	}

	cursor, err := q.Coll.Aggregate(ctx, pipeline)
	if err != nil {
		log.Println("error aggregating approved products:", err)
		return products, errors.New("unable to query approved products")
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &products); err != nil {
		log.Println("error decoding approved products:", err)
		return products, errors.New("unable to decode approved products")
	}
	return products, nil
}

// UpsertDailyPrice records a price point for today's UTC date, overwriting
// today's entry when one exists and appending otherwise. price_per_unit and
// updated_at always follow. Extra display fields (the PUT variant) are merged
// into the same $set so the whole change lands in one update call.
//
// The read and the write are two separate store calls; concurrent writers on
// the same product and day race last-writer-wins.
func (q *ProductQueries) UpsertDailyPrice(ctx context.Context, id primitive.ObjectID, price float64, updatedBy string, display bson.M) (*mongo.UpdateResult, error) {
	product, err := q.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Format("2006-01-02")
	update := buildDailyPriceUpdate(product.Prices, today, price, updatedBy, display)

	result, err := q.Coll.UpdateByID(ctx, id, update)
	if err != nil {
		log.Println("error updating product price:", err)
		return nil, errors.New("unable to update product price, DB error")
	}
	return result, nil
}

// buildDailyPriceUpdate produces the update document for a daily price
// upsert: a positional $set when today already has an entry, a $push onto the
// tail otherwise. price_per_unit, updated_at and any display fields ride in
// the same $set.
func buildDailyPriceUpdate(prices []models.PriceEntry, today string, price float64, updatedBy string, display bson.M) bson.M {
	set := bson.M{
		"price_per_unit": price,
		"updated_at":     time.Now(),
	}
	for k, v := range display {
		set[k] = v
	}

	update := bson.M{"$set": set}
	if i := models.PriceEntryIndex(prices, today); i >= 0 {
		set[fmt.Sprintf("prices.%d.price", i)] = price
		set[fmt.Sprintf("prices.%d.updated_by", i)] = updatedBy
	} else {
		update["$push"] = bson.M{"prices": models.PriceEntry{
			Date:      today,
			Price:     price,
			UpdatedBy: updatedBy,
		}}
	}
	return update
}

// UpdateProductStatus overwrites the status unconditionally; there is no
// transition guard, any member of the enum may follow any other. Rejection
// metadata is kept only while the status is "rejected".
func (q *ProductQueries) UpdateProductStatus(ctx context.Context, id primitive.ObjectID, status, reason, feedback string) (*mongo.UpdateResult, error) {
	set := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if status == utils.ProductRejected {
		set["rejection_reason"] = reason
		set["rejection_feedback"] = feedback
	} else {
		set["rejection_reason"] = nil
		set["rejection_feedback"] = nil
	}

	result, err := q.Coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		log.Println("error updating product status:", err)
		return nil, errors.New("unable to update product status, DB error")
	}
	return result, nil
}

func (q *ProductQueries) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	result, err := q.Coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Println("error deleting product:", err)
		return errors.New("unable to delete product, DB error")
	}
	if result.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}
