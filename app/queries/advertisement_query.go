package queries

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/harvestly/market-backend/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrAdvertisementNotFound = errors.New("advertisement not found")

type AdvertisementQueries struct {
	Coll *mongo.Collection
}

func (q *AdvertisementQueries) CreateAdvertisement(ctx context.Context, ad *models.Advertisement) (*mongo.InsertOneResult, error) {
	result, err := q.Coll.InsertOne(ctx, ad)
	if err != nil {
		log.Println("error creating advertisement:", err)
		return nil, errors.New("unable to create advertisement, DB error")
	}
	return result, nil
}

func (q *AdvertisementQueries) GetAllAdvertisements(ctx context.Context) ([]models.Advertisement, error) {
	var ads []models.Advertisement

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := q.Coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("error listing advertisements:", err)
		return ads, errors.New("unable to query advertisements")
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &ads); err != nil {
		log.Println("error decoding advertisements:", err)
		return ads, errors.New("unable to decode advertisements")
	}
	return ads, nil
}

func (q *AdvertisementQueries) GetAdvertisementByID(ctx context.Context, id primitive.ObjectID) (models.Advertisement, error) {
	ad := models.Advertisement{}

	err := q.Coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ad)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ad, ErrAdvertisementNotFound
		}
		log.Println("error fetching advertisement:", err)
		return ad, errors.New("unable to get advertisement, DB error")
	}

	return ad, nil
}

func (q *AdvertisementQueries) GetAdvertisementsByVendor(ctx context.Context, email string) ([]models.Advertisement, error) {
	var ads []models.Advertisement

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := q.Coll.Find(ctx, bson.M{"vendor_email": email}, opts)
	if err != nil {
		log.Println("error listing vendor advertisements:", err)
		return ads, errors.New("unable to query vendor advertisements")
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &ads); err != nil {
		log.Println("error decoding vendor advertisements:", err)
		return ads, errors.New("unable to decode vendor advertisements")
	}
	return ads, nil
}

// UpdateAdvertisement overwrites the mutable display fields unconditionally;
// callers must send the complete payload.
func (q *AdvertisementQueries) UpdateAdvertisement(ctx context.Context, id primitive.ObjectID, req *models.UpdateAdvertisementRequest) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"ad_title":    req.AdTitle,
		"description": req.Description,
		"image_url":   req.ImageURL,
		"updated_at":  time.Now(),
	}}

	result, err := q.Coll.UpdateByID(ctx, id, update)
	if err != nil {
		log.Println("error updating advertisement:", err)
		return nil, errors.New("unable to update advertisement, DB error")
	}
	return result, nil
}

// UpdateAdvertisementStatus overwrites the status unconditionally; no
// transition guard beyond enum membership at the handler.
func (q *AdvertisementQueries) UpdateAdvertisementStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}

	result, err := q.Coll.UpdateByID(ctx, id, update)
	if err != nil {
		log.Println("error updating advertisement status:", err)
		return nil, errors.New("unable to update advertisement status, DB error")
	}
	return result, nil
}

func (q *AdvertisementQueries) DeleteAdvertisement(ctx context.Context, id primitive.ObjectID) error {
	result, err := q.Coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Println("error deleting advertisement:", err)
		return errors.New("unable to delete advertisement, DB error")
	}
	if result.DeletedCount == 0 {
		return ErrAdvertisementNotFound
	}
	return nil
}
