package queries

import (
	"context"
	"errors"
	"log"

	"github.com/harvestly/market-backend/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrUserNotFound = errors.New("user not found")

type UserQueries struct {
	Coll *mongo.Collection
}

func (q *UserQueries) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	user := models.User{}

	err := q.Coll.FindOne(ctx, bson.M{"user_email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, ErrUserNotFound
		}
		log.Println("error fetching user:", err)
		return user, errors.New("unable to get user, DB error")
	}

	return user, nil
}

// CreateUser inserts the raw document as supplied by the caller. Beyond the
// normalized email and timestamps set by the controller there is no schema
// enforcement; unknown fields are stored verbatim.
func (q *UserQueries) CreateUser(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	result, err := q.Coll.InsertOne(ctx, doc)
	if err != nil {
		log.Println("error creating user:", err)
		return nil, errors.New("unable to create user, DB error")
	}
	return result, nil
}

func (q *UserQueries) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	opts := options.Find().SetSort(bson.D{{Key: "user_email", Value: 1}})
	cursor, err := q.Coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("error listing users:", err)
		return users, errors.New("unable to query users")
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &users); err != nil {
		log.Println("error decoding users:", err)
		return users, errors.New("unable to decode users")
	}
	return users, nil
}

func (q *UserQueries) UpdateUserRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"user_role": role}}

	result, err := q.Coll.UpdateByID(ctx, id, update)
	if err != nil {
		log.Println("error updating user role:", err)
		return nil, errors.New("unable to update user role, DB error")
	}
	return result, nil
}
