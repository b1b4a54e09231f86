package database

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

const dbName = "marketDB"

func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	return fmt.Sprintf("mongodb+srv://%s:%s@cluster0.d4gmgst.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0", user, pass)
}

func InitDB(ctx context.Context) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(mongoURI()).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("error pinging mongo: %w", err)
	}

	Client = client
	DB = client.Database(dbName)

	log.Println("Successfully connected to the database")
	return DB, nil
}

func CloseDB(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	if err := Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error closing database connection: %w", err)
	}
	log.Println("Database connection closed")
	return nil
}

func Users() *mongo.Collection {
	return DB.Collection("users")
}

func Products() *mongo.Collection {
	return DB.Collection("products")
}

func Advertisements() *mongo.Collection {
	return DB.Collection("advertisements")
}
