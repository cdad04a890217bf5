package database

import (
	"context"
	"log"
	"time"

	"scopex/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance. It stays nil when no
// MONGO_URI is configured; the remote lead store is optional and the service
// runs fully against the local cache without it.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection if one is configured.
func InitDB() {
	uri := config.AppConfig.MongoURI
	if uri == "" {
		log.Println("MONGO_URI not set, remote lead store disabled")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Printf("failed to connect to MongoDB, remote lead store disabled: %v", err)
		return
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("failed to ping MongoDB, remote lead store disabled: %v", err)
		return
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}

// RemoteEnabled reports whether the remote lead store is reachable at startup.
func RemoteEnabled() bool {
	return MongoClient != nil
}
