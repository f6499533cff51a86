package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	FormCollection     *mongo.Collection
	QuestionCollection *mongo.Collection
	ResponseCollection *mongo.Collection
	TicketCollection   *mongo.Collection
)

const dbName = "formbrick"

// ConnectMongoDB connects to MongoDB exactly once and wires the shared
// collection handles.
func ConnectMongoDB() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("MongoDB ping failed:", connectErr)
			return
		}

		log.Println("MongoDB connected successfully")

		FormCollection = GetCollection(dbName, "forms")
		QuestionCollection = GetCollection(dbName, "questions")
		ResponseCollection = GetCollection(dbName, "form_responses")
		TicketCollection = GetCollection(dbName, "tickets")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
