package tickets

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hasnainotho/formbrick-backend/src/database"
	"github.com/hasnainotho/formbrick-backend/src/models"
)

var ErrTicketNotFound = errors.New("ticket not found")

var ticketsCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	ticketsCollection = database.TicketCollection
	if ticketsCollection == nil {
		log.Fatal("Failed to get the tickets collection")
	}
}

// CreateTicket inserts a new open ticket. assignedFormID and baseResponseID
// are optional references; invalid ids are treated as absent.
func CreateTicket(ctx context.Context, email string, assignedFormID, baseResponseID *primitive.ObjectID) (*models.Ticket, error) {
	ticket := &models.Ticket{
		Email:          email,
		AssignedFormID: assignedFormID,
		BaseResponseID: baseResponseID,
		Status:         models.TicketOpen,
		CreatedAt:      time.Now(),
	}

	result, err := ticketsCollection.InsertOne(ctx, ticket)
	if err != nil {
		return nil, err
	}

	ticket.ID = result.InsertedID.(primitive.ObjectID)

	log.Printf("[ticket] created id=%s email=%s", ticket.ID.Hex(), email)
	return ticket, nil
}

// GetTicketByID retrieves a ticket by its ID
func GetTicketByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := ticketsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&ticket)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

// AssignFormToTicket points the ticket at the form its holder should fill next
func AssignFormToTicket(ctx context.Context, ticketID, formID primitive.ObjectID) (*models.Ticket, error) {
	result := ticketsCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": ticketID},
		bson.M{"$set": bson.M{"assignedFormId": formID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var ticket models.Ticket
	if err := result.Decode(&ticket); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}
