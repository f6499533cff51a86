package responses

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hasnainotho/formbrick-backend/src/models"
	"github.com/hasnainotho/formbrick-backend/src/services/forms"
	"github.com/hasnainotho/formbrick-backend/src/services/tickets"
)

// mongoStore adapts the mongo-backed services to the workflow engine's
// store port. Per the port contract, lookups map "not found" to nil instead
// of an error.
type mongoStore struct{}

func newStore() *mongoStore {
	return &mongoStore{}
}

func (s *mongoStore) GetFormWithQuestions(ctx context.Context, formID string) (*models.FormWithQuestions, error) {
	oid, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		return nil, nil
	}
	form, err := forms.GetFormByID(ctx, oid)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return form, nil
}

func (s *mongoStore) UpdateResponseStatus(ctx context.Context, responseID, status string) (*models.FormResponse, error) {
	oid, err := primitive.ObjectIDFromHex(responseID)
	if err != nil {
		return nil, nil
	}
	response, err := UpdateResponseStatus(ctx, oid, status)
	if err != nil {
		if errors.Is(err, ErrResponseNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return response, nil
}

func (s *mongoStore) CreateTicket(ctx context.Context, email, assignedFormID, baseResponseID string) (*models.Ticket, error) {
	var formRef *primitive.ObjectID
	if oid, err := primitive.ObjectIDFromHex(assignedFormID); err == nil {
		formRef = &oid
	}
	var responseRef *primitive.ObjectID
	if oid, err := primitive.ObjectIDFromHex(baseResponseID); err == nil {
		responseRef = &oid
	}
	return tickets.CreateTicket(ctx, email, formRef, responseRef)
}
