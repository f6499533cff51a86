package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ticket statuses.
const (
	TicketOpen   = "open"
	TicketClosed = "closed"
)

// --- Ticket ---
type Ticket struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Email          string              `bson:"email,omitempty" json:"email,omitempty"`
	BaseResponseID *primitive.ObjectID `bson:"baseResponseId,omitempty" json:"baseResponseId,omitempty"`
	AssignedFormID *primitive.ObjectID `bson:"assignedFormId,omitempty" json:"assignedFormId,omitempty"`
	Status         string              `bson:"status" json:"status"`
	CreatedAt      time.Time           `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

type CreateTicketRequest struct {
	Email         string `json:"email" validate:"omitempty,email"`
	InitialFormID string `json:"initialFormId"`
}

type AssignFormRequest struct {
	FormID string `json:"formId" validate:"required"`
}
