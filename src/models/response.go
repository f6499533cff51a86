package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response statuses. Creation starts at "submitted" unless the caller asks
// for an explicit initial status; approved/rejected are terminal and only
// reached through an approval decision.
const (
	StatusDraft           = "draft"
	StatusSubmitted       = "submitted"
	StatusPendingApproval = "pending_approval"
	StatusApproved        = "approved"
	StatusRejected        = "rejected"
)

// IsValidResponseStatus reports whether s is one of the enumerated response
// statuses. Workflow actions that try to write anything else are rejected.
func IsValidResponseStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusPendingApproval, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// --- FormResponse ---
type FormResponse struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID          primitive.ObjectID `bson:"formId" json:"formId"`
	RespondentID    string             `bson:"respondentId,omitempty" json:"respondentId,omitempty"`
	RespondentEmail string             `bson:"respondentEmail,omitempty" json:"respondentEmail,omitempty"`
	ReferenceID     string             `bson:"referenceId,omitempty" json:"referenceId,omitempty"`
	ReferenceType   string             `bson:"referenceType,omitempty" json:"referenceType,omitempty"`
	Status          string             `bson:"status" json:"status"`
	Answers         []Answer           `bson:"answers,omitempty" json:"answers,omitempty"`
	SubmittedAt     time.Time          `bson:"submittedAt,omitempty" json:"submittedAt,omitempty"`
}

// Answer carries exactly one populated value slot; which one depends on the
// question type but the engine never enforces that.
type Answer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	QuestionID   primitive.ObjectID `bson:"questionId" json:"questionId"`
	AnswerText   *string            `bson:"answerText,omitempty" json:"answerText,omitempty"`
	AnswerNumber *float64           `bson:"answerNumber,omitempty" json:"answerNumber,omitempty"`
	AnswerDate   *string            `bson:"answerDate,omitempty" json:"answerDate,omitempty"`
	AnswerJSON   interface{}        `bson:"answerJson,omitempty" json:"answerJson,omitempty"`
}

// --- Request DTOs ---

type AnswerIn struct {
	QuestionID   string      `json:"questionId" validate:"required"`
	AnswerText   *string     `json:"answerText"`
	AnswerNumber *float64    `json:"answerNumber"`
	AnswerDate   *string     `json:"answerDate"`
	AnswerJSON   interface{} `json:"answerJson"`
}

type SubmitResponseRequest struct {
	FormID          string     `json:"formId" validate:"required"`
	RespondentID    string     `json:"respondentId"`
	RespondentEmail string     `json:"respondentEmail"`
	ReferenceID     string     `json:"referenceId"`
	ReferenceType   string     `json:"referenceType"`
	Status          string     `json:"status"`
	Answers         []AnswerIn `json:"answers"`
}

// ResponseUpdate is the allow-listed set of updatable response fields.
type ResponseUpdate struct {
	RespondentID    *string `json:"respondentId"`
	RespondentEmail *string `json:"respondentEmail"`
	ReferenceID     *string `json:"referenceId"`
	ReferenceType   *string `json:"referenceType"`
	Status          *string `json:"status"`
}

type ApproveRequest struct {
	Approve bool `json:"approve"`
}
