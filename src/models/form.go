package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Form ---
type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	FormType    string             `bson:"formType,omitempty" json:"formType,omitempty"`
	IsTemplate  bool               `bson:"isTemplate" json:"isTemplate"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	Settings    interface{}        `bson:"settings,omitempty" json:"settings,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// --- Question ---
type Question struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID           primitive.ObjectID `bson:"formId,omitempty" json:"formId,omitempty"`
	QuestionText     string             `bson:"questionText" json:"questionText"`
	QuestionType     string             `bson:"questionType" json:"questionType"`
	Options          []string           `bson:"options,omitempty" json:"options,omitempty"`
	ValidationRules  interface{}        `bson:"validationRules,omitempty" json:"validationRules,omitempty"`
	ConditionalLogic *ConditionalLogic  `bson:"conditionalLogic,omitempty" json:"conditionalLogic,omitempty"`
	IsRequired       bool               `bson:"isRequired" json:"isRequired"`
	OrderIndex       int                `bson:"orderIndex" json:"orderIndex"`
	Section          string             `bson:"section,omitempty" json:"section,omitempty"`
	HelpText         string             `bson:"helpText,omitempty" json:"helpText,omitempty"`
}

// ConditionalLogic is the declarative show/hide rule attached to a question,
// plus the workflow actions that run when the rule matches.
type ConditionalLogic struct {
	Enabled    bool             `bson:"enabled" json:"enabled"`
	Action     string           `bson:"action,omitempty" json:"action,omitempty"` // "show" (default) or "hide"
	Conditions []Condition      `bson:"conditions,omitempty" json:"conditions,omitempty"`
	Workflow   []WorkflowAction `bson:"workflow,omitempty" json:"workflow,omitempty"`
}

// Condition compares the answer of another question on the same form
// against a fixed value. All conditions on a question must hold (AND).
type Condition struct {
	QuestionID string      `bson:"questionId" json:"questionId"`
	Operator   string      `bson:"operator" json:"operator"`
	Value      interface{} `bson:"value" json:"value"`
}

// Condition operators.
const (
	OpEquals      = "equals"
	OpNotEquals   = "not_equals"
	OpContains    = "contains"
	OpGreaterThan = "greater_than"
	OpLessThan    = "less_than"
)

// Conditional logic actions.
const (
	LogicActionShow = "show"
	LogicActionHide = "hide"
)

// WorkflowAction is a tagged variant: the Type field decides which of the
// optional fields are meaningful. Unknown types are ignored by the engine.
type WorkflowAction struct {
	Type string `bson:"type" json:"type"`

	// set_response_status
	Status string `bson:"status,omitempty" json:"status,omitempty"`

	// create_ticket
	InitialFormID string `bson:"initialFormId,omitempty" json:"initialFormId,omitempty"`
	NotifyEmail   bool   `bson:"notifyEmail,omitempty" json:"notifyEmail,omitempty"`
	EmailSubject  string `bson:"emailSubject,omitempty" json:"emailSubject,omitempty"`
	EmailBody     string `bson:"emailBody,omitempty" json:"emailBody,omitempty"`

	// create_ticket / send_email
	Email string `bson:"email,omitempty" json:"email,omitempty"`

	// send_email
	Subject string `bson:"subject,omitempty" json:"subject,omitempty"`
	Body    string `bson:"body,omitempty" json:"body,omitempty"`

	// set_next_form
	NextFormID string `bson:"nextFormId,omitempty" json:"nextFormId,omitempty"`
}

// Workflow action types.
const (
	ActionSetResponseStatus = "set_response_status"
	ActionCreateTicket      = "create_ticket"
	ActionSendEmail         = "send_email"
	ActionSetNextForm       = "set_next_form"
)

// --- Request / Response DTOs ---

type CreateFormRequest struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	FormType    string      `json:"formType"`
	IsTemplate  bool        `json:"isTemplate"`
	IsActive    *bool       `json:"isActive"`
	Settings    interface{} `json:"settings"`
	Questions   []Question  `json:"questions"`
}

type UpdateFormRequest struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	FormType    string      `json:"formType"`
	IsTemplate  bool        `json:"isTemplate"`
	IsActive    *bool       `json:"isActive"`
	Settings    interface{} `json:"settings"`
}

// QuestionUpdate is the allow-listed set of updatable question fields.
// Only non-nil fields are written; unknown keys never reach the database.
type QuestionUpdate struct {
	QuestionText     *string           `json:"questionText"`
	QuestionType     *string           `json:"questionType"`
	Options          *[]string         `json:"options"`
	ValidationRules  *interface{}      `json:"validationRules"`
	ConditionalLogic *ConditionalLogic `json:"conditionalLogic"`
	IsRequired       *bool             `json:"isRequired"`
	OrderIndex       *int              `json:"orderIndex"`
	Section          *string           `json:"section"`
	HelpText         *string           `json:"helpText"`
}

type FormWithQuestions struct {
	Form      Form       `json:"form"`
	Questions []Question `json:"questions"`
}

type PaginatedFormsResponse struct {
	Forms      []Form `json:"forms"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}
