package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hasnainotho/formbrick-backend/src/models"
)

type fakeStore struct {
	form *models.FormWithQuestions

	statusErr     error
	statusUpdates []string

	ticketErr error
	tickets   []models.Ticket
}

func (s *fakeStore) GetFormWithQuestions(ctx context.Context, formID string) (*models.FormWithQuestions, error) {
	return s.form, nil
}

func (s *fakeStore) UpdateResponseStatus(ctx context.Context, responseID, status string) (*models.FormResponse, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	s.statusUpdates = append(s.statusUpdates, status)
	return &models.FormResponse{Status: status}, nil
}

func (s *fakeStore) CreateTicket(ctx context.Context, email, assignedFormID, baseResponseID string) (*models.Ticket, error) {
	if s.ticketErr != nil {
		return nil, s.ticketErr
	}
	t := models.Ticket{ID: primitive.NewObjectID(), Email: email, Status: models.TicketOpen}
	s.tickets = append(s.tickets, t)
	return &t, nil
}

type fakeNotifier struct {
	sent []string // "to|subject"
}

func (n *fakeNotifier) Notify(to, subject, body string) {
	n.sent = append(n.sent, to+"|"+subject)
}

func logicQuestion(qid string, answer interface{}, actions ...models.WorkflowAction) models.Question {
	return models.Question{
		ID: primitive.NewObjectID(),
		ConditionalLogic: &models.ConditionalLogic{
			Enabled:    true,
			Conditions: []models.Condition{{QuestionID: qid, Operator: models.OpEquals, Value: answer}},
			Workflow:   actions,
		},
	}
}

func TestProcessWorkflowsSetsStatusWhenMatched(t *testing.T) {
	store := &fakeStore{form: &models.FormWithQuestions{Questions: []models.Question{
		logicQuestion("q1", "yes", models.WorkflowAction{Type: models.ActionSetResponseStatus, Status: models.StatusPendingApproval}),
	}}}
	engine := NewEngine(store, &fakeNotifier{})
	response := &models.FormResponse{ID: primitive.NewObjectID(), FormID: primitive.NewObjectID(), Status: models.StatusSubmitted}

	result := engine.ProcessWorkflows(context.Background(), response, map[string]interface{}{"q1": "yes"})

	require.Len(t, result.Actions, 1)
	assert.True(t, result.Actions[0].OK)
	assert.Equal(t, []string{models.StatusPendingApproval}, store.statusUpdates)
	assert.Equal(t, models.StatusPendingApproval, response.Status)
}

func TestProcessWorkflowsSkipsUnmatchedQuestions(t *testing.T) {
	store := &fakeStore{form: &models.FormWithQuestions{Questions: []models.Question{
		logicQuestion("q1", "yes", models.WorkflowAction{Type: models.ActionSetResponseStatus, Status: models.StatusApproved}),
	}}}
	engine := NewEngine(store, &fakeNotifier{})
	response := &models.FormResponse{ID: primitive.NewObjectID(), Status: models.StatusSubmitted}

	result := engine.ProcessWorkflows(context.Background(), response, map[string]interface{}{"q1": "no"})

	assert.Empty(t, result.Actions)
	assert.Empty(t, store.statusUpdates)
	assert.Equal(t, models.StatusSubmitted, response.Status)
}

func TestProcessWorkflowsRejectsUnknownStatus(t *testing.T) {
	store := &fakeStore{form: &models.FormWithQuestions{Questions: []models.Question{
		logicQuestion("q1", "yes", models.WorkflowAction{Type: models.ActionSetResponseStatus, Status: "escalated"}),
	}}}
	engine := NewEngine(store, &fakeNotifier{})
	response := &models.FormResponse{ID: primitive.NewObjectID(), Status: models.StatusSubmitted}

	result := engine.ProcessWorkflows(context.Background(), response, map[string]interface{}{"q1": "yes"})

	require.Len(t, result.Actions, 1)
	assert.False(t, result.Actions[0].OK)
	assert.Empty(t, store.statusUpdates)
	assert.Equal(t, models.StatusSubmitted, response.Status)
}

func TestProcessWorkflowsNextFormLastWriterWins(t *testing.T) {
	store := &fakeStore{form: &models.FormWithQuestions{Questions: []models.Question{
		logicQuestion("q1", "yes", models.WorkflowAction{Type: models.ActionSetNextForm, NextFormID: "form-a"}),
		logicQuestion("q1", "yes", models.WorkflowAction{Type: models.ActionSetNextForm, NextFormID: "form-b"}),
	}}}
	engine := NewEngine(store, &fakeNotifier{})
	response := &models.FormResponse{ID: primitive.NewObjectID()}

	result := engine.ProcessWorkflows(context.Background(), response, map[string]interface{}{"q1": "yes"})

	assert.Equal(t, "form-b", result.NextFormID)
	assert.Len(t, result.Actions, 2)
}

func TestProcessWorkflowsCreateTicketNotifies(t *testing.T) {
	store := &fakeStore{form: &models.FormWithQuestions{Questions: []models.Question{
		logicQuestion("q1", "yes", models.WorkflowAction{Type: models.ActionCreateTicket, NotifyEmail: true}),
	}}}
	notifier := &fakeNotifier{}
	engine := NewEngine(store, notifier)
	response := &models.FormResponse{ID: primitive.NewObjectID(), RespondentEmail: "user@example.com"}

	result := engine.ProcessWorkflows(context.Background(), response, map[string]interface{}{"q1": "yes"})

	require.Len(t, store.tickets, 1)
	assert.Equal(t, "user@example.com", store.tickets[0].Email)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "user@example.com|Ticket created", notifier.sent[0])
	require.Len(t, result.Actions, 1)
	assert.True(t, result.Actions[0].OK)
	assert.Equal(t, store.tickets[0].ID.Hex(), result.Actions[0].Detail)
}

func TestProcessWorkflowsActionFailureIsIsolated(t *testing.T) {
	store := &fakeStore{
		statusErr: errors.New("write timeout"),
		form: &models.FormWithQuestions{Questions: []models.Question{
			logicQuestion("q1", "yes",
				models.WorkflowAction{Type: models.ActionSetResponseStatus, Status: models.StatusApproved},
				models.WorkflowAction{Type: models.ActionCreateTicket},
			),
		}},
	}
	engine := NewEngine(store, &fakeNotifier{})
	response := &models.FormResponse{ID: primitive.NewObjectID(), RespondentEmail: "user@example.com", Status: models.StatusSubmitted}

	result := engine.ProcessWorkflows(context.Background(), response, map[string]interface{}{"q1": "yes"})

	require.Len(t, result.Actions, 2)
	assert.False(t, result.Actions[0].OK)
	assert.Equal(t, "write timeout", result.Actions[0].Error)
	assert.True(t, result.Actions[1].OK)
	assert.Len(t, store.tickets, 1)
	assert.Equal(t, models.StatusSubmitted, response.Status)
}

func TestProcessWorkflowsSendEmailWithoutRecipientIsSkipped(t *testing.T) {
	store := &fakeStore{form: &models.FormWithQuestions{Questions: []models.Question{
		logicQuestion("q1", "yes", models.WorkflowAction{Type: models.ActionSendEmail, Subject: "Hi"}),
	}}}
	notifier := &fakeNotifier{}
	engine := NewEngine(store, notifier)
	response := &models.FormResponse{ID: primitive.NewObjectID()} // no respondent email

	result := engine.ProcessWorkflows(context.Background(), response, map[string]interface{}{"q1": "yes"})

	assert.Empty(t, notifier.sent)
	require.Len(t, result.Actions, 1)
	assert.True(t, result.Actions[0].OK)
}

func TestProcessWorkflowsUnknownActionIgnored(t *testing.T) {
	store := &fakeStore{form: &models.FormWithQuestions{Questions: []models.Question{
		logicQuestion("q1", "yes",
			models.WorkflowAction{Type: "launch_rocket"},
			models.WorkflowAction{Type: models.ActionSetNextForm, NextFormID: "form-a"},
		),
	}}}
	engine := NewEngine(store, &fakeNotifier{})
	response := &models.FormResponse{ID: primitive.NewObjectID()}

	result := engine.ProcessWorkflows(context.Background(), response, map[string]interface{}{"q1": "yes"})

	require.Len(t, result.Actions, 1)
	assert.Equal(t, "form-a", result.NextFormID)
}

func TestProcessWorkflowsMissingFormYieldsEmptyResult(t *testing.T) {
	engine := NewEngine(&fakeStore{form: nil}, &fakeNotifier{})
	response := &models.FormResponse{ID: primitive.NewObjectID()}

	result := engine.ProcessWorkflows(context.Background(), response, map[string]interface{}{"q1": "yes"})

	assert.Empty(t, result.Actions)
	assert.Empty(t, result.NextFormID)
}

func TestBuildAnswerMapPrecedence(t *testing.T) {
	text := "hello"
	num := 4.0
	date := "2025-01-01"

	q1 := primitive.NewObjectID()
	q2 := primitive.NewObjectID()
	q3 := primitive.NewObjectID()
	q4 := primitive.NewObjectID()
	q5 := primitive.NewObjectID()

	m := BuildAnswerMap([]models.Answer{
		{QuestionID: q1, AnswerText: &text, AnswerNumber: &num},
		{QuestionID: q2, AnswerNumber: &num, AnswerDate: &date},
		{QuestionID: q3, AnswerJSON: []interface{}{"a", "b"}, AnswerDate: &date},
		{QuestionID: q4, AnswerDate: &date},
		{QuestionID: q5},
	})

	assert.Equal(t, "hello", m[q1.Hex()])
	assert.Equal(t, 4.0, m[q2.Hex()])
	assert.Equal(t, []interface{}{"a", "b"}, m[q3.Hex()])
	assert.Equal(t, date, m[q4.Hex()])
	_, ok := m[q5.Hex()]
	assert.False(t, ok)
}
