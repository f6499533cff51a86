package workflow

import (
	"context"
	"log"

	"github.com/hasnainotho/formbrick-backend/src/models"
)

// Store is the persistence surface the engine needs. Lookups report absence
// with a nil value, never an error.
type Store interface {
	GetFormWithQuestions(ctx context.Context, formID string) (*models.FormWithQuestions, error)
	UpdateResponseStatus(ctx context.Context, responseID, status string) (*models.FormResponse, error)
	CreateTicket(ctx context.Context, email, assignedFormID, baseResponseID string) (*models.Ticket, error)
}

// Notifier delivers a notification best-effort. Failures are logged by the
// implementation and never surface here.
type Notifier interface {
	Notify(to, subject, body string)
}

// Result is the aggregate outcome of one workflow pass over a response.
type Result struct {
	NextFormID string         `json:"nextFormId,omitempty"`
	Actions    []ActionResult `json:"actions,omitempty"`
}

// Engine evaluates per-question conditional logic after a response
// submission and dispatches the attached workflow actions.
type Engine struct {
	store    Store
	notifier Notifier
}

func NewEngine(store Store, notifier Notifier) *Engine {
	return &Engine{store: store, notifier: notifier}
}

// ProcessWorkflows walks every question on the response's form, evaluates
// its condition set against the answer map, and runs the matched questions'
// workflow actions in order. It never returns an error: the submission that
// triggered it has already been persisted, so every failure here degrades
// to a logged, partial result.
func (e *Engine) ProcessWorkflows(ctx context.Context, response *models.FormResponse, answers map[string]interface{}) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[workflow] recovered from panic processing response=%s: %v", response.ID.Hex(), r)
		}
	}()

	form, err := e.store.GetFormWithQuestions(ctx, response.FormID.Hex())
	if err != nil {
		log.Printf("[workflow] load form %s: %v", response.FormID.Hex(), err)
		return result
	}
	if form == nil {
		return result
	}

	for _, q := range form.Questions {
		if !Matches(q.ConditionalLogic, answers) {
			continue
		}

		nextFormID, results := e.runActions(ctx, response, q.ConditionalLogic.Workflow)
		result.Actions = append(result.Actions, results...)
		if nextFormID != "" {
			// last writer wins when several questions redirect
			result.NextFormID = nextFormID
		}
	}

	return result
}

// BuildAnswerMap reduces each answer to a single representative scalar,
// keyed by question id. Precedence: text > number > structured json > date.
func BuildAnswerMap(answers []models.Answer) map[string]interface{} {
	m := make(map[string]interface{}, len(answers))
	for _, a := range answers {
		qid := a.QuestionID.Hex()
		switch {
		case a.AnswerText != nil:
			m[qid] = *a.AnswerText
		case a.AnswerNumber != nil:
			m[qid] = *a.AnswerNumber
		case a.AnswerJSON != nil:
			m[qid] = a.AnswerJSON
		case a.AnswerDate != nil:
			m[qid] = *a.AnswerDate
		}
	}
	return m
}
