package workflow

import (
	"context"
	"log"

	"github.com/hasnainotho/formbrick-backend/src/models"
)

// ActionResult records the outcome of one dispatched workflow action.
// Failures stay in the log instead of propagating, so a test or an operator
// can still see what happened.
type ActionResult struct {
	Type   string `json:"type"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

// runActions executes a matched question's workflow list strictly in order.
// Each action is isolated: a failing ticket insert or notification must not
// stop the actions after it.
func (e *Engine) runActions(ctx context.Context, response *models.FormResponse, actions []models.WorkflowAction) (nextFormID string, results []ActionResult) {
	for _, act := range actions {
		switch act.Type {
		case models.ActionSetResponseStatus:
			results = append(results, e.setResponseStatus(ctx, response, act))

		case models.ActionCreateTicket:
			results = append(results, e.createTicket(ctx, response, act))

		case models.ActionSendEmail:
			results = append(results, e.sendEmail(response, act))

		case models.ActionSetNextForm:
			if act.NextFormID != "" {
				nextFormID = act.NextFormID
				results = append(results, ActionResult{Type: act.Type, OK: true, Detail: act.NextFormID})
			}

		default:
			// unknown action types are a forward-compatible no-op
		}
	}
	return nextFormID, results
}

func (e *Engine) setResponseStatus(ctx context.Context, response *models.FormResponse, act models.WorkflowAction) ActionResult {
	res := ActionResult{Type: act.Type, Detail: act.Status}
	if act.Status == "" {
		res.OK = true
		res.Detail = "no status given, skipped"
		return res
	}
	if !models.IsValidResponseStatus(act.Status) {
		res.Error = "unknown status " + act.Status
		log.Printf("[workflow] set_response_status: unknown status %q, skipped", act.Status)
		return res
	}

	updated, err := e.store.UpdateResponseStatus(ctx, response.ID.Hex(), act.Status)
	if err != nil {
		res.Error = err.Error()
		log.Printf("[workflow] set_response_status failed for response=%s: %v", response.ID.Hex(), err)
		return res
	}
	if updated == nil {
		res.Error = "response not found"
		return res
	}

	// later actions and the caller see the new status
	response.Status = act.Status
	res.OK = true
	return res
}

func (e *Engine) createTicket(ctx context.Context, response *models.FormResponse, act models.WorkflowAction) ActionResult {
	res := ActionResult{Type: act.Type}

	email := act.Email
	if email == "" {
		email = response.RespondentEmail
	}

	ticket, err := e.store.CreateTicket(ctx, email, act.InitialFormID, response.ID.Hex())
	if err != nil {
		res.Error = err.Error()
		log.Printf("[workflow] create_ticket failed for response=%s: %v", response.ID.Hex(), err)
		return res
	}

	res.OK = true
	res.Detail = ticket.ID.Hex()

	if act.NotifyEmail && email != "" {
		subject := act.EmailSubject
		if subject == "" {
			subject = "Ticket created"
		}
		body := act.EmailBody
		if body == "" {
			body = "Ticket " + ticket.ID.Hex() + " created"
		}
		e.notifier.Notify(email, subject, body)
	}

	return res
}

func (e *Engine) sendEmail(response *models.FormResponse, act models.WorkflowAction) ActionResult {
	res := ActionResult{Type: act.Type}

	to := act.Email
	if to == "" {
		to = response.RespondentEmail
	}
	if to == "" {
		res.OK = true
		res.Detail = "no recipient, skipped"
		return res
	}

	subject := act.Subject
	if subject == "" {
		subject = "Notification"
	}
	e.notifier.Notify(to, subject, act.Body)

	res.OK = true
	res.Detail = to
	return res
}
