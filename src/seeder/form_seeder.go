package seeder

import (
	"context"
	"log"

	"github.com/hasnainotho/formbrick-backend/src/models"
	"github.com/hasnainotho/formbrick-backend/src/services/forms"
)

// SeedSampleForms creates demo forms for manual testing. The intake form
// carries conditional logic whose conditions are authored against temp ids
// and remapped to the generated question ids afterwards, the same way an
// admin import would do it.
func SeedSampleForms(ctx context.Context) ([]string, error) {
	var created []string

	followUp, err := forms.CreateForm(ctx, &models.CreateFormRequest{
		Title:       "Support Follow-up",
		Description: "Extra details for escalated requests",
		FormType:    "follow_up",
		Questions: []models.Question{
			{
				QuestionText: "Describe the problem in detail",
				QuestionType: "paragraph",
				IsRequired:   true,
			},
			{
				QuestionText: "When did it first happen?",
				QuestionType: "date",
			},
		},
	})
	if err != nil {
		return created, err
	}
	created = append(created, followUp.Form.ID.Hex())

	intake := &models.CreateFormRequest{
		Title:       "Support Intake",
		Description: "Tell us what you need help with",
		FormType:    "intake",
		Questions: []models.Question{
			{
				QuestionText: "What is your email address?",
				QuestionType: "short_answer",
				IsRequired:   true,
			},
			{
				QuestionText: "Do you need a human follow-up?",
				QuestionType: "multiple_choice",
				Options:      []string{"yes", "no"},
				IsRequired:   true,
			},
			{
				QuestionText: "How urgent is it? (1-10)",
				QuestionType: "number",
			},
			{
				// hidden escalation hook: fires when follow-up was requested
				QuestionText: "Escalation",
				QuestionType: "section",
				ConditionalLogic: &models.ConditionalLogic{
					Enabled: true,
					Action:  models.LogicActionShow,
					Conditions: []models.Condition{
						{QuestionID: "temp-follow-up", Operator: models.OpEquals, Value: "yes"},
					},
					Workflow: []models.WorkflowAction{
						{Type: models.ActionSetResponseStatus, Status: models.StatusPendingApproval},
						{Type: models.ActionCreateTicket, NotifyEmail: true, InitialFormID: followUp.Form.ID.Hex()},
						{Type: models.ActionSetNextForm, NextFormID: followUp.Form.ID.Hex()},
					},
				},
			},
			{
				QuestionText: "High urgency notice",
				QuestionType: "section",
				ConditionalLogic: &models.ConditionalLogic{
					Enabled: true,
					Action:  models.LogicActionShow,
					Conditions: []models.Condition{
						{QuestionID: "temp-urgency", Operator: models.OpGreaterThan, Value: 7},
					},
					Workflow: []models.WorkflowAction{
						{Type: models.ActionSendEmail, Subject: "Urgent request received",
							Body: "We received your urgent request and will get back to you shortly."},
					},
				},
			},
		},
	}

	intakeCreated, err := forms.CreateForm(ctx, intake)
	if err != nil {
		return created, err
	}
	created = append(created, intakeCreated.Form.ID.Hex())

	// rewrite the temp condition references to the generated question ids
	mappings := map[string]string{}
	for _, q := range intakeCreated.Questions {
		switch q.QuestionText {
		case "Do you need a human follow-up?":
			mappings["temp-follow-up"] = q.ID.Hex()
		case "How urgent is it? (1-10)":
			mappings["temp-urgency"] = q.ID.Hex()
		}
	}

	result, err := forms.RemapFormConditions(ctx, intakeCreated.Form.ID, mappings, false)
	if err != nil {
		return created, err
	}
	log.Printf("[seeder] remapped %d condition references on intake form", len(result.Changes))

	return created, nil
}
