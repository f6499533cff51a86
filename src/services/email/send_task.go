package email

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

const TypeSendEmail = "email:send"

type SendEmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func NewSendEmailTask(to, subject, body string) (*asynq.Task, error) {
	b, err := json.Marshal(SendEmailPayload{To: to, Subject: subject, Body: body})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendEmail, b), nil
}

// HandleSendEmail delivers one queued notification through the given sender.
func HandleSendEmail(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p SendEmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}
		if p.To == "" {
			log.Println("email:send task without recipient, skip")
			return nil
		}
		if err := sender.Send(p.To, p.Subject, p.Body); err != nil {
			log.Printf("send mail failed to %s: %v", p.To, err)
			return err
		}
		return nil
	}
}
