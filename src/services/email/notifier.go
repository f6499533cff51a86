package email

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	DB "github.com/hasnainotho/formbrick-backend/src/database"
)

// Notifier sends notifications fire-and-forget: queued through Asynq when
// Redis is available, otherwise delivered synchronously over SMTP. Either
// way a failure only ends up in the log — notification transport is
// unreliable by nature and must never fail the caller.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Notify(to, subject, body string) {
	if to == "" {
		return
	}

	if DB.AsynqClient != nil {
		task, err := NewSendEmailTask(to, subject, body)
		if err != nil {
			log.Println("build email task:", err)
			return
		}
		if _, err := DB.AsynqClient.Enqueue(task, asynq.TaskID("email-"+uuid.NewString()), asynq.MaxRetry(3)); err != nil {
			log.Println("enqueue email task:", err)
		}
		return
	}

	// no Redis: send right away
	sender, err := NewSMTPSenderFromEnv()
	if err != nil {
		log.Println("init mail sender:", err)
		return
	}

	task, _ := NewSendEmailTask(to, subject, body)
	if err := HandleSendEmail(sender)(context.Background(), task); err != nil {
		log.Printf("send mail to %s: %v", to, err)
	}
}
