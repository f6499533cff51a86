package jobs

import (
	"log"

	"github.com/hibiken/asynq"

	"github.com/hasnainotho/formbrick-backend/src/database"
	"github.com/hasnainotho/formbrick-backend/src/services/email"
)

// StartWorker runs the Asynq server that drains the notification queue.
// It is only started when Redis is configured; without it the Notifier
// falls back to synchronous delivery and no worker is needed.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("Redis not configured, notification worker not started")
		return
	}

	sender, err := email.NewSMTPSenderFromEnv()
	if err != nil {
		log.Println("notification worker disabled:", err)
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(email.TypeSendEmail, email.HandleSendEmail(sender))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("asynq server stopped:", err)
		}
	}()
	log.Println("Notification worker started")
}
