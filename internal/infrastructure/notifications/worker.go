package notifications

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"
)

const workerConcurrency = 5

// Worker consumes notification tasks and mails the shop.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	mailer Mailer
	to     string
}

func NewWorker(redisURL string, mailer Mailer, to string) (*Worker, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}
	opt, err := RedisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: workerConcurrency,
		Queues: map[string]int{
			QueueName: 1,
		},
	})

	w := &Worker{server: server, mailer: mailer, to: to}
	w.mux = w.routes()
	return w, nil
}

func (w *Worker) routes() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskQuoteSubmitted, w.handleQuoteSubmitted)
	mux.HandleFunc(TaskAppointmentBooked, w.handleAppointmentBooked)
	return mux
}

// Run processes tasks until ctx is cancelled, then waits for in-flight handlers.
func (w *Worker) Run(ctx context.Context) error {
	if err := w.server.Start(w.mux); err != nil {
		return fmt.Errorf("start notification worker: %w", err)
	}
	log.Printf("[notifications][worker] started queue=%s", QueueName)
	<-ctx.Done()
	w.server.Shutdown()
	log.Printf("[notifications][worker] stopped")
	return nil
}

func (w *Worker) handleQuoteSubmitted(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseQuoteSubmittedPayload(task)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	subject, body := quoteSubmittedMail(payload)
	if err := w.mailer.Send(ctx, w.to, subject, body); err != nil {
		log.Printf("[notifications][worker] quote mail failed id=%s err=%v", payload.ID, err)
		return err
	}
	log.Printf("[notifications][worker] quote mail sent id=%s", payload.ID)
	return nil
}

func (w *Worker) handleAppointmentBooked(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseAppointmentBookedPayload(task)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	subject, body := appointmentBookedMail(payload)
	if err := w.mailer.Send(ctx, w.to, subject, body); err != nil {
		log.Printf("[notifications][worker] appointment mail failed id=%s err=%v", payload.ID, err)
		return err
	}
	log.Printf("[notifications][worker] appointment mail sent id=%s", payload.ID)
	return nil
}
