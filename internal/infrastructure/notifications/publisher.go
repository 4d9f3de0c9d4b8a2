package notifications

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/usecase/interfaces"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const maxRetry = 5

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// AsynqPublisher queues shop notifications for cmd/worker.
type AsynqPublisher struct {
	client enqueuer
	queue  string
}

var _ interfaces.INotificationPublisher = (*AsynqPublisher)(nil)

func NewAsynqPublisher(redisURL string) (*AsynqPublisher, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}
	opt, err := RedisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}
	return &AsynqPublisher{client: asynq.NewClient(opt), queue: QueueName}, nil
}

func (p *AsynqPublisher) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}

func (p *AsynqPublisher) QuoteSubmitted(ctx context.Context, q entities.QuoteRequest) error {
	task, err := NewQuoteSubmittedTask(q)
	if err != nil {
		return err
	}
	return p.enqueue(ctx, task, q.ID)
}

func (p *AsynqPublisher) AppointmentBooked(ctx context.Context, a entities.Appointment) error {
	task, err := NewAppointmentBookedTask(a)
	if err != nil {
		return err
	}
	return p.enqueue(ctx, task, a.ID)
}

// enqueue uses the document id as task id so a document is announced at most once.
func (p *AsynqPublisher) enqueue(ctx context.Context, task *asynq.Task, docID string) error {
	info, err := p.client.EnqueueContext(ctx, task,
		asynq.Queue(p.queue),
		asynq.MaxRetry(maxRetry),
		asynq.TaskID(task.Type()+":"+docID),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", task.Type(), err)
	}
	log.Printf("[notifications][publisher] enqueued type=%s task_id=%s queue=%s", task.Type(), info.ID, info.Queue)
	return nil
}

// NoopPublisher is used when no queue is configured.
type NoopPublisher struct{}

var _ interfaces.INotificationPublisher = NoopPublisher{}

func (NoopPublisher) QuoteSubmitted(context.Context, entities.QuoteRequest) error {
	return nil
}

func (NoopPublisher) AppointmentBooked(context.Context, entities.Appointment) error {
	return nil
}

// RedisClientOpt converts a redis:// or rediss:// URL into asynq connection options.
func RedisClientOpt(redisURL string) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		tlsConfig = opt.TLSConfig.Clone()
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Username:  opt.Username,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
