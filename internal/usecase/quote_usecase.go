package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/infrastructure/phone"
	"gadget_garage/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

const (
	QuoteSubmittedMessage = "Thank you! We'll review your request and send you a free quote within 24 hours. You can also message us for any questions."
	QuoteFollowUpRoute    = "/v1/chats"
)

var ErrQuoteSubmitFailed = errors.New("failed to submit quote")

// QuoteOptions are the choices offered on the quote form.
type QuoteOptions struct {
	ServiceTypes   []string
	UrgencyLevels  []entities.Urgency
	DefaultUrgency entities.Urgency
}

// QuoteSubmission is the outcome of a successful submit: the stored document,
// the confirmation to show, where to go next and the cleared form.
type QuoteSubmission struct {
	Quote     entities.QuoteRequest
	Message   string
	NextRoute string
	Form      entities.QuoteForm
}

// IQuoteUseCase handles the free-quote form.
//
// Validation failures are returned as entities.ValidationErrors and never reach the store.

type IQuoteUseCase interface {
	Options() QuoteOptions
	Submit(ctx context.Context, clientKey string, form entities.QuoteForm) (QuoteSubmission, error)
}

type QuoteUseCase struct {
	repo         interfaces.IQuoteRepository
	notifier     interfaces.INotificationPublisher
	guard        *SubmissionGuard
	phones       phone.Normalizer
	storeTimeout time.Duration
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, notifier interfaces.INotificationPublisher, guard *SubmissionGuard, phones phone.Normalizer, storeTimeout time.Duration) *QuoteUseCase {
	if guard == nil {
		guard = NewSubmissionGuard()
	}
	return &QuoteUseCase{repo: repo, notifier: notifier, guard: guard, phones: phones, storeTimeout: storeTimeout}
}

func (u *QuoteUseCase) Options() QuoteOptions {
	return QuoteOptions{
		ServiceTypes:   entities.QuoteServiceTypes,
		UrgencyLevels:  entities.UrgencyLevels,
		DefaultUrgency: entities.DefaultUrgency,
	}
}

func (u *QuoteUseCase) Submit(ctx context.Context, clientKey string, form entities.QuoteForm) (QuoteSubmission, error) {
	form = form.Normalized()
	if errs := form.Validate(); errs != nil {
		log.Printf("[quote][usecase] validation failed client=%s %v", clientKey, errs)
		return QuoteSubmission{}, errs
	}

	release, ok := u.guard.Acquire(entities.CollectionQuotes, clientKey)
	if !ok {
		log.Printf("[quote][usecase] submission already in flight client=%s", clientKey)
		return QuoteSubmission{}, ErrSubmissionInFlight
	}
	defer release()

	storeCtx, cancel := withStoreTimeout(ctx, u.storeTimeout)
	defer cancel()

	created, err := u.repo.Create(storeCtx, entities.QuoteRequest{
		Name:        form.Name,
		Email:       form.Email,
		Phone:       u.phones.E164(form.Phone),
		ServiceType: form.ServiceType,
		Description: form.Description,
		Urgency:     form.Urgency,
		Status:      entities.RequestStatusPending,
	})
	// The flag covers the store call only.
	release()
	if err != nil {
		log.Printf("[quote][usecase] create failed client=%s err=%v", clientKey, err)
		return QuoteSubmission{}, fmt.Errorf("%w: %w", ErrQuoteSubmitFailed, err)
	}
	log.Printf("[quote][usecase] created id=%s service_type=%q urgency=%s", created.ID, created.ServiceType, created.Urgency)

	if u.notifier != nil {
		notifyCtx, cancelNotify := withNotifyContext(ctx)
		if err := u.notifier.QuoteSubmitted(notifyCtx, created); err != nil {
			log.Printf("[quote][usecase] notification failed id=%s err=%v", created.ID, err)
		}
		cancelNotify()
	}

	return QuoteSubmission{
		Quote:     created,
		Message:   QuoteSubmittedMessage,
		NextRoute: QuoteFollowUpRoute,
		Form:      entities.EmptyQuoteForm(),
	}, nil
}
