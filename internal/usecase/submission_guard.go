package usecase

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrSubmissionInFlight = errors.New("a submission from this client is already in progress")

// SubmissionGuard is the server-side in-flight flag: at most one outstanding
// store call per (client, form kind).
type SubmissionGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewSubmissionGuard() *SubmissionGuard {
	return &SubmissionGuard{active: make(map[string]struct{})}
}

// Acquire marks key in flight. The returned release func must be called once
// the call completes; ok is false when key is already in flight.
func (g *SubmissionGuard) Acquire(kind, clientKey string) (release func(), ok bool) {
	key := kind + ":" + clientKey

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[key]; busy {
		return nil, false
	}
	g.active[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.active, key)
			g.mu.Unlock()
		})
	}, true
}

// withStoreTimeout bounds a store round trip. The request context still cancels it.
func withStoreTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// notifyTimeout bounds the best-effort shop notification after a document is stored.
const notifyTimeout = 5 * time.Second

// withNotifyContext detaches from the request so a client hang-up after the
// store write does not drop the notification.
func withNotifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
}
