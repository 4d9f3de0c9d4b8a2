package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

const (
	AdminDeletePrompt   = "Are you sure you want to delete this item?"
	AdminDeletedMessage = "Item deleted successfully"

	adminSubject = "admin"
)

var (
	ErrAdminLoginDisabled   = errors.New("admin login is disabled")
	ErrInvalidAdminPassword = errors.New("invalid admin password")
	ErrInvalidAdminSession  = errors.New("invalid admin session")
	ErrFetchFailed          = errors.New("failed to fetch data from the store")
	ErrUnknownCollection    = errors.New("unknown collection")
	ErrInvalidDocumentID    = errors.New("invalid document id")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrDeleteNotConfirmed   = errors.New("delete not confirmed")
	ErrDeleteFailed         = errors.New("failed to delete item")
)

// Dashboard is one consistent view of both collections, newest first.
type Dashboard struct {
	Appointments []entities.Appointment
	Quotes       []entities.QuoteRequest
	FetchedAt    time.Time
}

// AdminSession is granted on a correct password. FetchErr carries the outcome
// of the initial load; access is granted either way.
type AdminSession struct {
	Token     string
	ExpiresAt time.Time
	Dashboard Dashboard
	FetchErr  error
}

// AdminDocument is the detail view of one document.
type AdminDocument struct {
	Collection  string
	Quote       *entities.QuoteRequest
	Appointment *entities.Appointment
}

// DeleteResult reports a confirmed delete and the refresh that followed it.
type DeleteResult struct {
	Collection string
	ID         string
	Message    string
	Dashboard  Dashboard
	RefreshErr error
}

// IAdminUseCase is the admin screen.
//
//   - Authenticate checks the shared secret and performs the initial Fetch
//   - Fetch replaces both lists together or not at all
//   - Delete removes one document and always triggers exactly one Fetch

type IAdminUseCase interface {
	Authenticate(ctx context.Context, password string) (AdminSession, error)
	ValidateSession(token string) error
	Fetch(ctx context.Context) (Dashboard, error)
	Snapshot() Dashboard
	Get(ctx context.Context, collection, id string) (AdminDocument, error)
	Delete(ctx context.Context, collection, id string, confirmed bool) (DeleteResult, error)
}

type AdminUseCase struct {
	quotes       interfaces.IQuoteRepository
	appointments interfaces.IAppointmentRepository

	passwordHash []byte
	jwtSecret    []byte
	sessionTTL   time.Duration
	storeTimeout time.Duration
	now          func() time.Time

	mu       sync.RWMutex
	snapshot Dashboard

	// fetchSeq numbers Fetch calls by start order; appliedSeq is the one behind snapshot.
	fetchSeq   uint64
	appliedSeq uint64
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

type AdminConfig struct {
	Password     string
	JWTSecret    string
	SessionTTL   time.Duration
	StoreTimeout time.Duration
}

// NewAdminUseCase hashes the admin secret once. An empty password disables login;
// an empty JWT secret is replaced by a random per-process key.
func NewAdminUseCase(quotes interfaces.IQuoteRepository, appointments interfaces.IAppointmentRepository, cfg AdminConfig) (*AdminUseCase, error) {
	u := &AdminUseCase{
		quotes:       quotes,
		appointments: appointments,
		sessionTTL:   cfg.SessionTTL,
		storeTimeout: cfg.StoreTimeout,
		now:          time.Now,
		snapshot:     emptyDashboard(),
	}
	if u.sessionTTL <= 0 {
		u.sessionTTL = 12 * time.Hour
	}

	if cfg.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		u.passwordHash = hash
	} else {
		log.Printf("[admin][usecase] ADMIN_PASSWORD not set; admin login disabled")
	}

	if cfg.JWTSecret != "" {
		u.jwtSecret = []byte(cfg.JWTSecret)
	} else {
		u.jwtSecret = make([]byte, 32)
		if _, err := rand.Read(u.jwtSecret); err != nil {
			return nil, fmt.Errorf("generate admin session secret: %w", err)
		}
	}
	return u, nil
}

func emptyDashboard() Dashboard {
	return Dashboard{Appointments: []entities.Appointment{}, Quotes: []entities.QuoteRequest{}}
}

func (u *AdminUseCase) Authenticate(ctx context.Context, password string) (AdminSession, error) {
	if len(u.passwordHash) == 0 {
		return AdminSession{}, ErrAdminLoginDisabled
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		log.Printf("[admin][usecase] login rejected")
		return AdminSession{}, ErrInvalidAdminPassword
	}

	expiresAt := u.now().Add(u.sessionTTL)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(u.now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString(u.jwtSecret)
	if err != nil {
		return AdminSession{}, fmt.Errorf("sign admin session: %w", err)
	}
	log.Printf("[admin][usecase] login accepted expires_at=%s", expiresAt.UTC().Format(time.RFC3339))

	session := AdminSession{Token: token, ExpiresAt: expiresAt}
	session.Dashboard, session.FetchErr = u.Fetch(ctx)
	return session, nil
}

func (u *AdminUseCase) ValidateSession(token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return u.jwtSecret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(u.now))
	if err != nil || !parsed.Valid {
		return ErrInvalidAdminSession
	}
	if sub, _ := parsed.Claims.GetSubject(); sub != adminSubject {
		return ErrInvalidAdminSession
	}
	return nil
}

// Fetch loads both collections concurrently. The snapshot only changes when
// both queries succeed; otherwise the previous one is returned with ErrFetchFailed.
// A fetch that started before the one currently applied never replaces it.
func (u *AdminUseCase) Fetch(ctx context.Context) (Dashboard, error) {
	u.mu.Lock()
	u.fetchSeq++
	seq := u.fetchSeq
	u.mu.Unlock()

	storeCtx, cancel := withStoreTimeout(ctx, u.storeTimeout)
	defer cancel()

	var (
		appointments []entities.Appointment
		quotes       []entities.QuoteRequest
	)
	g, gctx := errgroup.WithContext(storeCtx)
	g.Go(func() error {
		var err error
		appointments, err = u.appointments.ListNewestFirst(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		quotes, err = u.quotes.ListNewestFirst(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[admin][usecase] fetch failed err=%v", err)
		return u.Snapshot(), fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	if appointments == nil {
		appointments = []entities.Appointment{}
	}
	if quotes == nil {
		quotes = []entities.QuoteRequest{}
	}
	next := Dashboard{Appointments: appointments, Quotes: quotes, FetchedAt: u.now().UTC()}

	u.mu.Lock()
	if seq < u.appliedSeq {
		current, applied := u.snapshot, u.appliedSeq
		u.mu.Unlock()
		log.Printf("[admin][usecase] stale fetch discarded seq=%d applied=%d", seq, applied)
		return current, nil
	}
	u.snapshot = next
	u.appliedSeq = seq
	u.mu.Unlock()

	log.Printf("[admin][usecase] fetch ok appointments=%d quotes=%d", len(appointments), len(quotes))
	return next, nil
}

func (u *AdminUseCase) Snapshot() Dashboard {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.snapshot
}

func (u *AdminUseCase) Get(ctx context.Context, collection, id string) (AdminDocument, error) {
	collection, id, err := checkDocumentRef(collection, id)
	if err != nil {
		return AdminDocument{}, err
	}

	storeCtx, cancel := withStoreTimeout(ctx, u.storeTimeout)
	defer cancel()

	switch collection {
	case entities.CollectionQuotes:
		q, err := u.quotes.GetByID(storeCtx, id)
		if err != nil {
			return AdminDocument{}, err
		}
		if q.ID == "" {
			return AdminDocument{}, ErrDocumentNotFound
		}
		return AdminDocument{Collection: collection, Quote: &q}, nil
	default:
		a, err := u.appointments.GetByID(storeCtx, id)
		if err != nil {
			return AdminDocument{}, err
		}
		if a.ID == "" {
			return AdminDocument{}, ErrDocumentNotFound
		}
		return AdminDocument{Collection: collection, Appointment: &a}, nil
	}
}

// Delete removes collection/id after confirmation and then refreshes the
// dashboard once, also when the document was already gone. A failed delete
// leaves the snapshot untouched and does not refresh.
func (u *AdminUseCase) Delete(ctx context.Context, collection, id string, confirmed bool) (DeleteResult, error) {
	collection, id, err := checkDocumentRef(collection, id)
	if err != nil {
		return DeleteResult{}, err
	}
	if !confirmed {
		return DeleteResult{}, ErrDeleteNotConfirmed
	}

	storeCtx, cancel := withStoreTimeout(ctx, u.storeTimeout)
	var deleted bool
	switch collection {
	case entities.CollectionQuotes:
		deleted, err = u.quotes.Delete(storeCtx, id)
	default:
		deleted, err = u.appointments.Delete(storeCtx, id)
	}
	cancel()
	if err != nil {
		log.Printf("[admin][usecase] delete failed collection=%s id=%s err=%v", collection, id, err)
		return DeleteResult{}, fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	if !deleted {
		log.Printf("[admin][usecase] delete target missing collection=%s id=%s", collection, id)
		// Another session may have removed it; the list still has to drop it.
		if _, ferr := u.Fetch(ctx); ferr != nil {
			log.Printf("[admin][usecase] refresh after missing delete failed err=%v", ferr)
		}
		return DeleteResult{}, ErrDocumentNotFound
	}
	log.Printf("[admin][usecase] deleted collection=%s id=%s", collection, id)

	res := DeleteResult{Collection: collection, ID: id, Message: AdminDeletedMessage}
	res.Dashboard, res.RefreshErr = u.Fetch(ctx)
	return res, nil
}

func checkDocumentRef(collection, id string) (string, string, error) {
	collection = strings.TrimSpace(collection)
	id = strings.TrimSpace(id)
	if !entities.IsKnownCollection(collection) {
		return "", "", ErrUnknownCollection
	}
	if id == "" {
		return "", "", ErrInvalidDocumentID
	}
	return collection, id, nil
}
