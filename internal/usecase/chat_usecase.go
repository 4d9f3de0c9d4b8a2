package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"gadget_garage/internal/domain/entities"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrChatSessionNotFound = errors.New("chat session not found")
	ErrEmptyChatMessage    = errors.New("message text is empty")
)

// ChatSession is a snapshot of one simulated conversation.
type ChatSession struct {
	ID       string
	Messages []entities.Message
}

// IChatUseCase is the simulated messaging screen. Nothing leaves the process.

type IChatUseCase interface {
	Start(ctx context.Context) (ChatSession, error)
	Send(ctx context.Context, sessionID, text string) (entities.Message, error)
	Messages(ctx context.Context, sessionID string) ([]entities.Message, error)
}

type chatSession struct {
	messages   []entities.Message
	lastID     int
	lastActive time.Time
}

type ChatUseCase struct {
	replyDelay  time.Duration
	idleTTL     time.Duration
	maxSessions int
	now         func() time.Time
	schedule    func(d time.Duration, fn func())

	mu       sync.Mutex
	sessions map[string]*chatSession
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(replyDelay, idleTTL time.Duration, maxSessions int) *ChatUseCase {
	if maxSessions <= 0 {
		maxSessions = 1
	}
	return &ChatUseCase{
		replyDelay:  replyDelay,
		idleTTL:     idleTTL,
		maxSessions: maxSessions,
		now:         time.Now,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
		sessions: make(map[string]*chatSession),
	}
}

func (u *ChatUseCase) Start(_ context.Context) (ChatSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	u.evictLocked(now)

	id := uuid.NewString()
	s := &chatSession{lastActive: now}
	s.append(entities.ChatGreeting, entities.SenderBusiness, now)
	u.sessions[id] = s

	log.Printf("[chat][usecase] session started id=%s active=%d", id, len(u.sessions))
	return ChatSession{ID: id, Messages: s.copyMessages()}, nil
}

// Send appends the customer's message now and the canned business reply after the reply delay.
func (u *ChatUseCase) Send(_ context.Context, sessionID, text string) (entities.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Message{}, ErrEmptyChatMessage
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	s, ok := u.lookupLocked(sessionID, now)
	if !ok {
		return entities.Message{}, ErrChatSessionNotFound
	}
	msg := s.append(text, entities.SenderCustomer, now)
	s.lastActive = now

	u.schedule(u.replyDelay, func() {
		u.reply(sessionID)
	})
	return msg, nil
}

func (u *ChatUseCase) reply(sessionID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, ok := u.sessions[sessionID]
	if !ok {
		return
	}
	s.append(entities.ChatCannedReply, entities.SenderBusiness, u.now())
}

func (u *ChatUseCase) Messages(_ context.Context, sessionID string) ([]entities.Message, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, ok := u.lookupLocked(sessionID, u.now())
	if !ok {
		return nil, ErrChatSessionNotFound
	}
	return s.copyMessages(), nil
}

func (u *ChatUseCase) lookupLocked(id string, now time.Time) (*chatSession, bool) {
	s, ok := u.sessions[id]
	if !ok {
		return nil, false
	}
	if u.expired(s, now) {
		delete(u.sessions, id)
		return nil, false
	}
	return s, true
}

func (u *ChatUseCase) expired(s *chatSession, now time.Time) bool {
	return u.idleTTL > 0 && now.Sub(s.lastActive) > u.idleTTL
}

// evictLocked drops idle sessions, then the least recently active ones until
// there is room for a new session.
func (u *ChatUseCase) evictLocked(now time.Time) {
	for id, s := range u.sessions {
		if u.expired(s, now) {
			delete(u.sessions, id)
		}
	}
	for len(u.sessions) >= u.maxSessions {
		var (
			oldestID string
			oldest   time.Time
		)
		for id, s := range u.sessions {
			if oldestID == "" || s.lastActive.Before(oldest) {
				oldestID, oldest = id, s.lastActive
			}
		}
		delete(u.sessions, oldestID)
	}
}

func (s *chatSession) append(text string, sender entities.Sender, at time.Time) entities.Message {
	s.lastID++
	msg := entities.Message{ID: s.lastID, Text: text, Sender: sender, Timestamp: at}
	s.messages = append(s.messages, msg)
	return msg
}

func (s *chatSession) copyMessages() []entities.Message {
	out := make([]entities.Message, len(s.messages))
	copy(out, s.messages)
	return out
}
