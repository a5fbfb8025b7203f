package service

import (
	"sync"
	"time"

	"flashcards/internal/domain"
	"flashcards/internal/engine"

	"go.uber.org/zap"
)

// DeckLoader provides the deck a new session starts with
type DeckLoader interface {
	Load(name string) (*domain.Deck, error)
}

// Session is one chat's card view. Commands on it run one at a time.
type Session struct {
	mu       sync.Mutex
	engine   *engine.Engine
	lastSeen time.Time
}

// Do runs fn with exclusive access to the session's engine
func (s *Session) Do(fn func(e *engine.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}

// SessionService keeps an engine per user for the bot front end
type SessionService struct {
	loader   DeckLoader
	deckName string
	logger   *zap.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewSessionService creates a new session service serving deckName
func NewSessionService(loader DeckLoader, deckName string, logger *zap.Logger) *SessionService {
	return &SessionService{
		loader:   loader,
		deckName: deckName,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[int64]*Session),
	}
}

// Get returns the user's session, starting a new one on first use
func (s *SessionService) Get(userID int64) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[userID]; ok {
		session.lastSeen = s.now()
		return session, nil
	}

	deck, err := s.loader.Load(s.deckName)
	if err != nil {
		return nil, err
	}

	session := &Session{
		engine:   engine.New(deck.Name, deck.Cards),
		lastSeen: s.now(),
	}
	s.sessions[userID] = session

	s.logger.Info("Session started",
		zap.Int64("user_id", userID),
		zap.String("deck", deck.Name),
	)
	return session, nil
}

// Reset drops the user's session so the next Get starts over
func (s *SessionService) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// EvictIdle drops sessions unused for longer than maxIdle and returns how many
func (s *SessionService) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	evicted := 0
	for userID, session := range s.sessions {
		if session.lastSeen.Before(cutoff) {
			delete(s.sessions, userID)
			evicted++
		}
	}

	if evicted > 0 {
		s.logger.Info("Idle sessions evicted",
			zap.Int("evicted", evicted),
			zap.Int("remaining", len(s.sessions)),
		)
	}
	return evicted
}

// Len returns the number of live sessions
func (s *SessionService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
