package editor

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/debemdeboas/devlog/internal/config"
	"github.com/debemdeboas/devlog/internal/notify"
	"github.com/debemdeboas/devlog/internal/repository"
)

type SessionID string

var ErrSessionNotFound = errors.New(config.ErrSessionNotFound)

// Redirects records where the controller last asked to navigate.
type Redirects struct {
	mu     sync.Mutex
	target string
}

func (r *Redirects) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = path
}

// Take returns the pending redirect and clears it.
func (r *Redirects) Take() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	target := r.target
	r.target = ""
	return target, target != ""
}

// Session is one editing screen: its controller, its toasts and its
// pending redirect.
type Session struct {
	ID         SessionID
	Controller *Controller
	Toasts     *notify.Queue
	Redirects  *Redirects

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type Repository interface {
	CreateSession() (*Session, error)
	GetSession(id SessionID) (*Session, error)
	DeleteSession(id SessionID) error
}

type MemoryRepository struct {
	sessions sync.Map

	posts  repository.PostRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewMemoryRepository(posts repository.PostRepository, logger zerolog.Logger) *MemoryRepository {
	return &MemoryRepository{
		posts:  posts,
		logger: logger,
		now:    time.Now,
	}
}

func (m *MemoryRepository) CreateSession() (*Session, error) {
	id := SessionID(uuid.New().String())
	toasts := notify.NewQueue()
	redirects := &Redirects{}
	logger := m.logger.With().Str("session", string(id)).Logger()

	s := &Session{
		ID: id,
		Controller: NewController(
			m.posts,
			notify.Multi(toasts, notify.Log{Logger: logger}),
			redirects,
			logger,
		),
		Toasts:    toasts,
		Redirects: redirects,
		lastSeen:  m.now(),
	}
	m.sessions.Store(id, s)
	return s, nil
}

func (m *MemoryRepository) GetSession(id SessionID) (*Session, error) {
	if v, ok := m.sessions.Load(id); ok {
		s := v.(*Session)
		s.touch(m.now())
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
}

func (m *MemoryRepository) DeleteSession(id SessionID) error {
	if v, ok := m.sessions.LoadAndDelete(id); ok {
		v.(*Session).Controller.Close()
	}
	return nil
}

// PruneIdle drops sessions untouched for longer than maxIdle.
func (m *MemoryRepository) PruneIdle(maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)
	pruned := 0
	m.sessions.Range(func(key, value any) bool {
		if value.(*Session).idleSince().Before(cutoff) {
			m.DeleteSession(key.(SessionID))
			pruned++
		}
		return true
	})
	if pruned > 0 {
		m.logger.Debug().Int("pruned", pruned).Msg("Pruned idle edit sessions")
	}
	return pruned
}
