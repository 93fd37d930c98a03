package api

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/abhisek/shindan/internal/diagnosis"
	"github.com/abhisek/shindan/internal/quiz"
)

// session is one in-progress questionnaire. mu guards every field.
type session struct {
	mu     sync.Mutex
	id     string
	engine *quiz.Engine
	result *diagnosis.Result
}

// sessionStore keeps sessions in memory. Each lookup pushes the entry's
// expiry forward by ttl.
type sessionStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &sessionStore{
		cache: cache.New(ttl, ttl),
		ttl:   ttl,
	}
}

func (s *sessionStore) create() *session {
	sess := &session{
		id:     uuid.New().String(),
		engine: diagnosis.NewEngine(),
	}
	s.cache.Set(sess.id, sess, cache.DefaultExpiration)
	return sess
}

func (s *sessionStore) get(id string) (*session, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	sess := v.(*session)
	s.cache.Set(id, sess, cache.DefaultExpiration)
	return sess, true
}

func (s *sessionStore) count() int {
	return s.cache.ItemCount()
}
