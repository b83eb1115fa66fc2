package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/pkg/cache"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the authenticated identity resolved from a session token.
type Session struct {
	Token     string `json:"token"`
	Matricule string `json:"matricule"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Position  string `json:"position"`
	Role      string `json:"role"`
}

// SessionStore keeps sessions in redis under an opaque uuid token.
type SessionStore struct {
	cache *cache.RedisClient
	ttl   time.Duration
}

func NewSessionStore(c *cache.RedisClient, ttl time.Duration) *SessionStore {
	return &SessionStore{cache: c, ttl: ttl}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *SessionStore) Create(ctx context.Context, p *model.Personnel) (*Session, error) {
	sess := &Session{
		Token:     uuid.New().String(),
		Matricule: p.Matricule,
		LastName:  p.LastName,
		FirstName: p.FirstName,
		Position:  p.Position,
		Role:      p.Role,
	}

	if err := s.cache.SetJSON(ctx, sessionKey(sess.Token), sess, s.ttl); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*Session, error) {
	var sess Session
	err := s.cache.GetJSON(ctx, sessionKey(token), &sess)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &sess, nil
}

func (s *SessionStore) Destroy(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKey(token))
}
