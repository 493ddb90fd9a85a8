package session

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"javabite-client/internal/api"
	"javabite-client/internal/domain"
)

// AuthAPI is the slice of the backend client the session store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Signup(ctx context.Context, req api.SignupRequest) (*domain.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*domain.User, error)
}

// Store holds the authenticated identity for the lifetime of the process.
// The cookie session on the API client is authoritative; the token store is an
// optional extra credential for cookie-less deployments.
type Store struct {
	api    AuthAPI
	tokens TokenStore
	log    *logrus.Entry

	mu   sync.RWMutex
	user *domain.User
}

func New(authAPI AuthAPI, tokens TokenStore) *Store {
	return &Store{
		api:    authAPI,
		tokens: tokens,
		log:    logrus.StandardLogger().WithField("component", "session"),
	}
}

// Restore probes /auth/me once at startup. Not being authenticated is a normal
// outcome, not an error.
func (s *Store) Restore(ctx context.Context) error {
	user, err := s.api.Me(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			s.setUser(nil)
			return nil
		}
		return err
	}
	s.setUser(user)
	return nil
}

func (s *Store) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.setUser(user)
	if s.tokens != nil && user.Token != "" {
		if err := s.tokens.Save(ctx, user.Token); err != nil {
			s.log.WithError(err).Warn("failed to persist session token")
		}
	}
	return user, nil
}

func (s *Store) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.api.Signup(ctx, api.SignupRequest{Name: name, Email: email, Password: password})
}

// Logout clears local identity regardless of whether the backend call
// succeeded; a dead backend must not trap the user in a session.
func (s *Store) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	s.setUser(nil)
	if s.tokens != nil {
		if clearErr := s.tokens.Clear(ctx); clearErr != nil {
			s.log.WithError(clearErr).Warn("failed to clear stored token")
		}
	}
	return err
}

func (s *Store) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

func (s *Store) HasRole(role domain.Role) bool {
	user := s.Current()
	return user != nil && user.Role == role
}

func (s *Store) setUser(user *domain.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}
