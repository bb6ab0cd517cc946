package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// API is what the session needs from the TUNG client.
type API interface {
	Login(ctx context.Context, document, password string) (Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (Tokens, error)
	Logout(ctx context.Context) error
}

// Session owns the login lifecycle and serves bearer tokens to the HTTP
// client. It implements clients.TokenSource.
type Session struct {
	api   API
	store *FileStore
	clock clockwork.Clock
	log   zerolog.Logger

	mu         sync.Mutex
	refreshing bool
}

func NewSession(api API, store *FileStore, clock clockwork.Clock, log zerolog.Logger) *Session {
	return &Session{api: api, store: store, clock: clock, log: log}
}

// LogIn authenticates with an identity document and password and persists
// the resulting token pair.
func (s *Session) LogIn(ctx context.Context, document, password string) error {
	tokens, err := s.api.Login(ctx, document, password)
	if err != nil {
		return err
	}
	if err := s.store.Save(tokens); err != nil {
		return fmt.Errorf("login succeeded but tokens could not be saved: %w", err)
	}
	s.log.Info().Msg("session established")
	return nil
}

// LogOut invalidates the session server-side (best effort) and clears the
// stored tokens either way.
func (s *Session) LogOut(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("server-side logout failed, clearing local tokens anyway")
	}
	return s.store.Clear()
}

// AccessToken returns the current bearer token, refreshing it first when it
// has expired. An empty string means "no usable session"; requests then go
// out unauthenticated, which only the login endpoint accepts.
func (s *Session) AccessToken() string {
	tokens, err := s.store.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("could not load stored tokens")
		return ""
	}
	if tokens == nil || tokens.AccessToken == "" {
		return ""
	}

	if !Expired(tokens.AccessToken, s.clock.Now()) {
		return tokens.AccessToken
	}
	if tokens.RefreshToken == "" {
		return ""
	}

	// The refresh call itself goes through the same client and asks for a
	// token again; hand back the expired one instead of refreshing twice.
	s.mu.Lock()
	if s.refreshing {
		s.mu.Unlock()
		return tokens.AccessToken
	}
	s.refreshing = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	refreshed, err := s.api.Refresh(context.Background(), tokens.RefreshToken)
	if err != nil {
		s.log.Warn().Err(err).Msg("token refresh failed")
		return ""
	}
	if err := s.store.Save(refreshed); err != nil {
		s.log.Warn().Err(err).Msg("refreshed tokens could not be saved")
	}
	return refreshed.AccessToken
}
