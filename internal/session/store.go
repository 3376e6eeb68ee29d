package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/savorly/savorly-client/internal/logger"
	"github.com/savorly/savorly-client/internal/model"
)

// Persisted state lives under two independent keys; absence of either is
// treated as "no session".
const (
	KeyAccessToken = "access_token"
	KeyUser        = "user"
)

var (
	_ model.TokenProvider  = (*Store)(nil)
	_ model.SessionManager = (*Store)(nil)
)

// Store is the single source of truth for authentication state. It is
// created anonymous-and-loading; Initialize restores any persisted session.
type Store struct {
	mu      sync.RWMutex
	session model.Session
	storage model.KeyValueStore
	logger  *logger.Logger
}

// NewStore creates a session store on top of the local state storage.
func NewStore(storage model.KeyValueStore, logger *logger.Logger) *Store {
	return &Store{
		session: model.Session{Loading: true},
		storage: storage,
		logger:  logger,
	}
}

// Initialize restores the persisted session, if any. Storage errors and
// malformed persisted state both fall back to anonymous; corruption also
// clears the stored keys. Never fatal.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() { s.session.Loading = false }()

	token, err := s.storage.Get(ctx, KeyAccessToken)
	if err != nil {
		s.session = model.Anonymous()
		return
	}
	rawUser, err := s.storage.Get(ctx, KeyUser)
	if err != nil {
		s.session = model.Anonymous()
		return
	}

	var user model.UserProfile
	if err := json.Unmarshal(rawUser, &user); err != nil {
		s.logger.Info("Session store: discarding corrupt persisted profile", "error", err.Error())
		s.clearPersisted(ctx)
		s.session = model.Anonymous()
		return
	}

	if !tokenUsable(string(token)) {
		s.logger.Info("Session store: discarding unusable persisted token")
		s.clearPersisted(ctx)
		s.session = model.Anonymous()
		return
	}

	s.session = model.Session{
		Authenticated: true,
		User:          &user,
		Token:         string(token),
	}
	s.logger.Debug("Session store: restored session", "email", user.Email)
}

// tokenUsable checks the persisted token structurally: it must parse as a
// JWT and, when it carries an expiry, still be live. The client holds no
// signing secret, so the signature is not verified here.
func tokenUsable(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return false
	}
	return true
}

// Login unconditionally overwrites the session and persists both keys.
// Validation is the caller's responsibility.
func (s *Store) Login(ctx context.Context, user model.UserProfile, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = model.Session{
		Authenticated: true,
		User:          &user,
		Token:         token,
	}

	if err := s.storage.Set(ctx, KeyAccessToken, []byte(token)); err != nil {
		s.logger.Error("Session store: failed to persist token", "error", err.Error())
	}
	raw, err := json.Marshal(user)
	if err != nil {
		s.logger.Error("Session store: failed to encode profile", "error", err.Error())
		return
	}
	if err := s.storage.Set(ctx, KeyUser, raw); err != nil {
		s.logger.Error("Session store: failed to persist profile", "error", err.Error())
	}
}

// Logout resets to anonymous and removes the persisted keys. Succeeds even
// when storage was already empty.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = model.Anonymous()
	s.clearPersisted(ctx)
}

// HandleUnauthorized is the 401 callback for the API client: the end state
// is identical to Logout.
func (s *Store) HandleUnauthorized() {
	s.logger.Info("Session store: service rejected session token, logging out")
	s.Logout(context.Background())
}

// SetProfile replaces the whole profile record atomically, in memory and in
// storage. No-op when not authenticated.
func (s *Store) SetProfile(ctx context.Context, user model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Authenticated {
		return
	}

	s.session.User = &user

	raw, err := json.Marshal(user)
	if err != nil {
		s.logger.Error("Session store: failed to encode profile", "error", err.Error())
		return
	}
	if err := s.storage.Set(ctx, KeyUser, raw); err != nil {
		s.logger.Error("Session store: failed to persist profile", "error", err.Error())
	}
}

// Session returns a snapshot of the current session state.
func (s *Store) Session() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session := s.session
	if s.session.User != nil {
		user := *s.session.User
		session.User = &user
	}

	return session
}

// Token returns the current access token, empty when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.Token
}

// Authenticated reports whether a user is logged in.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.Authenticated
}

func (s *Store) clearPersisted(ctx context.Context) {
	if err := s.storage.Delete(ctx, KeyAccessToken); err != nil {
		s.logger.Error("Session store: failed to delete token key", "error", err.Error())
	}
	if err := s.storage.Delete(ctx, KeyUser); err != nil {
		s.logger.Error("Session store: failed to delete user key", "error", err.Error())
	}
}
