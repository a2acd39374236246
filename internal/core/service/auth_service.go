package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
)

// Fallback messages when the backend's error envelope carries none.
const (
	loginFallback    = "Login failed"
	registerFallback = "Registration failed"
)

// AuthResult is the normalized outcome of login and registration. Credential
// and validation failures come back as Success=false with a message, never
// as a raised error, so callers branch on Success instead of error handling.
type AuthResult struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// AuthService is the session facade: it composes the backend auth API with
// the session store and is the only place the credential side effect lives.
// Session state is two-valued — anonymous (no usable credential) or
// authenticated (credential plus cached user).
type AuthService struct {
	api      ports.AuthAPI
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthService(api ports.AuthAPI, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{api: api, sessions: sessions, log: log}
}

// Login authenticates against the backend and, on success, persists the
// credential and user snapshot. On failure the store is left untouched.
func (s *AuthService) Login(ctx context.Context, identifier, password string) AuthResult {
	sess, err := s.api.Login(ctx, identifier, password)
	if err != nil {
		return s.failure(err, loginFallback)
	}
	s.persist(ctx, sess)
	return AuthResult{Success: true, User: sess.User}
}

// Register creates an account and establishes its session the same way Login
// does.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) AuthResult {
	sess, err := s.api.Register(ctx, in)
	if err != nil {
		return s.failure(err, registerFallback)
	}
	s.persist(ctx, sess)
	return AuthResult{Success: true, User: sess.User}
}

// Logout drops the session. Defined to never fail; clearing an anonymous
// session is a no-op.
func (s *AuthService) Logout(ctx context.Context) {
	s.sessions.Clear(ctx)
}

// CurrentUser returns the user owning the stored credential by asking the
// backend, or nil on any failure — no stored token, an expired token, or a
// rejected request all mean anonymous, never an error.
func (s *AuthService) CurrentUser(ctx context.Context) *domain.User {
	tok := s.sessions.Token(ctx)
	if tok == "" {
		return nil
	}
	if expired(tok) {
		s.sessions.Clear(ctx)
		return nil
	}
	user, err := s.api.Me(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("current user lookup failed")
		return nil
	}
	return user
}

// StoredUser returns the cached user snapshot without a backend round trip.
// It may be stale; use CurrentUser when freshness matters.
func (s *AuthService) StoredUser(ctx context.Context) *domain.User {
	return s.sessions.User(ctx)
}

// IsAuthenticated reports whether a usable credential is stored.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	tok := s.sessions.Token(ctx)
	return tok != "" && !expired(tok)
}

// RequireAuth returns the current user or ErrUnauthenticated. The routing
// boundary translates the error into a redirect or denial.
func (s *AuthService) RequireAuth(ctx context.Context) (*domain.User, error) {
	user := s.CurrentUser(ctx)
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// RequireRole returns the current user when it carries exactly the given
// role; otherwise ErrUnauthenticated or ErrForbidden.
func (s *AuthService) RequireRole(ctx context.Context, role string) (*domain.User, error) {
	user := s.CurrentUser(ctx)
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !user.HasRole(role) {
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, role)
	}
	return user, nil
}

func (s *AuthService) persist(ctx context.Context, sess *ports.AuthSession) {
	if err := s.sessions.Save(ctx, sess.Token, sess.User); err != nil {
		// The login itself succeeded; an unpersisted session just means the
		// next request starts anonymous.
		s.log.Warn().Err(err).Msg("session not persisted")
	}
}

func (s *AuthService) failure(err error, fallback string) AuthResult {
	msg := fallback
	var be *domain.BackendError
	if errors.As(err, &be) && be.Message != "" {
		msg = be.Message
	}
	s.log.Debug().Err(err).Msg("auth attempt rejected")
	return AuthResult{Success: false, Error: msg}
}

// expired reports whether the token is a JWT whose exp claim has passed.
// Tokens that do not parse as JWTs are passed through for the backend to
// judge.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
