package strapi

import (
	"context"
	"net/http"

	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
)

// AuthService forwards to the backend's local auth provider. It does not
// touch the session store; persisting the returned credential is the auth
// facade's job, so there is exactly one place that side effect lives.
type AuthService struct {
	c *Client
}

var _ ports.AuthAPI = (*AuthService)(nil)

// Login exchanges an identifier (username or email) and password for a
// credential. Auth endpoints answer {jwt, user} without the data envelope.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.AuthSession, error) {
	body := map[string]string{
		"identifier": identifier,
		"password":   password,
	}
	var out ports.AuthSession
	if err := s.c.do(ctx, http.MethodPost, "/auth/local", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns its first credential.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthSession, error) {
	body := map[string]string{
		"username": in.Username,
		"email":    in.Email,
		"password": in.Password,
		"name":     in.Name,
	}
	var out ports.AuthSession
	if err := s.c.do(ctx, http.MethodPost, "/auth/local/register", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the user owning the attached credential, relations populated.
// The users/me endpoint returns the bare user, not a {data} envelope.
func (s *AuthService) Me(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := s.c.get(ctx, "/users/me", ports.Query{Populate: ports.PopulateAll()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
