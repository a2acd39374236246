package ports

import (
	"context"

	"github.com/ibraschwan/karagul/internal/core/domain"
)

// AuthSession is what the backend's local auth endpoints return on success.
type AuthSession struct {
	Token string       `json:"jwt"`
	User  *domain.User `json:"user"`
}

// RegisterInput carries a new account registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Name     string
}

// AuthAPI talks to the backend's own auth endpoints. Credential issuance and
// validation are entirely the backend's business; failures surface as errors
// carrying the backend's error envelope where available.
type AuthAPI interface {
	Login(ctx context.Context, identifier, password string) (*AuthSession, error)
	Register(ctx context.Context, in RegisterInput) (*AuthSession, error)
	// Me fetches the current user with all relations populated, authenticated
	// by whatever credential the request hook attaches.
	Me(ctx context.Context) (*domain.User, error)
}
