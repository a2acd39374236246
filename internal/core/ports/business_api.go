package ports

import (
	"context"

	"github.com/ibraschwan/karagul/internal/core/domain"
)

// BusinessAPI exposes the backend's business listing resource.
type BusinessAPI interface {
	List(ctx context.Context, q Query) ([]domain.Business, *PageInfo, error)
	GetByID(ctx context.Context, id int, q Query) (*domain.Business, error)
	// GetBySlug returns the first listing matching the slug, or (nil, nil)
	// when none matches — "no result" is a normal outcome, not an error.
	GetBySlug(ctx context.Context, slug string, q Query) (*domain.Business, error)
	Create(ctx context.Context, in domain.BusinessInput) (*domain.Business, error)
	Update(ctx context.Context, id int, in domain.BusinessInput) (*domain.Business, error)
	Delete(ctx context.Context, id int) error
	// Search matches the term case-insensitively against name and
	// description, ANDed with any extra filters, with relations populated.
	Search(ctx context.Context, term string, extra ...Filter) ([]domain.Business, error)
}

// CategoryAPI exposes the backend's category resource (read-only surface;
// categories are curated through the backend's admin panel).
type CategoryAPI interface {
	List(ctx context.Context, q Query) ([]domain.Category, *PageInfo, error)
	GetByID(ctx context.Context, id int, q Query) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string, q Query) (*domain.Category, error)
}

// ContactAPI exposes the backend's contact message resource.
type ContactAPI interface {
	Create(ctx context.Context, in domain.ContactMessageInput) (*domain.ContactMessage, error)
	ForBusiness(ctx context.Context, businessID int, q Query) ([]domain.ContactMessage, *PageInfo, error)
}
