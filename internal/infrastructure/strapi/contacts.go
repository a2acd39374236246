package strapi

import (
	"context"
	"net/http"

	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
)

// ContactService exposes the contact-messages resource.
type ContactService struct {
	c *Client
}

var _ ports.ContactAPI = (*ContactService)(nil)

func (s *ContactService) Create(ctx context.Context, in domain.ContactMessageInput) (*domain.ContactMessage, error) {
	return write[domain.ContactMessage](ctx, s.c, http.MethodPost, "/contact-messages", in)
}

// ForBusiness lists the inquiries addressed to one listing.
func (s *ContactService) ForBusiness(ctx context.Context, businessID int, q ports.Query) ([]domain.ContactMessage, *ports.PageInfo, error) {
	q.Filters = append([]ports.Filter{ports.Eq("business.id", businessID)}, q.Filters...)
	return getList[domain.ContactMessage](ctx, s.c, "/contact-messages", q)
}
