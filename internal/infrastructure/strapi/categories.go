package strapi

import (
	"context"
	"strconv"

	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
)

// CategoryService exposes the categories resource. Categories are curated in
// the backend's admin panel, so only reads are offered here.
type CategoryService struct {
	c *Client
}

var _ ports.CategoryAPI = (*CategoryService)(nil)

func (s *CategoryService) List(ctx context.Context, q ports.Query) ([]domain.Category, *ports.PageInfo, error) {
	return getList[domain.Category](ctx, s.c, "/categories", q)
}

func (s *CategoryService) GetByID(ctx context.Context, id int, q ports.Query) (*domain.Category, error) {
	return getOne[domain.Category](ctx, s.c, "/categories/"+strconv.Itoa(id), q)
}

// GetBySlug returns the first category matching the slug, or (nil, nil).
func (s *CategoryService) GetBySlug(ctx context.Context, slug string, q ports.Query) (*domain.Category, error) {
	q.Filters = append([]ports.Filter{ports.Eq("slug", slug)}, q.Filters...)
	items, _, err := s.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}
