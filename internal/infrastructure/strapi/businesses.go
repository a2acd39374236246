package strapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
)

// BusinessService exposes the businesses resource.
type BusinessService struct {
	c *Client
}

var _ ports.BusinessAPI = (*BusinessService)(nil)

func (s *BusinessService) List(ctx context.Context, q ports.Query) ([]domain.Business, *ports.PageInfo, error) {
	return getList[domain.Business](ctx, s.c, "/businesses", q)
}

func (s *BusinessService) GetByID(ctx context.Context, id int, q ports.Query) (*domain.Business, error) {
	return getOne[domain.Business](ctx, s.c, "/businesses/"+strconv.Itoa(id), q)
}

// GetBySlug filters the collection on slug equality and returns the first
// match, or (nil, nil) when nothing matches.
func (s *BusinessService) GetBySlug(ctx context.Context, slug string, q ports.Query) (*domain.Business, error) {
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

func (s *BusinessService) Create(ctx context.Context, in domain.BusinessInput) (*domain.Business, error) {
	return write[domain.Business](ctx, s.c, http.MethodPost, "/businesses", in)
}

func (s *BusinessService) Update(ctx context.Context, id int, in domain.BusinessInput) (*domain.Business, error) {
	return write[domain.Business](ctx, s.c, http.MethodPut, "/businesses/"+strconv.Itoa(id), in)
}

func (s *BusinessService) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, "/businesses/"+strconv.Itoa(id), "", nil, nil)
}

// Search ORs case-insensitive containment over name and description, merges
// any extra filters as siblings, and populates all relations.
func (s *BusinessService) Search(ctx context.Context, term string, extra ...ports.Filter) ([]domain.Business, error) {
	q := ports.Query{
		Filters: append([]ports.Filter{
			ports.Or(
				ports.ContainsI("name", term),
				ports.ContainsI("description", term),
			),
		}, extra...),
		Populate: ports.PopulateAll(),
	}
	items, _, err := s.List(ctx, q)
	return items, err
}
