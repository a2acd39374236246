package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
)

const featuredLimit = 6

// DirectoryService provides the page-level read operations of the public
// directory. Public surfaces only ever request approved listings; that rule
// lives in the query filters sent to the backend, never in local checks.
type DirectoryService struct {
	businesses ports.BusinessAPI
	categories ports.CategoryAPI
	contacts   ports.ContactAPI
	log        zerolog.Logger
}

func NewDirectoryService(b ports.BusinessAPI, c ports.CategoryAPI, m ports.ContactAPI, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{businesses: b, categories: c, contacts: m, log: log}
}

func approvedOnly() ports.Filter {
	return ports.Eq("status", string(domain.StatusApproved))
}

// HomeData is what the landing page needs in one shot.
type HomeData struct {
	FeaturedBusinesses []domain.Business `json:"featuredBusinesses"`
	Categories         []domain.Category `json:"categories"`
}

// Home fetches the featured listings and the root categories concurrently
// and combines them after both settle. Either fetch failing degrades that
// section to empty rather than failing the page.
func (s *DirectoryService) Home(ctx context.Context) HomeData {
	var data HomeData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.FeaturedBusinesses(gctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("featured businesses unavailable")
			items = nil
		}
		data.FeaturedBusinesses = items
		return nil
	})
	g.Go(func() error {
		items, err := s.RootCategories(gctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("categories unavailable")
			items = nil
		}
		data.Categories = items
		return nil
	})
	_ = g.Wait()

	if data.FeaturedBusinesses == nil {
		data.FeaturedBusinesses = []domain.Business{}
	}
	if data.Categories == nil {
		data.Categories = []domain.Category{}
	}
	return data
}

// FeaturedBusinesses returns the newest approved, featured listings with
// their display relations populated.
func (s *DirectoryService) FeaturedBusinesses(ctx context.Context) ([]domain.Business, error) {
	q := ports.Query{
		Filters: []ports.Filter{
			approvedOnly(),
			ports.Eq("isFeatured", true),
		},
		Sort:       []string{"createdAt:desc"},
		Pagination: &ports.Pagination{Limit: featuredLimit},
		Populate:   ports.Populate{Relations: []string{"logo", "categories", "images"}},
	}
	items, _, err := s.businesses.List(ctx, q)
	return items, err
}

// RootCategories returns the active top-level categories in display order.
// An empty directory yields an empty slice, not nil.
func (s *DirectoryService) RootCategories(ctx context.Context) ([]domain.Category, error) {
	q := ports.Query{
		Filters: []ports.Filter{
			ports.Null("parentCategory", true),
			ports.Eq("isActive", true),
		},
		Sort: []string{"order:asc"},
	}
	items, _, err := s.categories.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Category{}
	}
	return items, nil
}

// Search matches the term against listing names and descriptions,
// case-insensitively, restricted to approved listings and ANDed with any
// extra filters the caller supplies. City is deliberately not matched; the
// backend contract covers only the two text fields.
func (s *DirectoryService) Search(ctx context.Context, term string, extra ...ports.Filter) ([]domain.Business, error) {
	merged := append([]ports.Filter{approvedOnly()}, extra...)
	return s.businesses.Search(ctx, term, merged...)
}

// BusinessBySlug resolves one approved listing for its public page, or nil
// when the slug is unknown — a normal outcome, not an error.
func (s *DirectoryService) BusinessBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	q := ports.Query{
		Filters:  []ports.Filter{approvedOnly()},
		Populate: ports.PopulateAll(),
	}
	return s.businesses.GetBySlug(ctx, slug, q)
}

// CategoryBySlug resolves one active category with its children and
// businesses, or nil when the slug is unknown.
func (s *DirectoryService) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	q := ports.Query{
		Filters:  []ports.Filter{ports.Eq("isActive", true)},
		Populate: ports.Populate{Relations: []string{"childCategories", "businesses"}},
	}
	return s.categories.GetBySlug(ctx, slug, q)
}

// SubmitContact records a visitor inquiry, stamping the originating IP the
// gateway observed.
func (s *DirectoryService) SubmitContact(ctx context.Context, in domain.ContactMessageInput, ip string) (*domain.ContactMessage, error) {
	in.IPAddress = ip
	return s.contacts.Create(ctx, in)
}

// MessagesForBusiness lists the inquiries for one listing, newest first.
// Callers guard access; this layer only shapes the query.
func (s *DirectoryService) MessagesForBusiness(ctx context.Context, businessID, page, pageSize int) ([]domain.ContactMessage, *ports.PageInfo, error) {
	q := ports.Query{
		Sort: []string{"createdAt:desc"},
	}
	if page > 0 || pageSize > 0 {
		q.Pagination = &ports.Pagination{Page: page, PageSize: pageSize}
	}
	return s.contacts.ForBusiness(ctx, businessID, q)
}
