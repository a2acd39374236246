package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
)

type stubBusinessAPI struct {
	listQuery     ports.Query
	listItems     []domain.Business
	listErr       error
	searchTerm    string
	searchFilters []ports.Filter
	searchItems   []domain.Business
	slugQuery     ports.Query
	slugItem      *domain.Business
}

func (s *stubBusinessAPI) List(_ context.Context, q ports.Query) ([]domain.Business, *ports.PageInfo, error) {
	s.listQuery = q
	return s.listItems, nil, s.listErr
}

func (s *stubBusinessAPI) GetByID(context.Context, int, ports.Query) (*domain.Business, error) {
	return nil, nil
}

func (s *stubBusinessAPI) GetBySlug(_ context.Context, _ string, q ports.Query) (*domain.Business, error) {
	s.slugQuery = q
	return s.slugItem, nil
}

func (s *stubBusinessAPI) Create(context.Context, domain.BusinessInput) (*domain.Business, error) {
	return nil, nil
}

func (s *stubBusinessAPI) Update(context.Context, int, domain.BusinessInput) (*domain.Business, error) {
	return nil, nil
}

func (s *stubBusinessAPI) Delete(context.Context, int) error { return nil }

func (s *stubBusinessAPI) Search(_ context.Context, term string, extra ...ports.Filter) ([]domain.Business, error) {
	s.searchTerm = term
	s.searchFilters = extra
	return s.searchItems, nil
}

type stubCategoryAPI struct {
	listQuery ports.Query
	listItems []domain.Category
	listErr   error
}

func (s *stubCategoryAPI) List(_ context.Context, q ports.Query) ([]domain.Category, *ports.PageInfo, error) {
	s.listQuery = q
	return s.listItems, nil, s.listErr
}

func (s *stubCategoryAPI) GetByID(context.Context, int, ports.Query) (*domain.Category, error) {
	return nil, nil
}

func (s *stubCategoryAPI) GetBySlug(context.Context, string, ports.Query) (*domain.Category, error) {
	return nil, nil
}

type stubContactAPI struct {
	created domain.ContactMessageInput
}

func (s *stubContactAPI) Create(_ context.Context, in domain.ContactMessageInput) (*domain.ContactMessage, error) {
	s.created = in
	return &domain.ContactMessage{ID: 1, Name: in.Name, IPAddress: in.IPAddress}, nil
}

func (s *stubContactAPI) ForBusiness(context.Context, int, ports.Query) ([]domain.ContactMessage, *ports.PageInfo, error) {
	return nil, nil, nil
}

func newDirectory(b *stubBusinessAPI, c *stubCategoryAPI, m *stubContactAPI) *DirectoryService {
	if b == nil {
		b = &stubBusinessAPI{}
	}
	if c == nil {
		c = &stubCategoryAPI{}
	}
	if m == nil {
		m = &stubContactAPI{}
	}
	return NewDirectoryService(b, c, m, zerolog.Nop())
}

func TestDirectory_FeaturedBusinesses_Query(t *testing.T) {
	b := &stubBusinessAPI{listItems: []domain.Business{{ID: 1, Name: "Döner King"}}}
	svc := newDirectory(b, nil, nil)

	items, err := svc.FeaturedBusinesses(context.Background())
	if err != nil || len(items) != 1 {
		t.Fatalf("unexpected result: %v %v", items, err)
	}

	wantFilters := []ports.Filter{
		ports.Eq("status", "approved"),
		ports.Eq("isFeatured", true),
	}
	if !reflect.DeepEqual(b.listQuery.Filters, wantFilters) {
		t.Fatalf("unexpected filters: %+v", b.listQuery.Filters)
	}
	if !reflect.DeepEqual(b.listQuery.Sort, []string{"createdAt:desc"}) {
		t.Fatalf("unexpected sort: %v", b.listQuery.Sort)
	}
	if b.listQuery.Pagination == nil || b.listQuery.Pagination.Limit != 6 {
		t.Fatalf("unexpected pagination: %+v", b.listQuery.Pagination)
	}
}

func TestDirectory_RootCategories_Query(t *testing.T) {
	c := &stubCategoryAPI{}
	svc := newDirectory(nil, c, nil)

	items, err := svc.RootCategories(context.Background())
	if err != nil {
		t.Fatalf("root categories: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}

	wantFilters := []ports.Filter{
		ports.Null("parentCategory", true),
		ports.Eq("isActive", true),
	}
	if !reflect.DeepEqual(c.listQuery.Filters, wantFilters) {
		t.Fatalf("unexpected filters: %+v", c.listQuery.Filters)
	}
	if !reflect.DeepEqual(c.listQuery.Sort, []string{"order:asc"}) {
		t.Fatalf("unexpected sort: %v", c.listQuery.Sort)
	}
}

func TestDirectory_Home_CombinesBothFetches(t *testing.T) {
	b := &stubBusinessAPI{listItems: []domain.Business{{ID: 1}}}
	c := &stubCategoryAPI{listItems: []domain.Category{{ID: 2}, {ID: 3}}}
	svc := newDirectory(b, c, nil)

	data := svc.Home(context.Background())
	if len(data.FeaturedBusinesses) != 1 || len(data.Categories) != 2 {
		t.Fatalf("unexpected home data: %+v", data)
	}
}

func TestDirectory_Home_DegradesPerSection(t *testing.T) {
	b := &stubBusinessAPI{listErr: errors.New("backend down")}
	c := &stubCategoryAPI{listItems: []domain.Category{{ID: 2}}}
	svc := newDirectory(b, c, nil)

	data := svc.Home(context.Background())
	if data.FeaturedBusinesses == nil || len(data.FeaturedBusinesses) != 0 {
		t.Fatalf("expected empty featured section, got %#v", data.FeaturedBusinesses)
	}
	if len(data.Categories) != 1 {
		t.Fatalf("categories should survive the other fetch failing: %+v", data.Categories)
	}
}

func TestDirectory_Home_BothEmptyStillRenders(t *testing.T) {
	b := &stubBusinessAPI{listErr: errors.New("down")}
	c := &stubCategoryAPI{listErr: errors.New("down")}
	svc := newDirectory(b, c, nil)

	data := svc.Home(context.Background())
	if data.FeaturedBusinesses == nil || data.Categories == nil {
		t.Fatalf("sections must be empty, never nil: %+v", data)
	}
}

func TestDirectory_Search_RestrictsToApproved(t *testing.T) {
	b := &stubBusinessAPI{}
	svc := newDirectory(b, nil, nil)

	_, err := svc.Search(context.Background(), "kebap", ports.Eq("city", "Ankara"))
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if b.searchTerm != "kebap" {
		t.Fatalf("term not forwarded: %q", b.searchTerm)
	}
	want := []ports.Filter{
		ports.Eq("status", "approved"),
		ports.Eq("city", "Ankara"),
	}
	if !reflect.DeepEqual(b.searchFilters, want) {
		t.Fatalf("unexpected filters: %+v", b.searchFilters)
	}
}

func TestDirectory_BusinessBySlug_ApprovedOnly(t *testing.T) {
	b := &stubBusinessAPI{}
	svc := newDirectory(b, nil, nil)

	got, err := svc.BusinessBySlug(context.Background(), "no-such-place")
	if err != nil || got != nil {
		t.Fatalf("expected nil result for unknown slug, got %v %v", got, err)
	}
	want := []ports.Filter{ports.Eq("status", "approved")}
	if !reflect.DeepEqual(b.slugQuery.Filters, want) {
		t.Fatalf("unexpected filters: %+v", b.slugQuery.Filters)
	}
}

func TestDirectory_SubmitContact_StampsIP(t *testing.T) {
	m := &stubContactAPI{}
	svc := newDirectory(nil, nil, m)

	msg, err := svc.SubmitContact(context.Background(), domain.ContactMessageInput{
		Name: "Ali", Email: "ali@x.com", Message: "merhaba", Business: 7,
	}, "203.0.113.9")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if m.created.IPAddress != "203.0.113.9" {
		t.Fatalf("ip not stamped: %+v", m.created)
	}
	if msg.ID != 1 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}
