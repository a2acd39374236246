package strapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, opts...)
}

func emptyList(w http.ResponseWriter) {
	_, _ = w.Write([]byte(`{"data":[],"meta":{"pagination":{"page":1,"pageSize":25,"pageCount":0,"total":0}}}`))
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotType, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		emptyList(w)
	}, WithTokenSource(TokenFunc(func(context.Context) string { return "tok-123" })))

	if _, _, err := c.Businesses.List(context.Background(), ports.Query{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotType != "application/json" {
		t.Fatalf("unexpected content type %q", gotType)
	}
	if gotPath != "/api/businesses" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}

func TestClient_AnonymousWithoutToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		emptyList(w)
	}, WithTokenSource(TokenFunc(func(context.Context) string { return "" })))

	if _, _, err := c.Businesses.List(context.Background(), ports.Query{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected unauthenticated request, got %q", gotAuth)
	}
}

func TestClient_BackendErrorEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"data":null,"error":{"status":400,"name":"ApplicationError","message":"Email already taken"}}`))
	})

	_, err := c.Auth.Register(context.Background(), ports.RegisterInput{Username: "demo", Email: "demo@x.com", Password: "Secret123!", Name: "Demo Biz"})
	var be *domain.BackendError
	if !errors.As(err, &be) {
		t.Fatalf("expected BackendError, got %v", err)
	}
	if be.Message != "Email already taken" || be.Status != 400 {
		t.Fatalf("unexpected envelope: %+v", be)
	}
}

func TestClient_MalformedErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, _, err := c.Businesses.List(context.Background(), ports.Query{})
	var be *domain.BackendError
	if !errors.As(err, &be) {
		t.Fatalf("expected BackendError, got %v", err)
	}
	if be.Status != http.StatusBadGateway {
		t.Fatalf("unexpected status %d", be.Status)
	}
}

func TestBusinesses_GetBySlug_NotFound(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		emptyList(w)
	})

	b, err := c.Businesses.GetBySlug(context.Background(), "no-such-place", ports.Query{})
	if err != nil {
		t.Fatalf("expected nil error for missing slug, got %v", err)
	}
	if b != nil {
		t.Fatalf("expected nil business, got %+v", b)
	}
	if !strings.Contains(gotQuery, "filters[slug][$eq]=no-such-place") {
		t.Fatalf("slug filter missing from query %q", gotQuery)
	}
}

func TestBusinesses_GetBySlug_Found(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":3,"name":"Döner King","slug":"doner-king","status":"approved"}],"meta":{}}`))
	})

	b, err := c.Businesses.GetBySlug(context.Background(), "doner-king", ports.Query{})
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if b == nil || b.ID != 3 || b.Slug != "doner-king" {
		t.Fatalf("unexpected business: %+v", b)
	}
}

func TestBusinesses_Create_WrapsPayload(t *testing.T) {
	var body map[string]json.RawMessage
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Errorf("unmarshal body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":9,"name":"Demo Biz","slug":"demo-biz","status":"pending"}}`))
	})

	created, err := c.Businesses.Create(context.Background(), domain.BusinessInput{Name: "Demo Biz"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 9 || created.Status != domain.StatusPending {
		t.Fatalf("unexpected created business: %+v", created)
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("payload not wrapped under data key: %v", body)
	}
}

func TestBusinesses_Search_MergesFilters(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		emptyList(w)
	})

	_, err := c.Businesses.Search(context.Background(), "kebap", ports.Eq("status", "approved"))
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	for _, want := range []string{
		"filters[$or][0][name][$containsi]=kebap",
		"filters[$or][1][description][$containsi]=kebap",
		"filters[status][$eq]=approved",
		"populate=*",
	} {
		if !strings.Contains(gotQuery, want) {
			t.Fatalf("query %q missing %q", gotQuery, want)
		}
	}
}

func TestAuth_Login(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/local" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["identifier"] != "demo" || req["password"] != "Secret123!" {
			t.Errorf("unexpected credentials: %v", req)
		}
		_, _ = w.Write([]byte(`{"jwt":"tok-1","user":{"id":42,"username":"demo","role":"business"}}`))
	})

	sess, err := c.Auth.Login(context.Background(), "demo", "Secret123!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sess.Token != "tok-1" || sess.User == nil || sess.User.ID != 42 {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestAuth_Me_PopulatesRelations(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/me" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"id":42,"username":"demo","role":"business"}`))
	})

	u, err := c.Auth.Me(context.Background())
	if err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if u.ID != 42 {
		t.Fatalf("unexpected user: %+v", u)
	}
	if gotQuery != "populate=*" {
		t.Fatalf("expected full population, got %q", gotQuery)
	}
}

func TestCategories_List_EmptyEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		emptyList(w)
	})

	items, info, err := c.Categories.List(context.Background(), ports.Query{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no categories, got %d", len(items))
	}
	if info == nil || info.Total != 0 || info.Page != 1 {
		t.Fatalf("unexpected pagination: %+v", info)
	}
}

func TestContacts_ForBusiness_FiltersByID(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		emptyList(w)
	})

	if _, _, err := c.Contacts.ForBusiness(context.Background(), 7, ports.Query{}); err != nil {
		t.Fatalf("for business failed: %v", err)
	}
	if !strings.Contains(gotQuery, "filters[business][id][$eq]=7") {
		t.Fatalf("business filter missing from %q", gotQuery)
	}
}

func TestBusinesses_Delete(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data":{"id":9}}`))
	})

	if err := c.Businesses.Delete(context.Background(), 9); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/businesses/9" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}
