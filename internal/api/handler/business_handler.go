package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ibraschwan/karagul/internal/api/metrics"
	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
	"github.com/ibraschwan/karagul/internal/core/service"
)

const defaultPageSize = 25

type BusinessHandler struct {
	directory  *service.DirectoryService
	businesses ports.BusinessAPI
}

func NewBusinessHandler(directory *service.DirectoryService, businesses ports.BusinessAPI) *BusinessHandler {
	return &BusinessHandler{directory: directory, businesses: businesses}
}

// listResponse mirrors the backend's read envelope so clients see one shape
// end to end.
type listResponse[T any] struct {
	Data []T            `json:"data"`
	Meta map[string]any `json:"meta"`
}

func listBody[T any](items []T, info *ports.PageInfo) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	m := map[string]any{}
	if info != nil {
		m["pagination"] = info
	}
	return listResponse[T]{Data: items, Meta: m}
}

// List serves the public browse surface: approved listings, optionally
// narrowed to a category slug or city, name order, paginated.
func (h *BusinessHandler) List(c echo.Context) error {
	filters := []ports.Filter{ports.Eq("status", string(domain.StatusApproved))}
	if city := c.QueryParam("city"); city != "" {
		filters = append(filters, ports.Eq("city", city))
	}
	if cat := c.QueryParam("category"); cat != "" {
		filters = append(filters, ports.Eq("categories.slug", cat))
	}

	q := ports.Query{
		Filters:    filters,
		Sort:       []string{"name:asc"},
		Pagination: &ports.Pagination{Page: intParam(c, "page", 1), PageSize: intParam(c, "pageSize", defaultPageSize)},
		Populate:   ports.Populate{Relations: []string{"logo", "categories", "images"}},
	}

	items, info, err := h.businesses.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listBody(items, info))
}

// GetBySlug serves one public listing page; an unknown slug is a 404, not a
// backend error.
func (h *BusinessHandler) GetBySlug(c echo.Context) error {
	b, err := h.directory.BusinessBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return c.JSON(http.StatusOK, map[string]any{"data": b})
}

// Search matches the term against listing names and descriptions.
func (h *BusinessHandler) Search(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	var extra []ports.Filter
	if cat := c.QueryParam("category"); cat != "" {
		extra = append(extra, ports.Eq("categories.slug", cat))
	}

	metrics.SearchesTotal.Inc()
	items, err := h.directory.Search(c.Request().Context(), term, extra...)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listBody(items, nil))
}

// Create registers a new listing for the signed-in owner; it starts in the
// pending state until the backend's moderation approves it.
func (h *BusinessHandler) Create(c echo.Context) error {
	var in domain.BusinessInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if in.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	created, err := h.businesses.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"data": created})
}

// Update edits a listing. Ownership is enforced by the backend's
// permission layer; the gateway only gates on role.
func (h *BusinessHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in domain.BusinessInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.businesses.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": updated})
}

// Delete removes a listing.
func (h *BusinessHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.businesses.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Messages lists the inquiries left for one listing, newest first.
func (h *BusinessHandler) Messages(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	items, info, err := h.directory.MessagesForBusiness(
		c.Request().Context(), id, intParam(c, "page", 0), intParam(c, "pageSize", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listBody(items, info))
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func intParam(c echo.Context, name string, def int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
