package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/service"
)

type CategoryHandler struct {
	directory *service.DirectoryService
}

func NewCategoryHandler(directory *service.DirectoryService) *CategoryHandler {
	return &CategoryHandler{directory: directory}
}

// List serves the active root categories in display order. An empty
// directory is an empty data array, never an error.
func (h *CategoryHandler) List(c echo.Context) error {
	items, err := h.directory.RootCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listBody(items, nil))
}

// GetBySlug serves one category with its children and businesses.
func (h *CategoryHandler) GetBySlug(c echo.Context) error {
	cat, err := h.directory.CategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	return c.JSON(http.StatusOK, map[string]any{"data": cat})
}
