package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ibraschwan/karagul/internal/core/service"
)

type HomeHandler struct {
	directory *service.DirectoryService
}

func NewHomeHandler(directory *service.DirectoryService) *HomeHandler {
	return &HomeHandler{directory: directory}
}

// Home serves the landing page data: featured listings and root categories,
// fetched concurrently. A failing section comes back empty, the page always
// renders.
func (h *HomeHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory.Home(c.Request().Context()))
}
