package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ibraschwan/karagul/internal/api/metrics"
	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/service"
)

type ContactHandler struct {
	directory *service.DirectoryService
}

func NewContactHandler(directory *service.DirectoryService) *ContactHandler {
	return &ContactHandler{directory: directory}
}

type contactRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Message  string `json:"message" validate:"required,min=10"`
	Business int    `json:"business" validate:"required,gt=0"`
}

// Create forwards a visitor inquiry to the backend, stamped with the
// originating IP the gateway observed.
func (h *ContactHandler) Create(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.directory.SubmitContact(c.Request().Context(), domain.ContactMessageInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
		Business: req.Business,
	}, c.RealIP())
	if err != nil {
		return err
	}

	metrics.ContactMessagesTotal.Inc()
	return c.JSON(http.StatusCreated, map[string]any{"data": msg})
}
