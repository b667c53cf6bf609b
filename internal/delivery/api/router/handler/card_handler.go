package handler

import (
	"log/slog"
	"net/http"

	"bizcard/internal/delivery/api/middleware"
	"bizcard/internal/delivery/api/response"
	"bizcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const mediaTypePNG = "image/png"

// CardHandlerParams holds dependencies for CardHandler, injected by Fx.
type CardHandlerParams struct {
	fx.In

	CardUC usecase.CardUsecase
	Logger *slog.Logger
}

// CardHandler serves the owner-facing card routes
type CardHandler struct {
	cardUC usecase.CardUsecase
	logger *slog.Logger
}

// NewCardHandler is the constructor for CardHandler
func NewCardHandler(params CardHandlerParams) *CardHandler {
	return &CardHandler{
		cardUC: params.CardUC,
		logger: params.Logger,
	}
}

// CreateCard handles POST /api/v1/cards
func (h *CardHandler) CreateCard(c echo.Context) error {
	owner, err := middleware.RequireOwner(c)
	if err != nil {
		return err
	}

	var input usecase.CardInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid card input")
	}

	card, err := h.cardUC.CreateCard(c.Request().Context(), owner, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, card, "Card created")
}

// ListCards handles GET /api/v1/cards
func (h *CardHandler) ListCards(c echo.Context) error {
	owner, err := middleware.RequireOwner(c)
	if err != nil {
		return err
	}

	cards, err := h.cardUC.ListCards(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cards, "")
}

// GetCard handles GET /api/v1/cards/:id
func (h *CardHandler) GetCard(c echo.Context) error {
	owner, err := middleware.RequireOwner(c)
	if err != nil {
		return err
	}

	card, err := h.cardUC.GetCard(c.Request().Context(), owner, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, card, "")
}

// UpdateCard handles PUT /api/v1/cards/:id
func (h *CardHandler) UpdateCard(c echo.Context) error {
	owner, err := middleware.RequireOwner(c)
	if err != nil {
		return err
	}

	var input usecase.CardUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid card input")
	}

	card, err := h.cardUC.UpdateCard(c.Request().Context(), owner, c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, card, "Card updated")
}

// GetShareQR handles GET /api/v1/cards/:id/qr
func (h *CardHandler) GetShareQR(c echo.Context) error {
	owner, err := middleware.RequireOwner(c)
	if err != nil {
		return err
	}

	png, err := h.cardUC.GenerateShareQR(c.Request().Context(), owner, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, mediaTypePNG, png)
}
