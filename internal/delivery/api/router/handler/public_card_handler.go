package handler

import (
	"log/slog"
	"mime"
	"net/http"

	"bizcard/internal/delivery/api/response"
	"bizcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublicCardHandlerParams holds dependencies for PublicCardHandler, injected by Fx.
type PublicCardHandlerParams struct {
	fx.In

	PublicCardUC usecase.PublicCardUsecase
	Logger       *slog.Logger
}

// PublicCardHandler serves cards to anonymous viewers
type PublicCardHandler struct {
	publicCardUC usecase.PublicCardUsecase
	logger       *slog.Logger
}

// NewPublicCardHandler is the constructor for PublicCardHandler
func NewPublicCardHandler(params PublicCardHandlerParams) *PublicCardHandler {
	return &PublicCardHandler{
		publicCardUC: params.PublicCardUC,
		logger:       params.Logger,
	}
}

// GetCard handles GET /card/:slug
func (h *PublicCardHandler) GetCard(c echo.Context) error {
	card, err := h.publicCardUC.ResolveSlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, card, "")
}

// DownloadVCard handles GET /card/:slug/vcard
func (h *PublicCardHandler) DownloadVCard(c echo.Context) error {
	file, err := h.publicCardUC.ExportVCard(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))

	return c.Blob(http.StatusOK, file.MediaType, []byte(file.Content))
}
