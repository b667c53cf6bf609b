package handler

import (
	"log/slog"
	"net/http"

	"bizcard/internal/delivery/api/response"
	"bizcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exchanges identity provider tokens for access tokens
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SignInRequest is the body of POST /auth/session
type SignInRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// SignIn handles POST /auth/session
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.sessionUC.SignIn(c.Request().Context(), req.IDToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Signed in")
}
