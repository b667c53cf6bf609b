package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bizcard/config"
	"bizcard/internal/delivery/api/middleware"
	"bizcard/internal/delivery/api/response"
	"bizcard/internal/delivery/api/router"
	"bizcard/internal/delivery/api/router/handler"
	deliverycontext "bizcard/internal/delivery/context"
	"bizcard/internal/domain/entity"
	domainerrors "bizcard/internal/domain/errors"
	"bizcard/internal/domain/service"
	mockService "bizcard/internal/mocks/service"
	mockUsecase "bizcard/internal/mocks/usecase"
	"bizcard/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAccessToken = "valid-access-token"

var testOwner = entity.Owner{ID: "owner-1", Email: "owner@example.com", Name: "Owner"}

// apiFixtures holds the echo instance and the mocks behind its handlers.
type apiFixtures struct {
	echo         *echo.Echo
	cardUC       *mockUsecase.MockCardUsecase
	publicCardUC *mockUsecase.MockPublicCardUsecase
	sessionUC    *mockUsecase.MockSessionUsecase
	tokenSvc     *mockService.MockTokenService
}

func createTestAPI(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cardUC := mockUsecase.NewMockCardUsecase(t)
	publicCardUC := mockUsecase.NewMockPublicCardUsecase(t)
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	tokenSvc := mockService.NewMockTokenService(t)

	e := NewEcho(&config.Config{}, logger)
	router.NewRouter(router.RouterParams{
		SessionHandler:    handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessionUC, Logger: logger}),
		CardHandler:       handler.NewCardHandler(handler.CardHandlerParams{CardUC: cardUC, Logger: logger}),
		PublicCardHandler: handler.NewPublicCardHandler(handler.PublicCardHandlerParams{PublicCardUC: publicCardUC, Logger: logger}),
		AuthMiddleware:    middleware.NewAuthMiddleware(tokenSvc),
	}).RegisterRoutes(e)

	return apiFixtures{
		echo:         e,
		cardUC:       cardUC,
		publicCardUC: publicCardUC,
		sessionUC:    sessionUC,
		tokenSvc:     tokenSvc,
	}
}

func (fx apiFixtures) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func (fx apiFixtures) authorize() map[string]string {
	fx.tokenSvc.EXPECT().ValidateToken(testAccessToken).Return(&service.Claims{
		Email: testOwner.Email,
		Name:  testOwner.Name,
		Type:  "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: testOwner.ID,
		},
	}, nil)

	return map[string]string{echo.HeaderAuthorization: "Bearer " + testAccessToken}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (response.Response, map[string]any) {
	t.Helper()

	var raw struct {
		response.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

	var data map[string]any
	if len(raw.Data) > 0 && raw.Data[0] == '{' {
		require.NoError(t, json.Unmarshal(raw.Data, &data))
	}

	return raw.Response, data
}

func publicCard() *entity.PublicCard {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	return &entity.PublicCard{
		ID:           "card-id-1",
		BusinessName: "Acme Inc",
		PhoneNumber:  "555-1234",
		Email:        "a@acme.com",
		Address:      "1 Main St",
		URLSlug:      "acme",
		Keywords:     []string{"cafe"},
		CreatedAt:    created,
		UpdatedAt:    created.Add(time.Minute),
	}
}

func TestHealthCheck(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "", map[string]string{deliverycontext.HeaderXRequestID: "req-123"})
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = fx.do(http.MethodGet, "/health", "", map[string]string{deliverycontext.HeaderXRequestID: "bad id"})
	assert.NotEqual(t, "bad id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestPublicCard_Get(t *testing.T) {
	fx := createTestAPI(t)
	fx.publicCardUC.EXPECT().ResolveSlug(mock.Anything, "acme").Return(publicCard(), nil)

	rec := fx.do(http.MethodGet, "/card/acme", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	env, data := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Acme Inc", data["businessName"])
	assert.Equal(t, "acme", data["urlSlug"])
	assert.NotContains(t, data, "ownerId")
	assert.NotContains(t, data, "userId")
}

func TestPublicCard_GetNotFound(t *testing.T) {
	fx := createTestAPI(t)
	fx.publicCardUC.EXPECT().ResolveSlug(mock.Anything, "missing").Return(nil, domainerrors.ErrCardNotFound)

	rec := fx.do(http.MethodGet, "/card/missing", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CARD_NOT_FOUND", env.Error.Code)
}

func TestPublicCard_StoreFailureHidesDetails(t *testing.T) {
	fx := createTestAPI(t)
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "query business_cards")
	fx.publicCardUC.EXPECT().ResolveSlug(mock.Anything, "acme").Return(nil, errors.Wrap(storeErr, "failed to resolve card slug"))

	rec := fx.do(http.MethodGet, "/card/acme", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
	assert.Empty(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestPublicCard_DownloadVCard(t *testing.T) {
	fx := createTestAPI(t)
	fx.publicCardUC.EXPECT().ExportVCard(mock.Anything, "acme").Return(&usecase.ContactFile{
		FileName:  "Acme_Inc.vcf",
		MediaType: "text/vcard",
		Content:   "BEGIN:VCARD\r\nVERSION:3.0\r\nEND:VCARD",
	}, nil)

	rec := fx.do(http.MethodGet, "/card/acme/vcard", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/vcard", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "attachment; filename=Acme_Inc.vcf", rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "BEGIN:VCARD\r\nVERSION:3.0\r\nEND:VCARD", rec.Body.String())
}

func TestPublicCard_DownloadVCardNotFound(t *testing.T) {
	fx := createTestAPI(t)
	fx.publicCardUC.EXPECT().ExportVCard(mock.Anything, "missing").Return(nil, domainerrors.ErrCardNotFound)

	rec := fx.do(http.MethodGet, "/card/missing/vcard", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderContentDisposition))
}

func TestCards_RequireAuthentication(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty bearer", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)
			headers := map[string]string{}
			if tt.header != "" {
				headers[echo.HeaderAuthorization] = tt.header
			}

			rec := fx.do(http.MethodGet, "/api/v1/cards", "", headers)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			env, _ := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
			assert.Empty(t, env.Error.Details)
		})
	}
}

func TestCards_InvalidToken(t *testing.T) {
	fx := createTestAPI(t)
	fx.tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

	rec := fx.do(http.MethodGet, "/api/v1/cards", "", map[string]string{echo.HeaderAuthorization: "Bearer expired"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCards_Create(t *testing.T) {
	fx := createTestAPI(t)
	headers := fx.authorize()
	fx.cardUC.EXPECT().
		CreateCard(mock.Anything, testOwner, mock.MatchedBy(func(in *usecase.CardInput) bool {
			return in.BusinessName == "Acme Inc" && len(in.Keywords) == 2
		})).
		Return(&entity.Card{ID: "card-id-1", OwnerID: testOwner.ID, BusinessName: "Acme Inc", URLSlug: "card-abc123"}, nil)

	body := `{"businessName":"Acme Inc","phoneNumber":"555-1234","email":"a@acme.com","address":"1 Main St","keywords":["cafe","bakery"]}`
	rec := fx.do(http.MethodPost, "/api/v1/cards", body, headers)

	require.Equal(t, http.StatusCreated, rec.Code)
	env, data := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "card-abc123", data["urlSlug"])
}

func TestCards_CreateMalformedBody(t *testing.T) {
	fx := createTestAPI(t)
	headers := fx.authorize()

	rec := fx.do(http.MethodPost, "/api/v1/cards", `{"businessName":`, headers)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestCards_UpdateValidationFailed(t *testing.T) {
	fx := createTestAPI(t)
	headers := fx.authorize()
	fx.cardUC.EXPECT().
		UpdateCard(mock.Anything, testOwner, "card-id-1", mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("businessName failed on 'required'"))

	rec := fx.do(http.MethodPut, "/api/v1/cards/card-id-1", `{"businessName":""}`, headers)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "businessName failed on 'required'", env.Error.Details)
}

func TestCards_UpdateForbidden(t *testing.T) {
	fx := createTestAPI(t)
	headers := fx.authorize()
	fx.cardUC.EXPECT().
		UpdateCard(mock.Anything, testOwner, "card-id-2", mock.Anything).
		Return(nil, domainerrors.ErrCardForbidden)

	rec := fx.do(http.MethodPut, "/api/v1/cards/card-id-2", `{"businessName":"x"}`, headers)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCards_UpdateSlugTaken(t *testing.T) {
	fx := createTestAPI(t)
	headers := fx.authorize()
	fx.cardUC.EXPECT().
		UpdateCard(mock.Anything, testOwner, "card-id-1", mock.MatchedBy(func(in *usecase.CardUpdateInput) bool {
			return in.URLSlug != nil && *in.URLSlug == "acme" && in.BusinessName == nil
		})).
		Return(nil, domainerrors.ErrSlugTaken)

	rec := fx.do(http.MethodPut, "/api/v1/cards/card-id-1", `{"urlSlug":"acme"}`, headers)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCards_List(t *testing.T) {
	fx := createTestAPI(t)
	headers := fx.authorize()
	fx.cardUC.EXPECT().ListCards(mock.Anything, testOwner).Return([]*entity.Card{{ID: "a"}, {ID: "b"}}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/cards", "", headers)

	require.Equal(t, http.StatusOK, rec.Code)
	var env struct {
		Data []entity.Card `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Len(t, env.Data, 2)
}

func TestCards_GetNotFound(t *testing.T) {
	fx := createTestAPI(t)
	headers := fx.authorize()
	fx.cardUC.EXPECT().GetCard(mock.Anything, testOwner, "missing").Return(nil, domainerrors.ErrCardNotFound)

	rec := fx.do(http.MethodGet, "/api/v1/cards/missing", "", headers)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCards_ShareQR(t *testing.T) {
	fx := createTestAPI(t)
	headers := fx.authorize()
	png := []byte("\x89PNG\r\n\x1a\nfake")
	fx.cardUC.EXPECT().GenerateShareQR(mock.Anything, testOwner, "card-id-1").Return(png, nil)

	rec := fx.do(http.MethodGet, "/api/v1/cards/card-id-1/qr", "", headers)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestSession_SignIn(t *testing.T) {
	fx := createTestAPI(t)
	fx.sessionUC.EXPECT().SignIn(mock.Anything, "id-token").Return(&usecase.Session{
		AccessToken: "access",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		Owner:       testOwner,
	}, nil)

	rec := fx.do(http.MethodPost, "/auth/session", `{"idToken":"id-token"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, "access", data["accessToken"])
	assert.Equal(t, "Bearer", data["tokenType"])
	assert.InDelta(t, 3600, data["expiresIn"], 0)
}

func TestSession_SignInMissingToken(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/auth/session", `{}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "idToken failed on 'required'", env.Error.Details)
}

func TestSession_SignInRejected(t *testing.T) {
	fx := createTestAPI(t)
	fx.sessionUC.EXPECT().SignIn(mock.Anything, "bad").Return(nil, domainerrors.ErrIdentityTokenInvalid)

	rec := fx.do(http.MethodPost, "/auth/session", `{"idToken":"bad"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "IDENTITY_TOKEN_INVALID", env.Error.Code)
}

func TestUnknownRoute(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestCards_UnhandledErrorIsGeneric(t *testing.T) {
	fx := createTestAPI(t)
	headers := fx.authorize()
	fx.cardUC.EXPECT().ListCards(mock.Anything, testOwner).Return(nil, errors.New("boom"))

	rec := fx.do(http.MethodGet, "/api/v1/cards", "", headers)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}
