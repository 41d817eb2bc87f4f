package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
)

var testJSON = jsoniter.ConfigCompatibleWithStandardLibrary

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

var (
	adminClaims = &domain.Claims{UserID: "admin-1", Email: "admin@example.com", Role: domain.UserRoleAdmin}
	userClaims  = &domain.Claims{UserID: "user-1", Email: "user@example.com", Role: domain.UserRoleUser}
)

// serve monta um router só com as rotas informadas e injeta as claims como faria o SessionGuard
func serve(routes []router.Route, method, target, body string, claims *domain.Claims) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var env envelope[T]
	require.NoError(t, testJSON.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func assertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decodeEnvelope[any](t, rec)
	require.False(t, env.Success)
	require.Equal(t, code, env.Code)
}

func testCookie() middleware.SessionCookie {
	return middleware.SessionCookie{Name: "auth_token", TTL: 7 * 24 * time.Hour}
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
