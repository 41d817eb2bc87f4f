package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"

	apiPrefix = "/v1/api"
	loginPath = "/login"
)

// rotas liberadas pelo caminho exato
var publicPaths = map[string]bool{
	"/":       true,
	loginPath: true,
}

// rotas liberadas pelo prefixo
var publicPrefixes = []string{
	apiPrefix + "/auth/login",
	apiPrefix + "/auth/logout",
	apiPrefix + "/auth/me",
	"/healthcheck",
	"/metrics",
}

// TokenValidator valida o token de sessão e devolve suas claims
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// SessionCookie descreve o cookie que carrega o token de sessão
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

func NewSessionCookie(cfg config.Auth) SessionCookie {
	return SessionCookie{
		Name:   cfg.CookieName,
		Secure: cfg.CookieSecure,
		TTL:    cfg.TokenTTL,
	}
}

// Set grava o token com Max-Age igual à validade do token
func (c SessionCookie) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear remove o cookie do navegador
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token lê o token do cookie e, na falta dele, do header Authorization
func (c SessionCookie) Token(r *http.Request) string {
	if cookie, err := r.Cookie(c.Name); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if token, found := strings.CutPrefix(authHeader, "Bearer "); found {
		return strings.TrimSpace(token)
	}

	return ""
}

func isPublic(path string) bool {
	if publicPaths[path] {
		return true
	}

	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

func isAPIPath(path string) bool {
	return path == apiPrefix || strings.HasPrefix(path, apiPrefix+"/")
}

// SessionGuard barra requisições sem sessão válida antes de chegarem às rotas
func SessionGuard(validator TokenValidator, cookie SessionCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token := cookie.Token(r)
			if token == "" {
				reject(w, r, apiErrors.ErrMissingToken, "Não autenticado")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token de sessão inválido")
				cookie.Clear(w)
				reject(w, r, apiErrors.ErrInvalidToken, "Token inválido ou expirado")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// reject responde 401 nas rotas da API e redireciona as páginas para o login
func reject(w http.ResponseWriter, r *http.Request, code string, message string) {
	if isAPIPath(r.URL.Path) {
		apiErrors.WriteError(w, code, message, nil)
		return
	}

	target := loginPath + "?redirect=" + url.QueryEscape(r.URL.Path)
	http.Redirect(w, r, target, http.StatusFound)
}

// ClaimsFromContext devolve as claims gravadas pelo SessionGuard
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

// WithClaims grava claims no contexto
func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyUser, claims)
}
