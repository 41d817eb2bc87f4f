package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login valida as credenciais, grava o cookie de sessão e devolve usuário e token
func Login(service authenticating.Authenticator, cookie middleware.SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		cookie.Set(w, resp.Token)
		utils.WriteSuccess(w, http.StatusOK, resp, "Login realizado com sucesso")
	}
}

func Logout(cookie middleware.SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie.Clear(w)
		utils.WriteSuccess(w, http.StatusOK, nil, "Logout realizado com sucesso")
	}
}

// GetMe fica fora do SessionGuard e valida o token por conta própria
func GetMe(service authenticating.Authenticator, cookie middleware.SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := cookie.Token(r)
		if token == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Não autenticado", nil)
			return
		}

		claims, err := service.ValidateToken(token)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Token inválido em /auth/me")
			cookie.Clear(w)
			handleServiceError(w, r, err)
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, user, "")
	}
}
