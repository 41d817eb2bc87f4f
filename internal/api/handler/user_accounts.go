package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

type UserAccountsRequest struct {
	AccountIDs []string `json:"accountIds"`
}

// GetMyAccounts retorna as contas vinculadas ao usuário logado
func GetMyAccounts(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Usuário não autenticado", nil)
			return
		}

		accounts, err := service.GetUserLinkedAccounts(r.Context(), claims.UserID)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, accounts, "")
	}
}

// GetUserAccounts retorna as contas vinculadas a um usuário qualquer
func GetUserAccounts(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if _, err := service.GetUserProfile(r.Context(), userID); err != nil {
			handleServiceError(w, r, err)
			return
		}

		accounts, err := service.GetUserLinkedAccounts(r.Context(), userID)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, accounts, "")
	}
}

// UpdateUserAccounts substitui as contas vinculadas a um usuário
func UpdateUserAccounts(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req UserAccountsRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Corpo inválido ao atualizar vínculos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.AccountIDs == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "accountIds é obrigatório", nil)
			return
		}

		if err := service.ManageUserAccounts(r.Context(), userID, req.AccountIDs); err != nil {
			handleServiceError(w, r, err)
			return
		}

		accounts, err := service.GetUserLinkedAccounts(r.Context(), userID)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("user_id", userID).Info("Vínculos de contas atualizados")
		utils.WriteSuccess(w, http.StatusOK, accounts, "Contas vinculadas atualizadas com sucesso")
	}
}
