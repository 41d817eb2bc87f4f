package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

func AdAccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := domain.AdAccountFilter{
			Platform: r.URL.Query().Get("platform"),
		}

		for _, status := range queryList(r, "status") {
			filter.Status = append(filter.Status, domain.AdAccountStatus(status))
		}

		adAccounts, err := service.ListAccounts(r.Context(), filter)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, adAccounts, "")
	})
}

func GetAdAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		resp, err := service.GetAccount(r.Context(), id)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, resp, "")
	})
}

func CreateAdAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var createRequest domain.CreateAdAccountRequest
		if err := utils.DecodeJSON(r, &createRequest); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Corpo inválido ao criar conta")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		resp, err := service.CreateAccount(r.Context(), &createRequest)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, resp, "Conta criada com sucesso")
	})
}

func UpdateAdAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var updateRequest domain.UpdateAdAccountRequest
		if err := utils.DecodeJSON(r, &updateRequest); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Corpo inválido ao atualizar conta")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		// o ID da URL prevalece
		updateRequest.ID = id

		resp, err := service.UpdateAccount(r.Context(), &updateRequest)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, resp, "Conta atualizada com sucesso")
	})
}

func DeleteAdAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteAccount(r.Context(), id); err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, nil, "Conta removida com sucesso")
	})
}
