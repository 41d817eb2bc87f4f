package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/campaign"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

func CampaignList(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := domain.CampaignFilter{
			AccountID: r.URL.Query().Get("accountId"),
			Status:    r.URL.Query().Get("status"),
		}

		var err error
		if filter.Page, err = queryInt(r, "page"); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page deve ser numérico", nil)
			return
		}

		if filter.Limit, err = queryInt(r, "limit"); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser numérico", nil)
			return
		}

		resp, err := service.ListCampaigns(r.Context(), filter)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, resp, "")
	})
}

// GetCampaign devolve a campanha com as linhas diárias entre startDate e endDate
func GetCampaign(service campaign.CampaignService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		startDate, err := queryDate(r, "startDate", loc, false)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "startDate deve estar no formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := queryDate(r, "endDate", loc, false)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "endDate deve estar no formato YYYY-MM-DD", nil)
			return
		}

		resp, err := service.GetCampaign(r.Context(), id, startDate, endDate)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, resp, "")
	})
}

func CreateCampaign(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var createRequest domain.CreateCampaignRequest
		if err := utils.DecodeJSON(r, &createRequest); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Corpo inválido ao criar campanha")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		resp, err := service.CreateCampaign(r.Context(), &createRequest)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, resp, "Campanha criada com sucesso")
	})
}

func UpdateCampaign(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var updateRequest domain.UpdateCampaignRequest
		if err := utils.DecodeJSON(r, &updateRequest); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Corpo inválido ao atualizar campanha")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		updateRequest.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		resp, err := service.UpdateCampaign(r.Context(), &updateRequest)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, resp, "Campanha atualizada com sucesso")
	})
}

func DeleteCampaign(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteCampaign(r.Context(), id); err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, nil, "Campanha removida com sucesso")
	})
}
