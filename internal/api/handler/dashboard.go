package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

func GetDashboardOverview(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, ok := statsFilter(w, r)
		if !ok {
			return
		}

		resp, err := service.GetDashboardOverview(r.Context(), filter)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, resp, "")
	})
}

func GetDashboardStats(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, ok := statsFilter(w, r)
		if !ok {
			return
		}

		resp, err := service.GetDashboardStats(r.Context(), filter)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, resp, "")
	})
}

// statsFilter lê userId e period. Usuários comuns só consultam o próprio escopo.
func statsFilter(w http.ResponseWriter, r *http.Request) (domain.StatsFilter, bool) {
	period, err := queryInt(r, "period")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "period deve ser numérico", nil)
		return domain.StatsFilter{}, false
	}

	filter := domain.StatsFilter{
		UserID:     r.URL.Query().Get("userId"),
		WindowDays: period,
	}

	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		if filter.UserID == "" || claims.Role != domain.UserRoleAdmin {
			filter.UserID = claims.UserID
		}
	}

	return filter, true
}
