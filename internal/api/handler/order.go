package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/ordering"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// OrderList aceita platform, status, accountId, startDate, endDate, page e limit
func OrderList(service ordering.OrderService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := domain.OrderFilter{
			Platform: query.Get("platform"),
			Status:   query.Get("status"),
		}

		if accountID := query.Get("accountId"); accountID != "" {
			filter.AccountIDs = []string{accountID}
		}

		var err error
		if filter.StartDate, err = queryDate(r, "startDate", loc, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "startDate deve estar no formato YYYY-MM-DD ou RFC3339", nil)
			return
		}

		if filter.EndDate, err = queryDate(r, "endDate", loc, true); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "endDate deve estar no formato YYYY-MM-DD ou RFC3339", nil)
			return
		}

		if filter.Page, err = queryInt(r, "page"); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page deve ser numérico", nil)
			return
		}

		if filter.Limit, err = queryInt(r, "limit"); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser numérico", nil)
			return
		}

		resp, err := service.ListOrders(r.Context(), filter)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, resp, "")
	})
}

func GetOrder(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		resp, err := service.GetOrder(r.Context(), id)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		utils.WriteSuccess(w, http.StatusOK, resp, "")
	})
}
