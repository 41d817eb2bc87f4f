package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/campaign"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/ordering"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// handleServiceError converte os erros tipados dos casos de uso no envelope de erro
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		accountErr  *account.AccountError
		campaignErr *campaign.CampaignError
		orderErr    *ordering.OrderError
		insightErr  *insighting.InsightError
		authErr     *authenticating.AuthError
	)

	switch {
	case errors.As(err, &accountErr):
		writeTypedError(w, accountErr.Code, accountErr.Details, accountErr.Err)
	case errors.As(err, &campaignErr):
		writeTypedError(w, campaignErr.Code, campaignErr.Details, campaignErr.Err)
	case errors.As(err, &orderErr):
		writeTypedError(w, orderErr.Code, orderErr.Details, orderErr.Err)
	case errors.As(err, &insightErr):
		writeTypedError(w, insightErr.Code, insightErr.Details, insightErr.Err)
	case errors.As(err, &authErr):
		writeTypedError(w, authErr.Code, authErr.Details, authErr.Err)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro não tratado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "", nil)
	}
}

func writeTypedError(w http.ResponseWriter, code string, details string, base error) {
	message := details
	if message == "" && apiErrors.StatusFor(code) != http.StatusInternalServerError && base != nil {
		message = base.Error()
	}

	apiErrors.WriteError(w, code, message, nil)
}
