package handler

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/campaign"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/ordering"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
)

const apiPrefix = "/v1/api"

func Healthcheck(db Pinger, gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(gatherer),
		},
	}
}

// AdAccounts registra o CRUD em /accounts e no alias /account
func AdAccounts(service account.AccountService) []router.Route {
	routes := make([]router.Route, 0, 10)

	for _, base := range []string{apiPrefix + "/accounts", apiPrefix + "/account"} {
		routes = append(routes,
			router.Route{
				Path:        base,
				Method:      http.MethodGet,
				Handler:     AdAccountList(service),
				Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
			},
			router.Route{
				Path:        base,
				Method:      http.MethodPost,
				Handler:     CreateAdAccount(service),
				Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
			},
			router.Route{
				Path:        base + "/:id",
				Method:      http.MethodGet,
				Handler:     GetAdAccount(service),
				Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
			},
			router.Route{
				Path:        base + "/:id",
				Method:      http.MethodPut,
				Handler:     UpdateAdAccount(service),
				Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
			},
			router.Route{
				Path:        base + "/:id",
				Method:      http.MethodDelete,
				Handler:     DeleteAdAccount(service),
				Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
			},
		)
	}

	return routes
}

func Orders(service ordering.OrderService, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        apiPrefix + "/orders",
			Method:      http.MethodGet,
			Handler:     OrderList(service, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        apiPrefix + "/orders/:id",
			Method:      http.MethodGet,
			Handler:     GetOrder(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Campaigns(service campaign.CampaignService, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        apiPrefix + "/campaigns",
			Method:      http.MethodGet,
			Handler:     CampaignList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        apiPrefix + "/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        apiPrefix + "/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        apiPrefix + "/campaigns/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        apiPrefix + "/campaigns/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        apiPrefix + "/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboardOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        apiPrefix + "/dashboard/stats",
			Method:      http.MethodGet,
			Handler:     GetDashboardStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Authentication registra login, logout e me. As três ficam fora do SessionGuard.
func Authentication(service authenticating.Authenticator, cookie middleware.SessionCookie) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service, cookie),
		},
		{
			Path:    apiPrefix + "/auth/logout",
			Method:  http.MethodPost,
			Handler: Logout(cookie),
		},
		{
			Path:    apiPrefix + "/auth/me",
			Method:  http.MethodGet,
			Handler: GetMe(service, cookie),
		},
	}
}

// UserAccounts retorna as rotas para gerenciamento de contas vinculadas a usuários
func UserAccounts(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        apiPrefix + "/me/accounts",
			Method:      http.MethodGet,
			Handler:     GetMyAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        apiPrefix + "/users/:id/accounts",
			Method:      http.MethodGet,
			Handler:     GetUserAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        apiPrefix + "/users/:id/accounts",
			Method:      http.MethodPut,
			Handler:     UpdateUserAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
