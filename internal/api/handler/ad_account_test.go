package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account/mocks"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestAdAccountRoutes(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		claims   *domain.Claims
		setup    func(service *mocks.MockAccountService)
		validate func(t *testing.T, status int, body []byte, rec func() envelope[any])
	}{
		{
			name:   "Listagem com filtros - deve repassar plataforma e status",
			method: http.MethodGet,
			target: "/v1/api/accounts?platform=meta&status=active,inactive",
			claims: userClaims,
			setup: func(service *mocks.MockAccountService) {
				service.EXPECT().
					ListAccounts(gomock.Any(), domain.AdAccountFilter{
						Platform: "meta",
						Status:   []domain.AdAccountStatus{domain.AdAccountStatusActive, domain.AdAccountStatusInactive},
					}).
					Return([]*domain.AdAccountResponse{{ID: "acc-1"}}, nil)
			},
			validate: func(t *testing.T, status int, _ []byte, env func() envelope[any]) {
				assert.Equal(t, http.StatusOK, status)
				assert.True(t, env().Success)
			},
		},
		{
			name:   "Alias /account - deve atender a mesma listagem",
			method: http.MethodGet,
			target: "/v1/api/account",
			claims: userClaims,
			setup: func(service *mocks.MockAccountService) {
				service.EXPECT().ListAccounts(gomock.Any(), domain.AdAccountFilter{}).Return([]*domain.AdAccountResponse{}, nil)
			},
			validate: func(t *testing.T, status int, _ []byte, _ func() envelope[any]) {
				assert.Equal(t, http.StatusOK, status)
			},
		},
		{
			name:   "Conta inexistente - deve retornar 404",
			method: http.MethodGet,
			target: "/v1/api/accounts/missing",
			claims: userClaims,
			setup: func(service *mocks.MockAccountService) {
				service.EXPECT().
					GetAccount(gomock.Any(), "missing").
					Return(nil, account.NewAccountError(account.ErrAccountNotFound, apiErrors.ErrNotFound, "Conta não encontrada"))
			},
			validate: func(t *testing.T, status int, _ []byte, env func() envelope[any]) {
				assert.Equal(t, http.StatusNotFound, status)
				assert.Equal(t, apiErrors.ErrNotFound, env().Code)
				assert.Equal(t, "Conta não encontrada", env().Error)
			},
		},
		{
			name:   "Corpo inválido na criação - deve retornar 400",
			method: http.MethodPost,
			target: "/v1/api/accounts",
			body:   "{",
			claims: userClaims,
			setup:  func(*mocks.MockAccountService) {},
			validate: func(t *testing.T, status int, _ []byte, env func() envelope[any]) {
				assert.Equal(t, http.StatusBadRequest, status)
				assert.Equal(t, apiErrors.ErrInvalidRequest, env().Code)
			},
		},
		{
			name:   "Conta duplicada - deve retornar 400 de conflito",
			method: http.MethodPost,
			target: "/v1/api/accounts",
			body:   `{"platform":"meta","accountId":"act_1","accountName":"Loja A"}`,
			claims: userClaims,
			setup: func(service *mocks.MockAccountService) {
				service.EXPECT().
					CreateAccount(gomock.Any(), &domain.CreateAdAccountRequest{Platform: "meta", AccountID: "act_1", AccountName: "Loja A"}).
					Return(nil, account.NewAccountError(account.ErrAccountExists, apiErrors.ErrConflict, "Conta já existe"))
			},
			validate: func(t *testing.T, status int, _ []byte, env func() envelope[any]) {
				assert.Equal(t, http.StatusBadRequest, status)
				assert.Equal(t, apiErrors.ErrConflict, env().Code)
			},
		},
		{
			name:   "Atualização - deve usar o ID da URL",
			method: http.MethodPut,
			target: "/v1/api/accounts/acc-1",
			body:   `{"id":"outro","accountName":"Novo nome"}`,
			claims: userClaims,
			setup: func(service *mocks.MockAccountService) {
				service.EXPECT().
					UpdateAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.UpdateAdAccountRequest) (*domain.AdAccountResponse, error) {
						assert.Equal(t, "acc-1", req.ID)
						assert.Equal(t, "Novo nome", *req.AccountName)
						return &domain.AdAccountResponse{ID: "acc-1", AccountName: "Novo nome"}, nil
					})
			},
			validate: func(t *testing.T, status int, _ []byte, env func() envelope[any]) {
				assert.Equal(t, http.StatusOK, status)
				assert.Equal(t, "Conta atualizada com sucesso", env().Message)
			},
		},
		{
			name:   "Remoção - deve retornar sucesso",
			method: http.MethodDelete,
			target: "/v1/api/accounts/acc-1",
			claims: userClaims,
			setup: func(service *mocks.MockAccountService) {
				service.EXPECT().DeleteAccount(gomock.Any(), "acc-1").Return(nil)
			},
			validate: func(t *testing.T, status int, _ []byte, env func() envelope[any]) {
				assert.Equal(t, http.StatusOK, status)
				assert.True(t, env().Success)
			},
		},
		{
			name:   "Erro inesperado - deve retornar 500 com mensagem genérica",
			method: http.MethodDelete,
			target: "/v1/api/accounts/acc-1",
			claims: userClaims,
			setup: func(service *mocks.MockAccountService) {
				service.EXPECT().DeleteAccount(gomock.Any(), "acc-1").Return(errors.New("pq: connection reset"))
			},
			validate: func(t *testing.T, status int, body []byte, env func() envelope[any]) {
				assert.Equal(t, http.StatusInternalServerError, status)
				assert.Equal(t, "Erro interno no servidor", env().Error)
				assert.NotContains(t, string(body), "connection reset")
			},
		},
		{
			name:   "Sem sessão - deve retornar 401",
			method: http.MethodGet,
			target: "/v1/api/accounts",
			setup:  func(*mocks.MockAccountService) {},
			validate: func(t *testing.T, status int, _ []byte, env func() envelope[any]) {
				assert.Equal(t, http.StatusUnauthorized, status)
				assert.Equal(t, apiErrors.ErrMissingToken, env().Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAccountService(ctrl)
			tt.setup(service)

			rec := serve(AdAccounts(service), tt.method, tt.target, tt.body, tt.claims)
			tt.validate(t, rec.Code, rec.Body.Bytes(), func() envelope[any] { return decodeEnvelope[any](t, rec) })
		})
	}
}
