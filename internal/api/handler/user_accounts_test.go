package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestUserAccountRoutes(t *testing.T) {
	linked := []*domain.AdAccountResponse{{ID: "acc-1"}, {ID: "acc-2"}}

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		claims   *domain.Claims
		setup    func(service *mocks.MockAuthenticator)
		validate func(t *testing.T, status int, env func() envelope[[]*domain.AdAccountResponse])
	}{
		{
			name:   "Minhas contas - deve usar o usuário da sessão",
			method: http.MethodGet,
			target: "/v1/api/me/accounts",
			claims: userClaims,
			setup: func(service *mocks.MockAuthenticator) {
				service.EXPECT().GetUserLinkedAccounts(gomock.Any(), "user-1").Return(linked, nil)
			},
			validate: func(t *testing.T, status int, env func() envelope[[]*domain.AdAccountResponse]) {
				require.Equal(t, http.StatusOK, status)
				assert.Len(t, env().Data, 2)
			},
		},
		{
			name:   "Usuário comum gerenciando vínculos - deve retornar 403",
			method: http.MethodPut,
			target: "/v1/api/users/user-2/accounts",
			body:   `{"accountIds":["acc-1"]}`,
			claims: userClaims,
			setup:  func(*mocks.MockAuthenticator) {},
			validate: func(t *testing.T, status int, env func() envelope[[]*domain.AdAccountResponse]) {
				assert.Equal(t, http.StatusForbidden, status)
				assert.Equal(t, apiErrors.ErrInsufficientPrivilege, env().Code)
			},
		},
		{
			name:   "Admin sem accountIds - deve retornar 400",
			method: http.MethodPut,
			target: "/v1/api/users/user-2/accounts",
			body:   `{}`,
			claims: adminClaims,
			setup:  func(*mocks.MockAuthenticator) {},
			validate: func(t *testing.T, status int, env func() envelope[[]*domain.AdAccountResponse]) {
				assert.Equal(t, http.StatusBadRequest, status)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, env().Code)
			},
		},
		{
			name:   "Admin substituindo vínculos - deve devolver a lista atualizada",
			method: http.MethodPut,
			target: "/v1/api/users/user-2/accounts",
			body:   `{"accountIds":["acc-1","acc-2"]}`,
			claims: adminClaims,
			setup: func(service *mocks.MockAuthenticator) {
				gomock.InOrder(
					service.EXPECT().ManageUserAccounts(gomock.Any(), "user-2", []string{"acc-1", "acc-2"}).Return(nil),
					service.EXPECT().GetUserLinkedAccounts(gomock.Any(), "user-2").Return(linked, nil),
				)
			},
			validate: func(t *testing.T, status int, env func() envelope[[]*domain.AdAccountResponse]) {
				require.Equal(t, http.StatusOK, status)
				assert.Equal(t, "acc-2", env().Data[1].ID)
			},
		},
		{
			name:   "Admin com conta inexistente - deve retornar 404",
			method: http.MethodPut,
			target: "/v1/api/users/user-2/accounts",
			body:   `{"accountIds":["acc-9"]}`,
			claims: adminClaims,
			setup: func(service *mocks.MockAuthenticator) {
				service.EXPECT().
					ManageUserAccounts(gomock.Any(), "user-2", []string{"acc-9"}).
					Return(authenticating.NewUserAuthError(authenticating.ErrAccountNotFound, apiErrors.ErrNotFound, "user-2", "Uma ou mais contas não existem"))
			},
			validate: func(t *testing.T, status int, env func() envelope[[]*domain.AdAccountResponse]) {
				assert.Equal(t, http.StatusNotFound, status)
				assert.Equal(t, "Uma ou mais contas não existem", env().Error)
			},
		},
		{
			name:   "Admin consultando usuário inexistente - deve retornar 404",
			method: http.MethodGet,
			target: "/v1/api/users/ghost/accounts",
			claims: adminClaims,
			setup: func(service *mocks.MockAuthenticator) {
				service.EXPECT().
					GetUserProfile(gomock.Any(), "ghost").
					Return(nil, authenticating.NewUserAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, "ghost", "Usuário não encontrado"))
			},
			validate: func(t *testing.T, status int, env func() envelope[[]*domain.AdAccountResponse]) {
				assert.Equal(t, http.StatusNotFound, status)
				assert.Equal(t, apiErrors.ErrUserNotFound, env().Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAuthenticator(ctrl)
			tt.setup(service)

			rec := serve(UserAccounts(service), tt.method, tt.target, tt.body, tt.claims)
			tt.validate(t, rec.Code, func() envelope[[]*domain.AdAccountResponse] {
				return decodeEnvelope[[]*domain.AdAccountResponse](t, rec)
			})
		})
	}
}
