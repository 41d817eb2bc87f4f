package account

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockAccountRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)

	return &Service{
		accountRepository: repo,
		now:               func() time.Time { return fixedNow },
	}, repo
}

func stringPtr(s string) *string {
	return &s
}

func assertAccountError(t *testing.T, err error, base error, code string) {
	t.Helper()

	var accErr *AccountError
	require.True(t, errors.As(err, &accErr), "esperava AccountError, recebeu %v", err)
	assert.ErrorIs(t, accErr, base)
	assert.Equal(t, code, accErr.Code)
}

func TestService_CreateAccount(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		request  *domain.CreateAdAccountRequest
		setup    func(repo *mocks.MockAccountRepository)
		validate func(t *testing.T, resp *domain.AdAccountResponse, err error)
	}{
		{
			name:    "Campos obrigatórios ausentes - deve retornar erro de validação",
			request: &domain.CreateAdAccountRequest{Platform: "meta", AccountID: "  "},
			setup:   func(*mocks.MockAccountRepository) {},
			validate: func(t *testing.T, resp *domain.AdAccountResponse, err error) {
				assert.Nil(t, resp)
				assertAccountError(t, err, ErrMissingRequiredData, apiErrors.ErrMissingRequiredData)
			},
		},
		{
			name:    "Par plataforma e conta já existente - deve retornar conflito",
			request: &domain.CreateAdAccountRequest{Platform: "meta", AccountID: "act_1", AccountName: "Loja A"},
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().
					GetAccountByPlatformAndExternalID(ctx, "meta", "act_1").
					Return(&domain.AdAccount{ID: "acc-1"}, nil)
			},
			validate: func(t *testing.T, resp *domain.AdAccountResponse, err error) {
				assert.Nil(t, resp)
				assertAccountError(t, err, ErrAccountExists, apiErrors.ErrConflict)
			},
		},
		{
			name:    "Violação de unicidade no insert - deve retornar conflito",
			request: &domain.CreateAdAccountRequest{Platform: "meta", AccountID: "act_1", AccountName: "Loja A"},
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByPlatformAndExternalID(ctx, "meta", "act_1").Return(nil, nil)
				repo.EXPECT().
					CreateAccount(ctx, gomock.Any()).
					Return(pkgerrors.Wrap(repository.ErrDuplicateKey, "failed to create account"))
			},
			validate: func(t *testing.T, resp *domain.AdAccountResponse, err error) {
				assert.Nil(t, resp)
				assertAccountError(t, err, ErrAccountExists, apiErrors.ErrConflict)
			},
		},
		{
			name: "Conta válida sem moeda e status - deve aplicar padrões",
			request: &domain.CreateAdAccountRequest{
				Platform:    "meta",
				AccountID:   "act_1",
				AccountName: "Loja A",
				Config:      map[string]any{"pixel": "123"},
			},
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByPlatformAndExternalID(ctx, "meta", "act_1").Return(nil, nil)
				repo.EXPECT().
					CreateAccount(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, account *domain.AdAccount) error {
						assert.NotEmpty(t, account.ID)
						assert.Equal(t, domain.DefaultAccountCurrency, account.Currency)
						assert.Equal(t, domain.AdAccountStatusActive, account.Status)
						require.NotNil(t, account.Config)
						assert.JSONEq(t, `{"pixel":"123"}`, *account.Config)
						assert.Equal(t, fixedNow, account.CreatedAt)
						return nil
					})
			},
			validate: func(t *testing.T, resp *domain.AdAccountResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "USD", resp.Currency)
				assert.Equal(t, domain.AdAccountStatusActive, resp.Status)
				assert.Equal(t, map[string]any{"pixel": "123"}, resp.Config)
			},
		},
		{
			name:    "Status inválido - deve retornar erro de formato",
			request: &domain.CreateAdAccountRequest{Platform: "meta", AccountID: "act_1", AccountName: "Loja A", Status: "deleted"},
			setup:   func(*mocks.MockAccountRepository) {},
			validate: func(t *testing.T, resp *domain.AdAccountResponse, err error) {
				assertAccountError(t, err, ErrInvalidStatus, apiErrors.ErrInvalidFormat)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			resp, err := service.CreateAccount(ctx, tt.request)
			tt.validate(t, resp, err)
		})
	}
}

func TestService_UpdateAccount(t *testing.T) {
	ctx := context.Background()
	existing := func() *domain.AdAccount {
		return &domain.AdAccount{
			ID:          "acc-1",
			Platform:    "meta",
			AccountID:   "act_1",
			AccountName: "Loja A",
			Currency:    "BRL",
			Status:      domain.AdAccountStatusActive,
			Config:      stringPtr(`{"pixel":"123"}`),
		}
	}

	t.Run("Conta inexistente - deve retornar não encontrado", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetAccountByID(ctx, "missing").Return(nil, nil)

		_, err := service.UpdateAccount(ctx, &domain.UpdateAdAccountRequest{ID: "missing", AccountName: stringPtr("X")})
		assertAccountError(t, err, ErrAccountNotFound, apiErrors.ErrNotFound)
	})

	t.Run("Atualização parcial - campos omitidos mantêm valores", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetAccountByID(ctx, "acc-1").Return(existing(), nil)
		repo.EXPECT().
			UpdateAccount(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, account *domain.AdAccount) error {
				assert.Equal(t, "Loja Nova", account.AccountName)
				assert.Equal(t, "BRL", account.Currency)
				assert.Equal(t, domain.AdAccountStatusActive, account.Status)
				assert.Equal(t, `{"pixel":"123"}`, *account.Config)
				assert.Equal(t, fixedNow, account.UpdatedAt)
				return nil
			})

		resp, err := service.UpdateAccount(ctx, &domain.UpdateAdAccountRequest{
			ID:          "acc-1",
			AccountName: stringPtr("Loja Nova"),
			Currency:    stringPtr(""),
		})
		require.NoError(t, err)
		assert.Equal(t, "Loja Nova", resp.AccountName)
		assert.Equal(t, map[string]any{"pixel": "123"}, resp.Config)
	})

	t.Run("Config informada - deve substituir a anterior", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetAccountByID(ctx, "acc-1").Return(existing(), nil)
		repo.EXPECT().
			UpdateAccount(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, account *domain.AdAccount) error {
				assert.JSONEq(t, `{"pixel":"999","capi":true}`, *account.Config)
				assert.Equal(t, domain.AdAccountStatusInactive, account.Status)
				return nil
			})

		_, err := service.UpdateAccount(ctx, &domain.UpdateAdAccountRequest{
			ID:     "acc-1",
			Status: stringPtr("inactive"),
			Config: map[string]any{"pixel": "999", "capi": true},
		})
		require.NoError(t, err)
	})
}

func TestService_GetAccount_InvalidConfigBecomesNull(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	repo.EXPECT().
		GetAccountByID(ctx, "acc-1").
		Return(&domain.AdAccount{ID: "acc-1", Config: stringPtr("{quebrado")}, nil)

	resp, err := service.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Nil(t, resp.Config)
}

func TestService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Conta inexistente", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().DeleteAccount(ctx, "missing").Return(pkgerrors.Wrap(repository.ErrNotFound, "no rows affected"))

		err := service.DeleteAccount(ctx, "missing")
		assertAccountError(t, err, ErrAccountNotFound, apiErrors.ErrNotFound)
	})

	t.Run("Falha no banco", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().DeleteAccount(ctx, "acc-1").Return(errors.New("connection reset"))

		err := service.DeleteAccount(ctx, "acc-1")
		assertAccountError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
	})

	t.Run("Sucesso", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().DeleteAccount(ctx, "acc-1").Return(nil)

		assert.NoError(t, service.DeleteAccount(ctx, "acc-1"))
	})
}

func TestService_ListAccounts(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	filter := domain.AdAccountFilter{Platform: "meta", Status: []domain.AdAccountStatus{domain.AdAccountStatusActive}}
	repo.EXPECT().
		ListAccounts(ctx, filter).
		Return([]*domain.AdAccount{{ID: "acc-1"}, {ID: "acc-2", Config: stringPtr(`[1,2]`)}}, nil)

	accounts, err := service.ListAccounts(ctx, filter)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Nil(t, accounts[0].Config)
	assert.Equal(t, []any{float64(1), float64(2)}, accounts[1].Config)
}
