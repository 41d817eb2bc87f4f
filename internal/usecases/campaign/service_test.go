package campaign

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	campaigns *mocks.MockCampaignRepository
	accounts  *mocks.MockAccountRepository
}

func newTestService(t *testing.T) (*Service, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		campaigns: mocks.NewMockCampaignRepository(ctrl),
		accounts:  mocks.NewMockAccountRepository(ctrl),
	}

	return &Service{
		campaignRepository: deps.campaigns,
		accountRepository:  deps.accounts,
		pagination:         config.Pagination{DefaultLimit: 50, MaxLimit: 200},
		now:                func() time.Time { return fixedNow },
	}, deps
}

func assertCampaignError(t *testing.T, err error, base error, code string) {
	t.Helper()

	var campaignErr *CampaignError
	require.True(t, errors.As(err, &campaignErr), "esperava CampaignError, recebeu %v", err)
	assert.ErrorIs(t, campaignErr, base)
	assert.Equal(t, code, campaignErr.Code)
}

func TestService_ListCampaigns(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)

	expected := domain.CampaignFilter{AccountID: "acc-1", Page: 2, Limit: 200}
	deps.campaigns.EXPECT().
		ListCampaigns(gomock.Any(), expected).
		Return([]*domain.Campaign{{ID: "c-1", Budget: decimal.NewNullDecimal(decimal.NewFromInt(150))}}, nil)
	deps.campaigns.EXPECT().
		CountCampaigns(gomock.Any(), expected).
		Return(int64(201), nil)

	resp, err := service.ListCampaigns(ctx, domain.CampaignFilter{AccountID: "acc-1", Page: 2, Limit: 5000})
	require.NoError(t, err)
	require.Len(t, resp.Campaigns, 1)
	assert.Equal(t, 150.0, *resp.Campaigns[0].Budget)
	assert.Equal(t, domain.Pagination{Total: 201, Page: 2, Limit: 200, TotalPages: 2}, resp.Pagination)
}

func TestService_ListCampaigns_CountFails(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)

	deps.campaigns.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	deps.campaigns.EXPECT().CountCampaigns(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))

	_, err := service.ListCampaigns(ctx, domain.CampaignFilter{})
	assertCampaignError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
}

func TestService_CreateCampaign(t *testing.T) {
	ctx := context.Background()
	budget := 99.9

	tests := []struct {
		name     string
		request  *domain.CreateCampaignRequest
		setup    func(deps testDeps)
		validate func(t *testing.T, resp *domain.CampaignResponse, err error)
	}{
		{
			name:    "Campos obrigatórios ausentes",
			request: &domain.CreateCampaignRequest{AccountID: "acc-1"},
			setup:   func(testDeps) {},
			validate: func(t *testing.T, _ *domain.CampaignResponse, err error) {
				assertCampaignError(t, err, ErrMissingRequiredData, apiErrors.ErrMissingRequiredData)
			},
		},
		{
			name:    "Conta inexistente - deve retornar não encontrado",
			request: &domain.CreateCampaignRequest{AccountID: "acc-x", CampaignID: "123", CampaignName: "Black Friday"},
			setup: func(deps testDeps) {
				deps.accounts.EXPECT().GetAccountByID(ctx, "acc-x").Return(nil, nil)
			},
			validate: func(t *testing.T, _ *domain.CampaignResponse, err error) {
				assertCampaignError(t, err, ErrAccountNotFound, apiErrors.ErrNotFound)
			},
		},
		{
			name:    "Campanha duplicada na conta - deve retornar conflito",
			request: &domain.CreateCampaignRequest{AccountID: "acc-1", CampaignID: "123", CampaignName: "Black Friday"},
			setup: func(deps testDeps) {
				deps.accounts.EXPECT().GetAccountByID(ctx, "acc-1").Return(&domain.AdAccount{ID: "acc-1", Platform: "meta"}, nil)
				deps.campaigns.EXPECT().GetCampaignByExternalID(ctx, "acc-1", "123").Return(nil, nil)
				deps.campaigns.EXPECT().
					CreateCampaign(ctx, gomock.Any()).
					Return(pkgerrors.Wrap(repository.ErrDuplicateKey, "failed to create campaign"))
			},
			validate: func(t *testing.T, _ *domain.CampaignResponse, err error) {
				assertCampaignError(t, err, ErrCampaignExists, apiErrors.ErrConflict)
			},
		},
		{
			name: "Campanha válida",
			request: &domain.CreateCampaignRequest{
				AccountID:    "acc-1",
				CampaignID:   "123",
				CampaignName: "Black Friday",
				Budget:       &budget,
			},
			setup: func(deps testDeps) {
				deps.accounts.EXPECT().GetAccountByID(ctx, "acc-1").Return(&domain.AdAccount{ID: "acc-1", Platform: "meta"}, nil)
				deps.campaigns.EXPECT().GetCampaignByExternalID(ctx, "acc-1", "123").Return(nil, nil)
				deps.campaigns.EXPECT().
					CreateCampaign(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
						assert.Equal(t, domain.CampaignStatusActive, c.Status)
						assert.True(t, c.Budget.Valid)
						assert.Equal(t, fixedNow, c.CreatedAt)
						return nil
					})
			},
			validate: func(t *testing.T, resp *domain.CampaignResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "meta", resp.Platform)
				assert.Equal(t, 99.9, *resp.Budget)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)
			tt.setup(deps)

			resp, err := service.CreateCampaign(ctx, tt.request)
			tt.validate(t, resp, err)
		})
	}
}

func TestService_GetCampaign(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	t.Run("Com dados diários no intervalo", func(t *testing.T) {
		service, deps := newTestService(t)
		deps.campaigns.EXPECT().GetCampaignByID(ctx, "c-1").Return(&domain.Campaign{ID: "c-1"}, nil)
		deps.campaigns.EXPECT().
			ListDailyPerformance(ctx, domain.PerformanceFilter{CampaignID: "c-1", StartDate: start, EndDate: end}).
			Return([]*domain.DailyPerformance{{
				Date: start,
				PerformanceTotals: domain.PerformanceTotals{
					Impressions: 1000,
					Clicks:      50,
					Cost:        decimal.RequireFromString("25.50"),
					Revenue:     decimal.NewFromInt(100),
				},
			}}, nil)

		resp, err := service.GetCampaign(ctx, "c-1", &start, &end)
		require.NoError(t, err)
		require.Len(t, resp.DailyData, 1)
		assert.Equal(t, "2024-05-01", resp.DailyData[0].Date)
		assert.Equal(t, 25.5, resp.DailyData[0].Cost)
	})

	t.Run("Intervalo invertido", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.GetCampaign(ctx, "c-1", &end, &start)
		assertCampaignError(t, err, ErrInvalidDateRange, apiErrors.ErrInvalidRequest)
	})

	t.Run("Campanha inexistente", func(t *testing.T) {
		service, deps := newTestService(t)
		deps.campaigns.EXPECT().GetCampaignByID(ctx, "c-x").Return(nil, nil)

		_, err := service.GetCampaign(ctx, "c-x", nil, nil)
		assertCampaignError(t, err, ErrCampaignNotFound, apiErrors.ErrNotFound)
	})
}

func TestService_UpdateCampaign(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)
	paused := "paused"
	empty := ""

	deps.campaigns.EXPECT().
		GetCampaignByID(ctx, "c-1").
		Return(&domain.Campaign{ID: "c-1", CampaignName: "Black Friday", Status: domain.CampaignStatusActive}, nil)
	deps.campaigns.EXPECT().
		UpdateCampaign(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
			assert.Equal(t, "Black Friday", c.CampaignName)
			assert.Equal(t, domain.CampaignStatusPaused, c.Status)
			assert.Equal(t, fixedNow, c.UpdatedAt)
			return nil
		})

	resp, err := service.UpdateCampaign(ctx, &domain.UpdateCampaignRequest{ID: "c-1", CampaignName: &empty, Status: &paused})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusPaused, resp.Status)
}

func TestService_DeleteCampaign_NotFound(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)
	deps.campaigns.EXPECT().DeleteCampaign(ctx, "c-x").Return(repository.ErrNotFound)

	err := service.DeleteCampaign(ctx, "c-x")
	assertCampaignError(t, err, ErrCampaignNotFound, apiErrors.ErrNotFound)
}
