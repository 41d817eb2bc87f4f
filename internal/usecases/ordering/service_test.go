package ordering

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockOrderRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepository(ctrl)

	return &Service{
		orderRepository: repo,
		pagination:      config.Pagination{DefaultLimit: 50, MaxLimit: 200},
	}, repo
}

func TestService_ListOrders(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	conversion := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	expected := domain.OrderFilter{Platform: "meta", Page: 1, Limit: 50}

	repo.EXPECT().
		FindOrders(gomock.Any(), expected).
		Return([]*domain.Order{{
			ID:               "o-1",
			Platform:         "meta",
			OrderAmount:      decimal.NewFromInt(100),
			CommissionAmount: decimal.RequireFromString("12.5"),
			ConversionTime:   conversion,
		}}, nil)
	repo.EXPECT().
		Aggregate(gomock.Any(), expected).
		Return(&domain.OrderAggregate{
			Count:            101,
			OrderAmount:      decimal.NewFromInt(10100),
			CommissionAmount: decimal.RequireFromString("1262.5"),
		}, nil)

	resp, err := service.ListOrders(ctx, domain.OrderFilter{Platform: "meta"})
	require.NoError(t, err)

	require.Len(t, resp.Orders, 1)
	assert.Equal(t, 12.5, resp.Orders[0].CommissionAmount)
	assert.Equal(t, domain.Pagination{Total: 101, Page: 1, Limit: 50, TotalPages: 3}, resp.Pagination)
	assert.Equal(t, domain.OrderSummary{TotalOrders: 101, TotalOrderAmount: 10100, TotalCommissionAmount: 1262.5}, resp.Summary)
}

func TestService_ListOrders_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Intervalo invertido", func(t *testing.T) {
		service, _ := newTestService(t)
		start := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, -1)

		_, err := service.ListOrders(ctx, domain.OrderFilter{StartDate: &start, EndDate: &end})

		var orderErr *OrderError
		require.True(t, errors.As(err, &orderErr))
		assert.Equal(t, apiErrors.ErrInvalidRequest, orderErr.Code)
	})

	t.Run("Falha no resumo", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().FindOrders(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		repo.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := service.ListOrders(ctx, domain.OrderFilter{})
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestService_GetOrder(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(ctx, "o-x").Return(nil, nil)
	_, err := service.GetOrder(ctx, "o-x")

	var orderErr *OrderError
	require.True(t, errors.As(err, &orderErr))
	assert.Equal(t, apiErrors.ErrNotFound, orderErr.Code)

	repo.EXPECT().GetOrderByID(ctx, "o-1").Return(&domain.Order{ID: "o-1", OrderAmount: decimal.NewFromInt(5)}, nil)
	order, err := service.GetOrder(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, order.OrderAmount)
}
