package insighting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func totals(impressions, clicks int64, cost string, conversions int64, revenue string) *domain.PerformanceTotals {
	return &domain.PerformanceTotals{
		Impressions: impressions,
		Clicks:      clicks,
		Cost:        decimal.RequireFromString(cost),
		Conversions: conversions,
		Revenue:     decimal.RequireFromString(revenue),
	}
}

func TestService_GetDashboardOverview(t *testing.T) {
	loc := shanghai(t)
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, loc)
	ctx := context.Background()

	service, deps := newTestService(t, now)

	deps.users.EXPECT().GetUserLinkedAccounts(ctx, "u-1").Return([]string{"acc-1", "acc-2"}, nil)
	deps.accounts.EXPECT().
		CountAccounts(gomock.Any(), domain.AdAccountFilter{
			IDs:    []string{"acc-1", "acc-2"},
			Status: []domain.AdAccountStatus{domain.AdAccountStatusActive},
		}).
		Return(int64(2), nil)
	deps.campaigns.EXPECT().
		CountCampaigns(gomock.Any(), domain.CampaignFilter{AccountIDs: []string{"acc-1", "acc-2"}, Status: "active"}).
		Return(int64(4), nil)
	deps.campaigns.EXPECT().
		AggregatePerformance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.PerformanceFilter) (*domain.PerformanceTotals, error) {
			assert.Equal(t, []string{"acc-1", "acc-2"}, f.AccountIDs)
			if f.StartDate.Format("2006-01-02") == "2024-05-03" {
				assert.Equal(t, "2024-05-10", f.EndDate.Format("2006-01-02"))
				return totals(10000, 200, "100", 10, "250"), nil
			}

			assert.Equal(t, "2024-04-25", f.StartDate.Format("2006-01-02"))
			assert.Equal(t, "2024-05-02", f.EndDate.Format("2006-01-02"))
			return totals(5000, 100, "50", 0, "100"), nil
		}).
		Times(2)
	deps.campaigns.EXPECT().
		GroupPerformanceByDay(gomock.Any(), gomock.Any()).
		Return([]*domain.DailyPerformanceAggregate{
			{Day: "2024-05-03", PerformanceTotals: *totals(4000, 80, "40", 4, "100")},
			{Day: "2024-05-10", PerformanceTotals: *totals(6000, 120, "60", 6, "150")},
		}, nil)
	deps.campaigns.EXPECT().
		GroupPerformanceByCampaign(gomock.Any(), gomock.Any(), 10).
		Return([]*domain.CampaignPerformance{
			{ID: "c-1", CampaignName: "Black Friday", Platform: "meta", PerformanceTotals: *totals(8000, 160, "80", 8, "200")},
		}, nil)

	overview, err := service.GetDashboardOverview(ctx, domain.StatsFilter{UserID: "u-1", WindowDays: 7})
	require.NoError(t, err)

	assert.Equal(t, domain.DashboardTotals{
		TotalCost:        100,
		TotalRevenue:     250,
		TotalConversions: 10,
		Roas:             2.5,
		ActiveAccounts:   2,
		CampaignsCount:   4,
	}, overview.Overview)

	assert.Equal(t, domain.DashboardMetrics{
		Impressions: 10000,
		Clicks:      200,
		Ctr:         2,
		Cpc:         0.5,
		Cpa:         10,
		Roas:        2.5,
	}, overview.Metrics)

	assert.Equal(t, domain.DashboardChanges{Cost: 100, Revenue: 150, Conversions: 100, Roas: 25}, overview.Changes)

	require.Len(t, overview.TopCampaigns, 1)
	assert.Equal(t, domain.TopCampaign{
		ID:          "c-1",
		Name:        "Black Friday",
		Platform:    "meta",
		Impressions: 8000,
		Clicks:      160,
		Ctr:         2,
		Cost:        80,
		Conversions: 8,
		Revenue:     200,
		Roas:        2.5,
	}, overview.TopCampaigns[0])

	require.Len(t, overview.DailyData, 8)
	assert.Equal(t, domain.DailyPerformancePoint{Date: "2024-05-03", Impressions: 4000, Clicks: 80, Cost: 40, Revenue: 100}, overview.DailyData[0])
	assert.Equal(t, domain.DailyPerformancePoint{Date: "2024-05-04"}, overview.DailyData[1])
	assert.Equal(t, "2024-05-10", overview.DailyData[7].Date)
}

func TestBuildMetrics_NoTraffic(t *testing.T) {
	assert.Equal(t, domain.DashboardMetrics{}, buildMetrics(totals(0, 0, "0", 0, "0")))
}
