package insighting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// GetDashboardOverview usa campaign_daily_data como fonte única de impressões, cliques, custo, conversões e receita
func (s *Service) GetDashboardOverview(ctx context.Context, filter domain.StatsFilter) (*domain.DashboardOverview, error) {
	periodDays, err := s.windowDays(filter.WindowDays)
	if err != nil {
		return nil, err
	}

	accountIDs, err := s.accountScope(ctx, filter.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	today := utils.StartOfDay(now, s.loc)
	start := today.AddDate(0, 0, -periodDays)

	// período anterior de mesmo tamanho, terminando no dia antes do início
	previousEnd := start.AddDate(0, 0, -1)
	previousStart := previousEnd.AddDate(0, 0, -periodDays)

	period := domain.PerformanceFilter{AccountIDs: accountIDs, StartDate: start, EndDate: today}
	previousPeriod := domain.PerformanceFilter{AccountIDs: accountIDs, StartDate: previousStart, EndDate: previousEnd}

	var (
		activeAccounts int64
		campaignsCount int64
		totals         *domain.PerformanceTotals
		previous       *domain.PerformanceTotals
		days           []*domain.DailyPerformanceAggregate
		top            []*domain.CampaignPerformance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		activeAccounts, err = s.accountRepository.CountAccounts(gctx, domain.AdAccountFilter{
			IDs:    accountIDs,
			Status: []domain.AdAccountStatus{domain.AdAccountStatusActive},
		})
		return err
	})
	g.Go(func() (err error) {
		campaignsCount, err = s.campaignRepository.CountCampaigns(gctx, domain.CampaignFilter{
			AccountIDs: accountIDs,
			Status:     string(domain.CampaignStatusActive),
		})
		return err
	})
	g.Go(func() (err error) {
		totals, err = s.campaignRepository.AggregatePerformance(gctx, period)
		return err
	})
	g.Go(func() (err error) {
		previous, err = s.campaignRepository.AggregatePerformance(gctx, previousPeriod)
		return err
	})
	g.Go(func() (err error) {
		days, err = s.campaignRepository.GroupPerformanceByDay(gctx, period)
		return err
	})
	g.Go(func() (err error) {
		top, err = s.campaignRepository.GroupPerformanceByCampaign(gctx, period, s.dashboard.TopCampaigns)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao montar visão geral do painel")
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao calcular visão geral")
	}

	roas := utils.SafeDiv(totals.Revenue, totals.Cost)
	previousRoas := utils.SafeDiv(previous.Revenue, previous.Cost)

	return &domain.DashboardOverview{
		Overview: domain.DashboardTotals{
			TotalCost:        utils.Round(totals.Cost, 2),
			TotalRevenue:     utils.Round(totals.Revenue, 2),
			TotalConversions: totals.Conversions,
			Roas:             utils.Round(roas, 2),
			ActiveAccounts:   activeAccounts,
			CampaignsCount:   campaignsCount,
		},
		Metrics: buildMetrics(totals),
		Changes: domain.DashboardChanges{
			Cost:        growth(totals.Cost, previous.Cost),
			Revenue:     growth(totals.Revenue, previous.Revenue),
			Conversions: growth(decimal.NewFromInt(totals.Conversions), decimal.NewFromInt(previous.Conversions)),
			Roas:        growth(roas, previousRoas),
		},
		TopCampaigns: buildTopCampaigns(top),
		DailyData:    fillDailyPerformance(days, start, today, s.loc),
	}, nil
}

func buildMetrics(totals *domain.PerformanceTotals) domain.DashboardMetrics {
	impressions := decimal.NewFromInt(totals.Impressions)
	clicks := decimal.NewFromInt(totals.Clicks)
	conversions := decimal.NewFromInt(totals.Conversions)

	return domain.DashboardMetrics{
		Impressions: totals.Impressions,
		Clicks:      totals.Clicks,
		Ctr:         utils.Percent(clicks, impressions, 2),
		Cpc:         utils.Round(utils.SafeDiv(totals.Cost, clicks), 2),
		Cpa:         utils.Round(utils.SafeDiv(totals.Cost, conversions), 2),
		Roas:        utils.Round(utils.SafeDiv(totals.Revenue, totals.Cost), 2),
	}
}

func buildTopCampaigns(campaigns []*domain.CampaignPerformance) []domain.TopCampaign {
	top := make([]domain.TopCampaign, 0, len(campaigns))
	for _, c := range campaigns {
		top = append(top, domain.TopCampaign{
			ID:          c.ID,
			Name:        c.CampaignName,
			Platform:    c.Platform,
			Impressions: c.Impressions,
			Clicks:      c.Clicks,
			Ctr:         utils.Percent(decimal.NewFromInt(c.Clicks), decimal.NewFromInt(c.Impressions), 2),
			Cost:        utils.Round(c.Cost, 2),
			Conversions: c.Conversions,
			Revenue:     utils.Round(c.Revenue, 2),
			Roas:        utils.Round(utils.SafeDiv(c.Revenue, c.Cost), 2),
		})
	}

	return top
}

func fillDailyPerformance(days []*domain.DailyPerformanceAggregate, start, end time.Time, loc *time.Location) []domain.DailyPerformancePoint {
	byDay := make(map[string]*domain.DailyPerformanceAggregate, len(days))
	for _, day := range days {
		byDay[day.Day] = day
	}

	keys := utils.DayKeys(start, end, loc)
	series := make([]domain.DailyPerformancePoint, 0, len(keys))
	for _, key := range keys {
		point := domain.DailyPerformancePoint{Date: key}
		if day, ok := byDay[key]; ok {
			point.Impressions = day.Impressions
			point.Clicks = day.Clicks
			point.Cost = day.Cost.InexactFloat64()
			point.Revenue = day.Revenue.InexactFloat64()
		}
		series = append(series, point)
	}

	return series
}
