package insighting

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// growthSentinel é reportado quando o período anterior é zero
const growthSentinel = 100

var hundred = decimal.NewFromInt(100)

type Service struct {
	orderRepository    repository.OrderRepository
	campaignRepository repository.CampaignRepository
	accountRepository  repository.AccountRepository
	userRepository     repository.UserRepository
	dashboard          config.Dashboard
	loc                *time.Location
	now                func() time.Time
}

func NewService(
	cfg *config.Config,
	orderRepository repository.OrderRepository,
	campaignRepository repository.CampaignRepository,
	accountRepository repository.AccountRepository,
	userRepository repository.UserRepository,
) Insighter {
	return &Service{
		orderRepository:    orderRepository,
		campaignRepository: campaignRepository,
		accountRepository:  accountRepository,
		userRepository:     userRepository,
		dashboard:          cfg.Dashboard,
		loc:                cfg.Location(),
		now:                time.Now,
	}
}

func (s *Service) GetDashboardStats(ctx context.Context, filter domain.StatsFilter) (*domain.DashboardStats, error) {
	windowDays, err := s.windowDays(filter.WindowDays)
	if err != nil {
		return nil, err
	}

	accountIDs, err := s.accountScope(ctx, filter.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	start := utils.StartOfDay(now.AddDate(0, 0, -windowDays), s.loc)

	window := domain.OrderFilter{AccountIDs: accountIDs, StartDate: &start, EndDate: &now}

	growthWindow := time.Duration(s.dashboard.GrowthWindowDays) * 24 * time.Hour
	currentStart := now.Add(-growthWindow)
	previousStart := now.Add(-2 * growthWindow)
	current := domain.OrderFilter{AccountIDs: accountIDs, StartDate: &currentStart, EndDate: &now}
	previous := domain.OrderFilter{AccountIDs: accountIDs, StartDate: &previousStart, EndBefore: &currentStart}

	var (
		totals         *domain.OrderAggregate
		days           []*domain.DailyOrderAggregate
		platforms      []*domain.PlatformOrderAggregate
		currentTotals  *domain.OrderAggregate
		previousTotals *domain.OrderAggregate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = s.orderRepository.Aggregate(gctx, window)
		return err
	})
	g.Go(func() (err error) {
		days, err = s.orderRepository.GroupByDay(gctx, window, s.loc)
		return err
	})
	g.Go(func() (err error) {
		platforms, err = s.orderRepository.GroupByPlatform(gctx, window)
		return err
	})
	g.Go(func() (err error) {
		currentTotals, err = s.orderRepository.Aggregate(gctx, current)
		return err
	})
	g.Go(func() (err error) {
		previousTotals, err = s.orderRepository.Aggregate(gctx, previous)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao agregar pedidos do painel")
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao calcular estatísticas")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":     filter.UserID,
		"window_days": windowDays,
		"orders":      totals.Count,
	}).Debug("Estatísticas do painel calculadas")

	return &domain.DashboardStats{
		Overview: buildOverview(totals),
		Growth: domain.StatsGrowth{
			OrdersGrowth:      growth(decimal.NewFromInt(currentTotals.Count), decimal.NewFromInt(previousTotals.Count)),
			OrderAmountGrowth: growth(currentTotals.OrderAmount, previousTotals.OrderAmount),
			CommissionGrowth:  growth(currentTotals.CommissionAmount, previousTotals.CommissionAmount),
		},
		DailyCommission: fillDailyCommission(days, start, now, s.loc),
		PlatformStats:   buildPlatformStats(platforms),
		StartDate:       start,
		EndDate:         now,
	}, nil
}

// windowDays aplica o padrão e rejeita janelas fora do limite configurado
func (s *Service) windowDays(days int) (int, error) {
	if days == 0 {
		return s.dashboard.DefaultPeriodDays, nil
	}

	if days < 0 || days > s.dashboard.MaxPeriodDays {
		return 0, NewInsightError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat,
			fmt.Sprintf("Período deve estar entre 1 e %d dias", s.dashboard.MaxPeriodDays))
	}

	return days, nil
}

// accountScope resolve as contas liberadas para o usuário; lista vazia significa sem restrição
func (s *Service) accountScope(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, nil
	}

	accountIDs, err := s.userRepository.GetUserLinkedAccounts(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("Erro ao buscar contas do usuário")
		return nil, NewInsightError(ErrFetchScope, apiErrors.ErrDatabaseOperation, "Falha ao buscar contas do usuário")
	}

	return accountIDs, nil
}

func buildOverview(totals *domain.OrderAggregate) domain.StatsOverview {
	count := decimal.NewFromInt(totals.Count)

	return domain.StatsOverview{
		TotalOrders:           totals.Count,
		TotalOrderAmount:      totals.OrderAmount.InexactFloat64(),
		TotalCommissionAmount: totals.CommissionAmount.InexactFloat64(),
		AvgOrderAmount:        utils.Round(utils.SafeDiv(totals.OrderAmount, count), 2),
		AvgCommission:         utils.Round(utils.SafeDiv(totals.CommissionAmount, count), 2),
		CommissionRate:        utils.Percent(totals.CommissionAmount, totals.OrderAmount, 2),
	}
}

// growth compara dois períodos em percentual com uma casa decimal
func growth(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return growthSentinel
	}

	return utils.Round(current.Sub(previous).Div(previous).Mul(hundred), 1)
}

// fillDailyCommission gera um item por dia da janela, com zero nos dias sem pedidos
func fillDailyCommission(days []*domain.DailyOrderAggregate, start, end time.Time, loc *time.Location) []domain.DailyCommission {
	byDay := make(map[string]*domain.DailyOrderAggregate, len(days))
	for _, day := range days {
		byDay[day.Day] = day
	}

	keys := utils.DayKeys(start, end, loc)
	series := make([]domain.DailyCommission, 0, len(keys))
	for _, key := range keys {
		point := domain.DailyCommission{Date: key}
		if day, ok := byDay[key]; ok {
			point.Commission = day.CommissionAmount.InexactFloat64()
			point.OrderCount = day.Count
			point.OrderAmount = day.OrderAmount.InexactFloat64()
		}
		series = append(series, point)
	}

	return series
}

// buildPlatformStats ordena por comissão decrescente e, no empate, pelo nome
func buildPlatformStats(platforms []*domain.PlatformOrderAggregate) []domain.PlatformStat {
	sorted := slices.Clone(platforms)
	slices.SortStableFunc(sorted, func(a, b *domain.PlatformOrderAggregate) int {
		if c := b.CommissionAmount.Cmp(a.CommissionAmount); c != 0 {
			return c
		}
		return strings.Compare(a.Platform, b.Platform)
	})

	stats := make([]domain.PlatformStat, 0, len(sorted))
	for _, p := range sorted {
		stats = append(stats, domain.PlatformStat{
			Platform:         p.Platform,
			OrderCount:       p.Count,
			OrderAmount:      p.OrderAmount.InexactFloat64(),
			CommissionAmount: p.CommissionAmount.InexactFloat64(),
		})
	}

	return stats
}
