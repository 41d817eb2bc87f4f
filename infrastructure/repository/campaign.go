package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const (
	campaignsTable  = "campaigns c"
	campaignColumns = "c.id, c.account_id, c.campaign_id, c.campaign_name, c.status, c.objective, c.budget, a.platform, c.created_at, c.updated_at"
	campaignJoin    = "ad_accounts a ON a.id = c.account_id"
	dailyDataTable  = "campaign_daily_data d"
	dateLayout      = "2006-01-02"
)

var performanceColumns = []string{
	"COALESCE(SUM(d.impressions), 0) AS impressions",
	"COALESCE(SUM(d.clicks), 0) AS clicks",
	"COALESCE(SUM(d.cost), 0) AS cost",
	"COALESCE(SUM(d.conversions), 0) AS conversions",
	"COALESCE(SUM(d.revenue), 0) AS revenue",
}

type CampaignRepository interface {
	GetCampaignByID(ctx context.Context, id string) (*domain.Campaign, error)
	GetCampaignByExternalID(ctx context.Context, accountID, campaignID string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error)
	CountCampaigns(ctx context.Context, filter domain.CampaignFilter) (int64, error)
	CreateCampaign(ctx context.Context, campaign *domain.Campaign) error
	UpdateCampaign(ctx context.Context, campaign *domain.Campaign) error
	DeleteCampaign(ctx context.Context, id string) error

	ListDailyPerformance(ctx context.Context, filter domain.PerformanceFilter) ([]*domain.DailyPerformance, error)
	AggregatePerformance(ctx context.Context, filter domain.PerformanceFilter) (*domain.PerformanceTotals, error)
	GroupPerformanceByDay(ctx context.Context, filter domain.PerformanceFilter) ([]*domain.DailyPerformanceAggregate, error)
	GroupPerformanceByCampaign(ctx context.Context, filter domain.PerformanceFilter, limit int) ([]*domain.CampaignPerformance, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (c *campaignRepository) GetCampaignByID(ctx context.Context, id string) (*domain.Campaign, error) {
	return c.getCampaign(ctx, squirrel.Eq{"c.id": id})
}

func (c *campaignRepository) GetCampaignByExternalID(ctx context.Context, accountID, campaignID string) (*domain.Campaign, error) {
	return c.getCampaign(ctx, squirrel.Eq{"c.account_id": accountID, "c.campaign_id": campaignID})
}

func (c *campaignRepository) getCampaign(ctx context.Context, where squirrel.Eq) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Join(campaignJoin).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	campaign := &domain.Campaign{}
	if err := c.conn.GetContext(ctx, campaign, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get campaign")
	}

	return campaign, nil
}

func applyCampaignFilter(builder squirrel.SelectBuilder, filter domain.CampaignFilter) squirrel.SelectBuilder {
	if filter.AccountID != "" {
		builder = builder.Where(squirrel.Eq{"c.account_id": filter.AccountID})
	}

	if len(filter.AccountIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"c.account_id": filter.AccountIDs})
	}

	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"c.status": filter.Status})
	}

	return builder
}

func (c *campaignRepository) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	builder := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Join(campaignJoin).
		OrderBy("c.created_at DESC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = applyCampaignFilter(builder, filter)

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
		if filter.Page > 1 {
			builder = builder.Offset(uint64((filter.Page - 1) * filter.Limit))
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	campaigns := make([]*domain.Campaign, 0)
	if err := c.conn.SelectContext(ctx, &campaigns, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return campaigns, nil
}

func (c *campaignRepository) CountCampaigns(ctx context.Context, filter domain.CampaignFilter) (int64, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(campaignsTable).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := applyCampaignFilter(builder, filter).ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build query")
	}

	var total int64
	if err := c.conn.GetContext(ctx, &total, query, args...); err != nil {
		return 0, errors.Wrap(err, "failed to count campaigns")
	}

	return total, nil
}

func (c *campaignRepository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Insert("campaigns").
		Columns("id", "account_id", "campaign_id", "campaign_name", "status", "objective", "budget", "created_at", "updated_at").
		Values(
			campaign.ID,
			campaign.AccountID,
			campaign.CampaignID,
			campaign.CampaignName,
			campaign.Status,
			campaign.Objective,
			campaign.Budget,
			campaign.CreatedAt,
			campaign.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	if _, err := c.conn.ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "failed to create campaign")
	}

	return nil
}

func (c *campaignRepository) UpdateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("campaign_name", campaign.CampaignName).
		Set("status", campaign.Status).
		Set("objective", campaign.Objective).
		Set("budget", campaign.Budget).
		Set("updated_at", campaign.UpdatedAt).
		Where(squirrel.Eq{"id": campaign.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := c.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to update campaign")
	}

	return checkAffected(result)
}

func (c *campaignRepository) DeleteCampaign(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("campaigns").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := c.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to delete campaign")
	}

	return checkAffected(result)
}

// applyPerformanceFilter exige o join com campaigns (alias c) quando há filtro de contas
func applyPerformanceFilter(builder squirrel.SelectBuilder, filter domain.PerformanceFilter) squirrel.SelectBuilder {
	if filter.CampaignID != "" {
		builder = builder.Where(squirrel.Eq{"d.campaign_id": filter.CampaignID})
	}

	if len(filter.AccountIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"c.account_id": filter.AccountIDs})
	}

	if !filter.StartDate.IsZero() {
		builder = builder.Where(squirrel.GtOrEq{"d.date": filter.StartDate.Format(dateLayout)})
	}

	if !filter.EndDate.IsZero() {
		builder = builder.Where(squirrel.LtOrEq{"d.date": filter.EndDate.Format(dateLayout)})
	}

	return builder
}

func (c *campaignRepository) ListDailyPerformance(ctx context.Context, filter domain.PerformanceFilter) ([]*domain.DailyPerformance, error) {
	builder := squirrel.
		Select("d.id, d.campaign_id, d.date, d.impressions, d.clicks, d.cost, d.conversions, d.revenue").
		From(dailyDataTable).
		Join("campaigns c ON c.id = d.campaign_id").
		OrderBy("d.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := applyPerformanceFilter(builder, filter).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows := make([]*domain.DailyPerformance, 0)
	if err := c.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list daily performance")
	}

	return rows, nil
}

func (c *campaignRepository) AggregatePerformance(ctx context.Context, filter domain.PerformanceFilter) (*domain.PerformanceTotals, error) {
	builder := squirrel.
		Select(performanceColumns...).
		From(dailyDataTable).
		Join("campaigns c ON c.id = d.campaign_id").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := applyPerformanceFilter(builder, filter).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	totals := &domain.PerformanceTotals{}
	if err := c.conn.GetContext(ctx, totals, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate performance")
	}

	return totals, nil
}

func (c *campaignRepository) GroupPerformanceByDay(ctx context.Context, filter domain.PerformanceFilter) ([]*domain.DailyPerformanceAggregate, error) {
	builder := squirrel.
		Select("to_char(d.date, 'YYYY-MM-DD') AS day").
		Columns(performanceColumns...).
		From(dailyDataTable).
		Join("campaigns c ON c.id = d.campaign_id").
		GroupBy("d.date").
		OrderBy("d.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := applyPerformanceFilter(builder, filter).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	days := make([]*domain.DailyPerformanceAggregate, 0)
	if err := c.conn.SelectContext(ctx, &days, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to group performance by day")
	}

	return days, nil
}

func (c *campaignRepository) GroupPerformanceByCampaign(ctx context.Context, filter domain.PerformanceFilter, limit int) ([]*domain.CampaignPerformance, error) {
	builder := squirrel.
		Select("c.id AS id", "c.campaign_name AS campaign_name", "a.platform AS platform").
		Columns(performanceColumns...).
		From(dailyDataTable).
		Join("campaigns c ON c.id = d.campaign_id").
		Join(campaignJoin).
		GroupBy("c.id", "c.campaign_name", "a.platform").
		OrderBy("revenue DESC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = applyPerformanceFilter(builder, filter)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	campaigns := make([]*domain.CampaignPerformance, 0)
	if err := c.conn.SelectContext(ctx, &campaigns, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to group performance by campaign")
	}

	return campaigns, nil
}
