package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const (
	ordersTable  = "ad_orders o"
	orderColumns = "o.id, o.platform, o.order_id, o.account_id, o.status, o.order_amount, o.commission_amount, o.currency, o.conversion_time, o.created_at"
)

var orderAggregateColumns = []string{
	"COUNT(*) AS order_count",
	"COALESCE(SUM(o.order_amount), 0) AS order_amount",
	"COALESCE(SUM(o.commission_amount), 0) AS commission_amount",
}

// OrderRepository só lê pedidos: a gravação é feita pelo processo de ingestão
type OrderRepository interface {
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
	FindOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
	Aggregate(ctx context.Context, filter domain.OrderFilter) (*domain.OrderAggregate, error)
	GroupByDay(ctx context.Context, filter domain.OrderFilter, loc *time.Location) ([]*domain.DailyOrderAggregate, error)
	GroupByPlatform(ctx context.Context, filter domain.OrderFilter) ([]*domain.PlatformOrderAggregate, error)
}

type orderRepository struct {
	conn postgres.Queryer
}

func NewOrderRepository(conn postgres.Queryer) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func applyOrderFilter(builder squirrel.SelectBuilder, filter domain.OrderFilter) squirrel.SelectBuilder {
	if filter.Platform != "" {
		builder = builder.Where(squirrel.Eq{"o.platform": filter.Platform})
	}

	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"o.status": filter.Status})
	}

	if len(filter.AccountIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"o.account_id": filter.AccountIDs})
	}

	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"o.conversion_time": *filter.StartDate})
	}

	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"o.conversion_time": *filter.EndDate})
	}

	if filter.EndBefore != nil {
		builder = builder.Where(squirrel.Lt{"o.conversion_time": *filter.EndBefore})
	}

	return builder
}

func (o *orderRepository) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	query, args, err := squirrel.
		Select(orderColumns).
		From(ordersTable).
		Where(squirrel.Eq{"o.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	order := &domain.Order{}
	if err := o.conn.GetContext(ctx, order, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

func (o *orderRepository) FindOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	builder := squirrel.
		Select(orderColumns).
		From(ordersTable).
		OrderBy("o.conversion_time DESC", "o.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	builder = applyOrderFilter(builder, filter)

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

	orders := make([]*domain.Order, 0)
	if err := o.conn.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return orders, nil
}

func (o *orderRepository) Aggregate(ctx context.Context, filter domain.OrderFilter) (*domain.OrderAggregate, error) {
	builder := squirrel.
		Select(orderAggregateColumns...).
		From(ordersTable).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := applyOrderFilter(builder, filter).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	aggregate := &domain.OrderAggregate{}
	if err := o.conn.GetContext(ctx, aggregate, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders")
	}

	return aggregate, nil
}

// GroupByDay agrupa pelo dia de calendário do horário de conversão no fuso informado
func (o *orderRepository) GroupByDay(ctx context.Context, filter domain.OrderFilter, loc *time.Location) ([]*domain.DailyOrderAggregate, error) {
	if loc == nil {
		loc = time.UTC
	}

	builder := squirrel.
		Select().
		Column(squirrel.Expr("to_char(o.conversion_time AT TIME ZONE ?, 'YYYY-MM-DD') AS day", loc.String())).
		Columns(orderAggregateColumns...).
		From(ordersTable).
		GroupBy("day").
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := applyOrderFilter(builder, filter).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	days := make([]*domain.DailyOrderAggregate, 0)
	if err := o.conn.SelectContext(ctx, &days, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to group orders by day")
	}

	return days, nil
}

func (o *orderRepository) GroupByPlatform(ctx context.Context, filter domain.OrderFilter) ([]*domain.PlatformOrderAggregate, error) {
	builder := squirrel.
		Select("o.platform AS platform").
		Columns(orderAggregateColumns...).
		From(ordersTable).
		GroupBy("o.platform").
		OrderBy("commission_amount DESC", "platform ASC").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := applyOrderFilter(builder, filter).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	platforms := make([]*domain.PlatformOrderAggregate, 0)
	if err := o.conn.SelectContext(ctx, &platforms, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to group orders by platform")
	}

	return platforms, nil
}
