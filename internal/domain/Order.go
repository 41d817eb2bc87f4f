package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order é gravado pelo processo de ingestão e nunca alterado pela API
type Order struct {
	ID               string          `db:"id"`
	Platform         string          `db:"platform"`
	OrderID          string          `db:"order_id"`
	AccountID        *string         `db:"account_id"`
	Status           string          `db:"status"`
	OrderAmount      decimal.Decimal `db:"order_amount"`
	CommissionAmount decimal.Decimal `db:"commission_amount"`
	Currency         string          `db:"currency"`
	ConversionTime   time.Time       `db:"conversion_time"`
	CreatedAt        time.Time       `db:"created_at"`
}

type OrderResponse struct {
	ID               string    `json:"id"`
	Platform         string    `json:"platform"`
	OrderID          string    `json:"orderId"`
	AccountID        *string   `json:"accountId"`
	Status           string    `json:"status"`
	OrderAmount      float64   `json:"orderAmount"`
	CommissionAmount float64   `json:"commissionAmount"`
	Currency         string    `json:"currency"`
	ConversionTime   time.Time `json:"conversionTime"`
	CreatedAt        time.Time `json:"createdAt"`
}

func NewOrderResponse(o *Order) *OrderResponse {
	return &OrderResponse{
		ID:               o.ID,
		Platform:         o.Platform,
		OrderID:          o.OrderID,
		AccountID:        o.AccountID,
		Status:           o.Status,
		OrderAmount:      o.OrderAmount.InexactFloat64(),
		CommissionAmount: o.CommissionAmount.InexactFloat64(),
		Currency:         o.Currency,
		ConversionTime:   o.ConversionTime,
		CreatedAt:        o.CreatedAt,
	}
}

// OrderFilter filtra pelo horário de conversão.
// StartDate é inclusivo (>=), EndDate é inclusivo (<=) e EndBefore é exclusivo (<).
type OrderFilter struct {
	Platform   string
	Status     string
	AccountIDs []string
	StartDate  *time.Time
	EndDate    *time.Time
	EndBefore  *time.Time
	Page       int
	Limit      int
}

// OrderAggregate é o resultado de count/sum sobre um conjunto de pedidos
type OrderAggregate struct {
	Count            int64           `db:"order_count"`
	OrderAmount      decimal.Decimal `db:"order_amount"`
	CommissionAmount decimal.Decimal `db:"commission_amount"`
}

type DailyOrderAggregate struct {
	Day string `db:"day"`
	OrderAggregate
}

type PlatformOrderAggregate struct {
	Platform string `db:"platform"`
	OrderAggregate
}

type OrderSummary struct {
	TotalOrders           int64   `json:"totalOrders"`
	TotalOrderAmount      float64 `json:"totalOrderAmount"`
	TotalCommissionAmount float64 `json:"totalCommissionAmount"`
}

type OrderListResponse struct {
	Orders     []*OrderResponse `json:"orders"`
	Pagination Pagination       `json:"pagination"`
	Summary    OrderSummary     `json:"summary"`
}
