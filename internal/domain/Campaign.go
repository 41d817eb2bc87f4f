package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusPaused CampaignStatus = "paused"
)

type Campaign struct {
	ID           string              `db:"id"`
	AccountID    string              `db:"account_id"`
	CampaignID   string              `db:"campaign_id"`
	CampaignName string              `db:"campaign_name"`
	Status       CampaignStatus      `db:"status"`
	Objective    *string             `db:"objective"`
	Budget       decimal.NullDecimal `db:"budget"`
	Platform     string              `db:"platform"`
	CreatedAt    time.Time           `db:"created_at"`
	UpdatedAt    time.Time           `db:"updated_at"`
}

// DailyPerformance é uma linha de campaign_daily_data, única por (campanha, data)
type DailyPerformance struct {
	ID         string    `db:"id"`
	CampaignID string    `db:"campaign_id"`
	Date       time.Time `db:"date"`
	PerformanceTotals
}

type PerformanceTotals struct {
	Impressions int64           `db:"impressions"`
	Clicks      int64           `db:"clicks"`
	Cost        decimal.Decimal `db:"cost"`
	Conversions int64           `db:"conversions"`
	Revenue     decimal.Decimal `db:"revenue"`
}

type DailyPerformanceAggregate struct {
	Day string `db:"day"`
	PerformanceTotals
}

type CampaignPerformance struct {
	ID           string `db:"id"`
	CampaignName string `db:"campaign_name"`
	Platform     string `db:"platform"`
	PerformanceTotals
}

type CampaignFilter struct {
	AccountID  string
	AccountIDs []string
	Status     string
	Page       int
	Limit      int
}

// PerformanceFilter usa datas de calendário inclusivas nas duas pontas
type PerformanceFilter struct {
	CampaignID string
	AccountIDs []string
	StartDate  time.Time
	EndDate    time.Time
}

type CampaignResponse struct {
	ID           string                      `json:"id"`
	AccountID    string                      `json:"accountId"`
	CampaignID   string                      `json:"campaignId"`
	CampaignName string                      `json:"campaignName"`
	Status       CampaignStatus              `json:"status"`
	Objective    *string                     `json:"objective"`
	Budget       *float64                    `json:"budget"`
	Platform     string                      `json:"platform,omitempty"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
	DailyData    []*DailyPerformanceResponse `json:"dailyData,omitempty"`
}

type DailyPerformanceResponse struct {
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

func NewCampaignResponse(c *Campaign) *CampaignResponse {
	resp := &CampaignResponse{
		ID:           c.ID,
		AccountID:    c.AccountID,
		CampaignID:   c.CampaignID,
		CampaignName: c.CampaignName,
		Status:       c.Status,
		Objective:    c.Objective,
		Platform:     c.Platform,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}

	if c.Budget.Valid {
		budget := c.Budget.Decimal.InexactFloat64()
		resp.Budget = &budget
	}

	return resp
}

type CreateCampaignRequest struct {
	AccountID    string   `json:"accountId"`
	CampaignID   string   `json:"campaignId"`
	CampaignName string   `json:"campaignName"`
	Status       string   `json:"status,omitempty"`
	Objective    *string  `json:"objective,omitempty"`
	Budget       *float64 `json:"budget,omitempty"`
}

type UpdateCampaignRequest struct {
	ID           string   `json:"-"`
	CampaignName *string  `json:"campaignName,omitempty"`
	Status       *string  `json:"status,omitempty"`
	Objective    *string  `json:"objective,omitempty"`
	Budget       *float64 `json:"budget,omitempty"`
}

type CampaignListResponse struct {
	Campaigns  []*CampaignResponse `json:"campaigns"`
	Pagination Pagination          `json:"pagination"`
}
