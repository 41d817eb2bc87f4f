package domain

import "time"

// StatsFilter descreve uma consulta de estatísticas de pedidos
type StatsFilter struct {
	UserID     string
	WindowDays int
}

type StatsOverview struct {
	TotalOrders           int64   `json:"totalOrders"`
	TotalOrderAmount      float64 `json:"totalOrderAmount"`
	TotalCommissionAmount float64 `json:"totalCommissionAmount"`
	AvgOrderAmount        float64 `json:"avgOrderAmount"`
	AvgCommission         float64 `json:"avgCommission"`
	CommissionRate        float64 `json:"commissionRate"`
}

type StatsGrowth struct {
	OrdersGrowth      float64 `json:"ordersGrowth"`
	OrderAmountGrowth float64 `json:"orderAmountGrowth"`
	CommissionGrowth  float64 `json:"commissionGrowth"`
}

type DailyCommission struct {
	Date        string  `json:"date"`
	Commission  float64 `json:"commission"`
	OrderCount  int64   `json:"orderCount"`
	OrderAmount float64 `json:"orderAmount"`
}

type PlatformStat struct {
	Platform         string  `json:"platform"`
	OrderCount       int64   `json:"orderCount"`
	OrderAmount      float64 `json:"orderAmount"`
	CommissionAmount float64 `json:"commissionAmount"`
}

type DashboardStats struct {
	Overview        StatsOverview     `json:"overview"`
	Growth          StatsGrowth       `json:"growth"`
	DailyCommission []DailyCommission `json:"dailyCommission"`
	PlatformStats   []PlatformStat    `json:"platformStats"`
	StartDate       time.Time         `json:"startDate"`
	EndDate         time.Time         `json:"endDate"`
}

type DashboardTotals struct {
	TotalCost        float64 `json:"totalCost"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalConversions int64   `json:"totalConversions"`
	Roas             float64 `json:"roas"`
	ActiveAccounts   int64   `json:"activeAccounts"`
	CampaignsCount   int64   `json:"campaignsCount"`
}

type DashboardMetrics struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Ctr         float64 `json:"ctr"`
	Cpc         float64 `json:"cpc"`
	Cpa         float64 `json:"cpa"`
	Roas        float64 `json:"roas"`
}

type DashboardChanges struct {
	Cost        float64 `json:"cost"`
	Revenue     float64 `json:"revenue"`
	Conversions float64 `json:"conversions"`
	Roas        float64 `json:"roas"`
}

type TopCampaign struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Platform    string  `json:"platform"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Ctr         float64 `json:"ctr"`
	Cost        float64 `json:"cost"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	Roas        float64 `json:"roas"`
}

type DailyPerformancePoint struct {
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost"`
	Revenue     float64 `json:"revenue"`
}

type DashboardOverview struct {
	Overview     DashboardTotals         `json:"overview"`
	Metrics      DashboardMetrics        `json:"metrics"`
	Changes      DashboardChanges        `json:"changes"`
	TopCampaigns []TopCampaign           `json:"topCampaigns"`
	DailyData    []DailyPerformancePoint `json:"dailyData"`
}
