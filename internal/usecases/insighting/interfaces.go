package insighting

import (
	"context"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Insighter agrega pedidos e desempenho de campanhas para o painel
type Insighter interface {
	// GetDashboardStats resume os pedidos da janela: totais, crescimento semanal, série diária e plataformas
	GetDashboardStats(ctx context.Context, filter domain.StatsFilter) (*domain.DashboardStats, error)

	// GetDashboardOverview resume custo, receita e métricas das campanhas no período
	GetDashboardOverview(ctx context.Context, filter domain.StatsFilter) (*domain.DashboardOverview, error)
}
