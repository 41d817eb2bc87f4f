package ordering

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrDatabaseOperation = errors.New("database operation error")
)

// OrderError carrega o código da API junto do erro base
type OrderError struct {
	Err     error
	Code    string
	Details string
}

func (e *OrderError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

func NewOrderError(err error, code string, details string) *OrderError {
	return &OrderError{Err: err, Code: code, Details: details}
}

type OrderService interface {
	ListOrders(ctx context.Context, filter domain.OrderFilter) (*domain.OrderListResponse, error)
	GetOrder(ctx context.Context, id string) (*domain.OrderResponse, error)
}

type Service struct {
	orderRepository repository.OrderRepository
	pagination      config.Pagination
}

func NewService(orderRepository repository.OrderRepository, cfg *config.Config) OrderService {
	return &Service{
		orderRepository: orderRepository,
		pagination:      cfg.Pagination,
	}
}

// ListOrders busca a página e o resumo do mesmo filtro em paralelo. O total da paginação vem do resumo.
func (s *Service) ListOrders(ctx context.Context, filter domain.OrderFilter) (*domain.OrderListResponse, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return nil, NewOrderError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, "startDate deve ser anterior a endDate")
	}

	filter.Page, filter.Limit = domain.NormalizePage(filter.Page, filter.Limit, s.pagination.DefaultLimit, s.pagination.MaxLimit)

	var (
		orders    []*domain.Order
		aggregate *domain.OrderAggregate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.orderRepository.FindOrders(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		aggregate, err = s.orderRepository.Aggregate(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar pedidos")
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar pedidos")
	}

	response := &domain.OrderListResponse{
		Orders:     make([]*domain.OrderResponse, 0, len(orders)),
		Pagination: domain.NewPagination(aggregate.Count, filter.Page, filter.Limit),
		Summary: domain.OrderSummary{
			TotalOrders:           aggregate.Count,
			TotalOrderAmount:      aggregate.OrderAmount.InexactFloat64(),
			TotalCommissionAmount: aggregate.CommissionAmount.InexactFloat64(),
		},
	}

	for _, order := range orders {
		response.Orders = append(response.Orders, domain.NewOrderResponse(order))
	}

	return response, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar pedido")
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar pedido")
	}

	if order == nil {
		return nil, NewOrderError(ErrOrderNotFound, apiErrors.ErrNotFound, "Pedido não encontrado")
	}

	return domain.NewOrderResponse(order), nil
}
