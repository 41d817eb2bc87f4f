package campaign

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type CampaignService interface {
	ListCampaigns(ctx context.Context, filter domain.CampaignFilter) (*domain.CampaignListResponse, error)
	GetCampaign(ctx context.Context, id string, startDate, endDate *time.Time) (*domain.CampaignResponse, error)
	CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.CampaignResponse, error)
	UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.CampaignResponse, error)
	DeleteCampaign(ctx context.Context, id string) error
}

type Service struct {
	campaignRepository repository.CampaignRepository
	accountRepository  repository.AccountRepository
	pagination         config.Pagination
	now                func() time.Time
}

func NewService(
	campaignRepository repository.CampaignRepository,
	accountRepository repository.AccountRepository,
	cfg *config.Config,
) CampaignService {
	return &Service{
		campaignRepository: campaignRepository,
		accountRepository:  accountRepository,
		pagination:         cfg.Pagination,
		now:                time.Now,
	}
}

func (s *Service) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) (*domain.CampaignListResponse, error) {
	if filter.Status != "" && !validStatus(filter.Status) {
		return nil, NewCampaignError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "Status deve ser active ou paused")
	}

	filter.Page, filter.Limit = domain.NormalizePage(filter.Page, filter.Limit, s.pagination.DefaultLimit, s.pagination.MaxLimit)

	var (
		campaigns []*domain.Campaign
		total     int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaigns, err = s.campaignRepository.ListCampaigns(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.campaignRepository.CountCampaigns(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar campanhas")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas")
	}

	response := &domain.CampaignListResponse{
		Campaigns:  make([]*domain.CampaignResponse, 0, len(campaigns)),
		Pagination: domain.NewPagination(total, filter.Page, filter.Limit),
	}

	for _, c := range campaigns {
		response.Campaigns = append(response.Campaigns, domain.NewCampaignResponse(c))
	}

	return response, nil
}

func (s *Service) GetCampaign(ctx context.Context, id string, startDate, endDate *time.Time) (*domain.CampaignResponse, error) {
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return nil, NewCampaignError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, "startDate deve ser anterior a endDate")
	}

	campaign, err := s.findCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	filter := domain.PerformanceFilter{CampaignID: campaign.ID}
	if startDate != nil {
		filter.StartDate = *startDate
	}
	if endDate != nil {
		filter.EndDate = *endDate
	}

	rows, err := s.campaignRepository.ListDailyPerformance(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar dados diários da campanha")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar dados diários da campanha")
	}

	response := domain.NewCampaignResponse(campaign)
	response.DailyData = make([]*domain.DailyPerformanceResponse, 0, len(rows))
	for _, row := range rows {
		response.DailyData = append(response.DailyData, &domain.DailyPerformanceResponse{
			Date:        row.Date.Format(utils.DateLayout),
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
			Cost:        row.Cost.InexactFloat64(),
			Conversions: row.Conversions,
			Revenue:     row.Revenue.InexactFloat64(),
		})
	}

	return response, nil
}

func (s *Service) CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.CampaignResponse, error) {
	accountID := strings.TrimSpace(request.AccountID)
	externalID := strings.TrimSpace(request.CampaignID)
	name := strings.TrimSpace(request.CampaignName)

	if accountID == "" || externalID == "" || name == "" {
		return nil, NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Campos obrigatórios ausentes: accountId, campaignId, campaignName")
	}

	status := domain.CampaignStatusActive
	if request.Status != "" {
		if !validStatus(request.Status) {
			return nil, NewCampaignError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "Status deve ser active ou paused")
		}
		status = domain.CampaignStatus(request.Status)
	}

	budget, err := toBudget(request.Budget)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepository.GetAccountByID(ctx, accountID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar conta da campanha")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar conta")
	}

	if account == nil {
		return nil, NewCampaignError(ErrAccountNotFound, apiErrors.ErrNotFound, "Conta não encontrada")
	}

	existing, err := s.campaignRepository.GetCampaignByExternalID(ctx, accountID, externalID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao verificar campanha existente")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao verificar campanha existente")
	}

	if existing != nil {
		return nil, NewCampaignError(ErrCampaignExists, apiErrors.ErrConflict, "Campanha já existe para esta conta")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para campanha")
	}

	now := s.now()
	campaign := &domain.Campaign{
		ID:           id,
		AccountID:    accountID,
		CampaignID:   externalID,
		CampaignName: name,
		Status:       status,
		Objective:    request.Objective,
		Budget:       budget,
		Platform:     account.Platform,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.campaignRepository.CreateCampaign(ctx, campaign); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, NewCampaignError(ErrCampaignExists, apiErrors.ErrConflict, "Campanha já existe para esta conta")
		}

		log.ForContext(ctx).WithError(err).Error("Erro ao criar campanha")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar campanha")
	}

	return domain.NewCampaignResponse(campaign), nil
}

func (s *Service) UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.CampaignResponse, error) {
	campaign, err := s.findCampaign(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	if request.CampaignName != nil && strings.TrimSpace(*request.CampaignName) != "" {
		campaign.CampaignName = strings.TrimSpace(*request.CampaignName)
	}

	if request.Status != nil && *request.Status != "" {
		if !validStatus(*request.Status) {
			return nil, NewCampaignError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "Status deve ser active ou paused")
		}
		campaign.Status = domain.CampaignStatus(*request.Status)
	}

	if request.Objective != nil {
		campaign.Objective = request.Objective
	}

	if request.Budget != nil {
		budget, err := toBudget(request.Budget)
		if err != nil {
			return nil, err
		}
		campaign.Budget = budget
	}

	campaign.UpdatedAt = s.now()

	if err := s.campaignRepository.UpdateCampaign(ctx, campaign); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrNotFound, "Campanha não encontrada")
		}

		log.ForContext(ctx).WithError(err).Error("Erro ao atualizar campanha")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar campanha")
	}

	return domain.NewCampaignResponse(campaign), nil
}

func (s *Service) DeleteCampaign(ctx context.Context, id string) error {
	if err := s.campaignRepository.DeleteCampaign(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewCampaignError(ErrCampaignNotFound, apiErrors.ErrNotFound, "Campanha não encontrada")
		}

		log.ForContext(ctx).WithError(err).Error("Erro ao remover campanha")
		return NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover campanha")
	}

	return nil
}

func (s *Service) findCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepository.GetCampaignByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar campanha")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar campanha")
	}

	if campaign == nil {
		return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrNotFound, "Campanha não encontrada")
	}

	return campaign, nil
}

func toBudget(value *float64) (decimal.NullDecimal, error) {
	if value == nil {
		return decimal.NullDecimal{}, nil
	}

	if *value < 0 {
		return decimal.NullDecimal{}, NewCampaignError(ErrInvalidBudget, apiErrors.ErrInvalidFormat, "Orçamento não pode ser negativo")
	}

	return decimal.NewNullDecimal(decimal.NewFromFloat(*value)), nil
}

func validStatus(status string) bool {
	return status == string(domain.CampaignStatusActive) || status == string(domain.CampaignStatusPaused)
}
