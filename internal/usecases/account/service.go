package account

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

type AccountService interface {
	ListAccounts(ctx context.Context, filter domain.AdAccountFilter) ([]*domain.AdAccountResponse, error)
	GetAccount(ctx context.Context, id string) (*domain.AdAccountResponse, error)
	CreateAccount(ctx context.Context, request *domain.CreateAdAccountRequest) (*domain.AdAccountResponse, error)
	UpdateAccount(ctx context.Context, request *domain.UpdateAdAccountRequest) (*domain.AdAccountResponse, error)
	DeleteAccount(ctx context.Context, id string) error
}

type Service struct {
	accountRepository repository.AccountRepository
	now               func() time.Time
}

func NewService(accountRepository repository.AccountRepository) AccountService {
	return &Service{
		accountRepository: accountRepository,
		now:               time.Now,
	}
}

func (s *Service) ListAccounts(ctx context.Context, filter domain.AdAccountFilter) ([]*domain.AdAccountResponse, error) {
	for _, status := range filter.Status {
		if !validStatus(string(status)) {
			return nil, NewAccountError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "Status deve ser active ou inactive")
		}
	}

	accounts, err := s.accountRepository.ListAccounts(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar contas")
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	response := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, toResponse(ctx, account))
	}

	return response, nil
}

func (s *Service) GetAccount(ctx context.Context, id string) (*domain.AdAccountResponse, error) {
	account, err := s.accountRepository.GetAccountByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar conta")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar conta")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrNotFound, id, "Conta não encontrada")
	}

	return toResponse(ctx, account), nil
}

func (s *Service) CreateAccount(ctx context.Context, request *domain.CreateAdAccountRequest) (*domain.AdAccountResponse, error) {
	platform := strings.TrimSpace(request.Platform)
	externalID := strings.TrimSpace(request.AccountID)
	name := strings.TrimSpace(request.AccountName)

	if platform == "" || externalID == "" || name == "" {
		return nil, NewAccountError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Campos obrigatórios ausentes: platform, accountId, accountName")
	}

	status := domain.AdAccountStatusActive
	if request.Status != "" {
		if !validStatus(request.Status) {
			return nil, NewAccountError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "Status deve ser active ou inactive")
		}
		status = domain.AdAccountStatus(request.Status)
	}

	currency := domain.DefaultAccountCurrency
	if c := strings.TrimSpace(request.Currency); c != "" {
		currency = c
	}

	config, err := utils.MarshalConfigBlob(request.Config)
	if err != nil {
		return nil, NewAccountError(ErrInvalidConfig, apiErrors.ErrInvalidFormat, "Config inválida")
	}

	existing, err := s.accountRepository.GetAccountByPlatformAndExternalID(ctx, platform, externalID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao verificar conta existente")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao verificar conta existente")
	}

	if existing != nil {
		return nil, NewAccountErrorWithID(ErrAccountExists, apiErrors.ErrConflict, existing.ID, "Conta já existe para esta plataforma")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
	}

	now := s.now()
	account := &domain.AdAccount{
		ID:          id,
		Platform:    platform,
		AccountID:   externalID,
		AccountName: name,
		Currency:    currency,
		Status:      status,
		Config:      config,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.accountRepository.CreateAccount(ctx, account); err != nil {
		// outra requisição pode ter criado o mesmo par entre a consulta e o insert
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, NewAccountError(ErrAccountExists, apiErrors.ErrConflict, "Conta já existe para esta plataforma")
		}

		log.ForContext(ctx).WithError(err).Error("Erro ao criar conta")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar conta")
	}

	log.ForContext(ctx).WithField("account_id", account.ID).Info("Conta criada")

	return toResponse(ctx, account), nil
}

func (s *Service) UpdateAccount(ctx context.Context, request *domain.UpdateAdAccountRequest) (*domain.AdAccountResponse, error) {
	account, err := s.accountRepository.GetAccountByID(ctx, request.ID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar conta")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao buscar conta")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrNotFound, request.ID, "Conta não encontrada")
	}

	if v := trimmed(request.AccountName); v != "" {
		account.AccountName = v
	}

	if v := trimmed(request.Currency); v != "" {
		account.Currency = v
	}

	if v := trimmed(request.Status); v != "" {
		if !validStatus(v) {
			return nil, NewAccountError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "Status deve ser active ou inactive")
		}
		account.Status = domain.AdAccountStatus(v)
	}

	if request.Config != nil {
		config, err := utils.MarshalConfigBlob(request.Config)
		if err != nil {
			return nil, NewAccountError(ErrInvalidConfig, apiErrors.ErrInvalidFormat, "Config inválida")
		}
		account.Config = config
	}

	account.UpdatedAt = s.now()

	if err := s.accountRepository.UpdateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrNotFound, request.ID, "Conta não encontrada")
		}

		log.ForContext(ctx).WithError(err).Error("Erro ao atualizar conta")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta")
	}

	return toResponse(ctx, account), nil
}

func (s *Service) DeleteAccount(ctx context.Context, id string) error {
	if err := s.accountRepository.DeleteAccount(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrNotFound, id, "Conta não encontrada")
		}

		log.ForContext(ctx).WithError(err).Error("Erro ao remover conta")
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao remover conta")
	}

	log.ForContext(ctx).WithField("account_id", id).Info("Conta removida")
	return nil
}

// toResponse converte a linha em resposta; config ilegível vira null
func toResponse(ctx context.Context, account *domain.AdAccount) *domain.AdAccountResponse {
	config, err := utils.ParseConfigBlob(account.Config)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("account_id", account.ID).Warn("Config da conta ilegível")
		config = nil
	}

	return &domain.AdAccountResponse{
		ID:          account.ID,
		Platform:    account.Platform,
		AccountID:   account.AccountID,
		AccountName: account.AccountName,
		Currency:    account.Currency,
		Status:      account.Status,
		Config:      config,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
}

func validStatus(status string) bool {
	return status == string(domain.AdAccountStatusActive) || status == string(domain.AdAccountStatusInactive)
}

func trimmed(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
