package authenticating

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// mensagem única para usuário inexistente e senha errada
const invalidCredentialsMessage = "Email ou senha incorretos"

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(ctx context.Context, userID string) (*domain.UserResponse, error)
	GetUserLinkedAccounts(ctx context.Context, userID string) ([]*domain.AdAccountResponse, error)
	ManageUserAccounts(ctx context.Context, userID string, accountIDs []string) error
}

type Service struct {
	userRepo    repository.UserRepository
	accountRepo repository.AccountRepository
	secret      []byte
	tokenTTL    time.Duration
	now         func() time.Time
}

func NewService(userRepo repository.UserRepository, accountRepo repository.AccountRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		secret:      []byte(cfg.Auth.Secret),
		tokenTTL:    cfg.Auth.TokenTTL,
		now:         time.Now,
	}
}

// HashPassword gera o hash bcrypt gravado em users.password_hash
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao consultar usuário")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		log.ForContext(ctx).Warn("Login recusado: usuário inexistente")
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, invalidCredentialsMessage)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.ForContext(ctx).WithField("user_id", user.ID).Warn("Login recusado: senha incorreta")
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, invalidCredentialsMessage)
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, NewUserAuthError(ErrTokenGeneration, apiErrors.ErrInternalServer, user.ID, "Erro ao gerar token de autenticação")
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("Login realizado")

	return &domain.LoginResponse{
		User:  domain.NewUserResponse(user),
		Token: token,
	}, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	return claims, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return domain.NewUserResponse(user), nil
}

// GetUserLinkedAccounts retorna as contas ativas vinculadas a um usuário
func (s *Service) GetUserLinkedAccounts(ctx context.Context, userID string) ([]*domain.AdAccountResponse, error) {
	accountIDs, err := s.userRepo.GetUserLinkedAccounts(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar vínculos do usuário")
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Falha ao buscar contas do usuário")
	}

	accounts := make([]*domain.AdAccountResponse, 0, len(accountIDs))
	if len(accountIDs) == 0 {
		return accounts, nil
	}

	rows, err := s.accountRepo.ListAccounts(ctx, domain.AdAccountFilter{
		IDs:    accountIDs,
		Status: []domain.AdAccountStatus{domain.AdAccountStatusActive},
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar contas vinculadas")
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Falha ao buscar contas do usuário")
	}

	for _, account := range rows {
		// config inválida não impede a listagem
		accountConfig, _ := utils.ParseConfigBlob(account.Config)
		accounts = append(accounts, &domain.AdAccountResponse{
			ID:          account.ID,
			Platform:    account.Platform,
			AccountID:   account.AccountID,
			AccountName: account.AccountName,
			Currency:    account.Currency,
			Status:      account.Status,
			Config:      accountConfig,
			CreatedAt:   account.CreatedAt,
			UpdatedAt:   account.UpdatedAt,
		})
	}

	return accounts, nil
}

// ManageUserAccounts substitui os vínculos do usuário pela lista informada
func (s *Service) ManageUserAccounts(ctx context.Context, userID string, accountIDs []string) error {
	if _, err := s.findUser(ctx, userID); err != nil {
		return err
	}

	wanted := make([]string, 0, len(accountIDs))
	for _, id := range accountIDs {
		id = strings.TrimSpace(id)
		if id != "" && !slices.Contains(wanted, id) {
			wanted = append(wanted, id)
		}
	}

	if len(wanted) > 0 {
		existing, err := s.accountRepo.ListAccounts(ctx, domain.AdAccountFilter{IDs: wanted})
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro ao validar contas")
			return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Falha ao validar contas")
		}

		if len(existing) != len(wanted) {
			return NewUserAuthError(ErrAccountNotFound, apiErrors.ErrNotFound, userID, "Uma ou mais contas não existem")
		}
	}

	current, err := s.userRepo.GetUserLinkedAccounts(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar vínculos do usuário")
		return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Falha ao buscar contas do usuário")
	}

	for _, accountID := range current {
		if slices.Contains(wanted, accountID) {
			continue
		}
		if err := s.userRepo.UnlinkUserAccount(ctx, userID, accountID); err != nil {
			log.ForContext(ctx).WithError(err).Errorf("Erro ao desvincular conta %s do usuário %s", accountID, userID)
			return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Falha ao desvincular conta")
		}
	}

	for _, accountID := range wanted {
		if slices.Contains(current, accountID) {
			continue
		}
		if err := s.userRepo.LinkUserAccount(ctx, userID, accountID); err != nil {
			log.ForContext(ctx).WithError(err).Errorf("Erro ao vincular conta %s ao usuário %s", accountID, userID)
			return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Falha ao vincular conta")
		}
	}

	return nil
}

func (s *Service) findUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar usuário")
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	return user, nil
}
