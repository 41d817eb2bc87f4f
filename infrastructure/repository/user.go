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
	usersTable        = "users"
	userAccountsTable = "user_accounts"
	userColumns       = "id, email, name, password_hash, role, avatar, created_at, updated_at"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserLinkedAccounts(ctx context.Context, userID string) ([]string, error)
	LinkUserAccount(ctx context.Context, userID, accountID string) error
	UnlinkUserAccount(ctx context.Context, userID, accountID string) error
}

type userRepository struct {
	conn postgres.Queryer
}

func NewUserRepository(conn postgres.Queryer) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query, args, err := squirrel.
		Insert(usersTable).
		Columns("id", "email", "name", "password_hash", "role", "avatar", "created_at", "updated_at").
		Values(user.ID, user.Email, user.Name, user.PasswordHash, user.Role, user.Avatar, user.CreatedAt, user.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "failed to create user")
	}

	return nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	user := &domain.User{}
	if err := r.conn.GetContext(ctx, user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// GetUserLinkedAccounts retorna os IDs das contas liberadas para o usuário
func (r *userRepository) GetUserLinkedAccounts(ctx context.Context, userID string) ([]string, error) {
	query, args, err := squirrel.
		Select("account_id").
		From(userAccountsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("account_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	accountIDs := make([]string, 0)
	if err := r.conn.SelectContext(ctx, &accountIDs, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list linked accounts")
	}

	return accountIDs, nil
}

func (r *userRepository) LinkUserAccount(ctx context.Context, userID, accountID string) error {
	query, args, err := squirrel.
		Insert(userAccountsTable).
		Columns("user_id", "account_id").
		Values(userID, accountID).
		Suffix("ON CONFLICT (user_id, account_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "failed to link account")
	}

	return nil
}

func (r *userRepository) UnlinkUserAccount(ctx context.Context, userID, accountID string) error {
	query, args, err := squirrel.
		Delete(userAccountsTable).
		Where(squirrel.Eq{"user_id": userID, "account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "failed to unlink account")
	}

	return nil
}
