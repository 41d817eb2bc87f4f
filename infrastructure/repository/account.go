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
	accountsTable  = "ad_accounts a"
	accountColumns = "a.id, a.platform, a.account_id, a.account_name, a.currency, a.status, a.config, a.created_at, a.updated_at"
)

type AccountRepository interface {
	GetAccountByID(ctx context.Context, id string) (*domain.AdAccount, error)
	GetAccountByPlatformAndExternalID(ctx context.Context, platform, accountID string) (*domain.AdAccount, error)
	ListAccounts(ctx context.Context, filter domain.AdAccountFilter) ([]*domain.AdAccount, error)
	CountAccounts(ctx context.Context, filter domain.AdAccountFilter) (int64, error)
	CreateAccount(ctx context.Context, account *domain.AdAccount) error
	UpdateAccount(ctx context.Context, account *domain.AdAccount) error
	DeleteAccount(ctx context.Context, id string) error
}

type accountRepository struct {
	conn postgres.Queryer
}

func NewAccountRepository(conn postgres.Queryer) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(ctx context.Context, id string) (*domain.AdAccount, error) {
	return a.getAccount(ctx, squirrel.Eq{"a.id": id})
}

func (a *accountRepository) GetAccountByPlatformAndExternalID(ctx context.Context, platform, accountID string) (*domain.AdAccount, error) {
	return a.getAccount(ctx, squirrel.Eq{"a.platform": platform, "a.account_id": accountID})
}

func (a *accountRepository) getAccount(ctx context.Context, where squirrel.Eq) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(accountColumns).
		From(accountsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	acc := &domain.AdAccount{}
	if err := a.conn.GetContext(ctx, acc, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get account")
	}

	return acc, nil
}

func applyAccountFilter(builder squirrel.SelectBuilder, filter domain.AdAccountFilter) squirrel.SelectBuilder {
	if filter.Platform != "" {
		builder = builder.Where(squirrel.Eq{"a.platform": filter.Platform})
	}

	if len(filter.Status) > 0 {
		builder = builder.Where(squirrel.Eq{"a.status": filter.Status})
	}

	if len(filter.IDs) > 0 {
		builder = builder.Where(squirrel.Eq{"a.id": filter.IDs})
	}

	return builder
}

func (a *accountRepository) ListAccounts(ctx context.Context, filter domain.AdAccountFilter) ([]*domain.AdAccount, error) {
	builder := squirrel.
		Select(accountColumns).
		From(accountsTable).
		OrderBy("a.platform ASC", "a.account_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := applyAccountFilter(builder, filter).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	accounts := make([]*domain.AdAccount, 0)
	if err := a.conn.SelectContext(ctx, &accounts, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

func (a *accountRepository) CountAccounts(ctx context.Context, filter domain.AdAccountFilter) (int64, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(accountsTable).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := applyAccountFilter(builder, filter).ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build query")
	}

	var total int64
	if err := a.conn.GetContext(ctx, &total, query, args...); err != nil {
		return 0, errors.Wrap(err, "failed to count accounts")
	}

	return total, nil
}

func (a *accountRepository) CreateAccount(ctx context.Context, account *domain.AdAccount) error {
	query, args, err := squirrel.
		Insert("ad_accounts").
		Columns("id", "platform", "account_id", "account_name", "currency", "status", "config", "created_at", "updated_at").
		Values(
			account.ID,
			account.Platform,
			account.AccountID,
			account.AccountName,
			account.Currency,
			account.Status,
			account.Config,
			account.CreatedAt,
			account.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	if _, err := a.conn.ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "failed to create account")
	}

	return nil
}

func (a *accountRepository) UpdateAccount(ctx context.Context, account *domain.AdAccount) error {
	if account.ID == "" {
		return errors.New("ID is required")
	}

	query, args, err := squirrel.
		Update("ad_accounts").
		Set("account_name", account.AccountName).
		Set("currency", account.Currency).
		Set("status", account.Status).
		Set("config", account.Config).
		Set("updated_at", account.UpdatedAt).
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := a.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to update account")
	}

	return checkAffected(result)
}

func (a *accountRepository) DeleteAccount(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("ad_accounts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := a.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "error getting rows affected")
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
