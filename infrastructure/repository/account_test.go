package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

func TestAccountRepository_GetAccountByID(t *testing.T) {
	ctx := context.Background()

	t.Run("retorna a conta encontrada", func(t *testing.T) {
		repo := NewAccountRepository(stubDB{
			getFn: func(_ context.Context, dest any, query string, args ...any) error {
				assert.Contains(t, query, "FROM ad_accounts a WHERE a.id = $1")
				assert.Equal(t, []any{"acc-1"}, args)
				*dest.(*domain.AdAccount) = domain.AdAccount{ID: "acc-1", Platform: "meta"}
				return nil
			},
		})

		acc, err := repo.GetAccountByID(ctx, "acc-1")
		require.NoError(t, err)
		require.NotNil(t, acc)
		assert.Equal(t, "meta", acc.Platform)
	})

	t.Run("retorna nil quando não existe", func(t *testing.T) {
		repo := NewAccountRepository(stubDB{
			getFn: func(context.Context, any, string, ...any) error {
				return sql.ErrNoRows
			},
		})

		acc, err := repo.GetAccountByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, acc)
	})
}

func TestAccountRepository_GetAccountByPlatformAndExternalID(t *testing.T) {
	repo := NewAccountRepository(stubDB{
		getFn: func(_ context.Context, _ any, query string, args ...any) error {
			assert.Contains(t, query, "a.account_id = $1 AND a.platform = $2")
			assert.Equal(t, []any{"ext-1", "google"}, args)
			return sql.ErrNoRows
		},
	})

	acc, err := repo.GetAccountByPlatformAndExternalID(context.Background(), "google", "ext-1")
	require.NoError(t, err)
	assert.Nil(t, acc)
}

func TestAccountRepository_ListAccounts(t *testing.T) {
	repo := NewAccountRepository(stubDB{
		selectFn: func(_ context.Context, dest any, query string, args ...any) error {
			assert.Contains(t, query, "WHERE a.platform = $1 AND a.status IN ($2)")
			assert.Contains(t, query, "ORDER BY a.platform ASC, a.account_name ASC")
			assert.Equal(t, []any{"meta", domain.AdAccountStatusActive}, args)
			*dest.(*[]*domain.AdAccount) = []*domain.AdAccount{{ID: "acc-1"}, {ID: "acc-2"}}
			return nil
		},
	})

	accounts, err := repo.ListAccounts(context.Background(), domain.AdAccountFilter{
		Platform: "meta",
		Status:   []domain.AdAccountStatus{domain.AdAccountStatusActive},
	})
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestAccountRepository_CountAccounts(t *testing.T) {
	repo := NewAccountRepository(stubDB{
		getFn: func(_ context.Context, dest any, query string, args ...any) error {
			assert.Contains(t, query, "SELECT COUNT(*) FROM ad_accounts a WHERE a.id IN ($1,$2)")
			*dest.(*int64) = 2
			return nil
		},
	})

	total, err := repo.CountAccounts(context.Background(), domain.AdAccountFilter{IDs: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestAccountRepository_CreateAccount(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	account := &domain.AdAccount{
		ID:          "acc-1",
		Platform:    "meta",
		AccountID:   "ext-1",
		AccountName: "Loja",
		Currency:    "USD",
		Status:      domain.AdAccountStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	t.Run("insere a conta", func(t *testing.T) {
		repo := NewAccountRepository(stubDB{
			execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
				assert.Contains(t, query, "INSERT INTO ad_accounts")
				assert.Len(t, args, 9)
				assert.Equal(t, "acc-1", args[0])
				return stubResult{rows: 1}, nil
			},
		})

		require.NoError(t, repo.CreateAccount(context.Background(), account))
	})

	t.Run("violação de unicidade vira ErrDuplicateKey", func(t *testing.T) {
		repo := NewAccountRepository(stubDB{
			execFn: func(context.Context, string, ...any) (sql.Result, error) {
				return nil, &pq.Error{Code: "23505", Constraint: "ad_accounts_platform_account_id_key"}
			},
		})

		err := repo.CreateAccount(context.Background(), account)
		assert.True(t, errors.Is(err, ErrDuplicateKey))
	})
}

func TestAccountRepository_UpdateAccount(t *testing.T) {
	t.Run("sem linhas afetadas retorna ErrNotFound", func(t *testing.T) {
		repo := NewAccountRepository(stubDB{
			execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
				assert.Contains(t, query, "UPDATE ad_accounts SET account_name = $1")
				assert.Contains(t, query, "WHERE id = $6")
				return stubResult{rows: 0}, nil
			},
		})

		err := repo.UpdateAccount(context.Background(), &domain.AdAccount{ID: "missing"})
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("exige ID", func(t *testing.T) {
		repo := NewAccountRepository(stubDB{})
		assert.Error(t, repo.UpdateAccount(context.Background(), &domain.AdAccount{}))
	})
}

func TestAccountRepository_DeleteAccount(t *testing.T) {
	repo := NewAccountRepository(stubDB{
		execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
			assert.Equal(t, "DELETE FROM ad_accounts WHERE id = $1", query)
			assert.Equal(t, []any{"acc-1"}, args)
			return stubResult{rows: 1}, nil
		},
	})

	require.NoError(t, repo.DeleteAccount(context.Background(), "acc-1"))
}
