package main

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Info("Iniciando script de migração...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := applySchema(ctx, tx); err != nil {
			return err
		}

		return seedAdmin(ctx, repository.NewUserRepository(tx), cfg.Seed, time.Now)
	})
	if err != nil {
		log.L.WithError(err).Fatal("Migração revertida")
	}

	log.L.Infof("Migração concluída em %v", time.Since(startTime))
}

func applySchema(ctx context.Context, tx postgres.Queryer) error {
	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "falha na instrução %d do schema", i+1)
		}
	}

	log.L.Infof("Schema aplicado: %d instruções", len(schema))
	return nil
}

// seedAdmin cria o administrador inicial quando ADMIN_PASSWORD está definido e o email ainda não existe
func seedAdmin(ctx context.Context, users repository.UserRepository, seed config.Seed, now func() time.Time) error {
	email := strings.ToLower(strings.TrimSpace(seed.AdminEmail))
	if email == "" || seed.AdminPassword == "" {
		log.L.Info("ADMIN_EMAIL ou ADMIN_PASSWORD ausente, seed do administrador ignorado")
		return nil
	}

	existing, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "falha ao consultar administrador")
	}
	if existing != nil {
		log.L.Infof("Administrador %s já existe", email)
		return nil
	}

	hash, err := authenticating.HashPassword(seed.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "falha ao gerar hash da senha")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "falha ao gerar ID")
	}

	createdAt := now()
	admin := &domain.User{
		ID:           id,
		Email:        email,
		Name:         seed.AdminName,
		PasswordHash: hash,
		Role:         domain.UserRoleAdmin,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}

	if err := users.CreateUser(ctx, admin); err != nil {
		return errors.Wrap(err, "falha ao criar administrador")
	}

	log.L.WithField("user_id", admin.ID).Infof("Administrador %s criado", email)
	return nil
}
