package main

import (
	"context"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/api"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/campaign"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/ordering"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	log.Setup(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// o pool é fechado pelo servidor no desligamento
	pgConn := pgconn(ctx, cfg.Database)

	accountRepo := repository.NewAccountRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, accountRepo, cfg)
	accountService := account.NewService(accountRepo)
	orderService := ordering.NewService(orderRepo, cfg)
	campaignService := campaign.NewService(campaignRepo, accountRepo, cfg)
	insightService := insighting.NewService(cfg, orderRepo, campaignRepo, accountRepo, userRepo)

	server, err := api.New(
		cfg,
		pgConn,
		accountService,
		orderService,
		campaignService,
		insightService,
		authenticator,
	)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
