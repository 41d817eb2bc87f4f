package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/campaign"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/ordering"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Database é o pool usado pelo healthcheck e fechado no desligamento
type Database interface {
	Ping(ctx context.Context) error
	Close() error
}

type Server struct {
	httpServer *http.Server
	db         Database
}

func New(
	config *config.Config,
	db Database,
	accountService account.AccountService,
	orderService ordering.OrderService,
	campaignService campaign.CampaignService,
	insightService insighting.Insighter,
	authenticator authenticating.Authenticator,
) (*Server, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	loc := config.Location()
	cookie := middleware.NewSessionCookie(config.Auth)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db, registry)...),
		router.WithRoutes(handler.Authentication(authenticator, cookie)...),
		router.WithRoutes(handler.AdAccounts(accountService)...),
		router.WithRoutes(handler.Orders(orderService, loc)...),
		router.WithRoutes(handler.Campaigns(campaignService, loc)...),
		router.WithRoutes(handler.Dashboard(insightService)...),
		router.WithRoutes(handler.UserAccounts(authenticator)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.NewMetrics(registry).Middleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.SessionGuard(authenticator, cookie),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
		db: db,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
			errCh <- err
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		s.closeDatabase()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown encerra o HTTP e depois fecha o pool do banco
func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.closeDatabase()
	if err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}

func (s Server) closeDatabase() {
	if s.db == nil {
		return
	}

	if err := s.db.Close(); err != nil {
		log.L.WithError(err).Warn("Erro ao fechar conexões com o banco")
		return
	}

	log.L.Info("Conexões com o banco encerradas")
}
