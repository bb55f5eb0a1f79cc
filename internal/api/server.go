package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boraedu/bora-hub-api/internal/api/handler"
	"github.com/boraedu/bora-hub-api/internal/api/handler/router"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/boraedu/bora-hub-api/internal/usecases/agenda"
	"github.com/boraedu/bora-hub-api/internal/usecases/attaching"
	"github.com/boraedu/bora-hub-api/internal/usecases/authenticating"
	"github.com/boraedu/bora-hub-api/internal/usecases/developing"
	"github.com/boraedu/bora-hub-api/internal/usecases/mentoring"
	"github.com/boraedu/bora-hub-api/internal/usecases/okrtracking"
	"github.com/boraedu/bora-hub-api/internal/usecases/publishing"
	"github.com/boraedu/bora-hub-api/internal/usecases/reconciling"
	"github.com/boraedu/bora-hub-api/internal/usecases/reporting"
	"github.com/boraedu/bora-hub-api/internal/usecases/selling"
	"github.com/boraedu/bora-hub-api/internal/usecases/sponsoring"
	"github.com/boraedu/bora-hub-api/internal/usecases/tasking"
	"github.com/boraedu/bora-hub-api/internal/usecases/ticketing"
	"github.com/boraedu/bora-hub-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

// Services reúne os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Ticketing     ticketing.Ticketing
	Tasking       tasking.Tasking
	Selling       selling.Selling
	Reconciler    reconciling.Reconciler
	OKRs          okrtracking.OKRTracker
	Mentoring     mentoring.Mentoring
	Publishing    publishing.Publishing
	Agenda        agenda.Agenda
	Developing    developing.Developing
	Sponsoring    sponsoring.Sponsoring
	Attaching     attaching.Attaching
	Reporter      reporting.Reporter
	CronJobs      handler.CronJobServices
}

func New(config *config.Config, services Services) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Tickets(services.Ticketing)...),
		router.WithRoutes(handler.Tasks(services.Tasking)...),
		router.WithRoutes(handler.Sales(services.Selling)...),
		router.WithRoutes(handler.Integrations(services.Reconciler)...),
		router.WithRoutes(handler.OKRs(services.OKRs)...),
		router.WithRoutes(handler.Mentorias(services.Mentoring)...),
		router.WithRoutes(handler.Content(services.Publishing)...),
		router.WithRoutes(handler.Events(services.Agenda)...),
		router.WithRoutes(handler.PDIs(services.Developing)...),
		router.WithRoutes(handler.Sponsorships(services.Sponsoring)...),
		router.WithRoutes(handler.Attachments(services.Attaching)...),
		router.WithRoutes(handler.Reports(services.Reporter)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
