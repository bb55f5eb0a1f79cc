package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/cache"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/infrastructure/integrator/asaas"
	"github.com/boraedu/bora-hub-api/infrastructure/integrator/asaas/asaasclient"
	"github.com/boraedu/bora-hub-api/infrastructure/integrator/hotmart"
	"github.com/boraedu/bora-hub-api/infrastructure/integrator/hotmart/hotmartclient"
	"github.com/boraedu/bora-hub-api/infrastructure/integrator/llm"
	"github.com/boraedu/bora-hub-api/infrastructure/integrator/llm/llmclient"
	"github.com/boraedu/bora-hub-api/infrastructure/repository"
	"github.com/boraedu/bora-hub-api/infrastructure/storage"
	"github.com/boraedu/bora-hub-api/internal/api"
	"github.com/boraedu/bora-hub-api/internal/api/handler"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/boraedu/bora-hub-api/internal/scheduler"
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
	"github.com/boraedu/bora-hub-api/pkg/crypto"
	"github.com/boraedu/bora-hub-api/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	log.SetDevelopment(cfg.IsDevelopment())
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	tenantRepo := repository.NewTenantRepository(pgConn)
	ticketRepo := repository.NewTicketRepository(pgConn)
	taskRepo := repository.NewTaskRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	integrationRepo := repository.NewIntegrationRepository(pgConn)
	okrRepo := repository.NewOKRRepository(pgConn)
	mentoriaRepo := repository.NewMentoriaRepository(pgConn)
	contentRepo := repository.NewContentRepository(pgConn)
	eventRepo := repository.NewEventRepository(pgConn)
	pdiRepo := repository.NewPDIRepository(pgConn)
	sponsorshipRepo := repository.NewSponsorshipRepository(pgConn)
	attachmentRepo := repository.NewAttachmentRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)

	objectStorage, err := storage.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar armazenamento de arquivos")
	}

	idempotency := cache.NewIdempotencyStore(cfg)

	asaasIntegrator := asaas.New(cfg, asaasclient.NewClient(cfg))

	hotmartTokens := hotmartclient.NewTokenManager(cfg)
	hotmartIntegrator := hotmart.New(cfg, hotmartclient.NewClient(cfg, hotmartTokens))

	llmWriter := llm.New(cfg, llmclient.NewClient(cfg))

	authenticator := authenticating.NewService(userRepo, tenantRepo, pgConn, cfg)
	ticketService := ticketing.NewService(ticketRepo, taskRepo, pgConn)
	taskService := tasking.NewService(taskRepo)
	sellingService := selling.NewService(saleRepo, pgConn)
	reconciler := reconciling.NewService(cfg, integrationRepo, saleRepo, pgConn, asaasIntegrator, hotmartIntegrator, idempotency)
	okrService := okrtracking.NewService(okrRepo, pgConn)
	mentoringService := mentoring.NewService(mentoriaRepo, pgConn)
	publishingService := publishing.NewService(contentRepo)
	agendaService := agenda.NewService(eventRepo)
	developingService := developing.NewService(pdiRepo, crypto.NewSecretBox(cfg.SecretKey))
	sponsoringService := sponsoring.NewService(sponsorshipRepo)
	attachingService := attaching.NewService(attachmentRepo, objectStorage)

	reporter := reporting.NewService(reportRepo, reporting.Sources{
		Sales:        saleRepo,
		Tickets:      ticketRepo,
		Tasks:        taskRepo,
		Content:      contentRepo,
		Events:       eventRepo,
		Sponsorships: sponsorshipRepo,
		OKRs:         okrService,
		Mentorships:  mentoringService,
		PDIs:         developingService,
	}, llmWriter, objectStorage)

	// Inicializa os agendadores
	paymentSyncService := scheduler.NewPaymentSyncService(reconciler, cfg)
	overdueSweepService := scheduler.NewOverdueSweepService(sellingService, cfg)

	if err := paymentSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de conciliação de pagamentos")
	} else {
		logrus.Info("Agendador de conciliação de pagamentos iniciado com sucesso")
	}

	if err := overdueSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de parcelas vencidas")
	} else {
		logrus.Info("Agendador de parcelas vencidas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Ticketing:     ticketService,
		Tasking:       taskService,
		Selling:       sellingService,
		Reconciler:    reconciler,
		OKRs:          okrService,
		Mentoring:     mentoringService,
		Publishing:    publishingService,
		Agenda:        agendaService,
		Developing:    developingService,
		Sponsoring:    sponsoringService,
		Attaching:     attachingService,
		Reporter:      reporter,
		CronJobs: handler.CronJobServices{
			PaymentSync:  paymentSyncService,
			OverdueSweep: overdueSweepService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
