package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/reconciling"
	"github.com/boraedu/bora-hub-api/pkg/log"
	"github.com/boraedu/bora-hub-api/pkg/utils"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// PaymentSyncConfig representa a configuração do agendador de conciliação com os gateways
type PaymentSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// PaymentSyncService agenda a sincronização das integrações Asaas e Hotmart ativas
type PaymentSyncService struct {
	scheduler           *gocron.Scheduler
	config              PaymentSyncConfig
	reconciler          reconciling.Reconciler
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResults         []*domain.SyncResult
	now                 func() time.Time
}

func NewPaymentSyncService(reconciler reconciling.Reconciler, appConfig *config.Config) *PaymentSyncService {
	syncConfig := PaymentSyncConfig{
		CronSchedule:        appConfig.PaymentSync.CronSchedule,
		LookbackDays:        appConfig.PaymentSync.LookbackDays,
		RequestDelaySeconds: appConfig.PaymentSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.PaymentSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.PaymentSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}
	if syncConfig.LookbackDays <= 0 {
		syncConfig.LookbackDays = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de conciliação de pagamentos carregada")

	return &PaymentSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		reconciler: reconciler,
		now:        time.Now,
	}
}

// Start agenda a conciliação e para o agendador quando o contexto é cancelado
func (s *PaymentSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Conciliação de pagamentos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de conciliação de pagamentos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllIntegrations()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar conciliação de pagamentos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de conciliação de pagamentos")
		s.scheduler.Stop()
	}()

	return nil
}

// lookbackPeriod cobre os últimos LookbackDays dias, incluindo hoje
func (s *PaymentSyncService) lookbackPeriod() domain.Period {
	today := utils.StartOfDay(s.now())
	return domain.Period{
		Start: utils.DaysAgo(today, s.config.LookbackDays),
		End:   today,
	}
}

func (s *PaymentSyncService) syncAllIntegrations() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Conciliação de pagamentos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, correlationID := log.WithCorrelationID(context.Background(), "")
	logger := logrus.WithField("correlation_id", correlationID)

	integrations, err := s.reconciler.ListActiveIntegrations(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar integrações para conciliação")
		return
	}

	if len(integrations) == 0 {
		logger.Info("Nenhuma integração ativa encontrada para conciliação")
		return
	}

	period := s.lookbackPeriod()
	logger.WithFields(logrus.Fields{
		"integrations": len(integrations),
		"start_date":   period.Start.Format(time.DateOnly),
		"end_date":     period.End.Format(time.DateOnly),
	}).Info("Iniciando conciliação de pagamentos")

	results := s.processIntegrations(ctx, integrations, period)

	s.syncMutex.Lock()
	s.lastResults = results
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	logger.WithFields(logrus.Fields{
		"duration":     s.now().Sub(startTime).String(),
		"integrations": len(integrations),
	}).Info("Conciliação de pagamentos concluída")
}

// processIntegrations sincroniza as integrações em paralelo, limitado por MaxConcurrentJobs
func (s *PaymentSyncService) processIntegrations(ctx context.Context, integrations []*domain.Integration, period domain.Period) []*domain.SyncResult {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var resultsMutex sync.Mutex
	results := make([]*domain.SyncResult, 0, len(integrations))

	for _, integration := range integrations {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(integration *domain.Integration) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			fields := logrus.Fields{
				"tenant_id":      integration.TenantID,
				"integration_id": integration.ID,
				"provider":       integration.Provider,
			}
			logrus.WithFields(fields).Info("Conciliando integração")

			result, err := s.reconciler.SyncIntegration(ctx, integration, period)
			if err != nil {
				logrus.WithFields(fields).WithError(err).Error("Erro ao conciliar integração")
			}
			if result == nil {
				result = &domain.SyncResult{IntegrationID: integration.ID}
				if err != nil {
					result.Error = err.Error()
				}
			}

			logrus.WithFields(fields).WithFields(logrus.Fields{
				"plans":        result.Plans,
				"installments": result.Installments,
				"changed":      result.Changed,
			}).Info("Integração conciliada")

			resultsMutex.Lock()
			results = append(results, result)
			resultsMutex.Unlock()
		}(integration)
	}

	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].IntegrationID < results[j].IntegrationID
	})
	return results
}

// TriggerManualSync inicia manualmente uma conciliação
func (s *PaymentSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Conciliação de pagamentos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando conciliação manual de pagamentos")
	go s.syncAllIntegrations()
}

// GetStatus retorna o status atual do agendador
func (s *PaymentSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_results":           s.lastResults,
	}
}
