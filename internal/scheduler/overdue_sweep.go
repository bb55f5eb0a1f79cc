package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/boraedu/bora-hub-api/internal/usecases/selling"
	"github.com/boraedu/bora-hub-api/pkg/log"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// OverdueSweepService marca diariamente as parcelas pendentes vencidas como inadimplentes
type OverdueSweepService struct {
	scheduler            *gocron.Scheduler
	cronSchedule         string
	enabled              bool
	selling              selling.Selling
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastSweepMarked      int
	now                  func() time.Time
}

func NewOverdueSweepService(sellingService selling.Selling, appConfig *config.Config) *OverdueSweepService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.OverdueSweep.CronSchedule,
		"enabled":       appConfig.OverdueSweep.Enabled,
	}).Info("Configuração do agendador de parcelas vencidas carregada")

	return &OverdueSweepService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.OverdueSweep.CronSchedule,
		enabled:      appConfig.OverdueSweep.Enabled,
		selling:      sellingService,
		now:          time.Now,
	}
}

func (s *OverdueSweepService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Varredura de parcelas vencidas desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de parcelas vencidas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de parcelas vencidas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *OverdueSweepService) sweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de parcelas vencidas já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.lastSweepStartedAt = s.now()
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	ctx, correlationID := log.WithCorrelationID(context.Background(), "")

	marked, err := s.selling.MarkOverdue(ctx)
	if err != nil {
		logrus.WithField("correlation_id", correlationID).WithError(err).Error("Erro na varredura de parcelas vencidas")
		return
	}

	s.sweepMutex.Lock()
	s.lastSweepMarked = marked
	s.lastSweepCompletedAt = s.now()
	s.sweepMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"marked":         marked,
	}).Info("Varredura de parcelas vencidas concluída")
}

func (s *OverdueSweepService) TriggerManualSync() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de parcelas vencidas já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	go s.sweep()
}

func (s *OverdueSweepService) GetStatus() map[string]any {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	return map[string]any{
		"sweep_enabled":           s.enabled,
		"sweep_cron":              s.cronSchedule,
		"sweep_running":           s.sweepRunning,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
		"last_sweep_marked":       s.lastSweepMarked,
	}
}
