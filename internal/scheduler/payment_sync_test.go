package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/boraedu/bora-hub-api/internal/domain"
	reconcilingmocks "github.com/boraedu/bora-hub-api/internal/usecases/reconciling/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPaymentSync(t *testing.T, maxConcurrent int) (*PaymentSyncService, *reconcilingmocks.MockReconciler) {
	reconciler := reconcilingmocks.NewMockReconciler(gomock.NewController(t))

	cfg := &config.Config{PaymentSync: config.PaymentSync{
		CronSchedule:      "0 3 * * *",
		LookbackDays:      7,
		MaxConcurrentJobs: maxConcurrent,
	}}
	service := NewPaymentSyncService(reconciler, cfg)
	service.now = func() time.Time { return time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC) }
	return service, reconciler
}

func TestPaymentSync_LookbackPeriod(t *testing.T) {
	service, _ := newPaymentSync(t, 2)

	period := service.lookbackPeriod()
	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), period.End)
}

func TestPaymentSync_SyncAllIntegrations(t *testing.T) {
	service, reconciler := newPaymentSync(t, 2)

	integrations := []*domain.Integration{
		{ID: "i3", Provider: domain.ProviderAsaas},
		{ID: "i1", Provider: domain.ProviderHotmart},
		{ID: "i2", Provider: domain.ProviderAsaas},
	}
	reconciler.EXPECT().ListActiveIntegrations(gomock.Any()).Return(integrations, nil)

	var running, maxRunning int32
	reconciler.EXPECT().SyncIntegration(gomock.Any(), gomock.Any(), service.lookbackPeriod()).
		DoAndReturn(func(_ context.Context, integration *domain.Integration, _ domain.Period) (*domain.SyncResult, error) {
			current := atomic.AddInt32(&running, 1)
			for {
				seen := atomic.LoadInt32(&maxRunning)
				if current <= seen || atomic.CompareAndSwapInt32(&maxRunning, seen, current) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&running, -1)

			if integration.ID == "i2" {
				return nil, errors.New("gateway indisponível")
			}
			return &domain.SyncResult{IntegrationID: integration.ID, Plans: 1}, nil
		}).Times(3)

	service.syncAllIntegrations()

	assert.LessOrEqual(t, atomic.LoadInt32(&maxRunning), int32(2))

	status := service.GetStatus()
	results, ok := status["last_results"].([]*domain.SyncResult)
	require.True(t, ok)
	require.Len(t, results, 3)
	assert.Equal(t, "i1", results[0].IntegrationID)
	assert.Equal(t, "gateway indisponível", results[1].Error)
	assert.Equal(t, 1, results[2].Plans)
	assert.False(t, status["sync_running"].(bool))
}

func TestPaymentSync_IgnoraExecucaoConcorrente(t *testing.T) {
	service, _ := newPaymentSync(t, 1)
	service.syncRunning = true

	// nenhuma chamada ao reconciler é esperada
	service.syncAllIntegrations()
	assert.True(t, service.syncRunning)
}

func TestPaymentSync_StartDesabilitado(t *testing.T) {
	service, _ := newPaymentSync(t, 1)

	assert.NoError(t, service.Start(context.Background()))
}
