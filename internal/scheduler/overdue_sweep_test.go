package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/boraedu/bora-hub-api/internal/config"
	sellingmocks "github.com/boraedu/bora-hub-api/internal/usecases/selling/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newOverdueSweep(t *testing.T) (*OverdueSweepService, *sellingmocks.MockSelling) {
	sellingService := sellingmocks.NewMockSelling(gomock.NewController(t))
	service := NewOverdueSweepService(sellingService, &config.Config{OverdueSweep: config.OverdueSweep{CronSchedule: "0 6 * * *"}})
	service.now = func() time.Time { return time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC) }
	return service, sellingService
}

func TestOverdueSweep(t *testing.T) {
	service, sellingService := newOverdueSweep(t)

	sellingService.EXPECT().MarkOverdue(gomock.Any()).Return(4, nil)

	service.sweep()

	status := service.GetStatus()
	assert.Equal(t, 4, status["last_sweep_marked"])
	assert.Equal(t, time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC), status["last_sweep_completed_at"])
}

func TestOverdueSweep_Erro(t *testing.T) {
	service, sellingService := newOverdueSweep(t)

	sellingService.EXPECT().MarkOverdue(gomock.Any()).Return(0, errors.New("banco indisponível"))

	service.sweep()

	status := service.GetStatus()
	assert.True(t, status["last_sweep_completed_at"].(time.Time).IsZero())
	assert.False(t, status["sweep_running"].(bool))
}
