package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCronJob struct {
	triggered int
	status    map[string]any
}

func (f *fakeCronJob) TriggerManualSync()        { f.triggered++ }
func (f *fakeCronJob) GetStatus() map[string]any { return f.status }

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name           string
		cronType       string
		wantStatus     int
		wantPayment    int
		wantOverdueRun int
	}{
		{"conciliação", CronJobTypePaymentSync, http.StatusAccepted, 1, 0},
		{"parcelas vencidas", CronJobTypeOverdueSweep, http.StatusAccepted, 0, 1},
		{"todas", CronJobTypeAll, http.StatusAccepted, 1, 1},
		{"tipo inválido", "insights", http.StatusBadRequest, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := &fakeCronJob{}
			overdue := &fakeCronJob{}
			services := CronJobServices{PaymentSync: payment, OverdueSweep: overdue}

			rec := httptest.NewRecorder()
			RunCronJob(services)(rec, newRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", "", adminClaims,
				httprouter.Param{Key: "type", Value: tt.cronType}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantPayment, payment.triggered)
			assert.Equal(t, tt.wantOverdueRun, overdue.triggered)
		})
	}
}

func TestRunCronJobWithoutService(t *testing.T) {
	rec := httptest.NewRecorder()
	RunCronJob(CronJobServices{})(rec, newRequest(http.MethodPost, "/v1/cron/payment-sync/run", "", adminClaims,
		httprouter.Param{Key: "type", Value: CronJobTypePaymentSync}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{
		PaymentSync: &fakeCronJob{status: map[string]any{"is_running": false}},
	}

	rec := httptest.NewRecorder()
	GetCronStatus(services)(rec, newRequest(http.MethodGet, "/v1/cron/status", "", adminClaims))

	require.Equal(t, http.StatusOK, rec.Code)
	var status map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Contains(t, status, CronJobTypePaymentSync)
	assert.NotContains(t, status, CronJobTypeOverdueSweep)
	assert.Equal(t, false, status[CronJobTypePaymentSync]["is_running"])
}
