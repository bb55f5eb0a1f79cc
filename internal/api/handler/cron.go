package handler

import (
	"net/http"

	"github.com/boraedu/bora-hub-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePaymentSync  = "payment-sync"
	CronJobTypeOverdueSweep = "overdue-sweep"
	CronJobTypeAll          = "all"
)

// CronJob é uma rotina agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PaymentSync  CronJob
	OverdueSweep CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := param(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypePaymentSync:
			if services.PaymentSync == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de pagamentos não disponível", nil)
				return
			}
			services.PaymentSync.TriggerManualSync()

		case CronJobTypeOverdueSweep:
			if services.OverdueSweep == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de parcelas vencidas não disponível", nil)
				return
			}
			services.OverdueSweep.TriggerManualSync()

		case CronJobTypeAll:
			if services.PaymentSync != nil {
				services.PaymentSync.TriggerManualSync()
			}
			if services.OverdueSweep != nil {
				services.OverdueSweep.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: payment-sync, overdue-sweep, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.PaymentSync != nil {
			status[CronJobTypePaymentSync] = services.PaymentSync.GetStatus()
		}
		if services.OverdueSweep != nil {
			status[CronJobTypeOverdueSweep] = services.OverdueSweep.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
