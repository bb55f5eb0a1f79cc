package handler

import (
	"net/http"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/reporting"
	"github.com/boraedu/bora-hub-api/pkg/log"
	"github.com/sirupsen/logrus"
)

// GenerateReport consolida os escopos pedidos; escopos com falha entram no relatório como erro
func GenerateReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateReport")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.GenerateReportRequest
		if !decodeBody(w, r, &req) {
			return
		}

		report, err := service.Generate(r.Context(), userClaims.TenantID, userClaims.UserID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar relatório")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"report_id": report.ID,
			"status":    report.Status,
			"generator": report.Generator,
		}).Info("Relatório gerado")

		writeJSON(w, http.StatusCreated, report)
	}
}

func ListReports(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		reports, err := service.List(r.Context(), userClaims.TenantID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar relatórios")
			return
		}

		writeJSON(w, http.StatusOK, reports)
	}
}

func GetReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		report, err := service.Get(r.Context(), userClaims.TenantID, param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar relatório")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func DeleteReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteReport")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover relatório")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
