package handler

import (
	"net/http"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/selling"
	"github.com/sirupsen/logrus"
)

func CreateSale(service selling.Selling) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSale")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateSaleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		sale, err := service.CreateSale(r.Context(), userClaims.TenantID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar venda")
			return
		}

		writeJSON(w, http.StatusCreated, sale)
	}
}

// ListSales aceita status, source, seller_id e o período de venda
func ListSales(service selling.Selling) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		filter := domain.SaleFilter{
			Status: domain.SaleStatus(query.Get("status")),
			Source: domain.SaleSource(query.Get("source")),
		}

		sellerID, ok := optionalIntQuery(w, r, "seller_id")
		if !ok {
			return
		}
		filter.SellerID = sellerID

		period, ok := periodQuery(w, r)
		if !ok {
			return
		}
		filter.Period = period

		sales, err := service.ListSales(r.Context(), userClaims.TenantID, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar vendas")
			return
		}

		writeJSON(w, http.StatusOK, sales)
	}
}

func GetSale(service selling.Selling) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		sale, err := service.GetSale(r.Context(), userClaims.TenantID, param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar venda")
			return
		}

		writeJSON(w, http.StatusOK, sale)
	}
}

func DeleteSale(service selling.Selling) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteSale")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.DeleteSale(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover venda")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func UpdateInstallmentStatus(service selling.Selling) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateInstallmentStatus")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdateInstallmentStatusRequest
		if !decodeBody(w, r, &req) {
			return
		}

		installment, err := service.UpdateInstallmentStatus(r.Context(), userClaims.TenantID, param(r, "id"), domain.InstallmentStatus(req.Status))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar parcela")
			return
		}

		writeJSON(w, http.StatusOK, installment)
	}
}

// commissionFilter monta o filtro; colaboradores enxergam apenas as próprias comissões
func commissionFilter(w http.ResponseWriter, r *http.Request, claims *domain.Claims) (domain.CommissionFilter, bool) {
	filter := domain.CommissionFilter{
		Status: domain.CommissionStatus(r.URL.Query().Get("status")),
	}

	sellerID, ok := optionalIntQuery(w, r, "seller_id")
	if !ok {
		return filter, false
	}
	filter.SellerID = sellerID

	if !claims.CanManage() {
		own := claims.UserID
		filter.SellerID = &own
	}

	period, ok := periodQuery(w, r)
	if !ok {
		return filter, false
	}
	filter.Period = period

	return filter, true
}

func ListCommissions(service selling.Selling) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		filter, ok := commissionFilter(w, r, userClaims)
		if !ok {
			return
		}

		commissions, err := service.ListCommissions(r.Context(), userClaims.TenantID, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar comissões")
			return
		}

		writeJSON(w, http.StatusOK, commissions)
	}
}

func CommissionSummary(service selling.Selling) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		filter, ok := commissionFilter(w, r, userClaims)
		if !ok {
			return
		}

		summary, err := service.CommissionSummary(r.Context(), userClaims.TenantID, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao resumir comissões")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
