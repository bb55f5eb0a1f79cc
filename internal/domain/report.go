package domain

import "time"

type ReportScope string

const (
	ScopeSales        ReportScope = "vendas"
	ScopeCommissions  ReportScope = "comissoes"
	ScopeTickets      ReportScope = "chamados"
	ScopeTasks        ReportScope = "tarefas"
	ScopeOKRs         ReportScope = "okrs"
	ScopeContent      ReportScope = "conteudo"
	ScopeEvents       ReportScope = "eventos"
	ScopeMentorships  ReportScope = "mentorias"
	ScopePDIs         ReportScope = "pdis"
	ScopeSponsorships ReportScope = "patrocinios"
)

var ReportScopes = []ReportScope{
	ScopeSales, ScopeCommissions, ScopeTickets, ScopeTasks, ScopeOKRs,
	ScopeContent, ScopeEvents, ScopeMentorships, ScopePDIs, ScopeSponsorships,
}

func (s ReportScope) Valid() bool {
	for _, scope := range ReportScopes {
		if scope == s {
			return true
		}
	}
	return false
}

type ReportStatus string

const (
	ReportStatusCompleted ReportStatus = "concluido"
	ReportStatusPartial   ReportStatus = "parcial"
	ReportStatusFailed    ReportStatus = "falhou"
)

type ReportGenerator string

const (
	GeneratorLLM      ReportGenerator = "llm"
	GeneratorTemplate ReportGenerator = "template"
)

// ScopeResult guarda os agregados de um escopo ou o erro encontrado ao consultá-lo
type ScopeResult struct {
	Scope ReportScope    `json:"scope"`
	Data  map[string]any `json:"data,omitempty"`
	Error string         `json:"error,omitempty"`
}

// ReportData é o JSON consolidado enviado ao LLM e persistido junto do relatório
type ReportData struct {
	Title  string        `json:"title"`
	Period Period        `json:"period"`
	Scopes []ScopeResult `json:"scopes"`
}

// Failed indica quantos escopos falharam
func (d *ReportData) Failed() int {
	var failed int
	for _, scope := range d.Scopes {
		if scope.Error != "" {
			failed++
		}
	}
	return failed
}

type Report struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	Title       string          `json:"title"`
	Scopes      []ReportScope   `json:"scopes"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Status      ReportStatus    `json:"status"`
	Data        *ReportData     `json:"data,omitempty"`
	Content     string          `json:"content"`
	Generator   ReportGenerator `json:"generator"`
	StorageKey  *string         `json:"storage_key,omitempty"`
	DownloadURL string          `json:"download_url,omitempty"`
	CreatedBy   *int            `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type GenerateReportRequest struct {
	Title     string   `json:"title" validate:"required,max=200"`
	Scopes    []string `json:"scopes" validate:"required,min=1,dive,oneof=vendas comissoes chamados tarefas okrs conteudo eventos mentorias pdis patrocinios"`
	StartDate string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string   `json:"end_date" validate:"required,datetime=2006-01-02"`
}
