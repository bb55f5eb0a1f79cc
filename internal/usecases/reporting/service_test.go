package reporting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	llmmocks "github.com/boraedu/bora-hub-api/infrastructure/integrator/llm/mocks"
	"github.com/boraedu/bora-hub-api/infrastructure/repository/mocks"
	storagemocks "github.com/boraedu/bora-hub-api/infrastructure/storage/mocks"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service *Service
	reports *mocks.MockReportRepository
	sales   *mocks.MockSaleRepository
	tickets *mocks.MockTicketRepository
	writer  *llmmocks.MockWriter
	storage *storagemocks.MockObjectStorage
}

var now = time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		reports: mocks.NewMockReportRepository(ctrl),
		sales:   mocks.NewMockSaleRepository(ctrl),
		tickets: mocks.NewMockTicketRepository(ctrl),
		writer:  llmmocks.NewMockWriter(ctrl),
		storage: storagemocks.NewMockObjectStorage(ctrl),
	}

	sources := Sources{Sales: f.sales, Tickets: f.tickets}
	f.service = NewService(f.reports, sources, f.writer, f.storage).(*Service)
	f.service.now = func() time.Time { return now }
	return f
}

func request(scopes ...string) *domain.GenerateReportRequest {
	return &domain.GenerateReportRequest{
		Title:     "Fechamento de junho",
		Scopes:    scopes,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
	}
}

func TestGenerate_LLM(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.sales.EXPECT().ListSales(ctx, "tenant", gomock.Any()).Return([]*domain.Sale{
		{Source: domain.SaleSourceAsaas, Status: domain.SaleStatusActive, TotalValue: decimal.NewFromInt(1000)},
		{Source: domain.SaleSourceHotmart, Status: domain.SaleStatusPaidOff, TotalValue: decimal.RequireFromString("497.00")},
	}, nil)
	f.writer.EXPECT().Enabled().Return(true)
	f.writer.EXPECT().WriteReport(ctx, "Fechamento de junho", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data string) (string, error) {
			assert.Contains(t, data, `"valor_total":"1497.00"`)
			return "# Relatório", nil
		})
	f.storage.EXPECT().Enabled().Return(false).AnyTimes()

	var saved *domain.Report
	f.reports.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, report *domain.Report) error {
		saved = report
		return nil
	})

	report, err := f.service.Generate(ctx, "tenant", 4, request("vendas", "vendas"))
	require.NoError(t, err)

	assert.Same(t, saved, report)
	assert.Equal(t, []domain.ReportScope{domain.ScopeSales}, report.Scopes)
	assert.Equal(t, domain.GeneratorLLM, report.Generator)
	assert.Equal(t, domain.ReportStatusCompleted, report.Status)
	assert.Equal(t, "# Relatório", report.Content)
	assert.Nil(t, report.StorageKey)
	assert.Equal(t, 4, *report.CreatedBy)
}

func TestGenerate_EscopoComFalhaEFallbackTemplate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.sales.EXPECT().ListSales(ctx, "tenant", gomock.Any()).Return(nil, errors.New("conexão recusada"))
	f.tickets.EXPECT().ListByPeriod(ctx, "tenant", gomock.Any()).Return([]*domain.Ticket{
		{Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityHigh, SLADeadline: now.Add(-time.Hour)},
		{Status: domain.TicketStatusResolved, Priority: domain.TicketPriorityLow, SLADeadline: now.Add(-time.Hour)},
	}, nil)
	f.writer.EXPECT().Enabled().Return(true)
	f.writer.EXPECT().WriteReport(ctx, gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))
	f.storage.EXPECT().Enabled().Return(false).AnyTimes()
	f.reports.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	report, err := f.service.Generate(ctx, "tenant", 0, request("vendas", "chamados"))
	require.NoError(t, err)

	assert.Equal(t, domain.ReportStatusPartial, report.Status)
	assert.Equal(t, domain.GeneratorTemplate, report.Generator)
	assert.Nil(t, report.CreatedBy)

	require.Len(t, report.Data.Scopes, 2)
	assert.Equal(t, "conexão recusada", report.Data.Scopes[0].Error)
	assert.Equal(t, 1, report.Data.Scopes[1].Data["sla_vencido"])
	assert.Equal(t, 1, report.Data.Scopes[1].Data["finalizados"])

	assert.True(t, strings.HasPrefix(report.Content, "# Fechamento de junho"))
	assert.Contains(t, report.Content, "Período: 01/06/2024 a 30/06/2024")
	assert.Contains(t, report.Content, "## Vendas")
	assert.Contains(t, report.Content, "_Dados indisponíveis: conexão recusada_")
	assert.Contains(t, report.Content, "- por prioridade: alta 1, baixa 1")
}

func TestGenerate_ExportaParaStorage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.sales.EXPECT().ListSales(ctx, "tenant", gomock.Any()).Return(nil, nil)
	f.writer.EXPECT().Enabled().Return(false)
	f.storage.EXPECT().Enabled().Return(true).AnyTimes()
	f.storage.EXPECT().Upload(ctx, gomock.Any(), markdownContentType, gomock.Any()).Return(nil)
	f.reports.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	f.storage.EXPECT().PresignDownload(ctx, gomock.Any()).Return("https://storage/report.md", now.Add(15*time.Minute), nil)

	report, err := f.service.Generate(ctx, "tenant", 1, request("vendas"))
	require.NoError(t, err)

	require.NotNil(t, report.StorageKey)
	assert.Equal(t, "reports/tenant/"+report.ID+".md", *report.StorageKey)
	assert.Equal(t, "https://storage/report.md", report.DownloadURL)
}

func TestGenerate_Invalido(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Generate(ctx, "tenant", 1, request("financeiro"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req := request("vendas")
	req.EndDate = "2024-05-01"
	_, err = f.service.Generate(ctx, "tenant", 1, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_RemoveArquivo(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	key := "reports/tenant/r1.md"
	f.reports.EXPECT().GetByID(ctx, "tenant", "r1").Return(&domain.Report{ID: "r1", StorageKey: &key}, nil)
	f.reports.EXPECT().Delete(ctx, "tenant", "r1").Return(nil)
	f.storage.EXPECT().Enabled().Return(true)
	f.storage.EXPECT().Delete(ctx, key).Return(errors.New("bucket indisponível"))

	assert.NoError(t, f.service.Delete(ctx, "tenant", "r1"))
}

func TestReportStatus(t *testing.T) {
	failed := &domain.ReportData{Scopes: []domain.ScopeResult{{Error: "x"}, {Error: "y"}}}
	assert.Equal(t, domain.ReportStatusFailed, reportStatus(failed))
}
