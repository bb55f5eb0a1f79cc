package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/integrator/llm"
	"github.com/boraedu/bora-hub-api/infrastructure/repository"
	"github.com/boraedu/bora-hub-api/infrastructure/storage"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/developing"
	"github.com/boraedu/bora-hub-api/internal/usecases/mentoring"
	"github.com/boraedu/bora-hub-api/internal/usecases/okrtracking"
	"github.com/boraedu/bora-hub-api/pkg/log"
	"github.com/boraedu/bora-hub-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const markdownContentType = "text/markdown; charset=utf-8"

type Reporter interface {
	Generate(ctx context.Context, tenantID string, createdBy int, req *domain.GenerateReportRequest) (*domain.Report, error)
	Get(ctx context.Context, tenantID, id string) (*domain.Report, error)
	List(ctx context.Context, tenantID string) ([]*domain.Report, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// Sources reúne as fontes consultadas por escopo
type Sources struct {
	Sales        repository.SaleRepository
	Tickets      repository.TicketRepository
	Tasks        repository.TaskRepository
	Content      repository.ContentRepository
	Events       repository.EventRepository
	Sponsorships repository.SponsorshipRepository
	OKRs         okrtracking.OKRTracker
	Mentorships  mentoring.Mentoring
	PDIs         developing.Developing
}

type Service struct {
	reportRepo repository.ReportRepository
	sources    Sources
	writer     llm.Writer
	storage    storage.ObjectStorage
	now        func() time.Time
}

func NewService(reportRepo repository.ReportRepository, sources Sources, writer llm.Writer, objectStorage storage.ObjectStorage) Reporter {
	return &Service{
		reportRepo: reportRepo,
		sources:    sources,
		writer:     writer,
		storage:    objectStorage,
		now:        time.Now,
	}
}

func uniqueScopes(raw []string) ([]domain.ReportScope, error) {
	seen := make(map[domain.ReportScope]bool, len(raw))
	scopes := make([]domain.ReportScope, 0, len(raw))
	for _, value := range raw {
		scope := domain.ReportScope(value)
		if !scope.Valid() {
			return nil, domain.ErrInvalidInput
		}
		if seen[scope] {
			continue
		}
		seen[scope] = true
		scopes = append(scopes, scope)
	}

	if len(scopes) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return scopes, nil
}

// Generate consulta os escopos em sequência, consolida os agregados e produz o texto
// pelo LLM ou, na falha dele, pelo template
func (s *Service) Generate(ctx context.Context, tenantID string, createdBy int, req *domain.GenerateReportRequest) (*domain.Report, error) {
	scopes, err := uniqueScopes(req.Scopes)
	if err != nil {
		return nil, err
	}

	period, err := domain.ParsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, errors.Wrap(err, "período do relatório")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"tenant_id": tenantID,
		"scopes":    req.Scopes,
	})

	data := s.collect(ctx, tenantID, req.Title, scopes, period)

	now := s.now()
	report := &domain.Report{
		ID:        utils.NewID(),
		TenantID:  tenantID,
		Title:     req.Title,
		Scopes:    scopes,
		StartDate: period.Start,
		EndDate:   period.End,
		Status:    reportStatus(data),
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if createdBy > 0 {
		report.CreatedBy = &createdBy
	}

	report.Content, report.Generator, err = s.write(ctx, data)
	if err != nil {
		return nil, err
	}

	if s.storage.Enabled() {
		key := fmt.Sprintf("reports/%s/%s.md", tenantID, report.ID)
		if err := s.storage.Upload(ctx, key, markdownContentType, []byte(report.Content)); err != nil {
			logger.WithError(err).Warn("Falha ao exportar relatório para o armazenamento")
		} else {
			report.StorageKey = &key
		}
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Wrap(err, "salvando relatório")
	}

	logger.WithFields(log.Fields{
		"report_id": report.ID,
		"status":    report.Status,
		"generator": report.Generator,
	}).Info("Relatório gerado")

	s.attachDownloadURL(ctx, report)
	return report, nil
}

func reportStatus(data *domain.ReportData) domain.ReportStatus {
	switch failed := data.Failed(); {
	case failed == 0:
		return domain.ReportStatusCompleted
	case failed == len(data.Scopes):
		return domain.ReportStatusFailed
	default:
		return domain.ReportStatusPartial
	}
}

func (s *Service) collect(ctx context.Context, tenantID, title string, scopes []domain.ReportScope, period domain.Period) *domain.ReportData {
	data := &domain.ReportData{
		Title:  title,
		Period: period,
		Scopes: make([]domain.ScopeResult, 0, len(scopes)),
	}

	for _, scope := range scopes {
		result := domain.ScopeResult{Scope: scope}

		aggregates, err := s.aggregate(ctx, scope, tenantID, period)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("scope", scope).Warn("Falha ao consolidar escopo do relatório")
			result.Error = err.Error()
		} else {
			result.Data = aggregates
		}

		data.Scopes = append(data.Scopes, result)
	}

	return data
}

// write devolve o markdown e quem o produziu
func (s *Service) write(ctx context.Context, data *domain.ReportData) (string, domain.ReportGenerator, error) {
	if s.writer.Enabled() {
		encoded, err := json.MarshalToString(data)
		if err != nil {
			return "", "", errors.Wrap(err, "serializando dados do relatório")
		}

		content, err := s.writer.WriteReport(ctx, data.Title, encoded)
		if err == nil {
			return content, domain.GeneratorLLM, nil
		}
		log.ForContext(ctx).WithError(err).Warn("Falha na geração por IA, usando template")
	}

	content, err := RenderMarkdown(data)
	if err != nil {
		return "", "", errors.Wrap(err, "renderizando template do relatório")
	}
	return content, domain.GeneratorTemplate, nil
}

func (s *Service) attachDownloadURL(ctx context.Context, report *domain.Report) {
	if report.StorageKey == nil || !s.storage.Enabled() {
		return
	}

	url, _, err := s.storage.PresignDownload(ctx, *report.StorageKey)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("report_id", report.ID).Warn("Falha ao assinar URL do relatório")
		return
	}
	report.DownloadURL = url
}

func (s *Service) Get(ctx context.Context, tenantID, id string) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	s.attachDownloadURL(ctx, report)
	return report, nil
}

func (s *Service) List(ctx context.Context, tenantID string) ([]*domain.Report, error) {
	return s.reportRepo.List(ctx, tenantID)
}

// Delete remove o registro e, quando houver, o arquivo exportado
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	report, err := s.reportRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if err := s.reportRepo.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	if report.StorageKey != nil && s.storage.Enabled() {
		if err := s.storage.Delete(ctx, *report.StorageKey); err != nil {
			log.ForContext(ctx).WithError(err).WithField("report_id", id).Warn("Falha ao remover arquivo do relatório")
		}
	}
	return nil
}
