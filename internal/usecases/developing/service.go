package developing

import (
	"context"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/repository"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/pkg/crypto"
	"github.com/boraedu/bora-hub-api/pkg/utils"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const defaultPDIStatus = "em_andamento"

type Developing interface {
	Create(ctx context.Context, tenantID string, req *domain.CreatePDIRequest) (*domain.PDI, error)
	Update(ctx context.Context, tenantID, id string, req *domain.UpdatePDIRequest) (*domain.PDI, error)
	Get(ctx context.Context, tenantID, id string) (*domain.PDI, error)
	List(ctx context.Context, tenantID string, collaboratorID *int, status string) ([]*domain.PDI, error)
	Delete(ctx context.Context, tenantID, id string) error

	AddAula(ctx context.Context, tenantID, pdiID string, req *domain.CreateAulaRequest) (*domain.PDIAula, error)
	CompleteAula(ctx context.Context, tenantID, id string, req *domain.CompleteAulaRequest) (*domain.PDIAula, error)
	DeleteAula(ctx context.Context, tenantID, id string) error

	AddAcesso(ctx context.Context, tenantID, pdiID string, req *domain.CreateAcessoRequest) (*domain.PDIAcesso, error)
	RevealAcesso(ctx context.Context, tenantID, id string) (*domain.PDIAcesso, error)
	DeleteAcesso(ctx context.Context, tenantID, id string) error
}

type Service struct {
	pdiRepo repository.PDIRepository
	cipher  crypto.Cipher
	now     func() time.Time
}

func NewService(pdiRepo repository.PDIRepository, cipher crypto.Cipher) Developing {
	return &Service{
		pdiRepo: pdiRepo,
		cipher:  cipher,
		now:     time.Now,
	}
}

func (s *Service) Create(ctx context.Context, tenantID string, req *domain.CreatePDIRequest) (*domain.PDI, error) {
	period, err := domain.ParsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, errors.Wrap(err, "período do PDI")
	}

	now := s.now()
	pdi := &domain.PDI{
		ID:             utils.NewID(),
		TenantID:       tenantID,
		CollaboratorID: req.CollaboratorID,
		Title:          req.Title,
		Objective:      req.Objective,
		StartDate:      period.Start,
		EndDate:        period.End,
		Status:         defaultPDIStatus,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.pdiRepo.Create(ctx, pdi); err != nil {
		return nil, errors.Wrap(err, "criando PDI")
	}
	return pdi, nil
}

func (s *Service) Update(ctx context.Context, tenantID, id string, req *domain.UpdatePDIRequest) (*domain.PDI, error) {
	pdi, err := s.pdiRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		pdi.Title = *req.Title
	}
	if req.Objective != nil {
		pdi.Objective = *req.Objective
	}
	if req.Status != nil {
		pdi.Status = *req.Status
	}

	start, end := pdi.StartDate.Format(domain.DateLayout), pdi.EndDate.Format(domain.DateLayout)
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	period, err := domain.ParsePeriod(start, end)
	if err != nil {
		return nil, errors.Wrap(err, "período do PDI")
	}
	pdi.StartDate, pdi.EndDate = period.Start, period.End

	pdi.UpdatedAt = s.now()
	if err := s.pdiRepo.Update(ctx, pdi); err != nil {
		return nil, errors.Wrap(err, "atualizando PDI")
	}
	return pdi, nil
}

// Get devolve o PDI com aulas, acessos (sem senha) e o progresso
func (s *Service) Get(ctx context.Context, tenantID, id string) (*domain.PDI, error) {
	pdi, err := s.pdiRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if pdi.Aulas, err = s.pdiRepo.ListAulas(ctx, tenantID, id); err != nil {
		return nil, errors.Wrap(err, "listando aulas")
	}
	if pdi.Acessos, err = s.pdiRepo.ListAcessos(ctx, tenantID, id); err != nil {
		return nil, errors.Wrap(err, "listando acessos")
	}

	pdi.ComputeProgress()
	return pdi, nil
}

func (s *Service) List(ctx context.Context, tenantID string, collaboratorID *int, status string) ([]*domain.PDI, error) {
	pdis, err := s.pdiRepo.List(ctx, tenantID, collaboratorID, status)
	if err != nil {
		return nil, err
	}

	for _, pdi := range pdis {
		aulas, err := s.pdiRepo.ListAulas(ctx, tenantID, pdi.ID)
		if err != nil {
			return nil, errors.Wrap(err, "listando aulas")
		}
		pdi.Aulas = aulas
		pdi.ComputeProgress()
		pdi.Aulas = nil
	}
	return pdis, nil
}

// Delete remove o PDI; aulas e acessos saem junto pela FK em cascata
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	return s.pdiRepo.Delete(ctx, tenantID, id)
}

func (s *Service) AddAula(ctx context.Context, tenantID, pdiID string, req *domain.CreateAulaRequest) (*domain.PDIAula, error) {
	if _, err := s.pdiRepo.GetByID(ctx, tenantID, pdiID); err != nil {
		return nil, errors.Wrap(err, "PDI da aula")
	}

	now := s.now()
	aula := &domain.PDIAula{
		ID:        utils.NewID(),
		TenantID:  tenantID,
		PDIID:     pdiID,
		Title:     req.Title,
		URL:       req.URL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.pdiRepo.CreateAula(ctx, aula); err != nil {
		return nil, errors.Wrap(err, "criando aula")
	}
	return aula, nil
}

func (s *Service) CompleteAula(ctx context.Context, tenantID, id string, req *domain.CompleteAulaRequest) (*domain.PDIAula, error) {
	aula, err := s.pdiRepo.GetAula(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	aula.SetCompleted(req.Completed, now)
	aula.UpdatedAt = now

	if err := s.pdiRepo.UpdateAula(ctx, aula); err != nil {
		return nil, errors.Wrap(err, "atualizando aula")
	}
	return aula, nil
}

func (s *Service) DeleteAula(ctx context.Context, tenantID, id string) error {
	return s.pdiRepo.DeleteAula(ctx, tenantID, id)
}

// AddAcesso cifra a senha antes de gravar; a resposta não traz a senha
func (s *Service) AddAcesso(ctx context.Context, tenantID, pdiID string, req *domain.CreateAcessoRequest) (*domain.PDIAcesso, error) {
	if _, err := s.pdiRepo.GetByID(ctx, tenantID, pdiID); err != nil {
		return nil, errors.Wrap(err, "PDI do acesso")
	}

	encrypted, err := s.cipher.Encrypt(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "cifrando senha do acesso")
	}

	now := s.now()
	acesso := &domain.PDIAcesso{
		ID:                utils.NewID(),
		TenantID:          tenantID,
		PDIID:             pdiID,
		Platform:          req.Platform,
		URL:               req.URL,
		Login:             req.Login,
		PasswordEncrypted: encrypted,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.pdiRepo.CreateAcesso(ctx, acesso); err != nil {
		return nil, errors.Wrap(err, "criando acesso")
	}
	return acesso, nil
}

func (s *Service) RevealAcesso(ctx context.Context, tenantID, id string) (*domain.PDIAcesso, error) {
	acesso, err := s.pdiRepo.GetAcesso(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if acesso.Password, err = s.cipher.Decrypt(acesso.PasswordEncrypted); err != nil {
		return nil, errors.Wrap(err, "decifrando senha do acesso")
	}
	return acesso, nil
}

func (s *Service) DeleteAcesso(ctx context.Context, tenantID, id string) error {
	return s.pdiRepo.DeleteAcesso(ctx, tenantID, id)
}
