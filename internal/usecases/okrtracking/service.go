package okrtracking

import (
	"context"
	"database/sql"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/infrastructure/repository"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/pkg/utils"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const defaultCycleStatus = "planejado"

type OKRTracker interface {
	CreateCycle(ctx context.Context, tenantID string, req *domain.CreateCycleRequest) (*domain.OKRCycle, error)
	UpdateCycle(ctx context.Context, tenantID, id string, req *domain.UpdateCycleRequest) (*domain.OKRCycle, error)
	ListCycles(ctx context.Context, tenantID string, period domain.Period) ([]*domain.OKRCycle, error)
	CycleTree(ctx context.Context, tenantID, id string) (*domain.OKRCycle, error)
	DeleteCycle(ctx context.Context, tenantID, id string) error

	CreateObjective(ctx context.Context, tenantID string, req *domain.CreateObjectiveRequest) (*domain.Objective, error)
	UpdateObjective(ctx context.Context, tenantID, id string, req *domain.UpdateObjectiveRequest) (*domain.Objective, error)
	DeleteObjective(ctx context.Context, tenantID, id string) error

	CreateKeyResult(ctx context.Context, tenantID string, req *domain.CreateKeyResultRequest) (*domain.KeyResult, error)
	UpdateKeyResult(ctx context.Context, tenantID, id string, req *domain.UpdateKeyResultRequest) (*domain.KeyResult, error)
	CheckIn(ctx context.Context, tenantID, id string, req *domain.CheckInRequest) (*domain.KeyResult, error)
	DeleteKeyResult(ctx context.Context, tenantID, id string) error
}

type Service struct {
	okrRepo    repository.OKRRepository
	transactor postgres.Transactor
	now        func() time.Time
}

func NewService(okrRepo repository.OKRRepository, transactor postgres.Transactor) OKRTracker {
	return &Service{
		okrRepo:    okrRepo,
		transactor: transactor,
		now:        time.Now,
	}
}

func parseCycleDates(start, end string) (time.Time, time.Time, error) {
	period, err := domain.ParsePeriod(start, end)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(err, "datas do ciclo")
	}
	return period.Start, period.End, nil
}

func (s *Service) CreateCycle(ctx context.Context, tenantID string, req *domain.CreateCycleRequest) (*domain.OKRCycle, error) {
	start, end, err := parseCycleDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	cycle := &domain.OKRCycle{
		ID:        utils.NewID(),
		TenantID:  tenantID,
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		Status:    req.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if cycle.Status == "" {
		cycle.Status = defaultCycleStatus
	}

	if err := s.okrRepo.CreateCycle(ctx, cycle); err != nil {
		return nil, errors.Wrap(err, "criando ciclo")
	}
	return cycle, nil
}

func (s *Service) UpdateCycle(ctx context.Context, tenantID, id string, req *domain.UpdateCycleRequest) (*domain.OKRCycle, error) {
	cycle, err := s.okrRepo.GetCycle(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cycle.Name = *req.Name
	}
	if req.Status != nil {
		cycle.Status = *req.Status
	}

	start, end := cycle.StartDate.Format(domain.DateLayout), cycle.EndDate.Format(domain.DateLayout)
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if cycle.StartDate, cycle.EndDate, err = parseCycleDates(start, end); err != nil {
		return nil, err
	}

	cycle.UpdatedAt = s.now()
	if err := s.okrRepo.UpdateCycle(ctx, cycle); err != nil {
		return nil, errors.Wrap(err, "atualizando ciclo")
	}
	return cycle, nil
}

// ListCycles devolve os ciclos que interceptam o período, já com o progresso calculado
func (s *Service) ListCycles(ctx context.Context, tenantID string, period domain.Period) ([]*domain.OKRCycle, error) {
	cycles, err := s.okrRepo.ListCycles(ctx, tenantID, period)
	if err != nil {
		return nil, err
	}

	for _, cycle := range cycles {
		if err := s.loadTree(ctx, cycle); err != nil {
			return nil, err
		}
	}
	return cycles, nil
}

// CycleTree monta ciclo, objetivos e key results com o progresso calculado na leitura
func (s *Service) CycleTree(ctx context.Context, tenantID, id string) (*domain.OKRCycle, error) {
	cycle, err := s.okrRepo.GetCycle(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := s.loadTree(ctx, cycle); err != nil {
		return nil, err
	}
	return cycle, nil
}

func (s *Service) loadTree(ctx context.Context, cycle *domain.OKRCycle) error {
	objectives, err := s.okrRepo.ListObjectives(ctx, cycle.TenantID, cycle.ID)
	if err != nil {
		return errors.Wrap(err, "listando objetivos")
	}

	keyResults, err := s.okrRepo.ListKeyResultsByCycle(ctx, cycle.TenantID, cycle.ID)
	if err != nil {
		return errors.Wrap(err, "listando key results")
	}

	byObjective := make(map[string][]*domain.KeyResult, len(objectives))
	for _, kr := range keyResults {
		byObjective[kr.ObjectiveID] = append(byObjective[kr.ObjectiveID], kr)
	}
	for _, objective := range objectives {
		objective.KeyResults = byObjective[objective.ID]
	}

	cycle.Objectives = objectives
	cycle.ComputeProgress()
	return nil
}

// DeleteCycle remove key results, objetivos e o ciclo na mesma transação
func (s *Service) DeleteCycle(ctx context.Context, tenantID, id string) error {
	return s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		okrs := s.okrRepo.WithTx(tx)

		if err := okrs.DeleteKeyResultsByCycle(ctx, tenantID, id); err != nil {
			return errors.Wrap(err, "removendo key results")
		}
		if err := okrs.DeleteObjectivesByCycle(ctx, tenantID, id); err != nil {
			return errors.Wrap(err, "removendo objetivos")
		}
		return okrs.DeleteCycle(ctx, tenantID, id)
	})
}

func (s *Service) CreateObjective(ctx context.Context, tenantID string, req *domain.CreateObjectiveRequest) (*domain.Objective, error) {
	if _, err := s.okrRepo.GetCycle(ctx, tenantID, req.CycleID); err != nil {
		return nil, errors.Wrap(err, "ciclo do objetivo")
	}

	now := s.now()
	objective := &domain.Objective{
		ID:          utils.NewID(),
		TenantID:    tenantID,
		CycleID:     req.CycleID,
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.okrRepo.CreateObjective(ctx, objective); err != nil {
		return nil, errors.Wrap(err, "criando objetivo")
	}
	return objective, nil
}

func (s *Service) UpdateObjective(ctx context.Context, tenantID, id string, req *domain.UpdateObjectiveRequest) (*domain.Objective, error) {
	objective, err := s.okrRepo.GetObjective(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		objective.Title = *req.Title
	}
	if req.Description != nil {
		objective.Description = *req.Description
	}
	if req.OwnerID != nil {
		objective.OwnerID = req.OwnerID
	}

	objective.UpdatedAt = s.now()
	if err := s.okrRepo.UpdateObjective(ctx, objective); err != nil {
		return nil, errors.Wrap(err, "atualizando objetivo")
	}
	return objective, nil
}

func (s *Service) DeleteObjective(ctx context.Context, tenantID, id string) error {
	return s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		okrs := s.okrRepo.WithTx(tx)

		if err := okrs.DeleteKeyResultsByObjective(ctx, tenantID, id); err != nil {
			return errors.Wrap(err, "removendo key results")
		}
		return okrs.DeleteObjective(ctx, tenantID, id)
	})
}

func (s *Service) CreateKeyResult(ctx context.Context, tenantID string, req *domain.CreateKeyResultRequest) (*domain.KeyResult, error) {
	if _, err := s.okrRepo.GetObjective(ctx, tenantID, req.ObjectiveID); err != nil {
		return nil, errors.Wrap(err, "objetivo do key result")
	}

	now := s.now()
	kr := &domain.KeyResult{
		ID:           utils.NewID(),
		TenantID:     tenantID,
		ObjectiveID:  req.ObjectiveID,
		Title:        req.Title,
		Unit:         req.Unit,
		StartValue:   req.StartValue,
		CurrentValue: req.CurrentValue,
		TargetValue:  req.TargetValue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.okrRepo.CreateKeyResult(ctx, kr); err != nil {
		return nil, errors.Wrap(err, "criando key result")
	}

	kr.Progress = domain.KeyResultProgress(kr.CurrentValue, kr.TargetValue)
	return kr, nil
}

func (s *Service) UpdateKeyResult(ctx context.Context, tenantID, id string, req *domain.UpdateKeyResultRequest) (*domain.KeyResult, error) {
	kr, err := s.okrRepo.GetKeyResult(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		kr.Title = *req.Title
	}
	if req.Unit != nil {
		kr.Unit = *req.Unit
	}
	if req.StartValue != nil {
		kr.StartValue = *req.StartValue
	}
	if req.TargetValue != nil {
		kr.TargetValue = *req.TargetValue
	}

	return s.saveKeyResult(ctx, kr)
}

// CheckIn registra o valor atual do key result
func (s *Service) CheckIn(ctx context.Context, tenantID, id string, req *domain.CheckInRequest) (*domain.KeyResult, error) {
	kr, err := s.okrRepo.GetKeyResult(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	kr.CurrentValue = req.CurrentValue
	return s.saveKeyResult(ctx, kr)
}

func (s *Service) saveKeyResult(ctx context.Context, kr *domain.KeyResult) (*domain.KeyResult, error) {
	kr.UpdatedAt = s.now()
	if err := s.okrRepo.UpdateKeyResult(ctx, kr); err != nil {
		return nil, errors.Wrap(err, "atualizando key result")
	}

	kr.Progress = domain.KeyResultProgress(kr.CurrentValue, kr.TargetValue)
	return kr, nil
}

func (s *Service) DeleteKeyResult(ctx context.Context, tenantID, id string) error {
	return s.okrRepo.DeleteKeyResult(ctx, tenantID, id)
}
