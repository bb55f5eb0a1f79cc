package mentoring

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

const defaultProcessoStatus = "ativo"

type Mentoring interface {
	CreateProcesso(ctx context.Context, tenantID string, req *domain.CreateProcessoRequest) (*domain.MentoriaProcesso, error)
	UpdateProcesso(ctx context.Context, tenantID, id string, req *domain.UpdateProcessoRequest) (*domain.MentoriaProcesso, error)
	ListProcessos(ctx context.Context, tenantID, status string) ([]*domain.MentoriaProcesso, error)
	Board(ctx context.Context, tenantID, id string) (*domain.MentoriaProcesso, error)
	DeleteProcesso(ctx context.Context, tenantID, id string) error

	CreateEtapa(ctx context.Context, tenantID string, req *domain.CreateEtapaRequest) (*domain.MentoriaEtapa, error)
	UpdateEtapa(ctx context.Context, tenantID, id string, req *domain.UpdateEtapaRequest) (*domain.MentoriaEtapa, error)
	DeleteEtapa(ctx context.Context, tenantID, id string) error

	CreateTarefa(ctx context.Context, tenantID string, req *domain.CreateTarefaRequest) (*domain.MentoriaTarefa, error)
	UpdateTarefa(ctx context.Context, tenantID, id string, req *domain.UpdateTarefaRequest) (*domain.MentoriaTarefa, error)
	MoveTarefa(ctx context.Context, tenantID, id string, req *domain.MoveTarefaRequest) (*domain.MentoriaTarefa, error)
	DeleteTarefa(ctx context.Context, tenantID, id string) error
}

type Service struct {
	mentoriaRepo repository.MentoriaRepository
	transactor   postgres.Transactor
	now          func() time.Time
}

func NewService(mentoriaRepo repository.MentoriaRepository, transactor postgres.Transactor) Mentoring {
	return &Service{
		mentoriaRepo: mentoriaRepo,
		transactor:   transactor,
		now:          time.Now,
	}
}

func (s *Service) CreateProcesso(ctx context.Context, tenantID string, req *domain.CreateProcessoRequest) (*domain.MentoriaProcesso, error) {
	startedAt, err := domain.ParseTimestamp(req.StartedAt)
	if err != nil {
		return nil, err
	}

	now := s.now()
	processo := &domain.MentoriaProcesso{
		ID:             utils.NewID(),
		TenantID:       tenantID,
		MentoradoNome:  req.MentoradoNome,
		MentoradoEmail: req.MentoradoEmail,
		MentorID:       req.MentorID,
		Status:         defaultProcessoStatus,
		StartedAt:      startedAt,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.mentoriaRepo.CreateProcesso(ctx, processo); err != nil {
		return nil, errors.Wrap(err, "criando processo de mentoria")
	}
	return processo, nil
}

func (s *Service) UpdateProcesso(ctx context.Context, tenantID, id string, req *domain.UpdateProcessoRequest) (*domain.MentoriaProcesso, error) {
	processo, err := s.mentoriaRepo.GetProcesso(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.MentoradoNome != nil {
		processo.MentoradoNome = *req.MentoradoNome
	}
	if req.MentoradoEmail != nil {
		processo.MentoradoEmail = *req.MentoradoEmail
	}
	if req.MentorID != nil {
		processo.MentorID = req.MentorID
	}
	if req.Status != nil {
		processo.Status = *req.Status
	}
	if req.Notes != nil {
		processo.Notes = *req.Notes
	}

	processo.UpdatedAt = s.now()
	if err := s.mentoriaRepo.UpdateProcesso(ctx, processo); err != nil {
		return nil, errors.Wrap(err, "atualizando processo de mentoria")
	}
	return processo, nil
}

func (s *Service) ListProcessos(ctx context.Context, tenantID, status string) ([]*domain.MentoriaProcesso, error) {
	processos, err := s.mentoriaRepo.ListProcessos(ctx, tenantID, status)
	if err != nil {
		return nil, err
	}

	for _, processo := range processos {
		if err := s.loadBoard(ctx, processo); err != nil {
			return nil, err
		}
		// a listagem devolve só o progresso
		processo.Etapas = nil
	}
	return processos, nil
}

// Board devolve o processo com etapas e tarefas ordenadas e o progresso calculado
func (s *Service) Board(ctx context.Context, tenantID, id string) (*domain.MentoriaProcesso, error) {
	processo, err := s.mentoriaRepo.GetProcesso(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := s.loadBoard(ctx, processo); err != nil {
		return nil, err
	}
	return processo, nil
}

func (s *Service) loadBoard(ctx context.Context, processo *domain.MentoriaProcesso) error {
	etapas, err := s.mentoriaRepo.ListEtapas(ctx, processo.TenantID, processo.ID)
	if err != nil {
		return errors.Wrap(err, "listando etapas")
	}

	tarefas, err := s.mentoriaRepo.ListTarefasByProcesso(ctx, processo.TenantID, processo.ID)
	if err != nil {
		return errors.Wrap(err, "listando tarefas")
	}

	byEtapa := make(map[string][]*domain.MentoriaTarefa, len(etapas))
	for _, tarefa := range tarefas {
		byEtapa[tarefa.EtapaID] = append(byEtapa[tarefa.EtapaID], tarefa)
	}
	for _, etapa := range etapas {
		etapa.Tarefas = byEtapa[etapa.ID]
	}

	processo.Etapas = etapas
	processo.ComputeProgress()
	return nil
}

func (s *Service) DeleteProcesso(ctx context.Context, tenantID, id string) error {
	return s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		mentorias := s.mentoriaRepo.WithTx(tx)

		if err := mentorias.DeleteTarefasByProcesso(ctx, tenantID, id); err != nil {
			return errors.Wrap(err, "removendo tarefas")
		}
		if err := mentorias.DeleteEtapasByProcesso(ctx, tenantID, id); err != nil {
			return errors.Wrap(err, "removendo etapas")
		}
		return mentorias.DeleteProcesso(ctx, tenantID, id)
	})
}

func (s *Service) CreateEtapa(ctx context.Context, tenantID string, req *domain.CreateEtapaRequest) (*domain.MentoriaEtapa, error) {
	if _, err := s.mentoriaRepo.GetProcesso(ctx, tenantID, req.ProcessoID); err != nil {
		return nil, errors.Wrap(err, "processo da etapa")
	}

	now := s.now()
	etapa := &domain.MentoriaEtapa{
		ID:         utils.NewID(),
		TenantID:   tenantID,
		ProcessoID: req.ProcessoID,
		Name:       req.Name,
		Position:   req.Position,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.mentoriaRepo.CreateEtapa(ctx, etapa); err != nil {
		return nil, errors.Wrap(err, "criando etapa")
	}
	return etapa, nil
}

func (s *Service) UpdateEtapa(ctx context.Context, tenantID, id string, req *domain.UpdateEtapaRequest) (*domain.MentoriaEtapa, error) {
	etapa, err := s.mentoriaRepo.GetEtapa(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		etapa.Name = *req.Name
	}
	if req.Position != nil {
		etapa.Position = *req.Position
	}

	etapa.UpdatedAt = s.now()
	if err := s.mentoriaRepo.UpdateEtapa(ctx, etapa); err != nil {
		return nil, errors.Wrap(err, "atualizando etapa")
	}
	return etapa, nil
}

func (s *Service) DeleteEtapa(ctx context.Context, tenantID, id string) error {
	return s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		mentorias := s.mentoriaRepo.WithTx(tx)

		if err := mentorias.DeleteTarefasByEtapa(ctx, tenantID, id); err != nil {
			return errors.Wrap(err, "removendo tarefas")
		}
		return mentorias.DeleteEtapa(ctx, tenantID, id)
	})
}

// CreateTarefa adiciona a tarefa ao final da etapa
func (s *Service) CreateTarefa(ctx context.Context, tenantID string, req *domain.CreateTarefaRequest) (*domain.MentoriaTarefa, error) {
	dueDate, err := domain.ParseOptionalDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.mentoriaRepo.GetEtapa(ctx, tenantID, req.EtapaID); err != nil {
		return nil, errors.Wrap(err, "etapa da tarefa")
	}

	siblings, err := s.mentoriaRepo.ListTarefas(ctx, tenantID, req.EtapaID)
	if err != nil {
		return nil, errors.Wrap(err, "listando tarefas da etapa")
	}

	now := s.now()
	tarefa := &domain.MentoriaTarefa{
		ID:          utils.NewID(),
		TenantID:    tenantID,
		EtapaID:     req.EtapaID,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatusPending,
		Position:    len(siblings),
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.mentoriaRepo.CreateTarefa(ctx, tarefa); err != nil {
		return nil, errors.Wrap(err, "criando tarefa")
	}
	return tarefa, nil
}

func (s *Service) UpdateTarefa(ctx context.Context, tenantID, id string, req *domain.UpdateTarefaRequest) (*domain.MentoriaTarefa, error) {
	tarefa, err := s.mentoriaRepo.GetTarefa(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		tarefa.Title = *req.Title
	}
	if req.Description != nil {
		tarefa.Description = *req.Description
	}
	if req.DueDate != nil {
		if tarefa.DueDate, err = domain.ParseOptionalDate(req.DueDate); err != nil {
			return nil, err
		}
	}

	tarefa.UpdatedAt = s.now()
	if err := s.mentoriaRepo.UpdateTarefa(ctx, tarefa); err != nil {
		return nil, errors.Wrap(err, "atualizando tarefa")
	}
	return tarefa, nil
}

// MoveTarefa troca status, etapa e posição da tarefa e renumera as etapas afetadas
func (s *Service) MoveTarefa(ctx context.Context, tenantID, id string, req *domain.MoveTarefaRequest) (*domain.MentoriaTarefa, error) {
	status := domain.TaskStatus(req.Status)
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	var moved *domain.MentoriaTarefa
	err := s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		mentorias := s.mentoriaRepo.WithTx(tx)

		tarefa, err := mentorias.GetTarefa(ctx, tenantID, id)
		if err != nil {
			return err
		}

		source := tarefa.EtapaID
		target := source
		if req.EtapaID != "" && req.EtapaID != source {
			if _, err := mentorias.GetEtapa(ctx, tenantID, req.EtapaID); err != nil {
				return errors.Wrap(err, "etapa de destino")
			}
			target = req.EtapaID
		}

		now := s.now()
		tarefa.EtapaID = target
		tarefa.Status = status
		tarefa.UpdatedAt = now

		targetTarefas, err := mentorias.ListTarefas(ctx, tenantID, target)
		if err != nil {
			return errors.Wrap(err, "listando tarefas da etapa de destino")
		}
		ordered := insertAt(without(targetTarefas, tarefa.ID), tarefa, req.Position)
		if err := renumber(ctx, mentorias, ordered, tarefa.ID, now); err != nil {
			return err
		}

		if source != target {
			sourceTarefas, err := mentorias.ListTarefas(ctx, tenantID, source)
			if err != nil {
				return errors.Wrap(err, "listando tarefas da etapa de origem")
			}
			if err := renumber(ctx, mentorias, without(sourceTarefas, tarefa.ID), "", now); err != nil {
				return err
			}
		}

		moved = tarefa
		return nil
	})
	if err != nil {
		return nil, err
	}

	return moved, nil
}

func without(tarefas []*domain.MentoriaTarefa, id string) []*domain.MentoriaTarefa {
	result := make([]*domain.MentoriaTarefa, 0, len(tarefas))
	for _, tarefa := range tarefas {
		if tarefa.ID != id {
			result = append(result, tarefa)
		}
	}
	return result
}

func insertAt(tarefas []*domain.MentoriaTarefa, tarefa *domain.MentoriaTarefa, position int) []*domain.MentoriaTarefa {
	if position < 0 {
		position = 0
	}
	if position > len(tarefas) {
		position = len(tarefas)
	}

	result := make([]*domain.MentoriaTarefa, 0, len(tarefas)+1)
	result = append(result, tarefas[:position]...)
	result = append(result, tarefa)
	return append(result, tarefas[position:]...)
}

// renumber grava as posições sequenciais; só atualiza quem mudou, além da tarefa movida
func renumber(ctx context.Context, mentorias repository.MentoriaRepository, tarefas []*domain.MentoriaTarefa, movedID string, now time.Time) error {
	for i, tarefa := range tarefas {
		if tarefa.Position == i && tarefa.ID != movedID {
			continue
		}

		tarefa.Position = i
		tarefa.UpdatedAt = now
		if err := mentorias.UpdateTarefa(ctx, tarefa); err != nil {
			return errors.Wrap(err, "reordenando tarefas")
		}
	}
	return nil
}

func (s *Service) DeleteTarefa(ctx context.Context, tenantID, id string) error {
	return s.mentoriaRepo.DeleteTarefa(ctx, tenantID, id)
}
