package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const (
	processosTable = "mentoria_processos"
	etapasTable    = "mentoria_etapas"
	tarefasTable   = "mentoria_tarefas"
)

var (
	processoColumns = []string{
		"id", "tenant_id", "mentorado_nome", "COALESCE(mentorado_email, '')", "mentor_id", "status",
		"started_at", "COALESCE(notes, '')", "created_at", "updated_at",
	}
	etapaColumns  = []string{"e.id", "e.tenant_id", "e.processo_id", "e.name", "e.position", "e.created_at", "e.updated_at"}
	tarefaColumns = []string{
		"t.id", "t.tenant_id", "t.etapa_id", "t.title", "COALESCE(t.description, '')", "t.status", "t.position",
		"t.due_date", "t.created_at", "t.updated_at",
	}
)

type MentoriaRepository interface {
	CreateProcesso(ctx context.Context, processo *domain.MentoriaProcesso) error
	UpdateProcesso(ctx context.Context, processo *domain.MentoriaProcesso) error
	GetProcesso(ctx context.Context, tenantID, id string) (*domain.MentoriaProcesso, error)
	ListProcessos(ctx context.Context, tenantID, status string) ([]*domain.MentoriaProcesso, error)
	DeleteProcesso(ctx context.Context, tenantID, id string) error

	CreateEtapa(ctx context.Context, etapa *domain.MentoriaEtapa) error
	UpdateEtapa(ctx context.Context, etapa *domain.MentoriaEtapa) error
	GetEtapa(ctx context.Context, tenantID, id string) (*domain.MentoriaEtapa, error)
	ListEtapas(ctx context.Context, tenantID, processoID string) ([]*domain.MentoriaEtapa, error)
	DeleteEtapa(ctx context.Context, tenantID, id string) error
	DeleteEtapasByProcesso(ctx context.Context, tenantID, processoID string) error

	CreateTarefa(ctx context.Context, tarefa *domain.MentoriaTarefa) error
	UpdateTarefa(ctx context.Context, tarefa *domain.MentoriaTarefa) error
	GetTarefa(ctx context.Context, tenantID, id string) (*domain.MentoriaTarefa, error)
	ListTarefas(ctx context.Context, tenantID, etapaID string) ([]*domain.MentoriaTarefa, error)
	ListTarefasByProcesso(ctx context.Context, tenantID, processoID string) ([]*domain.MentoriaTarefa, error)
	DeleteTarefa(ctx context.Context, tenantID, id string) error
	DeleteTarefasByEtapa(ctx context.Context, tenantID, etapaID string) error
	DeleteTarefasByProcesso(ctx context.Context, tenantID, processoID string) error

	WithTx(tx *sql.Tx) MentoriaRepository
}

type mentoriaRepository struct {
	db postgres.Queryer
}

func NewMentoriaRepository(db postgres.Queryer) MentoriaRepository {
	return &mentoriaRepository{db: db}
}

func (r *mentoriaRepository) WithTx(tx *sql.Tx) MentoriaRepository {
	return &mentoriaRepository{db: tx}
}

func (r *mentoriaRepository) CreateProcesso(ctx context.Context, processo *domain.MentoriaProcesso) error {
	return execute(ctx, r.db, psql.
		Insert(processosTable).
		Columns("id", "tenant_id", "mentorado_nome", "mentorado_email", "mentor_id", "status", "started_at", "notes",
			"created_at", "updated_at").
		Values(processo.ID, processo.TenantID, processo.MentoradoNome, nullString(processo.MentoradoEmail),
			processo.MentorID, processo.Status, processo.StartedAt, nullString(processo.Notes),
			processo.CreatedAt, processo.UpdatedAt), false)
}

func (r *mentoriaRepository) UpdateProcesso(ctx context.Context, processo *domain.MentoriaProcesso) error {
	return execute(ctx, r.db, psql.
		Update(processosTable).
		Set("mentorado_nome", processo.MentoradoNome).
		Set("mentorado_email", nullString(processo.MentoradoEmail)).
		Set("mentor_id", processo.MentorID).
		Set("status", processo.Status).
		Set("notes", nullString(processo.Notes)).
		Set("updated_at", processo.UpdatedAt).
		Where(squirrel.Eq{"id": processo.ID, "tenant_id": processo.TenantID}), true)
}

func (r *mentoriaRepository) GetProcesso(ctx context.Context, tenantID, id string) (*domain.MentoriaProcesso, error) {
	return selectOne(ctx, r.db, psql.
		Select(processoColumns...).
		From(processosTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), scanProcesso)
}

func (r *mentoriaRepository) ListProcessos(ctx context.Context, tenantID, status string) ([]*domain.MentoriaProcesso, error) {
	builder := psql.
		Select(processoColumns...).
		From(processosTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("started_at DESC")

	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	return selectAll(ctx, r.db, builder, scanProcesso)
}

func (r *mentoriaRepository) DeleteProcesso(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(processosTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func (r *mentoriaRepository) CreateEtapa(ctx context.Context, etapa *domain.MentoriaEtapa) error {
	return execute(ctx, r.db, psql.
		Insert(etapasTable).
		Columns("id", "tenant_id", "processo_id", "name", "position", "created_at", "updated_at").
		Values(etapa.ID, etapa.TenantID, etapa.ProcessoID, etapa.Name, etapa.Position, etapa.CreatedAt,
			etapa.UpdatedAt), false)
}

func (r *mentoriaRepository) UpdateEtapa(ctx context.Context, etapa *domain.MentoriaEtapa) error {
	return execute(ctx, r.db, psql.
		Update(etapasTable).
		Set("name", etapa.Name).
		Set("position", etapa.Position).
		Set("updated_at", etapa.UpdatedAt).
		Where(squirrel.Eq{"id": etapa.ID, "tenant_id": etapa.TenantID}), true)
}

func (r *mentoriaRepository) GetEtapa(ctx context.Context, tenantID, id string) (*domain.MentoriaEtapa, error) {
	return selectOne(ctx, r.db, psql.
		Select(etapaColumns...).
		From(etapasTable+" e").
		Where(squirrel.Eq{"e.id": id, "e.tenant_id": tenantID}), scanEtapa)
}

func (r *mentoriaRepository) ListEtapas(ctx context.Context, tenantID, processoID string) ([]*domain.MentoriaEtapa, error) {
	return selectAll(ctx, r.db, psql.
		Select(etapaColumns...).
		From(etapasTable+" e").
		Where(squirrel.Eq{"e.processo_id": processoID, "e.tenant_id": tenantID}).
		OrderBy("e.position ASC", "e.created_at ASC"), scanEtapa)
}

func (r *mentoriaRepository) DeleteEtapa(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(etapasTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func (r *mentoriaRepository) DeleteEtapasByProcesso(ctx context.Context, tenantID, processoID string) error {
	return execute(ctx, r.db, psql.
		Delete(etapasTable).
		Where(squirrel.Eq{"processo_id": processoID, "tenant_id": tenantID}), false)
}

func (r *mentoriaRepository) CreateTarefa(ctx context.Context, tarefa *domain.MentoriaTarefa) error {
	return execute(ctx, r.db, psql.
		Insert(tarefasTable).
		Columns("id", "tenant_id", "etapa_id", "title", "description", "status", "position", "due_date",
			"created_at", "updated_at").
		Values(tarefa.ID, tarefa.TenantID, tarefa.EtapaID, tarefa.Title, nullString(tarefa.Description),
			tarefa.Status, tarefa.Position, tarefa.DueDate, tarefa.CreatedAt, tarefa.UpdatedAt), false)
}

func (r *mentoriaRepository) UpdateTarefa(ctx context.Context, tarefa *domain.MentoriaTarefa) error {
	return execute(ctx, r.db, psql.
		Update(tarefasTable).
		Set("etapa_id", tarefa.EtapaID).
		Set("title", tarefa.Title).
		Set("description", nullString(tarefa.Description)).
		Set("status", tarefa.Status).
		Set("position", tarefa.Position).
		Set("due_date", tarefa.DueDate).
		Set("updated_at", tarefa.UpdatedAt).
		Where(squirrel.Eq{"id": tarefa.ID, "tenant_id": tarefa.TenantID}), true)
}

func (r *mentoriaRepository) GetTarefa(ctx context.Context, tenantID, id string) (*domain.MentoriaTarefa, error) {
	return selectOne(ctx, r.db, psql.
		Select(tarefaColumns...).
		From(tarefasTable+" t").
		Where(squirrel.Eq{"t.id": id, "t.tenant_id": tenantID}), scanTarefa)
}

func (r *mentoriaRepository) ListTarefas(ctx context.Context, tenantID, etapaID string) ([]*domain.MentoriaTarefa, error) {
	return selectAll(ctx, r.db, psql.
		Select(tarefaColumns...).
		From(tarefasTable+" t").
		Where(squirrel.Eq{"t.etapa_id": etapaID, "t.tenant_id": tenantID}).
		OrderBy("t.position ASC", "t.created_at ASC"), scanTarefa)
}

func (r *mentoriaRepository) ListTarefasByProcesso(ctx context.Context, tenantID, processoID string) ([]*domain.MentoriaTarefa, error) {
	return selectAll(ctx, r.db, psql.
		Select(tarefaColumns...).
		From(tarefasTable+" t").
		Join(etapasTable+" e ON e.id = t.etapa_id").
		Where(squirrel.Eq{"e.processo_id": processoID, "t.tenant_id": tenantID}).
		OrderBy("t.position ASC", "t.created_at ASC"), scanTarefa)
}

func (r *mentoriaRepository) DeleteTarefa(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(tarefasTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func (r *mentoriaRepository) DeleteTarefasByEtapa(ctx context.Context, tenantID, etapaID string) error {
	return execute(ctx, r.db, psql.
		Delete(tarefasTable).
		Where(squirrel.Eq{"etapa_id": etapaID, "tenant_id": tenantID}), false)
}

func (r *mentoriaRepository) DeleteTarefasByProcesso(ctx context.Context, tenantID, processoID string) error {
	return execute(ctx, r.db, psql.
		Delete(tarefasTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where("etapa_id IN (SELECT id FROM mentoria_etapas WHERE processo_id = ?)", processoID), false)
}

func scanProcesso(row rowScanner) (*domain.MentoriaProcesso, error) {
	var processo domain.MentoriaProcesso
	err := row.Scan(
		&processo.ID,
		&processo.TenantID,
		&processo.MentoradoNome,
		&processo.MentoradoEmail,
		&processo.MentorID,
		&processo.Status,
		&processo.StartedAt,
		&processo.Notes,
		&processo.CreatedAt,
		&processo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &processo, nil
}

func scanEtapa(row rowScanner) (*domain.MentoriaEtapa, error) {
	var etapa domain.MentoriaEtapa
	err := row.Scan(
		&etapa.ID,
		&etapa.TenantID,
		&etapa.ProcessoID,
		&etapa.Name,
		&etapa.Position,
		&etapa.CreatedAt,
		&etapa.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &etapa, nil
}

func scanTarefa(row rowScanner) (*domain.MentoriaTarefa, error) {
	var tarefa domain.MentoriaTarefa
	err := row.Scan(
		&tarefa.ID,
		&tarefa.TenantID,
		&tarefa.EtapaID,
		&tarefa.Title,
		&tarefa.Description,
		&tarefa.Status,
		&tarefa.Position,
		&tarefa.DueDate,
		&tarefa.CreatedAt,
		&tarefa.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tarefa, nil
}
