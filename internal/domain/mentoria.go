package domain

import "time"

type MentoriaProcesso struct {
	ID             string           `json:"id"`
	TenantID       string           `json:"tenant_id"`
	MentoradoNome  string           `json:"mentorado_nome"`
	MentoradoEmail string           `json:"mentorado_email"`
	MentorID       *int             `json:"mentor_id"`
	Status         string           `json:"status"`
	StartedAt      time.Time        `json:"started_at"`
	Notes          string           `json:"notes"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	Progress       float64          `json:"progress"`
	Etapas         []*MentoriaEtapa `json:"etapas,omitempty"`
}

type MentoriaEtapa struct {
	ID         string            `json:"id"`
	TenantID   string            `json:"tenant_id"`
	ProcessoID string            `json:"processo_id"`
	Name       string            `json:"name"`
	Position   int               `json:"position"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Progress   float64           `json:"progress"`
	Tarefas    []*MentoriaTarefa `json:"tarefas,omitempty"`
}

type MentoriaTarefa struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenant_id"`
	EtapaID     string     `json:"etapa_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Position    int        `json:"position"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func completion(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

// ComputeProgress calcula a fração de tarefas concluídas por etapa e no processo inteiro
func (p *MentoriaProcesso) ComputeProgress() {
	var done, total int
	for _, etapa := range p.Etapas {
		var etapaDone int
		for _, tarefa := range etapa.Tarefas {
			if tarefa.Status == TaskStatusDone {
				etapaDone++
			}
		}
		etapa.Progress = completion(etapaDone, len(etapa.Tarefas))
		done += etapaDone
		total += len(etapa.Tarefas)
	}
	p.Progress = completion(done, total)
}

type CreateProcessoRequest struct {
	MentoradoNome  string `json:"mentorado_nome" validate:"required,max=150"`
	MentoradoEmail string `json:"mentorado_email" validate:"omitempty,email"`
	MentorID       *int   `json:"mentor_id"`
	StartedAt      string `json:"started_at" validate:"required,datetime=2006-01-02"`
	Notes          string `json:"notes"`
}

type UpdateProcessoRequest struct {
	MentoradoNome  *string `json:"mentorado_nome" validate:"omitempty,max=150"`
	MentoradoEmail *string `json:"mentorado_email" validate:"omitempty,email"`
	MentorID       *int    `json:"mentor_id"`
	Status         *string `json:"status" validate:"omitempty,oneof=ativo pausado concluido cancelado"`
	Notes          *string `json:"notes"`
}

type CreateEtapaRequest struct {
	ProcessoID string `json:"processo_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,max=150"`
	Position   int    `json:"position" validate:"min=0"`
}

type UpdateEtapaRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=150"`
	Position *int    `json:"position" validate:"omitempty,min=0"`
}

type CreateTarefaRequest struct {
	EtapaID     string  `json:"etapa_id" validate:"required,uuid"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateTarefaRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// MoveTarefaRequest representa o arraste de um card no kanban
type MoveTarefaRequest struct {
	EtapaID  string `json:"etapa_id" validate:"omitempty,uuid"`
	Status   string `json:"status" validate:"required,oneof=pendente em_andamento concluida"`
	Position int    `json:"position" validate:"min=0"`
}
