package domain

import "time"

type PDI struct {
	ID             string       `json:"id"`
	TenantID       string       `json:"tenant_id"`
	CollaboratorID int          `json:"collaborator_id"`
	Title          string       `json:"title"`
	Objective      string       `json:"objective"`
	StartDate      time.Time    `json:"start_date"`
	EndDate        time.Time    `json:"end_date"`
	Status         string       `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	Progress       float64      `json:"progress"`
	Aulas          []*PDIAula   `json:"aulas,omitempty"`
	Acessos        []*PDIAcesso `json:"acessos,omitempty"`
}

// ComputeProgress calcula a fração de aulas concluídas
func (p *PDI) ComputeProgress() {
	var done int
	for _, aula := range p.Aulas {
		if aula.Completed {
			done++
		}
	}
	p.Progress = completion(done, len(p.Aulas))
}

type PDIAula struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenant_id"`
	PDIID       string     `json:"pdi_id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SetCompleted marca ou desmarca a aula como concluída
func (a *PDIAula) SetCompleted(completed bool, now time.Time) {
	a.Completed = completed
	if completed {
		if a.CompletedAt == nil {
			a.CompletedAt = &now
		}
		return
	}
	a.CompletedAt = nil
}

// PDIAcesso guarda credenciais de plataformas de estudo; a senha fica cifrada no banco
type PDIAcesso struct {
	ID                string    `json:"id"`
	TenantID          string    `json:"tenant_id"`
	PDIID             string    `json:"pdi_id"`
	Platform          string    `json:"platform"`
	URL               string    `json:"url"`
	Login             string    `json:"login"`
	PasswordEncrypted string    `json:"-"`
	Password          string    `json:"password,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CreatePDIRequest struct {
	CollaboratorID int    `json:"collaborator_id" validate:"required,min=1"`
	Title          string `json:"title" validate:"required,max=200"`
	Objective      string `json:"objective"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type UpdatePDIRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=200"`
	Objective *string `json:"objective"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status    *string `json:"status" validate:"omitempty,oneof=em_andamento concluido cancelado"`
}

type CreateAulaRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	URL   string `json:"url" validate:"omitempty,url"`
}

type CompleteAulaRequest struct {
	Completed bool `json:"completed"`
}

type CreateAcessoRequest struct {
	Platform string `json:"platform" validate:"required,max=120"`
	URL      string `json:"url" validate:"omitempty,url"`
	Login    string `json:"login" validate:"required,max=200"`
	Password string `json:"password" validate:"required"`
}
