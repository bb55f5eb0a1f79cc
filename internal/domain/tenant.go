package domain

import "time"

// Tenant é a organização dona dos dados; toda linha do banco referencia um tenant
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateTenantRequest struct {
	Name string `json:"name" validate:"required,max=150"`
	Slug string `json:"slug" validate:"required,max=80"`
}

// RegisterTenantRequest cria a organização junto com o primeiro administrador
type RegisterTenantRequest struct {
	Name          string `json:"name" validate:"required,max=150"`
	Slug          string `json:"slug" validate:"required,max=80"`
	AdminName     string `json:"admin_name" validate:"required,max=100"`
	AdminLastname string `json:"admin_lastname" validate:"required,max=100"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=8"`
}
