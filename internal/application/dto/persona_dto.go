package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIdentificacionRequest entrada para una identificación inicial.
type CreateIdentificacionRequest struct {
	Tipo        string `json:"tipo" validate:"required,oneof=ruc cedula pasaporte"`
	Numero      string `json:"numero" validate:"required,min=5,max=30"`
	EsPrincipal bool   `json:"es_principal"`
}

// CreateContactoRequest entrada para un canal de contacto inicial.
type CreateContactoRequest struct {
	Tipo        string `json:"tipo" validate:"required,oneof=telefono celular email direccion"`
	Valor       string `json:"valor" validate:"required,min=1,max=300"`
	EsPrincipal bool   `json:"es_principal"`
}

// CreatePersonaRequest entrada para crear una persona con sus identificaciones
// (al menos una) y contactos iniciales.
type CreatePersonaRequest struct {
	TipoPersona     string  `json:"tipo_persona" validate:"required,oneof=natural juridica"`
	Nombre          *string `json:"nombre" validate:"omitempty,max=250"`
	Apellido        *string `json:"apellido" validate:"omitempty,max=250"`
	RazonSocial     *string `json:"razon_social" validate:"omitempty,max=400"`
	NombreComercial *string `json:"nombre_comercial" validate:"omitempty,max=400"`

	Identificaciones []CreateIdentificacionRequest `json:"identificaciones" validate:"required,min=1,dive"`
	Contactos        []CreateContactoRequest       `json:"contactos" validate:"omitempty,dive"`
}

// UpdateIdentificacionRequest parche sobre una identificación existente del agregado.
type UpdateIdentificacionRequest struct {
	ID          string  `json:"id" validate:"required"`
	Tipo        *string `json:"tipo" validate:"omitempty,oneof=ruc cedula pasaporte"`
	Numero      *string `json:"numero" validate:"omitempty,min=5,max=30"`
	EsPrincipal *bool   `json:"es_principal"`
}

// UpdatePersonaRequest entrada para actualizar una persona. Semántica de parche:
// solo los campos presentes se aplican; los demás quedan intactos.
type UpdatePersonaRequest struct {
	TipoPersona     *string `json:"tipo_persona" validate:"omitempty,oneof=natural juridica"`
	Nombre          *string `json:"nombre" validate:"omitempty,max=250"`
	Apellido        *string `json:"apellido" validate:"omitempty,max=250"`
	RazonSocial     *string `json:"razon_social" validate:"omitempty,max=400"`
	NombreComercial *string `json:"nombre_comercial" validate:"omitempty,max=400"`
	IsActive        *bool   `json:"is_active"`

	Identificaciones []UpdateIdentificacionRequest `json:"identificaciones" validate:"omitempty,dive"`
}

// IdentificacionResponse salida de una identificación.
type IdentificacionResponse struct {
	ID          string `json:"id"`
	PersonaID   string `json:"persona_id"`
	Tipo        string `json:"tipo"`
	Numero      string `json:"numero"`
	EsPrincipal bool   `json:"es_principal"`
}

// ContactoResponse salida de un contacto.
type ContactoResponse struct {
	ID          string `json:"id"`
	PersonaID   string `json:"persona_id"`
	Tipo        string `json:"tipo"`
	Valor       string `json:"valor"`
	EsPrincipal bool   `json:"es_principal"`
}

// ClienteRequest entrada para adjuntar o actualizar el perfil de cliente.
type ClienteRequest struct {
	LimiteCredito decimal.Decimal `json:"limite_credito"`
	DiasCredito   int             `json:"dias_credito" validate:"min=0"`
}

// ClienteResponse salida del perfil de cliente.
type ClienteResponse struct {
	ID            string          `json:"id"`
	PersonaID     string          `json:"persona_id"`
	LimiteCredito decimal.Decimal `json:"limite_credito"`
	DiasCredito   int             `json:"dias_credito"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProveedorRequest entrada para adjuntar o actualizar el perfil de proveedor.
type ProveedorRequest struct {
	DiasCredito    int     `json:"dias_credito" validate:"min=0"`
	CuentaBancaria *string `json:"cuenta_bancaria" validate:"omitempty,max=50"`
	Banco          *string `json:"banco" validate:"omitempty,max=100"`
}

// ProveedorResponse salida del perfil de proveedor.
type ProveedorResponse struct {
	ID             string    `json:"id"`
	PersonaID      string    `json:"persona_id"`
	DiasCredito    int       `json:"dias_credito"`
	CuentaBancaria *string   `json:"cuenta_bancaria"`
	Banco          *string   `json:"banco"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EmpleadoRequest entrada para adjuntar o actualizar el perfil de empleado.
type EmpleadoRequest struct {
	Cargo        *string         `json:"cargo" validate:"omitempty,max=150"`
	Salario      decimal.Decimal `json:"salario"`
	FechaIngreso *string         `json:"fecha_ingreso" validate:"omitempty,datetime=2006-01-02"`
}

// EmpleadoResponse salida del perfil de empleado.
type EmpleadoResponse struct {
	ID           string          `json:"id"`
	PersonaID    string          `json:"persona_id"`
	Cargo        *string         `json:"cargo"`
	Salario      decimal.Decimal `json:"salario"`
	FechaIngreso *string         `json:"fecha_ingreso"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PersonaResponse salida del agregado completo de persona.
type PersonaResponse struct {
	ID              string    `json:"id"`
	TipoPersona     string    `json:"tipo_persona"`
	Nombre          *string   `json:"nombre"`
	Apellido        *string   `json:"apellido"`
	RazonSocial     *string   `json:"razon_social"`
	NombreComercial *string   `json:"nombre_comercial"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Identificaciones []IdentificacionResponse `json:"identificaciones"`
	Contactos        []ContactoResponse       `json:"contactos"`
	Cliente          *ClienteResponse         `json:"cliente,omitempty"`
	Proveedor        *ProveedorResponse       `json:"proveedor,omitempty"`
	Empleado         *EmpleadoResponse        `json:"empleado,omitempty"`
}

// PersonaListResponse listado paginado de personas.
type PersonaListResponse struct {
	Personas []PersonaResponse `json:"personas"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PerPage  int               `json:"per_page"`
}
