package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de persona.
const (
	TipoPersonaNatural  = "natural"
	TipoPersonaJuridica = "juridica"
)

// Tipos de identificación.
const (
	TipoIdentificacionRUC       = "ruc"
	TipoIdentificacionCedula    = "cedula"
	TipoIdentificacionPasaporte = "pasaporte"
)

// Tipos de contacto.
const (
	TipoContactoTelefono  = "telefono"
	TipoContactoCelular   = "celular"
	TipoContactoEmail     = "email"
	TipoContactoDireccion = "direccion"
)

// ValidTipoPersona indica si tipo es natural o juridica.
func ValidTipoPersona(tipo string) bool {
	return tipo == TipoPersonaNatural || tipo == TipoPersonaJuridica
}

// ValidTipoIdentificacion indica si tipo es un tipo de documento soportado.
func ValidTipoIdentificacion(tipo string) bool {
	switch tipo {
	case TipoIdentificacionRUC, TipoIdentificacionCedula, TipoIdentificacionPasaporte:
		return true
	}
	return false
}

// ValidTipoContacto indica si tipo es un canal de contacto soportado.
func ValidTipoContacto(tipo string) bool {
	switch tipo {
	case TipoContactoTelefono, TipoContactoCelular, TipoContactoEmail, TipoContactoDireccion:
		return true
	}
	return false
}

// Persona es la entidad central del registro: una parte natural o jurídica
// que puede actuar a la vez como cliente, proveedor o empleado.
// Los campos Nombre/Apellido aplican a personas naturales; RazonSocial y
// NombreComercial a jurídicas (exclusión mutua validada en el caso de uso).
type Persona struct {
	ID              string
	TipoPersona     string // natural | juridica
	Nombre          *string
	Apellido        *string
	RazonSocial     *string
	NombreComercial *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Agregado: cargado por el caso de uso, no por la fila base.
	Identificaciones []Identificacion
	Contactos        []Contacto
	Cliente          *Cliente
	Proveedor        *Proveedor
	Empleado         *Empleado
}

// Identificacion es un documento de identidad de una Persona.
// Numero es único entre registros activos (índice parcial en la DB).
type Identificacion struct {
	ID          string
	PersonaID   string
	Tipo        string // ruc | cedula | pasaporte
	Numero      string
	EsPrincipal bool
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Contacto es un canal de contacto de una Persona. Valor es único entre activos.
type Contacto struct {
	ID          string
	PersonaID   string
	Tipo        string // telefono | celular | email | direccion
	Valor       string
	EsPrincipal bool
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Cliente es el perfil comercial de una Persona (a lo sumo uno por persona).
type Cliente struct {
	ID            string
	PersonaID     string
	LimiteCredito decimal.Decimal
	DiasCredito   int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Proveedor es el perfil de abastecimiento de una Persona (a lo sumo uno).
type Proveedor struct {
	ID             string
	PersonaID      string
	DiasCredito    int
	CuentaBancaria *string
	Banco          *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Empleado es el perfil laboral de una Persona (a lo sumo uno).
// FechaIngreso usa formato YYYY-MM-DD.
type Empleado struct {
	ID           string
	PersonaID    string
	Cargo        *string
	Salario      decimal.Decimal
	FechaIngreso *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
