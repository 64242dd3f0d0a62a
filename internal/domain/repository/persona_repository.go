package repository

import "github.com/jcastro/personas-api/internal/domain/entity"

// PersonaRepository define el puerto de persistencia para la fila base de Persona.
// Los métodos de lectura ven únicamente registros activos.
type PersonaRepository interface {
	Create(p *entity.Persona) error
	GetByID(id string) (*entity.Persona, error)
	// List pagina personas activas que tienen al menos una identificación
	// activa Y al menos un contacto activo (join interno, no left join).
	List(limit, offset int) ([]*entity.Persona, error)
	// ListByTipo pagina personas activas del tipo dado con al menos una
	// identificación activa.
	ListByTipo(tipo string, limit, offset int) ([]*entity.Persona, error)
	Update(p *entity.Persona) error
	Count() (int, error)
}

// IdentificacionRepository define el puerto para documentos de identidad.
type IdentificacionRepository interface {
	Create(i *entity.Identificacion) error
	GetByID(id string) (*entity.Identificacion, error)
	// GetByNumero busca una identificación activa por número exacto.
	GetByNumero(numero string) (*entity.Identificacion, error)
	ListByPersona(personaID string) ([]entity.Identificacion, error)
	Update(i *entity.Identificacion) error
	DeactivateByPersona(personaID string) error
}

// ContactoRepository define el puerto para canales de contacto.
type ContactoRepository interface {
	Create(c *entity.Contacto) error
	ListByPersona(personaID string) ([]entity.Contacto, error)
	DeactivateByPersona(personaID string) error
}

// ClienteRepository define el puerto para el perfil de cliente (1:1 con Persona).
type ClienteRepository interface {
	Create(c *entity.Cliente) error
	GetByPersona(personaID string) (*entity.Cliente, error)
	Update(c *entity.Cliente) error
	DeactivateByPersona(personaID string) error
}

// ProveedorRepository define el puerto para el perfil de proveedor (1:1 con Persona).
type ProveedorRepository interface {
	Create(p *entity.Proveedor) error
	GetByPersona(personaID string) (*entity.Proveedor, error)
	Update(p *entity.Proveedor) error
	DeactivateByPersona(personaID string) error
}

// EmpleadoRepository define el puerto para el perfil de empleado (1:1 con Persona).
type EmpleadoRepository interface {
	Create(e *entity.Empleado) error
	GetByPersona(personaID string) (*entity.Empleado, error)
	Update(e *entity.Empleado) error
	DeactivateByPersona(personaID string) error
}
