package usecase

import (
	"context"

	"github.com/jcastro/personas-api/internal/domain/repository"
)

// RegistroRepos agrupa los repositorios del registro de personas. El TxRunner
// entrega una instancia atada a la transacción en curso; fuera de transacción
// se usa una instancia atada al pool.
type RegistroRepos struct {
	Personas         repository.PersonaRepository
	Identificaciones repository.IdentificacionRepository
	Contactos        repository.ContactoRepository
	Clientes         repository.ClienteRepository
	Proveedores      repository.ProveedorRepository
	Empleados        repository.EmpleadoRepository
}

// TxRunner ejecuta fn dentro de una transacción: commit si fn retorna nil,
// rollback en cualquier otra salida.
type TxRunner interface {
	Run(ctx context.Context, fn func(r RegistroRepos) error) error
}
