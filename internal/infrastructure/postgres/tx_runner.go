package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jcastro/personas-api/internal/application/usecase"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL: una
// transacción por request mutante, commit si el callback retorna nil y
// rollback en cualquier otra salida (incluido panic, vía defer).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos usecase.RegistroRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := NewRegistroRepos(tx)
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRegistroRepos arma el juego completo de repositorios del registro sobre
// un Querier (pool o tx).
func NewRegistroRepos(q Querier) usecase.RegistroRepos {
	return usecase.RegistroRepos{
		Personas:         NewPersonaRepository(q),
		Identificaciones: NewIdentificacionRepository(q),
		Contactos:        NewContactoRepository(q),
		Clientes:         NewClienteRepository(q),
		Proveedores:      NewProveedorRepository(q),
		Empleados:        NewEmpleadoRepository(q),
	}
}
