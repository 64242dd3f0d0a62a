package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcastro/personas-api/internal/domain"
	"github.com/jcastro/personas-api/internal/domain/entity"
	"github.com/jcastro/personas-api/internal/domain/repository"
)

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

// EmpleadoRepo implementación de EmpleadoRepository (a lo sumo un perfil de
// empleado por persona, constraint único sobre persona_id).
type EmpleadoRepo struct {
	q Querier
}

// NewEmpleadoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

// Create persiste el perfil de empleado.
func (r *EmpleadoRepo) Create(e *entity.Empleado) error {
	query := `
		INSERT INTO empleado (id, persona_id, cargo, salario, fecha_ingreso, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.PersonaID, e.Cargo, e.Salario, e.FechaIngreso, e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// GetByPersona obtiene el perfil de empleado activo de una persona.
func (r *EmpleadoRepo) GetByPersona(personaID string) (*entity.Empleado, error) {
	query := `
		SELECT id, persona_id, cargo, salario, fecha_ingreso::text, is_active, created_at, updated_at
		FROM empleado WHERE persona_id = $1 AND is_active`
	var e entity.Empleado
	err := r.q.QueryRow(context.Background(), query, personaID).Scan(
		&e.ID, &e.PersonaID, &e.Cargo, &e.Salario, &e.FechaIngreso, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado: %w", err)
	}
	return &e, nil
}

// Update actualiza el perfil de empleado.
func (r *EmpleadoRepo) Update(e *entity.Empleado) error {
	query := `
		UPDATE empleado SET cargo = $2, salario = $3, fecha_ingreso = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Cargo, e.Salario, e.FechaIngreso, e.IsActive, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empleado: %w", err)
	}
	return nil
}

// DeactivateByPersona desactiva el perfil de empleado de una persona.
func (r *EmpleadoRepo) DeactivateByPersona(personaID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE empleado SET is_active = false, updated_at = now() WHERE persona_id = $1 AND is_active`,
		personaID)
	if err != nil {
		return fmt.Errorf("deactivate empleado: %w", err)
	}
	return nil
}
