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

var _ repository.IdentificacionRepository = (*IdentificacionRepo)(nil)

// IdentificacionRepo implementación de IdentificacionRepository.
// El índice único parcial sobre numero (solo filas activas) es la garantía de
// unicidad bajo concurrencia; el 23505 se traduce a ErrIdentificacionExists.
type IdentificacionRepo struct {
	q Querier
}

// NewIdentificacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIdentificacionRepository(q Querier) *IdentificacionRepo {
	return &IdentificacionRepo{q: q}
}

// Create persiste una identificación.
func (r *IdentificacionRepo) Create(i *entity.Identificacion) error {
	query := `
		INSERT INTO identificacion (id, persona_id, tipo, numero, es_principal, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.PersonaID, i.Tipo, i.Numero, i.EsPrincipal, i.IsActive, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrIdentificacionExists
		}
		return fmt.Errorf("insert identificacion: %w", err)
	}
	return nil
}

// GetByID obtiene una identificación activa por ID.
func (r *IdentificacionRepo) GetByID(id string) (*entity.Identificacion, error) {
	query := `
		SELECT id, persona_id, tipo, numero, es_principal, is_active, created_at, updated_at
		FROM identificacion WHERE id = $1 AND is_active`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get identificacion by id")
}

// GetByNumero obtiene una identificación activa por número exacto.
func (r *IdentificacionRepo) GetByNumero(numero string) (*entity.Identificacion, error) {
	query := `
		SELECT id, persona_id, tipo, numero, es_principal, is_active, created_at, updated_at
		FROM identificacion WHERE numero = $1 AND is_active`
	return r.scanOne(r.q.QueryRow(context.Background(), query, numero), "get identificacion by numero")
}

// ListByPersona lista las identificaciones activas de una persona.
func (r *IdentificacionRepo) ListByPersona(personaID string) ([]entity.Identificacion, error) {
	query := `
		SELECT id, persona_id, tipo, numero, es_principal, is_active, created_at, updated_at
		FROM identificacion WHERE persona_id = $1 AND is_active ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, personaID)
	if err != nil {
		return nil, fmt.Errorf("list identificaciones: %w", err)
	}
	defer rows.Close()
	var list []entity.Identificacion
	for rows.Next() {
		var i entity.Identificacion
		if err := rows.Scan(&i.ID, &i.PersonaID, &i.Tipo, &i.Numero, &i.EsPrincipal,
			&i.IsActive, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan identificacion: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// Update actualiza una identificación.
func (r *IdentificacionRepo) Update(i *entity.Identificacion) error {
	query := `
		UPDATE identificacion SET tipo = $2, numero = $3, es_principal = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.Tipo, i.Numero, i.EsPrincipal, i.IsActive, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrIdentificacionExists
		}
		return fmt.Errorf("update identificacion: %w", err)
	}
	return nil
}

// DeactivateByPersona desactiva todas las identificaciones de una persona
// (cascada de la baja lógica del agregado).
func (r *IdentificacionRepo) DeactivateByPersona(personaID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE identificacion SET is_active = false, updated_at = now() WHERE persona_id = $1 AND is_active`,
		personaID)
	if err != nil {
		return fmt.Errorf("deactivate identificaciones: %w", err)
	}
	return nil
}

func (r *IdentificacionRepo) scanOne(row pgx.Row, op string) (*entity.Identificacion, error) {
	var i entity.Identificacion
	err := row.Scan(&i.ID, &i.PersonaID, &i.Tipo, &i.Numero, &i.EsPrincipal,
		&i.IsActive, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &i, nil
}
