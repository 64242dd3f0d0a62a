package postgres

import (
	"context"
	"fmt"

	"github.com/jcastro/personas-api/internal/domain"
	"github.com/jcastro/personas-api/internal/domain/entity"
	"github.com/jcastro/personas-api/internal/domain/repository"
)

var _ repository.ContactoRepository = (*ContactoRepo)(nil)

// ContactoRepo implementación de ContactoRepository. Valor es único entre
// contactos activos (índice parcial).
type ContactoRepo struct {
	q Querier
}

// NewContactoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContactoRepository(q Querier) *ContactoRepo {
	return &ContactoRepo{q: q}
}

// Create persiste un contacto.
func (r *ContactoRepo) Create(c *entity.Contacto) error {
	query := `
		INSERT INTO contacto (id, persona_id, tipo, valor, es_principal, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.PersonaID, c.Tipo, c.Valor, c.EsPrincipal, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrContactoExists
		}
		return fmt.Errorf("insert contacto: %w", err)
	}
	return nil
}

// ListByPersona lista los contactos activos de una persona.
func (r *ContactoRepo) ListByPersona(personaID string) ([]entity.Contacto, error) {
	query := `
		SELECT id, persona_id, tipo, valor, es_principal, is_active, created_at, updated_at
		FROM contacto WHERE persona_id = $1 AND is_active ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, personaID)
	if err != nil {
		return nil, fmt.Errorf("list contactos: %w", err)
	}
	defer rows.Close()
	var list []entity.Contacto
	for rows.Next() {
		var c entity.Contacto
		if err := rows.Scan(&c.ID, &c.PersonaID, &c.Tipo, &c.Valor, &c.EsPrincipal,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contacto: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// DeactivateByPersona desactiva todos los contactos de una persona.
func (r *ContactoRepo) DeactivateByPersona(personaID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE contacto SET is_active = false, updated_at = now() WHERE persona_id = $1 AND is_active`,
		personaID)
	if err != nil {
		return fmt.Errorf("deactivate contactos: %w", err)
	}
	return nil
}
