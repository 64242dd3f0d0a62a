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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository. El constraint único sobre
// persona_id garantiza a lo sumo un perfil de cliente por persona.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste el perfil de cliente.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO cliente (id, persona_id, limite_credito, dias_credito, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.PersonaID, c.LimiteCredito, c.DiasCredito, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByPersona obtiene el perfil de cliente activo de una persona.
func (r *ClienteRepo) GetByPersona(personaID string) (*entity.Cliente, error) {
	query := `
		SELECT id, persona_id, limite_credito, dias_credito, is_active, created_at, updated_at
		FROM cliente WHERE persona_id = $1 AND is_active`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, personaID).Scan(
		&c.ID, &c.PersonaID, &c.LimiteCredito, &c.DiasCredito, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// Update actualiza el perfil de cliente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE cliente SET limite_credito = $2, dias_credito = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.LimiteCredito, c.DiasCredito, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// DeactivateByPersona desactiva el perfil de cliente de una persona.
func (r *ClienteRepo) DeactivateByPersona(personaID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cliente SET is_active = false, updated_at = now() WHERE persona_id = $1 AND is_active`,
		personaID)
	if err != nil {
		return fmt.Errorf("deactivate cliente: %w", err)
	}
	return nil
}
