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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository (a lo sumo un perfil
// de proveedor por persona, constraint único sobre persona_id).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste el perfil de proveedor.
func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedor (id, persona_id, dias_credito, cuenta_bancaria, banco, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.PersonaID, p.DiasCredito, p.CuentaBancaria, p.Banco, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByPersona obtiene el perfil de proveedor activo de una persona.
func (r *ProveedorRepo) GetByPersona(personaID string) (*entity.Proveedor, error) {
	query := `
		SELECT id, persona_id, dias_credito, cuenta_bancaria, banco, is_active, created_at, updated_at
		FROM proveedor WHERE persona_id = $1 AND is_active`
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, personaID).Scan(
		&p.ID, &p.PersonaID, &p.DiasCredito, &p.CuentaBancaria, &p.Banco, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// Update actualiza el perfil de proveedor.
func (r *ProveedorRepo) Update(p *entity.Proveedor) error {
	query := `
		UPDATE proveedor SET dias_credito = $2, cuenta_bancaria = $3, banco = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.DiasCredito, p.CuentaBancaria, p.Banco, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// DeactivateByPersona desactiva el perfil de proveedor de una persona.
func (r *ProveedorRepo) DeactivateByPersona(personaID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE proveedor SET is_active = false, updated_at = now() WHERE persona_id = $1 AND is_active`,
		personaID)
	if err != nil {
		return fmt.Errorf("deactivate proveedor: %w", err)
	}
	return nil
}
