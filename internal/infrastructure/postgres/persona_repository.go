package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcastro/personas-api/internal/domain/entity"
	"github.com/jcastro/personas-api/internal/domain/repository"
)

var _ repository.PersonaRepository = (*PersonaRepo)(nil)

// PersonaRepo implementación de PersonaRepository (usable con pool o tx).
type PersonaRepo struct {
	q Querier
}

// NewPersonaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPersonaRepository(q Querier) *PersonaRepo {
	return &PersonaRepo{q: q}
}

const personaColumns = `id, tipo_persona, nombre, apellido, razon_social, nombre_comercial,
		is_active, created_at, updated_at`

// Create persiste la fila base de una persona.
func (r *PersonaRepo) Create(p *entity.Persona) error {
	query := `
		INSERT INTO persona (id, tipo_persona, nombre, apellido, razon_social, nombre_comercial,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.TipoPersona, p.Nombre, p.Apellido, p.RazonSocial, p.NombreComercial,
		p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert persona: %w", err)
	}
	return nil
}

// GetByID obtiene una persona activa por ID.
func (r *PersonaRepo) GetByID(id string) (*entity.Persona, error) {
	query := `SELECT ` + personaColumns + ` FROM persona WHERE id = $1 AND is_active`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get persona by id")
}

// List pagina personas activas con al menos una identificación activa y al
// menos un contacto activo (join interno deliberado: una persona sin contactos
// no aparece en el listado sin filtro). Orden de inserción.
func (r *PersonaRepo) List(limit, offset int) ([]*entity.Persona, error) {
	query := `
		SELECT DISTINCT p.id, p.tipo_persona, p.nombre, p.apellido, p.razon_social,
			p.nombre_comercial, p.is_active, p.created_at, p.updated_at
		FROM persona p
		JOIN identificacion i ON i.persona_id = p.id AND i.is_active
		JOIN contacto c ON c.persona_id = p.id AND c.is_active
		WHERE p.is_active
		ORDER BY p.created_at
		LIMIT $1 OFFSET $2`
	return r.queryList(query, limit, offset)
}

// ListByTipo pagina personas activas del tipo dado con al menos una
// identificación activa.
func (r *PersonaRepo) ListByTipo(tipo string, limit, offset int) ([]*entity.Persona, error) {
	query := `
		SELECT DISTINCT p.id, p.tipo_persona, p.nombre, p.apellido, p.razon_social,
			p.nombre_comercial, p.is_active, p.created_at, p.updated_at
		FROM persona p
		JOIN identificacion i ON i.persona_id = p.id AND i.is_active
		WHERE p.is_active AND p.tipo_persona = $1
		ORDER BY p.created_at
		LIMIT $2 OFFSET $3`
	return r.queryList(query, tipo, limit, offset)
}

// Update actualiza la fila base (incluida la baja lógica vía is_active).
func (r *PersonaRepo) Update(p *entity.Persona) error {
	query := `
		UPDATE persona SET tipo_persona = $2, nombre = $3, apellido = $4, razon_social = $5,
			nombre_comercial = $6, is_active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.TipoPersona, p.Nombre, p.Apellido, p.RazonSocial, p.NombreComercial,
		p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update persona: %w", err)
	}
	return nil
}

// Count cuenta todas las personas activas, sin joins ni filtros.
func (r *PersonaRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM persona WHERE is_active`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count personas: %w", err)
	}
	return total, nil
}

func (r *PersonaRepo) queryList(query string, args ...any) ([]*entity.Persona, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Persona
	for rows.Next() {
		var p entity.Persona
		if err := rows.Scan(&p.ID, &p.TipoPersona, &p.Nombre, &p.Apellido, &p.RazonSocial,
			&p.NombreComercial, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan persona: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PersonaRepo) scanOne(row pgx.Row, op string) (*entity.Persona, error) {
	var p entity.Persona
	err := row.Scan(&p.ID, &p.TipoPersona, &p.Nombre, &p.Apellido, &p.RazonSocial,
		&p.NombreComercial, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
