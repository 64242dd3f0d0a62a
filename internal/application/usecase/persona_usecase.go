package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcastro/personas-api/internal/application/dto"
	"github.com/jcastro/personas-api/internal/domain"
	"github.com/jcastro/personas-api/internal/domain/entity"
)

// PersonaUseCase aplica las reglas de negocio del registro de personas:
// creación del agregado, unicidad de identificaciones, parches parciales y
// baja lógica con desactivación en cascada.
type PersonaUseCase struct {
	tx    TxRunner
	repos RegistroRepos // atados al pool, solo lecturas
}

// NewPersonaUseCase construye el caso de uso con el runner transaccional y
// los repositorios de lectura.
func NewPersonaUseCase(tx TxRunner, repos RegistroRepos) *PersonaUseCase {
	return &PersonaUseCase{tx: tx, repos: repos}
}

// Create crea una persona con sus identificaciones (al menos una) y contactos.
// La verificación previa de número es una optimización: la garantía real es el
// índice único parcial en la DB, cuyo 23505 el repositorio traduce a
// ErrIdentificacionExists.
func (uc *PersonaUseCase) Create(ctx context.Context, in dto.CreatePersonaRequest) (*dto.PersonaResponse, error) {
	if len(in.Identificaciones) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := validarNombres(in.TipoPersona, in.Nombre, in.RazonSocial); err != nil {
		return nil, err
	}

	var out *dto.PersonaResponse
	err := uc.tx.Run(ctx, func(r RegistroRepos) error {
		for _, ident := range in.Identificaciones {
			existing, err := r.Identificaciones.GetByNumero(ident.Numero)
			if err != nil {
				return err
			}
			if existing != nil {
				return domain.ErrIdentificacionExists
			}
		}

		now := time.Now()
		persona := &entity.Persona{
			ID:              uuid.New().String(),
			TipoPersona:     in.TipoPersona,
			Nombre:          in.Nombre,
			Apellido:        in.Apellido,
			RazonSocial:     in.RazonSocial,
			NombreComercial: in.NombreComercial,
			IsActive:        true,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := r.Personas.Create(persona); err != nil {
			return err
		}

		for _, ident := range in.Identificaciones {
			if err := r.Identificaciones.Create(&entity.Identificacion{
				ID:          uuid.New().String(),
				PersonaID:   persona.ID,
				Tipo:        ident.Tipo,
				Numero:      ident.Numero,
				EsPrincipal: ident.EsPrincipal,
				IsActive:    true,
				CreatedAt:   now,
				UpdatedAt:   now,
			}); err != nil {
				return err
			}
		}
		for _, contacto := range in.Contactos {
			if err := r.Contactos.Create(&entity.Contacto{
				ID:          uuid.New().String(),
				PersonaID:   persona.ID,
				Tipo:        contacto.Tipo,
				Valor:       contacto.Valor,
				EsPrincipal: contacto.EsPrincipal,
				IsActive:    true,
				CreatedAt:   now,
				UpdatedAt:   now,
			}); err != nil {
				return err
			}
		}

		// Releer el agregado completo dentro de la misma transacción.
		resp, err := cargarAgregado(r, persona)
		if err != nil {
			return err
		}
		out = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get devuelve el agregado completo de una persona activa.
func (uc *PersonaUseCase) Get(id string) (*dto.PersonaResponse, error) {
	persona, err := uc.repos.Personas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if persona == nil {
		return nil, domain.ErrNotFound
	}
	return cargarAgregado(uc.repos, persona)
}

// GetByIdentificacion busca la persona dueña de un número de identificación.
// Tanto la identificación como la persona deben estar activas.
func (uc *PersonaUseCase) GetByIdentificacion(numero string) (*dto.PersonaResponse, error) {
	ident, err := uc.repos.Identificaciones.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if ident == nil {
		return nil, domain.ErrNotFound
	}
	persona, err := uc.repos.Personas.GetByID(ident.PersonaID)
	if err != nil {
		return nil, err
	}
	if persona == nil {
		return nil, domain.ErrNotFound
	}
	return cargarAgregado(uc.repos, persona)
}

// List devuelve una página de personas activas. Con tipo, filtra vía join con
// identificacion; sin tipo exige además al menos un contacto activo. El total
// es el conteo de personas activas sin filtrar, también cuando tipo está
// presente: los clientes paginan contra el universo completo.
func (uc *PersonaUseCase) List(skip, limit int, tipo string) (*dto.PersonaListResponse, error) {
	if tipo != "" && !entity.ValidTipoPersona(tipo) {
		return nil, domain.ErrInvalidInput
	}

	var (
		personas []*entity.Persona
		err      error
	)
	if tipo != "" {
		personas, err = uc.repos.Personas.ListByTipo(tipo, limit, skip)
	} else {
		personas, err = uc.repos.Personas.List(limit, skip)
	}
	if err != nil {
		return nil, err
	}

	total, err := uc.Count()
	if err != nil {
		return nil, err
	}

	out := make([]dto.PersonaResponse, 0, len(personas))
	for _, p := range personas {
		resp, err := cargarAgregado(uc.repos, p)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return &dto.PersonaListResponse{
		Personas: out,
		Total:    total,
		Page:     (skip / limit) + 1,
		PerPage:  limit,
	}, nil
}

// Update aplica un parche sobre la persona: solo los campos presentes cambian.
// Un cambio de número de identificación se reconcilia contra las filas de
// identificacion activas, no contra un campo de la persona.
func (uc *PersonaUseCase) Update(ctx context.Context, id string, in dto.UpdatePersonaRequest) (*dto.PersonaResponse, error) {
	var out *dto.PersonaResponse
	err := uc.tx.Run(ctx, func(r RegistroRepos) error {
		persona, err := r.Personas.GetByID(id)
		if err != nil {
			return err
		}
		if persona == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		if in.TipoPersona != nil {
			persona.TipoPersona = *in.TipoPersona
		}
		if in.Nombre != nil {
			persona.Nombre = in.Nombre
		}
		if in.Apellido != nil {
			persona.Apellido = in.Apellido
		}
		if in.RazonSocial != nil {
			persona.RazonSocial = in.RazonSocial
		}
		if in.NombreComercial != nil {
			persona.NombreComercial = in.NombreComercial
		}
		if in.IsActive != nil {
			persona.IsActive = *in.IsActive
		}
		// El resultado del parche debe seguir siendo coherente con el tipo:
		// un cambio de tipo_persona no puede dejar campos del tipo anterior.
		if err := validarNombres(persona.TipoPersona, persona.Nombre, persona.RazonSocial); err != nil {
			return err
		}
		persona.UpdatedAt = now
		if err := r.Personas.Update(persona); err != nil {
			return err
		}

		for _, parche := range in.Identificaciones {
			ident, err := r.Identificaciones.GetByID(parche.ID)
			if err != nil {
				return err
			}
			if ident == nil || ident.PersonaID != persona.ID {
				return domain.ErrNotFound
			}
			if parche.Numero != nil && *parche.Numero != ident.Numero {
				existing, err := r.Identificaciones.GetByNumero(*parche.Numero)
				if err != nil {
					return err
				}
				if existing != nil && existing.ID != ident.ID {
					return domain.ErrIdentificacionExists
				}
				ident.Numero = *parche.Numero
			}
			if parche.Tipo != nil {
				ident.Tipo = *parche.Tipo
			}
			if parche.EsPrincipal != nil {
				ident.EsPrincipal = *parche.EsPrincipal
			}
			ident.UpdatedAt = now
			if err := r.Identificaciones.Update(ident); err != nil {
				return err
			}
		}

		resp, err := cargarAgregado(r, persona)
		if err != nil {
			return err
		}
		out = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete marca la persona como inactiva y desactiva en cascada sus
// identificaciones, contactos y perfiles dentro de la misma transacción.
func (uc *PersonaUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r RegistroRepos) error {
		persona, err := r.Personas.GetByID(id)
		if err != nil {
			return err
		}
		if persona == nil {
			return domain.ErrNotFound
		}
		persona.IsActive = false
		persona.UpdatedAt = time.Now()
		if err := r.Personas.Update(persona); err != nil {
			return err
		}
		if err := r.Identificaciones.DeactivateByPersona(id); err != nil {
			return err
		}
		if err := r.Contactos.DeactivateByPersona(id); err != nil {
			return err
		}
		if err := r.Clientes.DeactivateByPersona(id); err != nil {
			return err
		}
		if err := r.Proveedores.DeactivateByPersona(id); err != nil {
			return err
		}
		return r.Empleados.DeactivateByPersona(id)
	})
}

// Count devuelve el total de personas activas, independiente de cualquier filtro.
func (uc *PersonaUseCase) Count() (int, error) {
	total, err := uc.repos.Personas.Count()
	if err != nil {
		return 0, fmt.Errorf("error contando personas: %w", err)
	}
	return total, nil
}

// validarNombres exige nombre para personas naturales y razón social para
// jurídicas, y rechaza la mezcla de ambos grupos de campos.
func validarNombres(tipo string, nombre, razonSocial *string) error {
	switch tipo {
	case entity.TipoPersonaNatural:
		if nombre == nil || *nombre == "" {
			return domain.ErrInvalidInput
		}
		if razonSocial != nil && *razonSocial != "" {
			return domain.ErrInvalidInput
		}
	case entity.TipoPersonaJuridica:
		if razonSocial == nil || *razonSocial == "" {
			return domain.ErrInvalidInput
		}
		if nombre != nil && *nombre != "" {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// cargarAgregado rellena identificaciones, contactos y perfiles activos de la
// persona y arma la respuesta completa.
func cargarAgregado(r RegistroRepos, persona *entity.Persona) (*dto.PersonaResponse, error) {
	idents, err := r.Identificaciones.ListByPersona(persona.ID)
	if err != nil {
		return nil, err
	}
	contactos, err := r.Contactos.ListByPersona(persona.ID)
	if err != nil {
		return nil, err
	}
	cliente, err := r.Clientes.GetByPersona(persona.ID)
	if err != nil {
		return nil, err
	}
	proveedor, err := r.Proveedores.GetByPersona(persona.ID)
	if err != nil {
		return nil, err
	}
	empleado, err := r.Empleados.GetByPersona(persona.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PersonaResponse{
		ID:               persona.ID,
		TipoPersona:      persona.TipoPersona,
		Nombre:           persona.Nombre,
		Apellido:         persona.Apellido,
		RazonSocial:      persona.RazonSocial,
		NombreComercial:  persona.NombreComercial,
		IsActive:         persona.IsActive,
		CreatedAt:        persona.CreatedAt,
		UpdatedAt:        persona.UpdatedAt,
		Identificaciones: make([]dto.IdentificacionResponse, 0, len(idents)),
		Contactos:        make([]dto.ContactoResponse, 0, len(contactos)),
	}
	for _, i := range idents {
		resp.Identificaciones = append(resp.Identificaciones, dto.IdentificacionResponse{
			ID:          i.ID,
			PersonaID:   i.PersonaID,
			Tipo:        i.Tipo,
			Numero:      i.Numero,
			EsPrincipal: i.EsPrincipal,
		})
	}
	for _, c := range contactos {
		resp.Contactos = append(resp.Contactos, dto.ContactoResponse{
			ID:          c.ID,
			PersonaID:   c.PersonaID,
			Tipo:        c.Tipo,
			Valor:       c.Valor,
			EsPrincipal: c.EsPrincipal,
		})
	}
	if cliente != nil {
		resp.Cliente = toClienteResponse(cliente)
	}
	if proveedor != nil {
		resp.Proveedor = toProveedorResponse(proveedor)
	}
	if empleado != nil {
		resp.Empleado = toEmpleadoResponse(empleado)
	}
	return resp, nil
}
