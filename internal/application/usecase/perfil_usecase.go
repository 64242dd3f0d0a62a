package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jcastro/personas-api/internal/application/dto"
	"github.com/jcastro/personas-api/internal/domain"
	"github.com/jcastro/personas-api/internal/domain/entity"
)

// PerfilUseCase maneja los perfiles 1:1 de una persona: cliente, proveedor y
// empleado. Los roles son aditivos: una misma persona puede tener los tres,
// pero a lo sumo uno de cada clase (constraint único sobre persona_id).
type PerfilUseCase struct {
	tx TxRunner
}

// NewPerfilUseCase construye el caso de uso de perfiles.
func NewPerfilUseCase(tx TxRunner) *PerfilUseCase {
	return &PerfilUseCase{tx: tx}
}

// AttachCliente adjunta el perfil de cliente a una persona activa.
func (uc *PerfilUseCase) AttachCliente(ctx context.Context, personaID string, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if in.LimiteCredito.IsNegative() || in.DiasCredito < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ClienteResponse
	err := uc.tx.Run(ctx, func(r RegistroRepos) error {
		if err := personaActiva(r, personaID); err != nil {
			return err
		}
		existing, err := r.Clientes.GetByPersona(personaID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		now := time.Now()
		cliente := &entity.Cliente{
			ID:            uuid.New().String(),
			PersonaID:     personaID,
			LimiteCredito: in.LimiteCredito,
			DiasCredito:   in.DiasCredito,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := r.Clientes.Create(cliente); err != nil {
			return err
		}
		out = toClienteResponse(cliente)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateCliente reemplaza los datos comerciales del perfil de cliente.
func (uc *PerfilUseCase) UpdateCliente(ctx context.Context, personaID string, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if in.LimiteCredito.IsNegative() || in.DiasCredito < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ClienteResponse
	err := uc.tx.Run(ctx, func(r RegistroRepos) error {
		cliente, err := r.Clientes.GetByPersona(personaID)
		if err != nil {
			return err
		}
		if cliente == nil {
			return domain.ErrNotFound
		}
		cliente.LimiteCredito = in.LimiteCredito
		cliente.DiasCredito = in.DiasCredito
		cliente.UpdatedAt = time.Now()
		if err := r.Clientes.Update(cliente); err != nil {
			return err
		}
		out = toClienteResponse(cliente)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AttachProveedor adjunta el perfil de proveedor a una persona activa.
func (uc *PerfilUseCase) AttachProveedor(ctx context.Context, personaID string, in dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.DiasCredito < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ProveedorResponse
	err := uc.tx.Run(ctx, func(r RegistroRepos) error {
		if err := personaActiva(r, personaID); err != nil {
			return err
		}
		existing, err := r.Proveedores.GetByPersona(personaID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		now := time.Now()
		proveedor := &entity.Proveedor{
			ID:             uuid.New().String(),
			PersonaID:      personaID,
			DiasCredito:    in.DiasCredito,
			CuentaBancaria: in.CuentaBancaria,
			Banco:          in.Banco,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := r.Proveedores.Create(proveedor); err != nil {
			return err
		}
		out = toProveedorResponse(proveedor)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProveedor reemplaza los datos del perfil de proveedor.
func (uc *PerfilUseCase) UpdateProveedor(ctx context.Context, personaID string, in dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.DiasCredito < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ProveedorResponse
	err := uc.tx.Run(ctx, func(r RegistroRepos) error {
		proveedor, err := r.Proveedores.GetByPersona(personaID)
		if err != nil {
			return err
		}
		if proveedor == nil {
			return domain.ErrNotFound
		}
		proveedor.DiasCredito = in.DiasCredito
		proveedor.CuentaBancaria = in.CuentaBancaria
		proveedor.Banco = in.Banco
		proveedor.UpdatedAt = time.Now()
		if err := r.Proveedores.Update(proveedor); err != nil {
			return err
		}
		out = toProveedorResponse(proveedor)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AttachEmpleado adjunta el perfil de empleado a una persona activa.
func (uc *PerfilUseCase) AttachEmpleado(ctx context.Context, personaID string, in dto.EmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if in.Salario.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.EmpleadoResponse
	err := uc.tx.Run(ctx, func(r RegistroRepos) error {
		if err := personaActiva(r, personaID); err != nil {
			return err
		}
		existing, err := r.Empleados.GetByPersona(personaID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		now := time.Now()
		empleado := &entity.Empleado{
			ID:           uuid.New().String(),
			PersonaID:    personaID,
			Cargo:        in.Cargo,
			Salario:      in.Salario,
			FechaIngreso: in.FechaIngreso,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := r.Empleados.Create(empleado); err != nil {
			return err
		}
		out = toEmpleadoResponse(empleado)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateEmpleado reemplaza los datos del perfil de empleado.
func (uc *PerfilUseCase) UpdateEmpleado(ctx context.Context, personaID string, in dto.EmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if in.Salario.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.EmpleadoResponse
	err := uc.tx.Run(ctx, func(r RegistroRepos) error {
		empleado, err := r.Empleados.GetByPersona(personaID)
		if err != nil {
			return err
		}
		if empleado == nil {
			return domain.ErrNotFound
		}
		empleado.Cargo = in.Cargo
		empleado.Salario = in.Salario
		empleado.FechaIngreso = in.FechaIngreso
		empleado.UpdatedAt = time.Now()
		if err := r.Empleados.Update(empleado); err != nil {
			return err
		}
		out = toEmpleadoResponse(empleado)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// personaActiva verifica que la persona exista y esté activa.
func personaActiva(r RegistroRepos, personaID string) error {
	persona, err := r.Personas.GetByID(personaID)
	if err != nil {
		return err
	}
	if persona == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:            c.ID,
		PersonaID:     c.PersonaID,
		LimiteCredito: c.LimiteCredito,
		DiasCredito:   c.DiasCredito,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:             p.ID,
		PersonaID:      p.PersonaID,
		DiasCredito:    p.DiasCredito,
		CuentaBancaria: p.CuentaBancaria,
		Banco:          p.Banco,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toEmpleadoResponse(e *entity.Empleado) *dto.EmpleadoResponse {
	return &dto.EmpleadoResponse{
		ID:           e.ID,
		PersonaID:    e.PersonaID,
		Cargo:        e.Cargo,
		Salario:      e.Salario,
		FechaIngreso: e.FechaIngreso,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
