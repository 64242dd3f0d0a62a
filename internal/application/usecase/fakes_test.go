package usecase_test

import (
	"context"

	"github.com/jcastro/personas-api/internal/application/usecase"
	"github.com/jcastro/personas-api/internal/domain"
	"github.com/jcastro/personas-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Replican el contrato real:
// las lecturas ven solo registros activos y devuelven (nil, nil) cuando no hay
// fila, igual que los adaptadores de postgres.

type fakePersonaRepo struct {
	rows map[string]*entity.Persona
	// idents y contactos viven en los otros fakes; List necesita verlos para
	// reproducir el join de la consulta real.
	idents    *fakeIdentificacionRepo
	contactos *fakeContactoRepo
}

func (f *fakePersonaRepo) Create(p *entity.Persona) error {
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePersonaRepo) GetByID(id string) (*entity.Persona, error) {
	p, ok := f.rows[id]
	if !ok || !p.IsActive {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePersonaRepo) List(limit, offset int) ([]*entity.Persona, error) {
	var out []*entity.Persona
	for _, p := range f.rows {
		if !p.IsActive {
			continue
		}
		if !f.idents.tieneActiva(p.ID) || !f.contactos.tieneActivo(p.ID) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return paginate(out, limit, offset), nil
}

func (f *fakePersonaRepo) ListByTipo(tipo string, limit, offset int) ([]*entity.Persona, error) {
	var out []*entity.Persona
	for _, p := range f.rows {
		if !p.IsActive || p.TipoPersona != tipo {
			continue
		}
		if !f.idents.tieneActiva(p.ID) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return paginate(out, limit, offset), nil
}

func (f *fakePersonaRepo) Update(p *entity.Persona) error {
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePersonaRepo) Count() (int, error) {
	n := 0
	for _, p := range f.rows {
		if p.IsActive {
			n++
		}
	}
	return n, nil
}

func paginate(rows []*entity.Persona, limit, offset int) []*entity.Persona {
	if offset >= len(rows) {
		return nil
	}
	rows = rows[offset:]
	if limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

type fakeIdentificacionRepo struct {
	rows map[string]*entity.Identificacion
}

func (f *fakeIdentificacionRepo) Create(i *entity.Identificacion) error {
	cp := *i
	f.rows[i.ID] = &cp
	return nil
}

func (f *fakeIdentificacionRepo) GetByID(id string) (*entity.Identificacion, error) {
	i, ok := f.rows[id]
	if !ok || !i.IsActive {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (f *fakeIdentificacionRepo) GetByNumero(numero string) (*entity.Identificacion, error) {
	for _, i := range f.rows {
		if i.IsActive && i.Numero == numero {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeIdentificacionRepo) ListByPersona(personaID string) ([]entity.Identificacion, error) {
	var out []entity.Identificacion
	for _, i := range f.rows {
		if i.IsActive && i.PersonaID == personaID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (f *fakeIdentificacionRepo) Update(i *entity.Identificacion) error {
	cp := *i
	f.rows[i.ID] = &cp
	return nil
}

func (f *fakeIdentificacionRepo) DeactivateByPersona(personaID string) error {
	for _, i := range f.rows {
		if i.PersonaID == personaID {
			i.IsActive = false
		}
	}
	return nil
}

func (f *fakeIdentificacionRepo) tieneActiva(personaID string) bool {
	for _, i := range f.rows {
		if i.IsActive && i.PersonaID == personaID {
			return true
		}
	}
	return false
}

type fakeContactoRepo struct {
	rows map[string]*entity.Contacto
}

// Create replica el índice único parcial sobre valor: un valor activo
// repetido falla como fallaría el 23505 en el adaptador real.
func (f *fakeContactoRepo) Create(c *entity.Contacto) error {
	for _, existing := range f.rows {
		if existing.IsActive && existing.Valor == c.Valor {
			return domain.ErrContactoExists
		}
	}
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeContactoRepo) ListByPersona(personaID string) ([]entity.Contacto, error) {
	var out []entity.Contacto
	for _, c := range f.rows {
		if c.IsActive && c.PersonaID == personaID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeContactoRepo) DeactivateByPersona(personaID string) error {
	for _, c := range f.rows {
		if c.PersonaID == personaID {
			c.IsActive = false
		}
	}
	return nil
}

func (f *fakeContactoRepo) tieneActivo(personaID string) bool {
	for _, c := range f.rows {
		if c.IsActive && c.PersonaID == personaID {
			return true
		}
	}
	return false
}

type fakeClienteRepo struct {
	rows map[string]*entity.Cliente // por persona_id
}

func (f *fakeClienteRepo) Create(c *entity.Cliente) error {
	cp := *c
	f.rows[c.PersonaID] = &cp
	return nil
}

func (f *fakeClienteRepo) GetByPersona(personaID string) (*entity.Cliente, error) {
	c, ok := f.rows[personaID]
	if !ok || !c.IsActive {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClienteRepo) Update(c *entity.Cliente) error {
	cp := *c
	f.rows[c.PersonaID] = &cp
	return nil
}

func (f *fakeClienteRepo) DeactivateByPersona(personaID string) error {
	if c, ok := f.rows[personaID]; ok {
		c.IsActive = false
	}
	return nil
}

type fakeProveedorRepo struct {
	rows map[string]*entity.Proveedor
}

func (f *fakeProveedorRepo) Create(p *entity.Proveedor) error {
	cp := *p
	f.rows[p.PersonaID] = &cp
	return nil
}

func (f *fakeProveedorRepo) GetByPersona(personaID string) (*entity.Proveedor, error) {
	p, ok := f.rows[personaID]
	if !ok || !p.IsActive {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProveedorRepo) Update(p *entity.Proveedor) error {
	cp := *p
	f.rows[p.PersonaID] = &cp
	return nil
}

func (f *fakeProveedorRepo) DeactivateByPersona(personaID string) error {
	if p, ok := f.rows[personaID]; ok {
		p.IsActive = false
	}
	return nil
}

type fakeEmpleadoRepo struct {
	rows map[string]*entity.Empleado
}

func (f *fakeEmpleadoRepo) Create(e *entity.Empleado) error {
	cp := *e
	f.rows[e.PersonaID] = &cp
	return nil
}

func (f *fakeEmpleadoRepo) GetByPersona(personaID string) (*entity.Empleado, error) {
	e, ok := f.rows[personaID]
	if !ok || !e.IsActive {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmpleadoRepo) Update(e *entity.Empleado) error {
	cp := *e
	f.rows[e.PersonaID] = &cp
	return nil
}

func (f *fakeEmpleadoRepo) DeactivateByPersona(personaID string) error {
	if e, ok := f.rows[personaID]; ok {
		e.IsActive = false
	}
	return nil
}

// fakeTxRunner ejecuta el callback directo sobre los repos en memoria, sin
// semántica transaccional. Suficiente para probar la lógica de los casos de uso.
type fakeTxRunner struct {
	repos usecase.RegistroRepos
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(r usecase.RegistroRepos) error) error {
	return fn(f.repos)
}

// newRegistro arma el juego completo de fakes compartiendo el estado entre el
// runner y los repos de lectura.
func newRegistro() (usecase.RegistroRepos, *fakeTxRunner) {
	idents := &fakeIdentificacionRepo{rows: map[string]*entity.Identificacion{}}
	contactos := &fakeContactoRepo{rows: map[string]*entity.Contacto{}}
	repos := usecase.RegistroRepos{
		Personas:         &fakePersonaRepo{rows: map[string]*entity.Persona{}, idents: idents, contactos: contactos},
		Identificaciones: idents,
		Contactos:        contactos,
		Clientes:         &fakeClienteRepo{rows: map[string]*entity.Cliente{}},
		Proveedores:      &fakeProveedorRepo{rows: map[string]*entity.Proveedor{}},
		Empleados:        &fakeEmpleadoRepo{rows: map[string]*entity.Empleado{}},
	}
	return repos, &fakeTxRunner{repos: repos}
}

func strPtr(s string) *string { return &s }
