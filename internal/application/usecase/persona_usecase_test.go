package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/personas-api/internal/application/dto"
	"github.com/jcastro/personas-api/internal/application/usecase"
	"github.com/jcastro/personas-api/internal/domain"
)

func naturalRequest(numero string) dto.CreatePersonaRequest {
	return dto.CreatePersonaRequest{
		TipoPersona: "natural",
		Nombre:      strPtr("María"),
		Apellido:    strPtr("Quispe"),
		Identificaciones: []dto.CreateIdentificacionRequest{
			{Tipo: "cedula", Numero: numero, EsPrincipal: true},
		},
		Contactos: []dto.CreateContactoRequest{
			{Tipo: "celular", Valor: "+51 999 111 222", EsPrincipal: true},
		},
	}
}

func juridicaRequest(numero string) dto.CreatePersonaRequest {
	return dto.CreatePersonaRequest{
		TipoPersona: "juridica",
		RazonSocial: strPtr("Comercial Andina S.A.C."),
		Identificaciones: []dto.CreateIdentificacionRequest{
			{Tipo: "ruc", Numero: numero, EsPrincipal: true},
		},
		Contactos: []dto.CreateContactoRequest{
			{Tipo: "email", Valor: "ventas@andina.pe"},
		},
	}
}

func TestPersonaCreate_AgregadoCompleto(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	out, err := uc.Create(context.Background(), naturalRequest("45678901"))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "natural", out.TipoPersona)
	require.NotNil(t, out.Nombre)
	assert.Equal(t, "María", *out.Nombre)
	assert.True(t, out.IsActive)
	require.Len(t, out.Identificaciones, 1)
	assert.Equal(t, "45678901", out.Identificaciones[0].Numero)
	require.Len(t, out.Contactos, 1)
	assert.Equal(t, "+51 999 111 222", out.Contactos[0].Valor)
	assert.Nil(t, out.Cliente)
}

func TestPersonaCreate_SinIdentificaciones(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	in := naturalRequest("45678901")
	in.Identificaciones = nil
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"una persona debe nacer con al menos una identificación")
}

func TestPersonaCreate_NumeroDuplicado(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	_, err := uc.Create(context.Background(), naturalRequest("45678901"))
	require.NoError(t, err)

	otra := naturalRequest("45678901")
	otra.Nombre = strPtr("Pedro")
	_, err = uc.Create(context.Background(), otra)
	assert.ErrorIs(t, err, domain.ErrIdentificacionExists,
		"el número debe ser único entre registros activos")
}

func TestPersonaCreate_ContactoDuplicado(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	_, err := uc.Create(context.Background(), naturalRequest("45678901"))
	require.NoError(t, err)

	// Mismo valor de contacto en otra persona: el valor es único entre
	// contactos activos, igual que el número de identificación.
	otra := naturalRequest("45678902")
	_, err = uc.Create(context.Background(), otra)
	assert.ErrorIs(t, err, domain.ErrContactoExists)

	// Con un valor distinto la creación procede.
	otra.Contactos[0].Valor = "+51 999 333 444"
	_, err = uc.Create(context.Background(), otra)
	assert.NoError(t, err)
}

func TestPersonaCreate_NaturalSinNombre(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	in := naturalRequest("45678901")
	in.Nombre = nil
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPersonaCreate_NaturalConRazonSocial(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	in := naturalRequest("45678901")
	in.RazonSocial = strPtr("No Corresponde S.A.")
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"natural y jurídica no mezclan campos de nombre")
}

func TestPersonaCreate_JuridicaSinRazonSocial(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	in := juridicaRequest("20123456789")
	in.RazonSocial = nil
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPersonaGet_NoExiste(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	_, err := uc.Get("00000000-0000-0000-0000-00000000dead")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPersonaGetByIdentificacion(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	creada, err := uc.Create(context.Background(), juridicaRequest("20123456789"))
	require.NoError(t, err)

	out, err := uc.GetByIdentificacion("20123456789")
	require.NoError(t, err)
	assert.Equal(t, creada.ID, out.ID)

	_, err = uc.GetByIdentificacion("99999999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPersonaList_FiltroPorTipoConservaTotalGlobal(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	_, err := uc.Create(context.Background(), naturalRequest("45678901"))
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), juridicaRequest("20123456789"))
	require.NoError(t, err)

	out, err := uc.List(0, 10, "juridica")
	require.NoError(t, err)
	require.Len(t, out.Personas, 1)
	assert.Equal(t, "juridica", out.Personas[0].TipoPersona)
	// El total es el conteo global de personas activas, no el del filtro.
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 10, out.PerPage)
}

func TestPersonaList_TipoInvalido(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	_, err := uc.List(0, 10, "extraterrestre")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPersonaList_SinContactoNoAparece(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	in := naturalRequest("45678901")
	in.Contactos = nil
	creada, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	// El listado sin filtro exige identificación Y contacto activos; la
	// persona sigue alcanzable por ID.
	out, err := uc.List(0, 10, "")
	require.NoError(t, err)
	assert.Empty(t, out.Personas)
	assert.Equal(t, 1, out.Total)

	got, err := uc.Get(creada.ID)
	require.NoError(t, err)
	assert.Equal(t, creada.ID, got.ID)
}

func TestPersonaList_Paginacion(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	numeros := []string{"10000001", "10000002", "10000003"}
	for _, n := range numeros {
		in := naturalRequest(n)
		in.Contactos[0].Valor = "+51 999 000 " + n
		_, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	out, err := uc.List(2, 2, "")
	require.NoError(t, err)
	assert.Len(t, out.Personas, 1)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 2, out.Page)
}

func TestPersonaUpdate_ParcheParcial(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	creada, err := uc.Create(context.Background(), naturalRequest("45678901"))
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), creada.ID, dto.UpdatePersonaRequest{
		Apellido: strPtr("Quispe Mamani"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Apellido)
	assert.Equal(t, "Quispe Mamani", *out.Apellido)
	// El nombre no venía en el parche y queda intacto.
	require.NotNil(t, out.Nombre)
	assert.Equal(t, "María", *out.Nombre)
}

func TestPersonaUpdate_NumeroIdentificacion(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	creada, err := uc.Create(context.Background(), naturalRequest("45678901"))
	require.NoError(t, err)
	identID := creada.Identificaciones[0].ID

	out, err := uc.Update(context.Background(), creada.ID, dto.UpdatePersonaRequest{
		Identificaciones: []dto.UpdateIdentificacionRequest{
			{ID: identID, Numero: strPtr("45678902")},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Identificaciones, 1)
	assert.Equal(t, "45678902", out.Identificaciones[0].Numero)
}

func TestPersonaUpdate_NumeroDeOtraPersona(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	primera, err := uc.Create(context.Background(), naturalRequest("45678901"))
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), juridicaRequest("20123456789"))
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), primera.ID, dto.UpdatePersonaRequest{
		Identificaciones: []dto.UpdateIdentificacionRequest{
			{ID: primera.Identificaciones[0].ID, Numero: strPtr("20123456789")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrIdentificacionExists)
}

func TestPersonaUpdate_MismoNumeroNoConflicta(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	creada, err := uc.Create(context.Background(), naturalRequest("45678901"))
	require.NoError(t, err)

	// Re-enviar el número vigente de la propia identificación es un no-op.
	_, err = uc.Update(context.Background(), creada.ID, dto.UpdatePersonaRequest{
		Identificaciones: []dto.UpdateIdentificacionRequest{
			{ID: creada.Identificaciones[0].ID, Numero: strPtr("45678901")},
		},
	})
	assert.NoError(t, err)
}

func TestPersonaUpdate_CambioDeTipoRevalidaNombres(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	creada, err := uc.Create(context.Background(), naturalRequest("45678901"))
	require.NoError(t, err)

	// Pasar a jurídica conservando nombre y sin razón social es incoherente.
	_, err = uc.Update(context.Background(), creada.ID, dto.UpdatePersonaRequest{
		TipoPersona: strPtr("juridica"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// El cambio de tipo procede cuando el parche deja los campos coherentes.
	out, err := uc.Update(context.Background(), creada.ID, dto.UpdatePersonaRequest{
		TipoPersona: strPtr("juridica"),
		Nombre:      strPtr(""),
		RazonSocial: strPtr("Quispe e Hijos S.R.L."),
	})
	require.NoError(t, err)
	assert.Equal(t, "juridica", out.TipoPersona)
	require.NotNil(t, out.RazonSocial)
	assert.Equal(t, "Quispe e Hijos S.R.L.", *out.RazonSocial)
}

func TestPersonaUpdate_NoExiste(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	_, err := uc.Update(context.Background(), "00000000-0000-0000-0000-00000000dead", dto.UpdatePersonaRequest{
		Apellido: strPtr("X"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPersonaDelete_CascadaYLiberaNumero(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)
	perfiles := usecase.NewPerfilUseCase(tx)

	creada, err := uc.Create(context.Background(), naturalRequest("45678901"))
	require.NoError(t, err)
	_, err = perfiles.AttachCliente(context.Background(), creada.ID, dto.ClienteRequest{DiasCredito: 30})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), creada.ID))

	_, err = uc.Get(creada.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "la persona borrada no debe ser legible")

	total, err := uc.Count()
	require.NoError(t, err)
	assert.Zero(t, total, "el conteo ignora personas inactivas")

	// La cascada desactivó la identificación, así que el número queda libre
	// para un registro nuevo.
	_, err = uc.Create(context.Background(), naturalRequest("45678901"))
	assert.NoError(t, err)
}

func TestPersonaDelete_NoExiste(t *testing.T) {
	repos, tx := newRegistro()
	uc := usecase.NewPersonaUseCase(tx, repos)

	err := uc.Delete(context.Background(), "00000000-0000-0000-0000-00000000dead")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
