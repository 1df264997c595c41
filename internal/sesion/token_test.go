package sesion

import (
	"context"
	"testing"
	"time"

	"github.com/IMANOL01277/BollitoPy/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitirYValidar(t *testing.T) {
	m := NewManager("secreto-de-prueba", time.Hour)
	id := &Identidad{UsuarioID: uuid.New(), Nombre: "Ana", Correo: "ana@correo.com", Rol: model.RolAdministrador}

	tok, claims, err := m.Emitir(id)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	got, err := m.Validar(tok)
	require.NoError(t, err)
	back, err := got.Identidad()
	require.NoError(t, err)
	assert.Equal(t, id, back)
	assert.True(t, back.EsAdministrador())
}

func TestValidarRechazaOtraClave(t *testing.T) {
	tok, _, err := NewManager("uno", time.Hour).Emitir(&Identidad{UsuarioID: uuid.New()})
	require.NoError(t, err)

	_, err = NewManager("dos", time.Hour).Validar(tok)
	assert.ErrorIs(t, err, ErrSesionInvalida)
}

func TestValidarRechazaExpirada(t *testing.T) {
	m := NewManager("secreto", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, _, err := m.Emitir(&Identidad{UsuarioID: uuid.New()})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Validar(tok)
	assert.ErrorIs(t, err, ErrSesionInvalida)
}

func TestContexto(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	id := &Identidad{Rol: model.RolEmpleado}
	ctx := NewContext(context.Background(), id)
	assert.Same(t, id, FromContext(ctx))
	assert.False(t, FromContext(ctx).EsAdministrador())
}
