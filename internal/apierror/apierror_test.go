package apierror

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKMergesPayload(t *testing.T) {
	body := OK("Producto creado correctamente", map[string]any{"id_producto": "x"})
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Producto creado correctamente", body["message"])
	assert.Equal(t, "x", body["id_producto"])

	_, hasMsg := OK("", nil)["message"]
	assert.False(t, hasMsg)
}

func TestNewSerializaSuccessFalse(t *testing.T) {
	raw, err := json.Marshal(New("Acción no válida"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Acción no válida"}`, string(raw))
}
