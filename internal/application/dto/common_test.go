package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-meias/internal/application/dto"
)

func TestFormValue_AceptaStringNumeroYNull(t *testing.T) {
	var in dto.MovementInput
	require.NoError(t, json.Unmarshal([]byte(`{"produto_id": 7, "quantidade": " 5 ", "tipo": "entrada"}`), &in))
	assert.Equal(t, dto.FormValue("7"), in.ProdutoID)
	assert.Equal(t, "5", in.Quantidade.Trimmed())

	require.NoError(t, json.Unmarshal([]byte(`{"produto_id": null, "quantidade": "abc"}`), &in))
	assert.Equal(t, dto.FormValue(""), in.ProdutoID)
	assert.Equal(t, dto.FormValue("abc"), in.Quantidade)
}
