package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Costeo-api/internal/domain"
)

func TestNormalizeHeader_IgnoraTildesYMayusculas(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Producción", "produccion"},
		{"CÓDIGO PRODUCTO", "codigo producto"},
		{"  código  producto  ", "codigo producto"},
		{"Válido desde", "valido desde"},
		{"Costo unitario (t)", "costo unitario (t)"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeHeader(tc.in), "entrada %q", tc.in)
	}
}

func TestResolveHeader_ResuelveIndicesPorFormaCanonica(t *testing.T) {
	h := resolveHeader("Compras", []string{"Fecha", "CÓDIGO PRODUCTO", "Producto", "Precio unitario", "Cantidad", "Flete"})

	idx, err := h.column(colProductCode)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = h.column(colFreight)
	require.NoError(t, err)
	assert.Equal(t, 5, idx)
}

func TestResolveHeader_ColumnaFaltanteNombraHojaYColumna(t *testing.T) {
	h := resolveHeader("Compras", []string{"Fecha", "Producto"})

	_, err := h.column(colUnitPrice)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Compras")
	assert.Contains(t, err.Error(), colUnitPrice)
}

func TestResolveHeader_DuplicadosGanaElPrimero(t *testing.T) {
	h := resolveHeader("Fletes", []string{"Código flete", "Patrón", "código FLETE"})

	idx, err := h.column(colFreightCode)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestCellAt_FilasCortasDevuelvenVacio(t *testing.T) {
	row := []string{"a", " b "}
	assert.Equal(t, "a", cellAt(row, 0))
	assert.Equal(t, "b", cellAt(row, 1))
	assert.Equal(t, "", cellAt(row, 2))
	assert.Equal(t, "", cellAt(row, -1))
}

func TestRowEmpty(t *testing.T) {
	assert.True(t, rowEmpty(nil))
	assert.True(t, rowEmpty([]string{"", "  ", "\t"}))
	assert.False(t, rowEmpty([]string{"", "x"}))
}
