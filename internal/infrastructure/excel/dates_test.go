package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Costeo-api/internal/domain"
)

func TestSerialToDate_SerialesModernos(t *testing.T) {
	assert.Equal(t, "2024-01-01", serialToDate(45292))
	assert.Equal(t, "2024-02-29", serialToDate(45351)) // bisiesto real
	assert.Equal(t, "1900-01-01", serialToDate(1))
}

func TestSerialToDate_CompensaElBisiestoFantasmaDe1900(t *testing.T) {
	// Excel cree que 1900-02-29 existió (serial 60); los seriales 60 y 61
	// caen ambos en el 1 de marzo real.
	assert.Equal(t, "1900-02-28", serialToDate(59))
	assert.Equal(t, "1900-03-01", serialToDate(60))
	assert.Equal(t, "1900-03-01", serialToDate(61))
	assert.Equal(t, "1900-03-02", serialToDate(62))
}

func TestSerialToDate_DescartaLaFraccionHoraria(t *testing.T) {
	assert.Equal(t, "2024-01-01", serialToDate(45292.75))
}

func TestCellDate_TextoYSerial(t *testing.T) {
	d, err := cellDate("Ventas", 3, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", d.Value())

	d, err = cellDate("Ventas", 4, "45292")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", d.Value())
}

func TestCellDate_ErroresNombranHojaYFila(t *testing.T) {
	_, err := cellDate("Ventas", 7, "no es fecha")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Ventas")
	assert.Contains(t, err.Error(), "7")

	_, err = cellDate("Ventas", 8, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
