package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
)

func TestNewTransactionDate_FormatosAceptados(t *testing.T) {
	cases := []string{
		"2024-01-15",
		"2024/01/15",
		"2024.01.15",
		"2024-1-5", // mes y día sin relleno
		"2024-02-29", // bisiesto real
		"1900-01-01",
		"2100-12-31",
	}
	for _, v := range cases {
		d, err := valueobject.NewTransactionDate(v)
		require.NoError(t, err, v)
		assert.Equal(t, v, d.Value())
	}
}

func TestNewTransactionDate_RechazaFormatosInvalidos(t *testing.T) {
	cases := []string{
		"",
		"15-01-2024",  // día primero
		"2024-01/15",  // separadores mezclados
		"2024-13-01",  // mes 13
		"2024-00-10",  // mes 0
		"2024-01-00",  // día 0
		"2024-01-32",  // día 32
		"2023-02-29",  // 2023 no es bisiesto
		"1900-02-29",  // 1900 tampoco (divisible por 100, no por 400)
		"1899-12-31",  // año bajo el rango
		"2101-01-01",  // año sobre el rango
		"2024 01 15",  // separador no admitido
		"20240115",
	}
	for _, v := range cases {
		_, err := valueobject.NewTransactionDate(v)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "valor %q", v)
	}
}

func TestNewTransactionDate_AñoDivisiblePor400EsBisiesto(t *testing.T) {
	_, err := valueobject.NewTransactionDate("2000-02-29")
	assert.NoError(t, err)
}

func TestTransactionDate_CompareOrdenaPorCalendario(t *testing.T) {
	earlier, err := valueobject.NewTransactionDate("2024-01-31")
	require.NoError(t, err)
	later, err := valueobject.NewTransactionDate("2024-02-01")
	require.NoError(t, err)

	assert.Negative(t, earlier.Compare(later))
	assert.Positive(t, later.Compare(earlier))
	assert.Zero(t, earlier.Compare(earlier))
}

func TestTransactionDate_MismoDiaDistintoFormatoDesempataPorCadena(t *testing.T) {
	// "2024-1-5" y "2024/01/05" son el mismo día de calendario; el desempate
	// por la cadena original mantiene un orden total determinista.
	a, err := valueobject.NewTransactionDate("2024-1-5")
	require.NoError(t, err)
	b, err := valueobject.NewTransactionDate("2024/01/05")
	require.NoError(t, err)

	assert.Negative(t, a.Compare(b)) // "-" ordena antes que "/"
	assert.Positive(t, b.Compare(a))
}
