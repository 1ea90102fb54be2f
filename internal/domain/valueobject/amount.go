package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Costeo-api/internal/domain"
)

// Amount es un importe monetario no negativo. Las operaciones derivadas
// (Add, Mul, Div con operandos válidos) preservan la invariante.
type Amount struct {
	value decimal.Decimal
}

// NewAmount valida y construye un importe.
func NewAmount(value decimal.Decimal) (Amount, error) {
	if value.IsNegative() {
		return Amount{}, fmt.Errorf("el importe no puede ser negativo (%s): %w", value, domain.ErrInvalidInput)
	}
	return Amount{value: value}, nil
}

// ZeroAmount devuelve el importe cero, punto de partida de las sumas.
func ZeroAmount() Amount { return Amount{} }

// Value devuelve el importe como decimal.
func (a Amount) Value() decimal.Decimal { return a.value }

// Add suma otro importe.
func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

// Mul multiplica por un factor no negativo (cantidad, ratio o tasa).
func (a Amount) Mul(factor decimal.Decimal) Amount {
	return Amount{value: a.value.Mul(factor)}
}

// Div divide por un divisor positivo. El llamador garantiza que el divisor
// no sea cero.
func (a Amount) Div(divisor decimal.Decimal) Amount {
	return Amount{value: a.value.Div(divisor)}
}

// IsZero indica si el importe es exactamente cero.
func (a Amount) IsZero() bool { return a.value.IsZero() }

func (a Amount) String() string { return a.value.String() }
