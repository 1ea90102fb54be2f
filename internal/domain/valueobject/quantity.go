package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Costeo-api/internal/domain"
)

// Quantity es una cantidad física en kg. Nunca es negativa.
type Quantity struct {
	value decimal.Decimal
}

// NewQuantity valida y construye una cantidad.
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	if value.IsNegative() {
		return Quantity{}, fmt.Errorf("la cantidad no puede ser negativa (%s): %w", value, domain.ErrInvalidInput)
	}
	return Quantity{value: value}, nil
}

// ZeroQuantity devuelve la cantidad cero, punto de partida de las sumas.
func ZeroQuantity() Quantity { return Quantity{} }

// Value devuelve la cantidad como decimal.
func (q Quantity) Value() decimal.Decimal { return q.value }

// Mul multiplica la cantidad por un factor no negativo.
func (q Quantity) Mul(factor decimal.Decimal) Quantity {
	return Quantity{value: q.value.Mul(factor)}
}

// Add suma otra cantidad.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value.Add(other.value)}
}

// IsZero indica si la cantidad es exactamente cero.
func (q Quantity) IsZero() bool { return q.value.IsZero() }

func (q Quantity) String() string { return q.value.String() }
