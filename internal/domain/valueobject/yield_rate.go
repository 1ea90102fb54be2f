package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Costeo-api/internal/domain"
)

var yieldRateMax = decimal.NewFromInt(1)

// YieldRate es la tasa de rendimiento del proceso, entre 0.0 y 1.0.
type YieldRate struct {
	value decimal.Decimal
}

// NewYieldRate valida y construye una tasa de rendimiento.
func NewYieldRate(value decimal.Decimal) (YieldRate, error) {
	if value.IsNegative() || value.GreaterThan(yieldRateMax) {
		return YieldRate{}, fmt.Errorf("la tasa de rendimiento debe estar entre 0.0 y 1.0 (%s): %w", value, domain.ErrInvalidInput)
	}
	return YieldRate{value: value}, nil
}

// Value devuelve la tasa como decimal.
func (y YieldRate) Value() decimal.Decimal { return y.value }

func (y YieldRate) String() string { return y.value.String() }
