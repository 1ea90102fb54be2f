package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Costeo-api/internal/domain"
)

// ConsumptionRatio es la fracción de la cantidad producida que se consume de
// un material. Puede superar 1.0 (materiales con merma alta).
type ConsumptionRatio struct {
	value decimal.Decimal
}

// NewConsumptionRatio valida y construye un ratio de consumo.
func NewConsumptionRatio(value decimal.Decimal) (ConsumptionRatio, error) {
	if value.IsNegative() {
		return ConsumptionRatio{}, fmt.Errorf("el ratio de consumo no puede ser negativo (%s): %w", value, domain.ErrInvalidInput)
	}
	return ConsumptionRatio{value: value}, nil
}

// Value devuelve el ratio como decimal.
func (c ConsumptionRatio) Value() decimal.Decimal { return c.value }

func (c ConsumptionRatio) String() string { return c.value.String() }
