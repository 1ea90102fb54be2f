package valueobject

import "github.com/shopspring/decimal"

// InventoryBalance es el saldo acumulado de un producto. Tiene signo: un
// saldo negativo es un faltante y nunca se rechaza ni se recorta.
type InventoryBalance struct {
	value decimal.Decimal
}

// NewInventoryBalance construye un saldo. No hay cota inferior.
func NewInventoryBalance(value decimal.Decimal) InventoryBalance {
	return InventoryBalance{value: value}
}

// Value devuelve el saldo como decimal.
func (b InventoryBalance) Value() decimal.Decimal { return b.value }

// Add aplica un cambio con signo y devuelve el nuevo saldo.
func (b InventoryBalance) Add(change decimal.Decimal) InventoryBalance {
	return InventoryBalance{value: b.value.Add(change)}
}

func (b InventoryBalance) String() string { return b.value.String() }
