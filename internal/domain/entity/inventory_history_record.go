package entity

import "github.com/jhoicas/Costeo-api/internal/domain/valueobject"

// InventoryHistoryRecord es un asiento del libro de movimientos: el saldo
// antes del movimiento, la magnitud del cambio y el saldo resultante.
// BaseQuantity y Balance tienen signo; ChangeQuantity nunca.
type InventoryHistoryRecord struct {
	Date           valueobject.TransactionDate
	Type           valueobject.InventoryType
	ProductCode    valueobject.ProductCode
	ProductName    string
	BaseQuantity   valueobject.InventoryBalance
	ChangeQuantity valueobject.Quantity
	Balance        valueobject.InventoryBalance
}
