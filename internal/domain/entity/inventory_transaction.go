package entity

import "github.com/jhoicas/Costeo-api/internal/domain/valueobject"

// InventoryTransaction es un movimiento de inventario normalizado desde
// cualquiera de las hojas de origen (producción, compras o ventas). La
// cantidad siempre es la magnitud del movimiento; el signo lo aporta Type.
type InventoryTransaction struct {
	Date        valueobject.TransactionDate
	Type        valueobject.InventoryType
	ProductCode valueobject.ProductCode
	ProductName string
	Quantity    valueobject.Quantity
}
