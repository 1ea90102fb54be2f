package valueobject

// InventoryType clasifica un movimiento de inventario según su origen.
type InventoryType string

const (
	InventoryTypeProduction InventoryType = "PRODUCTION"
	InventoryTypePurchase   InventoryType = "PURCHASE"
	InventoryTypeSales      InventoryType = "SALES"
)

// IsInbound indica si el movimiento suma al saldo (producción y compra
// entran, venta sale).
func (t InventoryType) IsInbound() bool {
	return t == InventoryTypeProduction || t == InventoryTypePurchase
}

// Label devuelve la etiqueta en español que se escribe en la hoja de
// historial.
func (t InventoryType) Label() string {
	switch t {
	case InventoryTypeProduction:
		return "Producción"
	case InventoryTypePurchase:
		return "Compra"
	case InventoryTypeSales:
		return "Venta"
	default:
		return string(t)
	}
}

func (t InventoryType) String() string { return string(t) }
