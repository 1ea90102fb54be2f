package entity

import "github.com/jhoicas/Costeo-api/internal/domain/valueobject"

// MaterialConsumption es una línea de consumo calculada para un lote de
// producción: cuánto material se consumió, a qué precio, y el flete que le
// corresponde. PurchaseQuantity y FreightDescriptor se arrastran de la
// compra como datos de trazabilidad.
type MaterialConsumption struct {
	MaterialCode      valueobject.ProductCode
	MaterialName      string
	Quantity          valueobject.Quantity
	UnitPrice         valueobject.Amount
	Cost              valueobject.Amount
	FreightCost       valueobject.Amount
	FreightKgPrice    valueobject.Amount
	PurchaseQuantity  valueobject.Quantity
	FreightDescriptor string
}
