package entity

import "github.com/jhoicas/Costeo-api/internal/domain/valueobject"

// Purchase es el registro de compra de un material: el precio unitario
// vigente y el flete con el que llegó (código de tarifa o precio directo).
// Quantity es la cantidad del lote de compra y se conserva solo como dato de
// trazabilidad, no participa del costeo.
type Purchase struct {
	ProductName string
	UnitPrice   valueobject.Amount
	Quantity    valueobject.Quantity
	FreightCode valueobject.FreightCode
}
