package entity

import "github.com/jhoicas/Costeo-api/internal/domain/valueobject"

// Production es un lote de producción leído de la hoja de producción.
// Lot es texto libre de trazabilidad y puede venir vacío; los costos de
// coagulante y tratamiento de arcilla son cero cuando la celda está vacía.
type Production struct {
	ProductCode       valueobject.ProductCode
	Lot               string
	Quantity          valueobject.Quantity
	YieldRate         valueobject.YieldRate
	CoagulantCost     valueobject.Amount
	ClayTreatmentCost valueobject.Amount
}
