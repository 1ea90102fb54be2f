package entity

import "github.com/jhoicas/Costeo-api/internal/domain/valueobject"

// FormulaEntry es una línea de la receta de un producto fabricado: qué
// material consume y en qué proporción por unidad producida.
type FormulaEntry struct {
	ProductCode      valueobject.ProductCode
	MaterialCode     valueobject.ProductCode
	ConsumptionRatio valueobject.ConsumptionRatio
}
