package repository

import (
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
)

// FormulaRepository define el puerto de consulta de recetas (DIP).
type FormulaRepository interface {
	// FindByProductCode devuelve las líneas de la receta del producto, en el
	// orden de la fuente. Retorna ErrNotFound si el producto no tiene receta.
	FindByProductCode(code valueobject.ProductCode) ([]entity.FormulaEntry, error)
}
