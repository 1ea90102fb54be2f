package repository

import (
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
)

// PurchaseRepository define el puerto de consulta de compras (DIP).
type PurchaseRepository interface {
	// FindLatestPrice devuelve la compra más reciente del material, que fija
	// su precio unitario vigente. Retorna ErrNotFound si el material nunca
	// se compró.
	FindLatestPrice(code valueobject.ProductCode) (entity.Purchase, error)
}
