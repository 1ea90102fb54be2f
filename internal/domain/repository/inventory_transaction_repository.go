package repository

import "github.com/jhoicas/Costeo-api/internal/domain/entity"

// InventoryTransactionRepository define el puerto de lectura de movimientos
// de inventario (DIP).
type InventoryTransactionRepository interface {
	// FindAllTransactions devuelve los movimientos de todas las fuentes, sin
	// orden garantizado. El ordenamiento es responsabilidad del dominio.
	FindAllTransactions() ([]entity.InventoryTransaction, error)
}
