package repository

import "github.com/jhoicas/Costeo-api/internal/domain/entity"

// FreightMasterRepository define el puerto de consulta del maestro de
// fletes (DIP).
type FreightMasterRepository interface {
	// FindByCode devuelve la tarifa del código T + 4 dígitos. Retorna
	// ErrNotFound si el código no existe en el maestro.
	FindByCode(code string) (entity.FreightMaster, error)
}
