package repository

import "github.com/jhoicas/Costeo-api/internal/domain/entity"

// ProductionRepository define el puerto de lectura de lotes de producción
// (DIP).
type ProductionRepository interface {
	// FindAll devuelve los lotes en el orden de la fuente. Ese orden es el
	// ordinal con el que después se escriben los resultados.
	FindAll() ([]entity.Production, error)
}
