package costing

import (
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

// SourceRepositories agrupa los repositorios construidos sobre el libro de
// entrada. Viven lo que dura un run: el archivo se relee en cada ejecución.
type SourceRepositories struct {
	Productions  repository.ProductionRepository
	Formulas     repository.FormulaRepository
	Purchases    repository.PurchaseRepository
	Freights     repository.FreightMasterRepository
	Transactions repository.InventoryTransactionRepository
}

// ResultWriter escribe los resultados de un run en el artefacto de salida:
// los costos sobre la hoja de producción, el historial en su propia hoja, y
// Save materializa todo de una vez. Nada queda persistido si Save no corre.
type ResultWriter interface {
	WriteCosts(costs []dto.ProductionCostResponse) error
	WriteHistory(records []dto.HistoryRecordResponse) error
	Save() error
}

// WorkbookRunner abre la fuente de datos, construye repositorios y escritor,
// ejecuta fn y libera los recursos al terminar. Mismo contrato que un runner
// transaccional: todo lo que fn recibe deja de ser válido cuando fn retorna.
type WorkbookRunner interface {
	Run(fn func(repos SourceRepositories, writer ResultWriter) error) error
}
