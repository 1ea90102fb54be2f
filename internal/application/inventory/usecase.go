package inventory

import (
	"fmt"

	appcosting "github.com/jhoicas/Costeo-api/internal/application/costing"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	domaininventory "github.com/jhoicas/Costeo-api/internal/domain/inventory"
)

// BuildHistoryUseCase construye el libro de movimientos para la lectura vía
// API. Comparte el runner con el costeo pero solo consume los movimientos:
// no escribe el libro de salida.
type BuildHistoryUseCase struct {
	runner appcosting.WorkbookRunner
}

// NewBuildHistoryUseCase construye el caso de uso de historial.
func NewBuildHistoryUseCase(runner appcosting.WorkbookRunner) *BuildHistoryUseCase {
	return &BuildHistoryUseCase{runner: runner}
}

// Execute relee la fuente y devuelve el historial ordenado con saldos
// corrientes.
func (uc *BuildHistoryUseCase) Execute() ([]dto.HistoryRecordResponse, error) {
	var out []dto.HistoryRecordResponse
	err := uc.runner.Run(func(repos appcosting.SourceRepositories, _ appcosting.ResultWriter) error {
		transactions, err := repos.Transactions.FindAllTransactions()
		if err != nil {
			return fmt.Errorf("leer movimientos de inventario: %w", err)
		}
		records, err := domaininventory.CreateHistory(transactions)
		if err != nil {
			return fmt.Errorf("construir el historial: %w", err)
		}
		out = make([]dto.HistoryRecordResponse, 0, len(records))
		for _, r := range records {
			out = append(out, dto.NewHistoryRecordResponse(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
