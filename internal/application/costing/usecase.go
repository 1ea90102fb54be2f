package costing

import (
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Costeo-api/internal/application/dto"
	domaincosting "github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	domaininventory "github.com/jhoicas/Costeo-api/internal/domain/inventory"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
	"github.com/jhoicas/Costeo-api/pkg/logger"
)

// Paths rutas de entrada y salida, solo informativas para el resumen.
type Paths struct {
	Input  string
	Output string
}

// RunCostingUseCase orquesta un run completo: costos por lote sobre la hoja
// de producción, libro de movimientos de inventario, y escritura del
// artefacto de salida. El mutex serializa los runs porque todos comparten
// la misma ruta de salida.
type RunCostingUseCase struct {
	runner WorkbookRunner
	paths  Paths
	log    *logger.Logger
	mu     sync.Mutex
}

// NewRunCostingUseCase construye el caso de uso de costeo.
func NewRunCostingUseCase(runner WorkbookRunner, paths Paths, log *logger.Logger) *RunCostingUseCase {
	return &RunCostingUseCase{runner: runner, paths: paths, log: log}
}

// Execute corre el pipeline completo bajo el runID dado. Un lote que no
// puede costearse se registra como fallo y no detiene el resto: su fila
// queda sin costos en la salida. Los errores de fuente o de escritura sí
// abortan el run completo.
func (uc *RunCostingUseCase) Execute(runID string) (*dto.RunSummaryResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	start := time.Now()
	log := uc.log.With().Str("run_id", runID).Logger()
	summary := &dto.RunSummaryResponse{RunID: runID, InputPath: uc.paths.Input, OutputPath: uc.paths.Output}

	err := uc.runner.Run(func(repos SourceRepositories, writer ResultWriter) error {
		productions, err := repos.Productions.FindAll()
		if err != nil {
			return fmt.Errorf("leer lotes de producción: %w", err)
		}
		log.Info().Int("lotes", len(productions)).Msg("inicio del cálculo de costos")
		summary.TotalBatches = len(productions)

		costs := make([]dto.ProductionCostResponse, 0, len(productions))
		for i, production := range productions {
			row := i + 1
			result, err := CalculateBatch(row, production, repos)
			if err != nil {
				log.Warn().Err(err).Int("fila", row).Str("producto", production.ProductCode.Value()).Msg("lote sin costear")
				summary.Failures = append(summary.Failures, dto.BatchFailure{
					RowNumber:   row,
					ProductCode: production.ProductCode.Value(),
					Message:     err.Error(),
				})
				continue
			}
			costs = append(costs, result)
		}
		summary.FailedBatches = len(summary.Failures)
		summary.Costs = costs

		transactions, err := repos.Transactions.FindAllTransactions()
		if err != nil {
			return fmt.Errorf("leer movimientos de inventario: %w", err)
		}
		records, err := domaininventory.CreateHistory(transactions)
		if err != nil {
			return fmt.Errorf("construir el historial: %w", err)
		}
		history := make([]dto.HistoryRecordResponse, 0, len(records))
		for _, r := range records {
			history = append(history, dto.NewHistoryRecordResponse(r))
		}
		summary.HistoryRecords = len(history)

		if err := writer.WriteCosts(costs); err != nil {
			return fmt.Errorf("escribir costos: %w", err)
		}
		if err := writer.WriteHistory(history); err != nil {
			return fmt.Errorf("escribir historial: %w", err)
		}
		if err := writer.Save(); err != nil {
			return fmt.Errorf("guardar el libro de salida: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary.DurationMillis = time.Since(start).Milliseconds()
	log.Info().
		Int("lotes", summary.TotalBatches).
		Int("fallidos", summary.FailedBatches).
		Int("asientos", summary.HistoryRecords).
		Int64("duracion_ms", summary.DurationMillis).
		Msg("run completado")
	return summary, nil
}

// CalculateBatch calcula el desglose completo de un lote: consumo por
// material, costo de materia prima, costo unitario por tonelada (sobre el
// total de kg consumidos), costo de rendimiento y costo total.
func CalculateBatch(rowNumber int, production entity.Production, repos SourceRepositories) (dto.ProductionCostResponse, error) {
	result, err := domaincosting.CalculateMaterialConsumption(production, repos.Formulas, repos.Purchases, repos.Freights)
	if err != nil {
		return dto.ProductionCostResponse{}, err
	}

	totalKg := valueobject.ZeroQuantity()
	for _, c := range result.Consumptions {
		totalKg = totalKg.Add(c.Quantity)
	}

	raw := domaincosting.CalculateRawMaterialCost(result.Consumptions)
	unit := domaincosting.CalculateUnitCost(raw, totalKg)
	yield := domaincosting.CalculateYieldCost(raw, production.YieldRate)
	total := domaincosting.CalculateTotalMaterialCost(yield, production.CoagulantCost, production.ClayTreatmentCost, result.TotalFreightCost)

	consumptions := make([]dto.MaterialConsumptionResponse, 0, len(result.Consumptions))
	for _, c := range result.Consumptions {
		consumptions = append(consumptions, dto.NewMaterialConsumptionResponse(c))
	}

	return dto.ProductionCostResponse{
		RowNumber:         rowNumber,
		ProductCode:       production.ProductCode.Value(),
		Lot:               production.Lot,
		Quantity:          production.Quantity.Value(),
		RawMaterialCost:   raw.Value(),
		UnitCost:          unit.Value(),
		YieldCost:         yield.Value(),
		CoagulantCost:     production.CoagulantCost.Value(),
		ClayTreatmentCost: production.ClayTreatmentCost.Value(),
		FreightCost:       result.TotalFreightCost.Value(),
		TotalMaterialCost: total.Value(),
		Consumptions:      consumptions,
	}, nil
}
