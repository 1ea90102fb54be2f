// costeo ejecuta el pipeline de costeo por lotes sobre un libro xlsx: costea
// cada lote de producción, reconstruye el historial de inventario y guarda el
// libro de salida con ambos resultados.
//
// Uso: go run ./cmd/costeo [entrada.xlsx [salida.xlsx]]
// Sin argumentos usa las rutas de config.toml (o COSTEO_EXCEL_INPUT_PATH y
// COSTEO_EXCEL_OUTPUT_PATH).
//
// Los lotes que no pueden costearse quedan registrados en el log y en el
// resumen; solo un fallo de la corrida completa (abrir, esquema, guardar)
// termina con código de salida 1.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	appcosting "github.com/jhoicas/Costeo-api/internal/application/costing"
	"github.com/jhoicas/Costeo-api/internal/infrastructure/excel"
	"github.com/jhoicas/Costeo-api/pkg/config"
	"github.com/jhoicas/Costeo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		cfg.Excel.InputPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		cfg.Excel.OutputPath = os.Args[2]
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})

	runner := excel.NewRunnerFromConfig(cfg.Excel)
	uc := appcosting.NewRunCostingUseCase(runner, appcosting.Paths{
		Input:  cfg.Excel.InputPath,
		Output: cfg.Excel.OutputPath,
	}, log)

	summary, err := uc.Execute(uuid.New().String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "La corrida de costeo falló: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Costeo completado: %d lotes (%d fallidos), %d asientos de historial en %d ms → %s\n",
		summary.TotalBatches, summary.FailedBatches, summary.HistoryRecords, summary.DurationMillis, summary.OutputPath)
}
