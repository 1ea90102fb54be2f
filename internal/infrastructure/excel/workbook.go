package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	appcosting "github.com/jhoicas/Costeo-api/internal/application/costing"
	"github.com/jhoicas/Costeo-api/pkg/config"
)

// SheetNames nombres de las hojas del libro de entrada y de la hoja de
// historial generada. Vienen de la configuración.
type SheetNames struct {
	Formulas    string
	Freights    string
	Purchases   string
	Productions string
	Sales       string
	History     string
}

// Config rutas y hojas con las que trabaja el adaptador Excel.
type Config struct {
	InputPath  string
	OutputPath string
	Sheets     SheetNames
}

var _ appcosting.WorkbookRunner = (*Runner)(nil)

// Runner implementa el puerto WorkbookRunner sobre un archivo xlsx. Cada Run
// relee el archivo de entrada, así que un run siempre ve la última versión
// guardada.
type Runner struct {
	cfg Config
}

// NewRunner construye el runner del libro.
func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg}
}

// NewRunnerFromConfig construye el runner desde la configuración de la app.
func NewRunnerFromConfig(cfg config.ExcelConfig) *Runner {
	return NewRunner(Config{
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		Sheets: SheetNames{
			Formulas:    cfg.Sheets.Formulas,
			Freights:    cfg.Sheets.Freights,
			Purchases:   cfg.Sheets.Purchases,
			Productions: cfg.Sheets.Productions,
			Sales:       cfg.Sheets.Sales,
			History:     cfg.Sheets.History,
		},
	})
}

// Run abre el libro, construye los repositorios y el escritor, ejecuta fn y
// libera el archivo al terminar.
func (r *Runner) Run(fn func(appcosting.SourceRepositories, appcosting.ResultWriter) error) error {
	f, err := excelize.OpenFile(r.cfg.InputPath, excelize.Options{RawCellValue: true})
	if err != nil {
		return fmt.Errorf("abrir el libro de entrada %q: %w", r.cfg.InputPath, err)
	}
	defer f.Close()

	repos, writer, err := buildAdapters(f, r.cfg)
	if err != nil {
		return err
	}
	return fn(repos, writer)
}

// buildAdapters construye los cinco repositorios y el escritor sobre un
// libro ya abierto. Separado de Run para poder ejercitarlo con libros en
// memoria.
func buildAdapters(f *excelize.File, cfg Config) (appcosting.SourceRepositories, appcosting.ResultWriter, error) {
	formulas, err := NewFormulaRepository(f, cfg.Sheets.Formulas)
	if err != nil {
		return appcosting.SourceRepositories{}, nil, err
	}
	freights, err := NewFreightMasterRepository(f, cfg.Sheets.Freights)
	if err != nil {
		return appcosting.SourceRepositories{}, nil, err
	}
	purchases, err := NewPurchaseRepository(f, cfg.Sheets.Purchases)
	if err != nil {
		return appcosting.SourceRepositories{}, nil, err
	}
	productions, err := NewProductionRepository(f, cfg.Sheets.Productions)
	if err != nil {
		return appcosting.SourceRepositories{}, nil, err
	}
	transactions, err := NewInventoryTransactionRepository(f, cfg.Sheets)
	if err != nil {
		return appcosting.SourceRepositories{}, nil, err
	}
	writer, err := NewResultWriter(f, cfg)
	if err != nil {
		return appcosting.SourceRepositories{}, nil, err
	}

	repos := appcosting.SourceRepositories{
		Productions:  productions,
		Formulas:     formulas,
		Purchases:    purchases,
		Freights:     freights,
		Transactions: transactions,
	}
	return repos, writer, nil
}
