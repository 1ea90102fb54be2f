package excel

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	appcosting "github.com/jhoicas/Costeo-api/internal/application/costing"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
)

var _ appcosting.ResultWriter = (*ResultWriter)(nil)

// historyHeader encabezados de la hoja de historial generada.
var historyHeader = []interface{}{"Fecha", "Tipo", "Código producto", "Producto", "Saldo anterior", "Cantidad", "Saldo"}

// ResultWriter escribe los resultados de un run sobre el libro ya abierto:
// los costos en las columnas de resultado de la hoja de producción (por
// ordinal: el lote i va en la fila de datos i) y el historial en su propia
// hoja. Save materializa todo como un libro nuevo en la ruta de salida; el
// archivo de entrada nunca se modifica.
type ResultWriter struct {
	f          *excelize.File
	sheet      string
	historyTab string
	outputPath string
	cols       resultColumns
}

type resultColumns struct {
	raw, unit, yield, freight, total int
}

// NewResultWriter resuelve las columnas de resultado de la hoja de
// producción. Si falta alguna, el libro no sirve como plantilla de salida y
// el run no debe arrancar.
func NewResultWriter(f *excelize.File, cfg Config) (*ResultWriter, error) {
	sheet := cfg.Sheets.Productions
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("hoja %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("hoja %q sin fila de encabezados: %w", sheet, domain.ErrInvalidInput)
	}
	h := resolveHeader(sheet, rows[0])

	var cols resultColumns
	if cols.raw, err = h.column(colRawCost); err != nil {
		return nil, err
	}
	if cols.unit, err = h.column(colUnitCost); err != nil {
		return nil, err
	}
	if cols.yield, err = h.column(colYieldCost); err != nil {
		return nil, err
	}
	if cols.freight, err = h.column(colFreight); err != nil {
		return nil, err
	}
	if cols.total, err = h.column(colTotalCost); err != nil {
		return nil, err
	}

	return &ResultWriter{
		f:          f,
		sheet:      sheet,
		historyTab: cfg.Sheets.History,
		outputPath: cfg.OutputPath,
		cols:       cols,
	}, nil
}

// WriteCosts implementa appcosting.ResultWriter. Los lotes fallidos no
// vienen en la lista, así que sus filas quedan con las celdas de resultado
// vacías.
func (w *ResultWriter) WriteCosts(costs []dto.ProductionCostResponse) error {
	for _, c := range costs {
		row := c.RowNumber + 1 // la fila 1 es el encabezado
		if err := w.setNumber(w.sheet, w.cols.raw, row, c.RawMaterialCost); err != nil {
			return err
		}
		if err := w.setNumber(w.sheet, w.cols.unit, row, c.UnitCost); err != nil {
			return err
		}
		if err := w.setNumber(w.sheet, w.cols.yield, row, c.YieldCost); err != nil {
			return err
		}
		if err := w.setNumber(w.sheet, w.cols.freight, row, c.FreightCost); err != nil {
			return err
		}
		if err := w.setNumber(w.sheet, w.cols.total, row, c.TotalMaterialCost); err != nil {
			return err
		}
	}
	return nil
}

// WriteHistory implementa appcosting.ResultWriter. La hoja de historial se
// reemplaza completa: si la entrada arrastraba una de un run anterior, se
// descarta.
func (w *ResultWriter) WriteHistory(records []dto.HistoryRecordResponse) error {
	if idx, err := w.f.GetSheetIndex(w.historyTab); err == nil && idx != -1 {
		if err := w.f.DeleteSheet(w.historyTab); err != nil {
			return fmt.Errorf("hoja %q: %w", w.historyTab, err)
		}
	}
	if _, err := w.f.NewSheet(w.historyTab); err != nil {
		return fmt.Errorf("hoja %q: %w", w.historyTab, err)
	}
	if err := w.f.SetSheetRow(w.historyTab, "A1", &historyHeader); err != nil {
		return fmt.Errorf("hoja %q: %w", w.historyTab, err)
	}

	for i, r := range records {
		base, _ := r.BaseQuantity.Float64()
		change, _ := r.ChangeQuantity.Float64()
		balance, _ := r.Balance.Float64()
		values := []interface{}{
			r.Date,
			valueobject.InventoryType(r.Type).Label(),
			r.ProductCode,
			r.ProductName,
			base,
			change,
			balance,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := w.f.SetSheetRow(w.historyTab, cell, &values); err != nil {
			return fmt.Errorf("hoja %q: %w", w.historyTab, err)
		}
	}
	return nil
}

// Save implementa appcosting.ResultWriter.
func (w *ResultWriter) Save() error {
	if err := w.f.SaveAs(w.outputPath); err != nil {
		return fmt.Errorf("guardar %q: %w", w.outputPath, err)
	}
	return nil
}

func (w *ResultWriter) setNumber(sheet string, col, row int, value decimal.Decimal) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return err
	}
	v, _ := value.Float64()
	return w.f.SetCellValue(sheet, cell, v)
}
