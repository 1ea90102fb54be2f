package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo lee los lotes de la hoja de producción. La región de datos
// termina en la primera fila completamente vacía; una fila con datos
// parciales es un error duro, porque los resultados se escriben después por
// ordinal y una fila omitida desalinearía todo lo que sigue.
type ProductionRepo struct {
	productions []entity.Production
}

// NewProductionRepository carga la hoja completa en memoria.
func NewProductionRepository(f *excelize.File, sheet string) (*ProductionRepo, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("hoja %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("hoja %q sin fila de encabezados: %w", sheet, domain.ErrInvalidInput)
	}
	h := resolveHeader(sheet, rows[0])
	codeCol, err := h.column(colProductCode)
	if err != nil {
		return nil, err
	}
	lotCol, err := h.column(colLot)
	if err != nil {
		return nil, err
	}
	qtyCol, err := h.column(colQuantity)
	if err != nil {
		return nil, err
	}
	yieldCol, err := h.column(colYieldRate)
	if err != nil {
		return nil, err
	}
	coagulantCol, err := h.column(colCoagulant)
	if err != nil {
		return nil, err
	}
	clayCol, err := h.column(colClay)
	if err != nil {
		return nil, err
	}

	var productions []entity.Production
	for i, row := range rows[1:] {
		rowNum := i + 2
		if rowEmpty(row) {
			break
		}
		codeRaw := cellAt(row, codeCol)
		qtyRaw := cellAt(row, qtyCol)
		yieldRaw := cellAt(row, yieldCol)
		if codeRaw == "" || qtyRaw == "" || yieldRaw == "" {
			return nil, fmt.Errorf("hoja %q fila %d: lote incompleto (código %q, cantidad %q, rendimiento %q): %w",
				sheet, rowNum, codeRaw, qtyRaw, yieldRaw, domain.ErrInvalidInput)
		}

		code, err := valueobject.NewProductCode(codeRaw)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}
		qtyVal, err := cellDecimal(sheet, rowNum, colQuantity, qtyRaw)
		if err != nil {
			return nil, err
		}
		quantity, err := valueobject.NewQuantity(qtyVal)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}
		yieldVal, err := cellDecimal(sheet, rowNum, colYieldRate, yieldRaw)
		if err != nil {
			return nil, err
		}
		yieldRate, err := valueobject.NewYieldRate(yieldVal)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}
		coagulantVal, err := cellDecimalOrZero(sheet, rowNum, colCoagulant, cellAt(row, coagulantCol))
		if err != nil {
			return nil, err
		}
		coagulant, err := valueobject.NewAmount(coagulantVal)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}
		clayVal, err := cellDecimalOrZero(sheet, rowNum, colClay, cellAt(row, clayCol))
		if err != nil {
			return nil, err
		}
		clay, err := valueobject.NewAmount(clayVal)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}

		productions = append(productions, entity.Production{
			ProductCode:       code,
			Lot:               cellAt(row, lotCol),
			Quantity:          quantity,
			YieldRate:         yieldRate,
			CoagulantCost:     coagulant,
			ClayTreatmentCost: clay,
		})
	}
	return &ProductionRepo{productions: productions}, nil
}

// FindAll implementa repository.ProductionRepository. Devuelve una copia:
// el orden de la lista es el ordinal de escritura y nadie debe mutarlo.
func (r *ProductionRepo) FindAll() ([]entity.Production, error) {
	out := make([]entity.Production, len(r.productions))
	copy(out, r.productions)
	return out, nil
}
