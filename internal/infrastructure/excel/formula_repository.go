package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
)

var _ repository.FormulaRepository = (*FormulaRepo)(nil)

// FormulaRepo indexa la hoja de fórmulas por código de producto. Las filas
// con alguna celda obligatoria vacía se omiten: la hoja suele traer filas
// de separación entre recetas.
type FormulaRepo struct {
	data map[string][]entity.FormulaEntry
}

// NewFormulaRepository carga la hoja completa en memoria.
func NewFormulaRepository(f *excelize.File, sheet string) (*FormulaRepo, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("hoja %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("hoja %q sin fila de encabezados: %w", sheet, domain.ErrInvalidInput)
	}
	h := resolveHeader(sheet, rows[0])
	productCol, err := h.column(colProductCode)
	if err != nil {
		return nil, err
	}
	materialCol, err := h.column(colMaterialCode)
	if err != nil {
		return nil, err
	}
	ratioCol, err := h.column(colRatio)
	if err != nil {
		return nil, err
	}

	data := make(map[string][]entity.FormulaEntry)
	for i, row := range rows[1:] {
		rowNum := i + 2
		productRaw := cellAt(row, productCol)
		materialRaw := cellAt(row, materialCol)
		ratioRaw := cellAt(row, ratioCol)
		if productRaw == "" || materialRaw == "" || ratioRaw == "" {
			continue
		}

		product, err := valueobject.NewProductCode(productRaw)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}
		material, err := valueobject.NewProductCode(materialRaw)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}
		ratioVal, err := cellDecimal(sheet, rowNum, colRatio, ratioRaw)
		if err != nil {
			return nil, err
		}
		ratio, err := valueobject.NewConsumptionRatio(ratioVal)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}

		data[product.Value()] = append(data[product.Value()], entity.FormulaEntry{
			ProductCode:      product,
			MaterialCode:     material,
			ConsumptionRatio: ratio,
		})
	}
	return &FormulaRepo{data: data}, nil
}

// FindByProductCode implementa repository.FormulaRepository.
func (r *FormulaRepo) FindByProductCode(code valueobject.ProductCode) ([]entity.FormulaEntry, error) {
	entries, ok := r.data[code.Value()]
	if !ok {
		return nil, fmt.Errorf("sin receta para el producto %q: %w", code.Value(), domain.ErrNotFound)
	}
	return entries, nil
}
