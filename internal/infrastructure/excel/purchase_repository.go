package excel

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo indexa la hoja de compras por código de producto. Con códigos
// repetidos gana la última fila: la hoja está en orden cronológico y la
// última compra fija el precio vigente. Las filas sin código o sin precio se
// omiten; la celda de flete vacía equivale a un precio directo de cero.
type PurchaseRepo struct {
	data map[string]entity.Purchase
}

// NewPurchaseRepository carga la hoja completa en memoria.
func NewPurchaseRepository(f *excelize.File, sheet string) (*PurchaseRepo, error) {
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
	nameCol, err := h.column(colProductName)
	if err != nil {
		return nil, err
	}
	priceCol, err := h.column(colUnitPrice)
	if err != nil {
		return nil, err
	}
	qtyCol, err := h.column(colQuantity)
	if err != nil {
		return nil, err
	}
	freightCol, err := h.column(colFreight)
	if err != nil {
		return nil, err
	}

	data := make(map[string]entity.Purchase)
	for i, row := range rows[1:] {
		rowNum := i + 2
		codeRaw := cellAt(row, codeCol)
		priceRaw := cellAt(row, priceCol)
		if codeRaw == "" || priceRaw == "" {
			continue
		}

		priceVal, err := cellDecimal(sheet, rowNum, colUnitPrice, priceRaw)
		if err != nil {
			return nil, err
		}
		price, err := valueobject.NewAmount(priceVal)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}

		qtyVal, err := cellDecimalOrZero(sheet, rowNum, colQuantity, cellAt(row, qtyCol))
		if err != nil {
			return nil, err
		}
		quantity, err := valueobject.NewQuantity(qtyVal)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}

		freight, err := parseFreightCell(cellAt(row, freightCol))
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}

		data[codeRaw] = entity.Purchase{
			ProductName: cellAt(row, nameCol),
			UnitPrice:   price,
			Quantity:    quantity,
			FreightCode: freight,
		}
	}
	return &PurchaseRepo{data: data}, nil
}

// parseFreightCell interpreta la celda de flete de una compra: vacía es un
// precio directo de cero (compra sin flete), el resto sigue las reglas del
// value object.
func parseFreightCell(raw string) (valueobject.FreightCode, error) {
	if raw == "" {
		return valueobject.NewDirectFreight(decimal.Zero)
	}
	return valueobject.NewFreightCode(raw)
}

// FindLatestPrice implementa repository.PurchaseRepository.
func (r *PurchaseRepo) FindLatestPrice(code valueobject.ProductCode) (entity.Purchase, error) {
	p, ok := r.data[code.Value()]
	if !ok {
		return entity.Purchase{}, fmt.Errorf("sin compra registrada para el material %q: %w", code.Value(), domain.ErrNotFound)
	}
	return p, nil
}
