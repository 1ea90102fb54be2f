package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
)

var _ repository.FreightMasterRepository = (*FreightMasterRepo)(nil)

// FreightMasterRepo indexa el maestro de fletes por código. Las filas sin
// código, patrón, precio o fecha de inicio se omiten; la fecha de fin vacía
// significa tarifa vigente.
type FreightMasterRepo struct {
	data map[string]entity.FreightMaster
}

// NewFreightMasterRepository carga la hoja completa en memoria.
func NewFreightMasterRepository(f *excelize.File, sheet string) (*FreightMasterRepo, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("hoja %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("hoja %q sin fila de encabezados: %w", sheet, domain.ErrInvalidInput)
	}
	h := resolveHeader(sheet, rows[0])
	codeCol, err := h.column(colFreightCode)
	if err != nil {
		return nil, err
	}
	patternCol, err := h.column(colPattern)
	if err != nil {
		return nil, err
	}
	priceCol, err := h.column(colKgPrice)
	if err != nil {
		return nil, err
	}
	fromCol, err := h.column(colValidFrom)
	if err != nil {
		return nil, err
	}
	toCol, err := h.column(colValidTo)
	if err != nil {
		return nil, err
	}

	data := make(map[string]entity.FreightMaster)
	for i, row := range rows[1:] {
		rowNum := i + 2
		codeRaw := cellAt(row, codeCol)
		patternRaw := cellAt(row, patternCol)
		priceRaw := cellAt(row, priceCol)
		fromRaw := cellAt(row, fromCol)
		if codeRaw == "" || patternRaw == "" || priceRaw == "" || fromRaw == "" {
			continue
		}

		pattern, err := valueobject.NewPatternName(patternRaw)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}
		priceVal, err := cellDecimal(sheet, rowNum, colKgPrice, priceRaw)
		if err != nil {
			return nil, err
		}
		price, err := valueobject.NewAmount(priceVal)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}
		validFrom, err := cellDate(sheet, rowNum, fromRaw)
		if err != nil {
			return nil, err
		}
		var validTo *valueobject.TransactionDate
		if toRaw := cellAt(row, toCol); toRaw != "" {
			d, err := cellDate(sheet, rowNum, toRaw)
			if err != nil {
				return nil, err
			}
			validTo = &d
		}

		master, err := entity.NewFreightMaster(codeRaw, pattern, price, validFrom, validTo)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
		}
		data[master.FreightCode] = master
	}
	return &FreightMasterRepo{data: data}, nil
}

// FindByCode implementa repository.FreightMasterRepository.
func (r *FreightMasterRepo) FindByCode(code string) (entity.FreightMaster, error) {
	master, ok := r.data[code]
	if !ok {
		return entity.FreightMaster{}, fmt.Errorf("código de flete %q sin tarifa en el maestro: %w", code, domain.ErrNotFound)
	}
	return master, nil
}
