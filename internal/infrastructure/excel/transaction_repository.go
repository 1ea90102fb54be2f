package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// movementSheet describe cómo leer movimientos de una hoja de origen. La
// hoja de producción no tiene columna de nombre: se usa el código.
type movementSheet struct {
	name    string
	typ     valueobject.InventoryType
	nameCol string
}

// InventoryTransactionRepo fusiona los movimientos de las hojas de
// producción, compras y ventas; el tipo de cada movimiento sale de su hoja
// de origen. Las filas sin fecha, código o cantidad se omiten: no todo
// registro maestro es un movimiento fechado. Una hoja de origen ausente
// también se omite.
type InventoryTransactionRepo struct {
	transactions []entity.InventoryTransaction
}

// NewInventoryTransactionRepository carga las tres hojas de origen.
func NewInventoryTransactionRepository(f *excelize.File, sheets SheetNames) (*InventoryTransactionRepo, error) {
	sources := []movementSheet{
		{name: sheets.Productions, typ: valueobject.InventoryTypeProduction},
		{name: sheets.Purchases, typ: valueobject.InventoryTypePurchase, nameCol: colProductName},
		{name: sheets.Sales, typ: valueobject.InventoryTypeSales, nameCol: colProductName},
	}

	var transactions []entity.InventoryTransaction
	for _, src := range sources {
		loaded, err := loadMovements(f, src)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, loaded...)
	}
	return &InventoryTransactionRepo{transactions: transactions}, nil
}

func loadMovements(f *excelize.File, src movementSheet) ([]entity.InventoryTransaction, error) {
	idx, err := f.GetSheetIndex(src.name)
	if err != nil || idx == -1 {
		return nil, nil
	}
	rows, err := f.GetRows(src.name)
	if err != nil {
		return nil, fmt.Errorf("hoja %q: %w", src.name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	h := resolveHeader(src.name, rows[0])
	dateCol, err := h.column(colDate)
	if err != nil {
		return nil, err
	}
	codeCol, err := h.column(colProductCode)
	if err != nil {
		return nil, err
	}
	qtyCol, err := h.column(colQuantity)
	if err != nil {
		return nil, err
	}
	nameCol := -1
	if src.nameCol != "" {
		if nameCol, err = h.column(src.nameCol); err != nil {
			return nil, err
		}
	}

	var out []entity.InventoryTransaction
	for i, row := range rows[1:] {
		rowNum := i + 2
		dateRaw := cellAt(row, dateCol)
		codeRaw := cellAt(row, codeCol)
		qtyRaw := cellAt(row, qtyCol)
		if dateRaw == "" || codeRaw == "" || qtyRaw == "" {
			continue
		}

		date, err := cellDate(src.name, rowNum, dateRaw)
		if err != nil {
			return nil, err
		}
		code, err := valueobject.NewProductCode(codeRaw)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", src.name, rowNum, err)
		}
		qtyVal, err := cellDecimal(src.name, rowNum, colQuantity, qtyRaw)
		if err != nil {
			return nil, err
		}
		quantity, err := valueobject.NewQuantity(qtyVal)
		if err != nil {
			return nil, fmt.Errorf("hoja %q fila %d: %w", src.name, rowNum, err)
		}

		name := code.Value()
		if nameCol >= 0 {
			if n := cellAt(row, nameCol); n != "" {
				name = n
			}
		}

		out = append(out, entity.InventoryTransaction{
			Date:        date,
			Type:        src.typ,
			ProductCode: code,
			ProductName: name,
			Quantity:    quantity,
		})
	}
	return out, nil
}

// FindAllTransactions implementa repository.InventoryTransactionRepository.
func (r *InventoryTransactionRepo) FindAllTransactions() ([]entity.InventoryTransaction, error) {
	out := make([]entity.InventoryTransaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}
