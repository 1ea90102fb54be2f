package inventory

import (
	"sort"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
)

// CreateHistory construye el libro cronológico de movimientos con saldo
// corriente por producto. Ordena por fecha y, a igual fecha, por código de
// producto; el orden es estable, así que movimientos idénticos en esas dos
// claves conservan el orden de llegada. Todo producto parte de saldo cero y
// los saldos negativos se registran tal cual: un faltante es información,
// no un error.
//
// La entrada no se modifica y el resultado es determinista: la misma lista
// produce siempre el mismo libro.
func CreateHistory(transactions []entity.InventoryTransaction) ([]entity.InventoryHistoryRecord, error) {
	sorted := make([]entity.InventoryTransaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].Date.Compare(sorted[j].Date); c != 0 {
			return c < 0
		}
		return sorted[i].ProductCode.Value() < sorted[j].ProductCode.Value()
	})

	balances := make(map[string]valueobject.InventoryBalance)
	records := make([]entity.InventoryHistoryRecord, 0, len(sorted))
	for _, tx := range sorted {
		code := tx.ProductCode.Value()
		base := balances[code]

		change := tx.Quantity.Value()
		if !tx.Type.IsInbound() {
			change = change.Neg()
		}
		balance := base.Add(change)
		balances[code] = balance

		records = append(records, entity.InventoryHistoryRecord{
			Date:           tx.Date,
			Type:           tx.Type,
			ProductCode:    tx.ProductCode,
			ProductName:    tx.ProductName,
			BaseQuantity:   base,
			ChangeQuantity: tx.Quantity,
			Balance:        balance,
		})
	}
	return records, nil
}
