package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// HistoryRecordResponse asiento del libro de movimientos de inventario.
type HistoryRecordResponse struct {
	Date           string          `json:"date"`
	Type           string          `json:"type"`
	ProductCode    string          `json:"product_code"`
	ProductName    string          `json:"product_name"`
	BaseQuantity   decimal.Decimal `json:"base_quantity"`
	ChangeQuantity decimal.Decimal `json:"change_quantity"`
	Balance        decimal.Decimal `json:"balance"`
}

// NewHistoryRecordResponse proyecta un asiento del dominio.
func NewHistoryRecordResponse(r entity.InventoryHistoryRecord) HistoryRecordResponse {
	return HistoryRecordResponse{
		Date:           r.Date.Value(),
		Type:           r.Type.String(),
		ProductCode:    r.ProductCode.Value(),
		ProductName:    r.ProductName,
		BaseQuantity:   r.BaseQuantity.Value(),
		ChangeQuantity: r.ChangeQuantity.Value(),
		Balance:        r.Balance.Value(),
	}
}
