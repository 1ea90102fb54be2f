package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// MaterialConsumptionResponse línea de consumo de un lote, con su flete.
type MaterialConsumptionResponse struct {
	MaterialCode     string          `json:"material_code"`
	MaterialName     string          `json:"material_name"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Cost             decimal.Decimal `json:"cost"`
	FreightCost      decimal.Decimal `json:"freight_cost"`
	FreightKgPrice   decimal.Decimal `json:"freight_kg_price"`
	PurchaseQuantity decimal.Decimal `json:"purchase_quantity"`
	Freight          string          `json:"freight"`
}

// NewMaterialConsumptionResponse proyecta una línea de consumo del dominio.
func NewMaterialConsumptionResponse(c entity.MaterialConsumption) MaterialConsumptionResponse {
	return MaterialConsumptionResponse{
		MaterialCode:     c.MaterialCode.Value(),
		MaterialName:     c.MaterialName,
		Quantity:         c.Quantity.Value(),
		UnitPrice:        c.UnitPrice.Value(),
		Cost:             c.Cost.Value(),
		FreightCost:      c.FreightCost.Value(),
		FreightKgPrice:   c.FreightKgPrice.Value(),
		PurchaseQuantity: c.PurchaseQuantity.Value(),
		Freight:          c.FreightDescriptor,
	}
}

// ProductionCostResponse desglose de costos de un lote. RowNumber es el
// ordinal 1-based del lote en la fuente y fija la fila de escritura.
type ProductionCostResponse struct {
	RowNumber         int                           `json:"row_number"`
	ProductCode       string                        `json:"product_code"`
	Lot               string                        `json:"lot,omitempty"`
	Quantity          decimal.Decimal               `json:"quantity"`
	RawMaterialCost   decimal.Decimal               `json:"raw_material_cost"`
	UnitCost          decimal.Decimal               `json:"unit_cost"`
	YieldCost         decimal.Decimal               `json:"yield_cost"`
	CoagulantCost     decimal.Decimal               `json:"coagulant_cost"`
	ClayTreatmentCost decimal.Decimal               `json:"clay_treatment_cost"`
	FreightCost       decimal.Decimal               `json:"freight_cost"`
	TotalMaterialCost decimal.Decimal               `json:"total_material_cost"`
	Consumptions      []MaterialConsumptionResponse `json:"consumptions"`
}

// BatchFailure lote que no pudo costearse dentro de un run.
type BatchFailure struct {
	RowNumber   int    `json:"row_number"`
	ProductCode string `json:"product_code"`
	Message     string `json:"message"`
}

// RunSummaryResponse resumen de un run completo de costeo.
type RunSummaryResponse struct {
	RunID          string                   `json:"run_id"`
	InputPath      string                   `json:"input_path"`
	OutputPath     string                   `json:"output_path"`
	TotalBatches   int                      `json:"total_batches"`
	FailedBatches  int                      `json:"failed_batches"`
	HistoryRecords int                      `json:"history_records"`
	DurationMillis int64                    `json:"duration_ms"`
	Costs          []ProductionCostResponse `json:"costs"`
	Failures       []BatchFailure           `json:"failures,omitempty"`
}
