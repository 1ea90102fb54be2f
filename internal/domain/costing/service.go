package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
)

// kgPerTon normaliza un costo por kg a costo por tonelada métrica.
var kgPerTon = decimal.NewFromInt(1000)

// MaterialCostResult agrupa las líneas de consumo de un lote y el flete
// total ya prorrateado entre ellas.
type MaterialCostResult struct {
	Consumptions     []entity.MaterialConsumption
	TotalFreightCost valueobject.Amount
}

// CalculateMaterialConsumption resuelve la receta del lote y calcula, por
// cada material, el consumo (cantidad producida × ratio), su costo (precio
// unitario de la última compra × consumo, sin flete) y el flete prorrateado
// (tarifa por kg × consumo). La tarifa sale del precio directo de la compra
// o del maestro de fletes, según la variante del código.
//
// Cualquier referencia sin resolver (receta, compra o tarifa) aborta el lote
// completo: un costo parcial sería peor que ninguno.
func CalculateMaterialConsumption(
	production entity.Production,
	formulas repository.FormulaRepository,
	purchases repository.PurchaseRepository,
	freights repository.FreightMasterRepository,
) (MaterialCostResult, error) {
	entries, err := formulas.FindByProductCode(production.ProductCode)
	if err != nil {
		return MaterialCostResult{}, fmt.Errorf("receta del producto %q: %w", production.ProductCode.Value(), err)
	}

	consumptions := make([]entity.MaterialConsumption, 0, len(entries))
	totalFreight := valueobject.ZeroAmount()
	for _, entry := range entries {
		purchase, err := purchases.FindLatestPrice(entry.MaterialCode)
		if err != nil {
			return MaterialCostResult{}, fmt.Errorf("precio del material %q: %w", entry.MaterialCode.Value(), err)
		}

		var kgPrice decimal.Decimal
		switch purchase.FreightCode.Kind() {
		case valueobject.FreightKindDirect:
			kgPrice = purchase.FreightCode.DirectPrice()
		case valueobject.FreightKindCode:
			master, err := freights.FindByCode(purchase.FreightCode.Code())
			if err != nil {
				return MaterialCostResult{}, fmt.Errorf("tarifa de flete %q del material %q: %w",
					purchase.FreightCode.Code(), entry.MaterialCode.Value(), err)
			}
			kgPrice = master.KgUnitPrice.Value()
		}

		consumed := production.Quantity.Mul(entry.ConsumptionRatio.Value())
		freightKgPrice, err := valueobject.NewAmount(kgPrice)
		if err != nil {
			return MaterialCostResult{}, fmt.Errorf("tarifa de flete del material %q: %w", entry.MaterialCode.Value(), err)
		}
		freightCost := freightKgPrice.Mul(consumed.Value())
		totalFreight = totalFreight.Add(freightCost)

		consumptions = append(consumptions, entity.MaterialConsumption{
			MaterialCode:      entry.MaterialCode,
			MaterialName:      purchase.ProductName,
			Quantity:          consumed,
			UnitPrice:         purchase.UnitPrice,
			Cost:              purchase.UnitPrice.Mul(consumed.Value()),
			FreightCost:       freightCost,
			FreightKgPrice:    freightKgPrice,
			PurchaseQuantity:  purchase.Quantity,
			FreightDescriptor: purchase.FreightCode.Descriptor(),
		})
	}

	return MaterialCostResult{Consumptions: consumptions, TotalFreightCost: totalFreight}, nil
}

// CalculateRawMaterialCost suma el costo de material de cada línea, sin
// flete. Con lista vacía devuelve cero.
func CalculateRawMaterialCost(consumptions []entity.MaterialConsumption) valueobject.Amount {
	total := valueobject.ZeroAmount()
	for _, c := range consumptions {
		total = total.Add(c.Cost)
	}
	return total
}

// CalculateUnitCost normaliza el costo de materia prima a costo por
// tonelada: (costo ÷ kg consumidos) × 1000. Con cero kg consumidos devuelve
// cero en lugar de error: un lote sin consumo no tiene costo unitario.
func CalculateUnitCost(rawMaterialCost valueobject.Amount, totalConsumptionKg valueobject.Quantity) valueobject.Amount {
	if totalConsumptionKg.IsZero() {
		return valueobject.ZeroAmount()
	}
	return rawMaterialCost.Div(totalConsumptionKg.Value()).Mul(kgPerTon)
}

// CalculateYieldCost aplica la tasa de rendimiento al costo de materia
// prima.
func CalculateYieldCost(rawMaterialCost valueobject.Amount, rate valueobject.YieldRate) valueobject.Amount {
	return rawMaterialCost.Mul(rate.Value())
}

// CalculateTotalMaterialCost compone el costo final del lote: costo de
// rendimiento + coagulante + tratamiento de arcilla + flete total.
func CalculateTotalMaterialCost(yieldCost, coagulantCost, clayTreatmentCost, freightCost valueobject.Amount) valueobject.Amount {
	return yieldCost.Add(coagulantCost).Add(clayTreatmentCost).Add(freightCost)
}
