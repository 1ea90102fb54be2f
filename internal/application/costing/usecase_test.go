package costing_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Costeo-api/internal/application/costing"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
	"github.com/jhoicas/Costeo-api/pkg/logger"
)

// ─────────────────────────────────────────────────────────────
// Dobles de los puertos
// ─────────────────────────────────────────────────────────────

type memProductions struct{ data []entity.Production }

func (m *memProductions) FindAll() ([]entity.Production, error) { return m.data, nil }

type memFormulas struct{ data map[string][]entity.FormulaEntry }

func (m *memFormulas) FindByProductCode(code valueobject.ProductCode) ([]entity.FormulaEntry, error) {
	entries, ok := m.data[code.Value()]
	if !ok {
		return nil, fmt.Errorf("receta de %q: %w", code.Value(), domain.ErrNotFound)
	}
	return entries, nil
}

type memPurchases struct{ data map[string]entity.Purchase }

func (m *memPurchases) FindLatestPrice(code valueobject.ProductCode) (entity.Purchase, error) {
	p, ok := m.data[code.Value()]
	if !ok {
		return entity.Purchase{}, fmt.Errorf("compra de %q: %w", code.Value(), domain.ErrNotFound)
	}
	return p, nil
}

type memFreights struct{ data map[string]entity.FreightMaster }

func (m *memFreights) FindByCode(code string) (entity.FreightMaster, error) {
	fm, ok := m.data[code]
	if !ok {
		return entity.FreightMaster{}, fmt.Errorf("flete %q: %w", code, domain.ErrNotFound)
	}
	return fm, nil
}

type memTransactions struct{ data []entity.InventoryTransaction }

func (m *memTransactions) FindAllTransactions() ([]entity.InventoryTransaction, error) {
	return m.data, nil
}

type memWriter struct {
	costs   []dto.ProductionCostResponse
	history []dto.HistoryRecordResponse
	saved   bool
	failOn  string
}

func (w *memWriter) WriteCosts(costs []dto.ProductionCostResponse) error {
	if w.failOn == "costs" {
		return errors.New("disco lleno")
	}
	w.costs = costs
	return nil
}

func (w *memWriter) WriteHistory(records []dto.HistoryRecordResponse) error {
	if w.failOn == "history" {
		return errors.New("disco lleno")
	}
	w.history = records
	return nil
}

func (w *memWriter) Save() error {
	if w.failOn == "save" {
		return errors.New("disco lleno")
	}
	w.saved = true
	return nil
}

// memRunner entrega siempre los mismos repositorios y escritor, sin archivo
// de por medio.
type memRunner struct {
	repos  costing.SourceRepositories
	writer *memWriter
}

func (r *memRunner) Run(fn func(costing.SourceRepositories, costing.ResultWriter) error) error {
	return fn(r.repos, r.writer)
}

// ─────────────────────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────────────────────

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func code(t *testing.T, v string) valueobject.ProductCode {
	t.Helper()
	c, err := valueobject.NewProductCode(v)
	require.NoError(t, err)
	return c
}

func qty(t *testing.T, v string) valueobject.Quantity {
	t.Helper()
	q, err := valueobject.NewQuantity(dec(v))
	require.NoError(t, err)
	return q
}

func amt(t *testing.T, v string) valueobject.Amount {
	t.Helper()
	a, err := valueobject.NewAmount(dec(v))
	require.NoError(t, err)
	return a
}

func newProduction(t *testing.T, productCode, quantity string) entity.Production {
	t.Helper()
	rate, err := valueobject.NewYieldRate(dec("0.9"))
	require.NoError(t, err)
	return entity.Production{
		ProductCode:       code(t, productCode),
		Quantity:          qty(t, quantity),
		YieldRate:         rate,
		CoagulantCost:     amt(t, "150"),
		ClayTreatmentCost: amt(t, "100"),
	}
}

func newFixture(t *testing.T) (*memRunner, *memWriter) {
	t.Helper()
	ratio, err := valueobject.NewConsumptionRatio(dec("0.03"))
	require.NoError(t, err)
	freight, err := valueobject.NewDirectFreight(dec("10"))
	require.NoError(t, err)

	date, err := valueobject.NewTransactionDate("2024-01-10")
	require.NoError(t, err)

	writer := &memWriter{}
	runner := &memRunner{
		repos: costing.SourceRepositories{
			Productions: &memProductions{data: []entity.Production{
				newProduction(t, "P001", "1000"),
				newProduction(t, "P404", "500"), // sin receta: debe fallar
			}},
			Formulas: &memFormulas{data: map[string][]entity.FormulaEntry{
				"P001": {{ProductCode: code(t, "P001"), MaterialCode: code(t, "M001"), ConsumptionRatio: ratio}},
			}},
			Purchases: &memPurchases{data: map[string]entity.Purchase{
				"M001": {ProductName: "Caolín", UnitPrice: amt(t, "100"), Quantity: qty(t, "500"), FreightCode: freight},
			}},
			Freights: &memFreights{data: map[string]entity.FreightMaster{}},
			Transactions: &memTransactions{data: []entity.InventoryTransaction{
				{Date: date, Type: valueobject.InventoryTypePurchase, ProductCode: code(t, "M001"), ProductName: "Caolín", Quantity: qty(t, "500")},
			}},
		},
		writer: writer,
	}
	return runner, writer
}

func newUseCase(runner costing.WorkbookRunner) *costing.RunCostingUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	paths := costing.Paths{Input: "entrada.xlsx", Output: "salida.xlsx"}
	return costing.NewRunCostingUseCase(runner, paths, log)
}

// ─────────────────────────────────────────────────────────────
// Execute
// ─────────────────────────────────────────────────────────────

func TestExecute_RunCompletoEscribeYGuarda(t *testing.T) {
	runner, writer := newFixture(t)
	uc := newUseCase(runner)

	summary, err := uc.Execute("run-1")
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, "run-1", summary.RunID)
	assert.Equal(t, "entrada.xlsx", summary.InputPath)
	assert.Equal(t, "salida.xlsx", summary.OutputPath)
	assert.Equal(t, 2, summary.TotalBatches)
	assert.Equal(t, 1, summary.FailedBatches)
	assert.Equal(t, 1, summary.HistoryRecords)

	require.Len(t, writer.costs, 1)
	assert.True(t, writer.saved)
	require.Len(t, writer.history, 1)
	assert.True(t, writer.history[0].Balance.Equal(dec("500")))
}

func TestExecute_LoteFallidoNoDetieneElRun(t *testing.T) {
	runner, writer := newFixture(t)
	uc := newUseCase(runner)

	summary, err := uc.Execute("run-2")
	require.NoError(t, err)

	// El lote 2 (P404, sin receta) falla; el lote 1 se costea igual.
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, 2, summary.Failures[0].RowNumber)
	assert.Equal(t, "P404", summary.Failures[0].ProductCode)
	assert.Contains(t, summary.Failures[0].Message, "P404")

	require.Len(t, writer.costs, 1)
	assert.Equal(t, 1, writer.costs[0].RowNumber)
	assert.Equal(t, "P001", writer.costs[0].ProductCode)
}

func TestExecute_DesgloseDelLote(t *testing.T) {
	runner, writer := newFixture(t)
	uc := newUseCase(runner)

	_, err := uc.Execute("run-3")
	require.NoError(t, err)
	require.Len(t, writer.costs, 1)

	c := writer.costs[0]
	assert.True(t, c.RawMaterialCost.Equal(dec("3000")), "materia prima: %s", c.RawMaterialCost)   // 100 × 30
	assert.True(t, c.UnitCost.Equal(dec("100000")), "unitario: %s", c.UnitCost)                    // 3000/30 × 1000
	assert.True(t, c.YieldCost.Equal(dec("2700")), "rendimiento: %s", c.YieldCost)                 // 3000 × 0.9
	assert.True(t, c.FreightCost.Equal(dec("300")), "flete: %s", c.FreightCost)                    // 10 × 30
	assert.True(t, c.TotalMaterialCost.Equal(dec("3250")), "total: %s", c.TotalMaterialCost)       // 2700+150+100+300
	require.Len(t, c.Consumptions, 1)
	assert.True(t, c.Consumptions[0].Quantity.Equal(dec("30")), "consumo: %s", c.Consumptions[0].Quantity)
}

func TestExecute_ErrorDeEscrituraAbortaElRun(t *testing.T) {
	runner, writer := newFixture(t)
	writer.failOn = "save"
	uc := newUseCase(runner)

	_, err := uc.Execute("run-4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "guardar")
	assert.False(t, writer.saved)
}
