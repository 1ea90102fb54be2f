package excel

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Costeo-api/internal/domain"
)

// Encabezados de columna reconocidos, en su forma canónica (minúsculas, sin
// tildes, espacios colapsados). La resolución normaliza lo que venga en la
// hoja, así "Código producto", "CODIGO PRODUCTO" y "codigo  producto"
// resuelven a la misma columna.
const (
	colDate        = "fecha"
	colProductCode = "codigo producto"
	colProductName = "producto"
	colLot         = "lote"
	colQuantity    = "cantidad"
	colYieldRate   = "rendimiento"
	colCoagulant   = "coagulante"
	colClay        = "tratamiento de arcilla"

	colMaterialCode = "codigo material"
	colRatio        = "proporcion de consumo"

	colFreightCode = "codigo flete"
	colPattern     = "patron"
	colKgPrice     = "precio kg"
	colValidFrom   = "valido desde"
	colValidTo     = "valido hasta"

	colUnitPrice = "precio unitario"
	colFreight   = "flete"

	// columnas de resultado en la hoja de producción
	colRawCost   = "costo materia prima"
	colUnitCost  = "costo unitario (t)"
	colYieldCost = "costo rendimiento"
	colTotalCost = "costo total materiales"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeHeader lleva un encabezado a su forma canónica: trim, minúsculas,
// sin marcas diacríticas y con el espacio interior colapsado.
func normalizeHeader(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		stripped = lowered
	}
	return strings.Join(strings.Fields(stripped), " ")
}

// sheetHeader índice de columnas de una hoja, resuelto desde su primera
// fila. Ante encabezados duplicados gana el primero.
type sheetHeader struct {
	sheet string
	cols  map[string]int
}

func resolveHeader(sheet string, headerRow []string) sheetHeader {
	cols := make(map[string]int, len(headerRow))
	for idx, header := range headerRow {
		key := normalizeHeader(header)
		if key == "" {
			continue
		}
		if _, dup := cols[key]; !dup {
			cols[key] = idx
		}
	}
	return sheetHeader{sheet: sheet, cols: cols}
}

// column devuelve el índice 0-based de una columna obligatoria. El error
// nombra hoja y columna para que el archivo se pueda corregir sin adivinar.
func (h sheetHeader) column(name string) (int, error) {
	idx, ok := h.cols[name]
	if !ok {
		return 0, fmt.Errorf("hoja %q: falta la columna %q: %w", h.sheet, name, domain.ErrInvalidInput)
	}
	return idx, nil
}

// cellAt devuelve la celda recortada, o vacío si la fila es más corta que
// el índice (las filas de excelize terminan en su última celda con valor).
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// rowEmpty indica si la fila no tiene ninguna celda con contenido.
func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cellDecimal interpreta una celda numérica obligatoria.
func cellDecimal(sheet string, rowNum int, column, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("hoja %q fila %d: %q no es un número válido en %q: %w",
			sheet, rowNum, raw, column, domain.ErrInvalidInput)
	}
	return d, nil
}

// cellDecimalOrZero interpreta una celda numérica opcional: vacía vale cero.
func cellDecimalOrZero(sheet string, rowNum int, column, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, nil
	}
	return cellDecimal(sheet, rowNum, column, raw)
}
