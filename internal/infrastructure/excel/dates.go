package excel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
)

// Bases del calendario serial de Excel. El serial 1 es 1900-01-01, pero
// Excel trata 1900 como bisiesto: desde el serial 61 (1900-03-01) la base
// efectiva retrocede un día para absorber el 29 de febrero fantasma.
var (
	serialBase    = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	serialBasePre = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// cellDate interpreta una celda de fecha: un valor numérico es un serial de
// Excel; cualquier otro texto se valida como fecha Y-M-D.
func cellDate(sheet string, rowNum int, raw string) (valueobject.TransactionDate, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return valueobject.TransactionDate{}, fmt.Errorf("hoja %q fila %d: fecha vacía: %w", sheet, rowNum, domain.ErrInvalidInput)
	}
	if serial, err := strconv.ParseFloat(trimmed, 64); err == nil {
		trimmed = serialToDate(serial)
	}
	date, err := valueobject.NewTransactionDate(trimmed)
	if err != nil {
		return valueobject.TransactionDate{}, fmt.Errorf("hoja %q fila %d: %w", sheet, rowNum, err)
	}
	return date, nil
}

// serialToDate convierte un serial de Excel (truncado a días enteros, la
// fracción horaria se descarta) a una fecha Y-M-D.
func serialToDate(serial float64) string {
	days := int(serial)
	base := serialBase
	if days < 61 {
		base = serialBasePre
	}
	return base.AddDate(0, 0, days).Format("2006-01-02")
}
