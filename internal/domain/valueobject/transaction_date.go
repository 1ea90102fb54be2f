package valueobject

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jhoicas/Costeo-api/internal/domain"
)

// Acepta Y{sep}M{sep}D con el mismo separador en ambas posiciones.
var transactionDatePattern = regexp.MustCompile(`^(\d{4})([-/.])(\d{1,2})([-/.])(\d{1,2})$`)

// TransactionDate es la fecha de un movimiento de inventario. Conserva la
// cadena original y sus componentes de calendario ya validados (año entre
// 1900 y 2100, mes y día reales, años bisiestos incluidos).
type TransactionDate struct {
	raw   string
	year  int
	month int
	day   int
}

// NewTransactionDate valida y construye una fecha de movimiento.
func NewTransactionDate(value string) (TransactionDate, error) {
	trimmed := strings.TrimSpace(value)
	m := transactionDatePattern.FindStringSubmatch(trimmed)
	if m == nil || m[2] != m[4] {
		return TransactionDate{}, fmt.Errorf("fecha con formato inválido (%q): %w", value, domain.ErrInvalidInput)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[3])
	day, _ := strconv.Atoi(m[5])
	if year < 1900 || year > 2100 {
		return TransactionDate{}, fmt.Errorf("año fuera de rango en la fecha %q: %w", value, domain.ErrInvalidInput)
	}
	if month < 1 || month > 12 {
		return TransactionDate{}, fmt.Errorf("mes inválido en la fecha %q: %w", value, domain.ErrInvalidInput)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return TransactionDate{}, fmt.Errorf("día inválido en la fecha %q: %w", value, domain.ErrInvalidInput)
	}
	return TransactionDate{raw: trimmed, year: year, month: month, day: day}, nil
}

// Compare ordena primero por valor de calendario y desempata por la cadena
// original, de modo que el orden total sea determinista aun con formatos
// mixtos ("2024-1-5" y "2024/01/05" son el mismo día, distinto raw).
func (t TransactionDate) Compare(other TransactionDate) int {
	if t.year != other.year {
		return t.year - other.year
	}
	if t.month != other.month {
		return t.month - other.month
	}
	if t.day != other.day {
		return t.day - other.day
	}
	return strings.Compare(t.raw, other.raw)
}

// Value devuelve la cadena original.
func (t TransactionDate) Value() string { return t.raw }

func (t TransactionDate) String() string { return t.raw }

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
