package valueobject

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Costeo-api/internal/domain"
)

// PatternName es el nombre del patrón de flete en el maestro de fletes.
type PatternName struct {
	value string
}

// NewPatternName valida y construye un nombre de patrón (trim, no vacío).
func NewPatternName(value string) (PatternName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return PatternName{}, fmt.Errorf("el nombre de patrón no puede estar vacío: %w", domain.ErrInvalidInput)
	}
	return PatternName{value: trimmed}, nil
}

// Value devuelve el nombre normalizado.
func (p PatternName) Value() string { return p.value }

func (p PatternName) String() string { return p.value }
