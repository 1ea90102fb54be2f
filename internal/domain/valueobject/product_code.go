package valueobject

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Costeo-api/internal/domain"
)

// ProductCode identifica un producto o material. Se normaliza con trim y
// nunca queda vacío después de construido.
type ProductCode struct {
	value string
}

// NewProductCode valida y construye un código de producto.
func NewProductCode(value string) (ProductCode, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ProductCode{}, fmt.Errorf("el código de producto no puede estar vacío: %w", domain.ErrInvalidInput)
	}
	return ProductCode{value: trimmed}, nil
}

// Value devuelve el código normalizado.
func (p ProductCode) Value() string { return p.value }

func (p ProductCode) String() string { return p.value }
