package valueobject

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Costeo-api/internal/domain"
)

// FreightKind distingue las dos variantes de FreightCode.
type FreightKind string

const (
	// FreightKindCode referencia una entrada del maestro de fletes (T + 4 dígitos).
	FreightKindCode FreightKind = "CODE"
	// FreightKindDirect es un precio de flete por kg indicado directamente en la compra.
	FreightKindDirect FreightKind = "DIRECT"
)

var freightCodePattern = regexp.MustCompile(`^T\d{4}$`)

// FreightCode es una unión etiquetada: o bien un código del maestro de
// fletes, o bien un precio directo por kg. La celda de flete de una compra
// admite ambas formas.
type FreightCode struct {
	kind  FreightKind
	code  string
	price decimal.Decimal
}

// NewFreightCode interpreta la celda de flete: si es un número no negativo
// se toma como precio directo; si no, debe ser un código T + 4 dígitos.
func NewFreightCode(value string) (FreightCode, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return FreightCode{}, fmt.Errorf("el código de flete no puede estar vacío: %w", domain.ErrInvalidInput)
	}
	if price, err := decimal.NewFromString(trimmed); err == nil {
		if price.IsNegative() {
			return FreightCode{}, fmt.Errorf("el precio directo de flete no puede ser negativo (%s): %w", trimmed, domain.ErrInvalidInput)
		}
		return FreightCode{kind: FreightKindDirect, price: price}, nil
	}
	if !freightCodePattern.MatchString(trimmed) {
		return FreightCode{}, fmt.Errorf("código de flete inválido (%q), se espera T más 4 dígitos o un precio: %w", value, domain.ErrInvalidInput)
	}
	return FreightCode{kind: FreightKindCode, code: trimmed}, nil
}

// NewDirectFreight construye la variante de precio directo. Útil para el
// valor por defecto de compras sin flete informado.
func NewDirectFreight(price decimal.Decimal) (FreightCode, error) {
	if price.IsNegative() {
		return FreightCode{}, fmt.Errorf("el precio directo de flete no puede ser negativo (%s): %w", price, domain.ErrInvalidInput)
	}
	return FreightCode{kind: FreightKindDirect, price: price}, nil
}

// Kind devuelve la variante activa.
func (f FreightCode) Kind() FreightKind { return f.kind }

// Code devuelve el código del maestro. Solo tiene sentido con FreightKindCode.
func (f FreightCode) Code() string { return f.code }

// DirectPrice devuelve el precio por kg. Solo tiene sentido con FreightKindDirect.
func (f FreightCode) DirectPrice() decimal.Decimal { return f.price }

// Descriptor devuelve la forma imprimible: el código, o el precio con dos
// decimales.
func (f FreightCode) Descriptor() string {
	if f.kind == FreightKindCode {
		return f.code
	}
	return f.price.StringFixed(2)
}

func (f FreightCode) String() string { return f.Descriptor() }
