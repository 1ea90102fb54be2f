package entity

import (
	"fmt"
	"regexp"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/valueobject"
)

var freightMasterCodePattern = regexp.MustCompile(`^T\d{4}$`)

// FreightMaster es una entrada del maestro de fletes: la tarifa por kg de un
// patrón de transporte, identificada por su código T + 4 dígitos. ValidTo es
// nil cuando la tarifa sigue vigente.
type FreightMaster struct {
	FreightCode string
	PatternName valueobject.PatternName
	KgUnitPrice valueobject.Amount
	ValidFrom   valueobject.TransactionDate
	ValidTo     *valueobject.TransactionDate
}

// NewFreightMaster construye una entrada del maestro. El código se vuelve a
// validar aquí: el maestro solo admite códigos, nunca precios directos.
func NewFreightMaster(
	code string,
	pattern valueobject.PatternName,
	kgUnitPrice valueobject.Amount,
	validFrom valueobject.TransactionDate,
	validTo *valueobject.TransactionDate,
) (FreightMaster, error) {
	if !freightMasterCodePattern.MatchString(code) {
		return FreightMaster{}, fmt.Errorf("código de flete inválido en el maestro (%q), se espera T más 4 dígitos: %w", code, domain.ErrInvalidInput)
	}
	return FreightMaster{
		FreightCode: code,
		PatternName: pattern,
		KgUnitPrice: kgUnitPrice,
		ValidFrom:   validFrom,
		ValidTo:     validTo,
	}, nil
}
