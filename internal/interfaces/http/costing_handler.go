package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Costeo-api/internal/application/costing"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain"
)

// CostingHandler maneja las corridas de costeo (protegido).
type CostingHandler struct {
	uc *costing.RunCostingUseCase
}

// NewCostingHandler construye el handler.
func NewCostingHandler(uc *costing.RunCostingUseCase) *CostingHandler {
	return &CostingHandler{uc: uc}
}

// Run godoc
// @Summary      Ejecutar una corrida de costeo
// @Description  Lee el libro de entrada configurado, costea cada lote de producción,
//
//	reconstruye el historial de inventario y guarda el libro de salida.
//	Los lotes que fallan no detienen la corrida: quedan listados en failures.
//
// @Tags         costing
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RunSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/costing/runs [post]
func (h *CostingHandler) Run(c *fiber.Ctx) error {
	runID := uuid.New().String()
	summary, err := h.uc.Execute(runID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "acceso denegado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "la corrida de costeo falló"})
	}
	return c.JSON(summary)
}
