package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/inventory"
	"github.com/jhoicas/Costeo-api/internal/domain"
)

// InventoryHandler maneja las consultas de historial de inventario (protegido).
type InventoryHandler struct {
	history *inventory.BuildHistoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(history *inventory.BuildHistoryUseCase) *InventoryHandler {
	return &InventoryHandler{history: history}
}

// GetHistory godoc
// @Summary      Historial cronológico de inventario
// @Description  Fusiona producción, compras y ventas del libro de entrada y devuelve
//
//	los asientos ordenados por fecha con el saldo corriente por producto.
//	Solo lectura: no escribe el libro de salida.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/history [get]
func (h *InventoryHandler) GetHistory(c *fiber.Ctx) error {
	records, err := h.history.Execute()
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo construir el historial"})
	}
	return c.JSON(fiber.Map{
		"total":   len(records),
		"records": records,
	})
}
