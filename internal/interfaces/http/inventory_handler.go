package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/storemanager/inventario-api/internal/application/dto"
	"github.com/storemanager/inventario-api/internal/application/inventory"
)

// InventoryHandler maneja movimientos, stock, alertas e historial (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterMovement registra un movimiento solo-auditoría (no toca stock).
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.RegisterMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "mensaje": "movimiento registrado"})
}

// UpdateStock aplica un movimiento sobre el stock del producto del path y
// devuelve el stock resultante.
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	stock, err := h.uc.UpdateStock(c.Context(), GetUserID(c), productID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockResponse{IDProducto: productID, Stock: stock})
}

// ListMovements lista movimientos; con ?producto_id= filtra por producto.
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.uc.ListMovements(c.Context(), GetUserID(c), c.Query("producto_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAlerts devuelve las 50 alertas más recientes.
func (h *InventoryHandler) ListAlerts(c *fiber.Ctx) error {
	out, err := h.uc.ListAlerts(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListHistory devuelve el historial de cambios del producto del path.
func (h *InventoryHandler) ListHistory(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListHistory(c.Context(), GetUserID(c), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
