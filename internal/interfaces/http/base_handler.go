package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armasset/ledger-api/internal/application/dto"
	"github.com/armasset/ledger-api/internal/application/usecase"
)

// BaseHandler maneja las peticiones HTTP de bases militares (protegido).
type BaseHandler struct {
	uc *usecase.BaseUseCase
}

// NewBaseHandler construye el handler.
func NewBaseHandler(uc *usecase.BaseUseCase) *BaseHandler {
	return &BaseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear base militar
// @Tags         bases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBaseRequest  true  "name, location"
// @Success      201   {object}  dto.BaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bases [post]
func (h *BaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	base, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(base)
}

// List godoc
// @Summary      Listar bases
// @Tags         bases
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.BaseResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/bases [get]
func (h *BaseHandler) List(c *fiber.Ctx) error {
	bases, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bases)
}

// GetByID godoc
// @Summary      Obtener base por ID
// @Tags         bases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la base"
// @Success      200  {object}  dto.BaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bases/{id} [get]
func (h *BaseHandler) GetByID(c *fiber.Ctx) error {
	base, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if base == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "base no encontrada"})
	}
	return c.JSON(base)
}
