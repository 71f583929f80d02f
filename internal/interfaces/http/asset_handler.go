package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armasset/ledger-api/internal/application/dto"
	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/application/usecase"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

// AssetHandler maneja las peticiones HTTP de activos (protegido).
type AssetHandler struct {
	uc     *usecase.AssetUseCase
	engine *ledger.Service
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *usecase.AssetUseCase, engine *ledger.Service) *AssetHandler {
	return &AssetHandler{uc: uc, engine: engine}
}

// Create godoc
// @Summary      Crear activo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "type, serial, description, base_id"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	asset, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(asset)
}

// List godoc
// @Summary      Listar activos
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        base_id  query  string  false  "Filtrar por base hogar"
// @Param        type     query  string  false  "Filtrar por categoría"
// @Success      200  {array}   dto.AssetResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	filter := repository.AssetFilter{
		BaseID: scopedBase(c, c.Query("base_id")),
		Type:   c.Query("type"),
	}
	assets, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(assets)
}

// GetByID godoc
// @Summary      Obtener activo por ID
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del activo"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	asset, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if asset == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
	}
	return c.JSON(asset)
}

// GetBalance godoc
// @Summary      Existencias derivadas de un activo en una base
// @Description  Saldo disponible como fold sobre el log de eventos; un par sin
// @Description  eventos responde 0, no 404.
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true   "ID del activo"
// @Param        base_id  query  string  true   "ID de la base"
// @Param        from     query  string  false  "Inicio de ventana (inclusive)"
// @Param        to       query  string  false  "Fin de ventana (inclusive)"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/balance [get]
func (h *AssetHandler) GetBalance(c *fiber.Ctx) error {
	assetID := c.Params("id")
	baseID := scopedBase(c, c.Query("base_id"))

	from, err := dto.ParseOptionalDate(c.Query("from"))
	if err != nil {
		return respondError(c, err)
	}
	to, err := dto.ParseOptionalDate(c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}

	available, err := h.engine.GetBalance(c.Context(), assetID, baseID, repository.DateWindow{From: from, To: to})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.BalanceResponse{AssetID: assetID, BaseID: baseID, Available: available})
}
