package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armasset/ledger-api/internal/application/dto"
	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/application/usecase"
	"github.com/armasset/ledger-api/internal/domain"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

// PurchaseHandler maneja las peticiones HTTP de compras (protegido).
type PurchaseHandler struct {
	engine  *ledger.Service
	queries *usecase.MovementQueryUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(engine *ledger.Service, queries *usecase.MovementQueryUseCase) *PurchaseHandler {
	return &PurchaseHandler{engine: engine, queries: queries}
}

// Create godoc
// @Summary      Registrar compra
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "asset_id, base_id, quantity, date"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return respondError(c, err)
	}
	purchase, err := h.engine.RecordPurchase(c.Context(), ledger.PurchaseInput{
		AssetID:  in.AssetID,
		BaseID:   in.BaseID,
		Quantity: in.Quantity,
		Date:     date,
		ActorID:  GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PurchaseResponse{
		ID:        purchase.ID,
		AssetID:   purchase.AssetID,
		BaseID:    purchase.BaseID,
		Quantity:  purchase.Quantity,
		Date:      purchase.Date,
		CreatedBy: purchase.CreatedBy,
		CreatedAt: purchase.CreatedAt,
	})
}

// List godoc
// @Summary      Listar compras
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        asset_id    query  string  false  "Filtrar por activo"
// @Param        base_id     query  string  false  "Filtrar por base"
// @Param        asset_type  query  string  false  "Filtrar por categoría"
// @Param        from        query  string  false  "Desde (inclusive)"
// @Param        to          query  string  false  "Hasta (inclusive)"
// @Param        limit       query  int     false  "Tamaño de página (default 20, max 100)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.PurchaseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	filter, err := movementFilterFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	purchases, err := h.queries.ListPurchases(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(purchases)
}

// movementFilterFromQuery arma el filtro común de compras, asignaciones y bajas.
// Aplica la visibilidad del Base Commander y los defaults de paginación.
func movementFilterFromQuery(c *fiber.Ctx) (repository.MovementFilter, error) {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return repository.MovementFilter{}, domain.ErrInvalidInput
	}
	page.DefaultPage()

	from, err := dto.ParseOptionalDate(c.Query("from"))
	if err != nil {
		return repository.MovementFilter{}, err
	}
	to, err := dto.ParseOptionalDate(c.Query("to"))
	if err != nil {
		return repository.MovementFilter{}, err
	}
	return repository.MovementFilter{
		AssetID:   c.Query("asset_id"),
		BaseID:    scopedBase(c, c.Query("base_id")),
		AssetType: c.Query("asset_type"),
		Window:    repository.DateWindow{From: from, To: to},
		Limit:     page.Limit,
		Offset:    page.Offset,
	}, nil
}
