package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armasset/ledger-api/internal/application/dto"
	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/application/usecase"
	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

// TransferHandler maneja las peticiones HTTP de traslados entre bases (protegido).
type TransferHandler struct {
	engine  *ledger.Service
	queries *usecase.MovementQueryUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(engine *ledger.Service, queries *usecase.MovementQueryUseCase) *TransferHandler {
	return &TransferHandler{engine: engine, queries: queries}
}

// Create godoc
// @Summary      Registrar traslado entre bases
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "asset_id, from_base_id, to_base_id, quantity, date"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Failure      504   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return respondError(c, err)
	}
	transfer, err := h.engine.RecordTransfer(c.Context(), ledger.TransferInput{
		AssetID:    in.AssetID,
		FromBaseID: in.FromBaseID,
		ToBaseID:   in.ToBaseID,
		Quantity:   in.Quantity,
		Date:       date,
		ActorID:    GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResponse{
		ID:         transfer.ID,
		AssetID:    transfer.AssetID,
		FromBaseID: transfer.FromBaseID,
		ToBaseID:   transfer.ToBaseID,
		Quantity:   transfer.Quantity,
		Date:       transfer.Date,
		CreatedBy:  transfer.CreatedBy,
		CreatedAt:  transfer.CreatedAt,
	})
}

// List godoc
// @Summary      Listar traslados
// @Description  Un Base Commander ve los traslados donde su base es origen o destino.
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        asset_id      query  string  false  "Filtrar por activo"
// @Param        from_base_id  query  string  false  "Filtrar por base origen"
// @Param        to_base_id    query  string  false  "Filtrar por base destino"
// @Param        asset_type    query  string  false  "Filtrar por categoría"
// @Param        from          query  string  false  "Desde (inclusive)"
// @Param        to            query  string  false  "Hasta (inclusive)"
// @Param        limit         query  int     false  "Tamaño de página (default 20, max 100)"
// @Param        offset        query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.TransferResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, err)
	}
	page.DefaultPage()

	from, err := dto.ParseOptionalDate(c.Query("from"))
	if err != nil {
		return respondError(c, err)
	}
	to, err := dto.ParseOptionalDate(c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}

	filter := repository.TransferFilter{
		AssetID:    c.Query("asset_id"),
		FromBaseID: c.Query("from_base_id"),
		ToBaseID:   c.Query("to_base_id"),
		AssetType:  c.Query("asset_type"),
		Window:     repository.DateWindow{From: from, To: to},
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	if GetRole(c) == entity.RoleBaseCommander {
		// Origen O destino su propia base; los filtros por lado se descartan.
		filter.FromBaseID, filter.ToBaseID = "", ""
		filter.InvolvingBase = GetBaseID(c)
	}

	transfers, err := h.queries.ListTransfers(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transfers)
}
