package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armasset/ledger-api/internal/application/dto"
	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/application/usecase"
)

// ExpenditureHandler maneja las peticiones HTTP de bajas de material (protegido).
type ExpenditureHandler struct {
	engine  *ledger.Service
	queries *usecase.MovementQueryUseCase
}

// NewExpenditureHandler construye el handler.
func NewExpenditureHandler(engine *ledger.Service, queries *usecase.MovementQueryUseCase) *ExpenditureHandler {
	return &ExpenditureHandler{engine: engine, queries: queries}
}

// Create godoc
// @Summary      Registrar baja de material
// @Description  Material consumido o destruido: sale de la base de forma permanente.
// @Tags         expenditures
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenditureRequest  true  "asset_id, base_id, personnel_id, quantity, date"
// @Success      201   {object}  dto.ExpenditureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expenditures [post]
func (h *ExpenditureHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenditureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return respondError(c, err)
	}
	expenditure, err := h.engine.RecordExpenditure(c.Context(), ledger.ExpenditureInput{
		AssetID:     in.AssetID,
		BaseID:      in.BaseID,
		PersonnelID: in.PersonnelID,
		Quantity:    in.Quantity,
		Date:        date,
		ActorID:     GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ExpenditureResponse{
		ID:          expenditure.ID,
		AssetID:     expenditure.AssetID,
		BaseID:      expenditure.BaseID,
		PersonnelID: expenditure.PersonnelID,
		Quantity:    expenditure.Quantity,
		Date:        expenditure.Date,
		RecordedBy:  expenditure.RecordedBy,
		CreatedAt:   expenditure.CreatedAt,
	})
}

// List godoc
// @Summary      Listar bajas
// @Tags         expenditures
// @Security     Bearer
// @Produce      json
// @Param        asset_id    query  string  false  "Filtrar por activo"
// @Param        base_id     query  string  false  "Filtrar por base"
// @Param        asset_type  query  string  false  "Filtrar por categoría"
// @Param        from        query  string  false  "Desde (inclusive)"
// @Param        to          query  string  false  "Hasta (inclusive)"
// @Param        limit       query  int     false  "Tamaño de página (default 20, max 100)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.ExpenditureResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/expenditures [get]
func (h *ExpenditureHandler) List(c *fiber.Ctx) error {
	filter, err := movementFilterFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	expenditures, err := h.queries.ListExpenditures(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(expenditures)
}
