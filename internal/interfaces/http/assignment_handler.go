package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armasset/ledger-api/internal/application/dto"
	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/application/usecase"
)

// AssignmentHandler maneja las peticiones HTTP de asignaciones a personal (protegido).
type AssignmentHandler struct {
	engine  *ledger.Service
	queries *usecase.MovementQueryUseCase
}

// NewAssignmentHandler construye el handler.
func NewAssignmentHandler(engine *ledger.Service, queries *usecase.MovementQueryUseCase) *AssignmentHandler {
	return &AssignmentHandler{engine: engine, queries: queries}
}

// Create godoc
// @Summary      Asignar material a personal
// @Description  Reduce lo disponible; el material sigue en la base. Sin devolución.
// @Tags         assignments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssignmentRequest  true  "asset_id, base_id, personnel_id, quantity, date"
// @Success      201   {object}  dto.AssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assignments [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return respondError(c, err)
	}
	assignment, err := h.engine.RecordAssignment(c.Context(), ledger.AssignmentInput{
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
	return c.Status(fiber.StatusCreated).JSON(dto.AssignmentResponse{
		ID:          assignment.ID,
		AssetID:     assignment.AssetID,
		BaseID:      assignment.BaseID,
		PersonnelID: assignment.PersonnelID,
		Quantity:    assignment.Quantity,
		Date:        assignment.Date,
		AssignedBy:  assignment.AssignedBy,
		CreatedAt:   assignment.CreatedAt,
	})
}

// List godoc
// @Summary      Listar asignaciones
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Param        asset_id    query  string  false  "Filtrar por activo"
// @Param        base_id     query  string  false  "Filtrar por base"
// @Param        asset_type  query  string  false  "Filtrar por categoría"
// @Param        from        query  string  false  "Desde (inclusive)"
// @Param        to          query  string  false  "Hasta (inclusive)"
// @Param        limit       query  int     false  "Tamaño de página (default 20, max 100)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.AssignmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/assignments [get]
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	filter, err := movementFilterFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	assignments, err := h.queries.ListAssignments(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(assignments)
}
