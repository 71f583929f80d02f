package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armasset/ledger-api/internal/application/dto"
	"github.com/armasset/ledger-api/internal/application/metrics"
)

// DashboardHandler maneja el resumen de métricas del dashboard (protegido).
type DashboardHandler struct {
	uc *metrics.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *metrics.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetMetrics godoc
// @Summary      Resumen de métricas del periodo
// @Description  Apertura (eventos estrictamente anteriores a from), cierre,
// @Description  movimiento neto desglosado, asignado y bajas. Las asignaciones
// @Description  no restan del saldo de cierre.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        base_id     query  string  false  "Base concreta (Base Commander: siempre la suya)"
// @Param        asset_type  query  string  false  "Categoría de activo"
// @Param        from        query  string  false  "Inicio del periodo (inclusive)"
// @Param        to          query  string  false  "Fin del periodo (inclusive)"
// @Success      200  {object}  dto.MetricsSummary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/metrics [get]
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	from, err := dto.ParseOptionalDate(c.Query("from"))
	if err != nil {
		return respondError(c, err)
	}
	to, err := dto.ParseOptionalDate(c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}

	sel := metrics.Selector{
		BaseID:    scopedBase(c, c.Query("base_id")),
		AssetType: c.Query("asset_type"),
	}
	if from != nil {
		sel.From = *from
	}
	if to != nil {
		sel.To = *to
	}

	summary, err := h.uc.GetMetrics(c.Context(), sel)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
