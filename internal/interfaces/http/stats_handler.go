package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nmthanh/backoffice-api/internal/application/stats"
	"github.com/nmthanh/backoffice-api/internal/application/usecase"
)

// StatsHandler serves the warehouse-wide overview.
type StatsHandler struct {
	aggregator *stats.Aggregator
	categories *usecase.CategoryUseCase
}

func NewStatsHandler(aggregator *stats.Aggregator, categories *usecase.CategoryUseCase) *StatsHandler {
	return &StatsHandler{aggregator: aggregator, categories: categories}
}

// Overview godoc
// @Summary      Warehouse totals and stock status buckets
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  stats.Overview
// @Router       /api/warehouse/stats [get]
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	return c.JSON(h.aggregator.Summarize(c.Context(), h.categories.Count(c.Context())))
}
