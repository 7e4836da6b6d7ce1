package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nmthanh/backoffice-api/internal/application/dto"
	"github.com/nmthanh/backoffice-api/internal/application/history"
	"github.com/nmthanh/backoffice-api/internal/application/store"
	"github.com/nmthanh/backoffice-api/internal/domain/entity"
)

// HistoryHandler serves the audit log.
type HistoryHandler struct {
	log *history.Log
}

func NewHistoryHandler(log *history.Log) *HistoryHandler {
	return &HistoryHandler{log: log}
}

// List godoc
// @Summary      List audit events, newest first
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        search      query  string  false  "Entity name or actor keyword"
// @Param        type        query  string  false  "Comma-separated event types"
// @Param        entityType  query  string  false  "product or category"
// @Param        page        query  int     false  "Page (1-based)"  default(1)
// @Param        pageSize    query  int     false  "Page size"       default(10)
// @Success      200  {object}  dto.HistoryListResponse
// @Router       /api/warehouse/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	filter := history.Filter{
		Keyword:    c.Query("search"),
		EntityType: c.Query("entityType"),
	}
	if raw := c.Query("type"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filter.Types = append(filter.Types, t)
			}
		}
	}
	page := dto.PageRequest{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 10),
	}
	page.DefaultPage()
	filtered := h.log.List(c.Context(), filter)
	events := store.Paginate(filtered, page.Page, page.PageSize)
	items := make([]dto.HistoryEventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, toHistoryEventResponse(e))
	}
	return c.JSON(dto.HistoryListResponse{Items: items, Total: len(filtered)})
}

// Clear godoc
// @Summary      Clear the audit log
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Success      204  "cleared"
// @Router       /api/warehouse/history [delete]
func (h *HistoryHandler) Clear(c *fiber.Ctx) error {
	if err := h.log.Clear(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toHistoryEventResponse(e entity.HistoryEvent) dto.HistoryEventResponse {
	out := dto.HistoryEventResponse{
		ID:         e.ID,
		CreatedAt:  e.CreatedAt,
		Type:       e.Type,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		EntityName: e.EntityName,
		Actor:      e.Actor,
		Before:     e.Before,
		After:      e.After,
		Note:       e.Note,
	}
	if e.Delta != nil {
		out.Delta = &dto.DeltaResponse{Quantity: e.Delta.Quantity, Price: e.Delta.Price}
	}
	return out
}
