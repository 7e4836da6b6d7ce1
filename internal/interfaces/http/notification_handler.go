package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nmthanh/backoffice-api/internal/application/notify"
)

// NotificationHandler exposes the banner state machine so clients can poll
// the current message and drive its dismissal.
type NotificationHandler struct {
	notifier *notify.Notifier
}

func NewNotificationHandler(notifier *notify.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// Current godoc
// @Summary      Current banner state
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  notify.Snapshot
// @Router       /api/notifications/current [get]
func (h *NotificationHandler) Current(c *fiber.Ctx) error {
	return c.JSON(h.notifier.Snapshot())
}

// Dismiss godoc
// @Summary      Fade the banner out now
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  notify.Snapshot
// @Router       /api/notifications/dismiss [post]
func (h *NotificationHandler) Dismiss(c *fiber.Ctx) error {
	h.notifier.Dismiss()
	return c.JSON(h.notifier.Snapshot())
}

// Close godoc
// @Summary      Hide the banner immediately
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  notify.Snapshot
// @Router       /api/notifications/close [post]
func (h *NotificationHandler) Close(c *fiber.Ctx) error {
	h.notifier.Close()
	return c.JSON(h.notifier.Snapshot())
}
