package entity

import "encoding/json"

// History event types.
const (
	EventCreate      = "create"
	EventUpdate      = "update"
	EventDelete      = "delete"
	EventImport      = "import"
	EventExport      = "export"
	EventAdjust      = "adjust"
	EventPriceChange = "price_change"
	EventImageChange = "image_change"
)

// Entity types referenced by history events. Ingredients and products both
// record as "product" (they share one shape; the screens never distinguished
// them in the log).
const (
	EntityProduct  = "product"
	EntityCategory = "category"
)

// Delta is the signed quantity/price change attached to update, adjust,
// import and export events.
type Delta struct {
	Quantity *int     `json:"quantity,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// HistoryEvent is an immutable audit record. Events are appended
// newest-first and never edited or removed, except by a full-log clear.
// Before/After hold full entity snapshots at event time; an event may
// reference an entity that has since been deleted.
type HistoryEvent struct {
	ID         string          `json:"id"`
	CreatedAt  string          `json:"createdAt"` // RFC3339
	Type       string          `json:"type"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	EntityName string          `json:"entityName"`
	Actor      string          `json:"actor"`
	Delta      *Delta          `json:"delta,omitempty"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	Note       string          `json:"note,omitempty"`
}
