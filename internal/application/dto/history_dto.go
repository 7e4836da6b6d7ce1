package dto

import "encoding/json"

// HistoryListRequest filters the audit log. Type is comma-separated in the
// query string and split by the handler.
type HistoryListRequest struct {
	Search     string `query:"search"`
	Type       string `query:"type"`
	EntityType string `query:"entityType"`
	Page       int    `query:"page"`
	PageSize   int    `query:"pageSize"`
}

// DeltaResponse is the signed change attached to an event.
type DeltaResponse struct {
	Quantity *int     `json:"quantity,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// HistoryEventResponse is the outward audit record shape.
type HistoryEventResponse struct {
	ID         string          `json:"id"`
	CreatedAt  string          `json:"createdAt"`
	Type       string          `json:"type"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	EntityName string          `json:"entityName"`
	Actor      string          `json:"actor"`
	Delta      *DeltaResponse  `json:"delta,omitempty"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	Note       string          `json:"note,omitempty"`
}

// HistoryListResponse lists events newest-first.
type HistoryListResponse struct {
	Items []HistoryEventResponse `json:"items"`
	Total int                    `json:"total"`
}
