// Package usecase wires the application operations: item and category CRUD
// with audit logging, employee accounts, authentication and file export.
package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nmthanh/backoffice-api/internal/application/dto"
	"github.com/nmthanh/backoffice-api/internal/application/history"
	"github.com/nmthanh/backoffice-api/internal/application/store"
	"github.com/nmthanh/backoffice-api/internal/domain/entity"
	"github.com/nmthanh/backoffice-api/internal/domain/format"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/remote"
)

// ItemUseCase is the CRUD surface shared by ingredients and products. The
// two are the same record shape in different collections; one use case
// instance per collection keeps the logic in one place.
type ItemUseCase struct {
	store   *store.EntityStore[entity.Item]
	history *history.Log
	remote  *remote.Client
	now     func() time.Time
}

func NewItemUseCase(s *store.EntityStore[entity.Item], log *history.Log, client *remote.Client) *ItemUseCase {
	return &ItemUseCase{store: s, history: log, remote: client, now: time.Now}
}

// List returns a filtered, paginated page of items. The keyword matches the
// item name case-insensitively.
func (uc *ItemUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.ItemListResponse, error) {
	page.DefaultPage()
	filtered := uc.store.List(ctx, search)
	items := store.Paginate(filtered, page.Page, page.PageSize)
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: out,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: len(filtered)},
	}, nil
}

// GetByID returns one item, or (nil, nil) when the id is unknown.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, found := uc.store.Get(ctx, id)
	if !found {
		return nil, nil
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Create stores a new item and logs a create event. An empty or unparseable
// import date becomes today; the price gains the currency suffix; an empty
// status defaults to active.
func (uc *ItemUseCase) Create(ctx context.Context, actor string, in dto.SaveItemRequest) (*dto.ItemResponse, error) {
	item := uc.fromRequest(in)
	item.ID = uc.store.NewID()
	item.ImportDate = format.NormalizeDate(in.ImportDate, uc.now()).Value
	if item.Status == "" {
		item.Status = entity.StatusActive
	}
	if err := uc.store.Insert(ctx, item); err != nil {
		return nil, err
	}
	uc.logEvent(ctx, entity.EventCreate, actor, nil, &item, nil, "")
	resp := toItemResponse(item)
	return &resp, nil
}

// Update replaces an item's fields and logs the change. An empty or
// unparseable date keeps the stored value, and an empty category keeps the
// stored label so an edit cannot silently detach the item from its category.
func (uc *ItemUseCase) Update(ctx context.Context, actor, id string, in dto.SaveItemRequest) (*dto.ItemResponse, error) {
	old, found := uc.store.Get(ctx, id)
	if !found {
		return nil, nil
	}

	item := uc.fromRequest(in)
	item.ID = old.ID
	item.ImportDate = format.NormalizeDateKeepOld(in.ImportDate, old.ImportDate).Value
	if item.Category == "" {
		item.Category = old.Category
	}
	if item.Status == "" {
		item.Status = old.Status
	}

	replaced, err := uc.store.Replace(ctx, id, item)
	if err != nil {
		return nil, err
	}
	if !replaced {
		return nil, nil
	}

	delta := computeDelta(old, item)
	uc.logEvent(ctx, updateEventType(old, item), actor, &old, &item, delta, "")
	resp := toItemResponse(item)
	return &resp, nil
}

// UpdateKeepCategory edits an item while leaving its stored category label
// untouched, whatever the payload says. The category detail screen edits
// through this path so an edit there can never move the item elsewhere.
func (uc *ItemUseCase) UpdateKeepCategory(ctx context.Context, actor, id string, in dto.SaveItemRequest) (*dto.ItemResponse, error) {
	in.Category = ""
	return uc.Update(ctx, actor, id, in)
}

// Delete removes an item after the remote round-trip completes. Unknown ids
// report (nil, nil) and leave both storage and the audit log untouched.
func (uc *ItemUseCase) Delete(ctx context.Context, actor, id string) (*dto.ItemResponse, error) {
	if _, found := uc.store.Get(ctx, id); !found {
		return nil, nil
	}
	if err := uc.remote.DeleteItem(ctx, id); err != nil {
		return nil, err
	}
	removed, found, err := uc.store.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	uc.logEvent(ctx, entity.EventDelete, actor, &removed, nil, nil, "")
	resp := toItemResponse(removed)
	return &resp, nil
}

// Import creates one record per incoming line and logs each as an import
// event carrying the received quantity.
func (uc *ItemUseCase) Import(ctx context.Context, actor string, in dto.ImportItemsRequest) ([]dto.ItemResponse, error) {
	out := make([]dto.ItemResponse, 0, len(in.Items))
	for _, line := range in.Items {
		item := uc.fromRequest(line)
		item.ID = uc.store.NewID()
		item.ImportDate = format.NormalizeDate(line.ImportDate, uc.now()).Value
		if item.Status == "" {
			item.Status = entity.StatusActive
		}
		if err := uc.store.Insert(ctx, item); err != nil {
			return nil, err
		}
		qty := item.Quantity
		uc.logEvent(ctx, entity.EventImport, actor, nil, &item, &entity.Delta{Quantity: &qty}, "")
		out = append(out, toItemResponse(item))
	}
	return out, nil
}

// Adjust shifts the stock quantity by a signed delta, clamped at zero, and
// logs an adjust event with the note.
func (uc *ItemUseCase) Adjust(ctx context.Context, actor, id string, in dto.AdjustItemRequest) (*dto.ItemResponse, error) {
	old, found := uc.store.Get(ctx, id)
	if !found {
		return nil, nil
	}
	item, found, err := uc.store.Update(ctx, id, func(it *entity.Item) {
		it.Quantity += in.Delta
		if it.Quantity < 0 {
			it.Quantity = 0
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	applied := item.Quantity - old.Quantity
	uc.logEvent(ctx, entity.EventAdjust, actor, &old, &item, &entity.Delta{Quantity: &applied}, in.Note)
	resp := toItemResponse(item)
	return &resp, nil
}

// Items returns the raw records matching the search, for the exporters.
func (uc *ItemUseCase) Items(ctx context.Context, search string) []entity.Item {
	return uc.store.List(ctx, search)
}

func (uc *ItemUseCase) fromRequest(in dto.SaveItemRequest) entity.Item {
	return entity.Item{
		Name:        in.Name,
		Image:       in.Image,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Price:       format.CanonicalPrice(in.Price),
		Description: in.Description,
		Supplier:    in.Supplier,
		Employee:    in.Employee,
		ExpiryDate:  in.ExpiryDate,
		Status:      in.Status,
	}
}

func (uc *ItemUseCase) logEvent(ctx context.Context, eventType, actor string, before, after *entity.Item, delta *entity.Delta, note string) {
	event := entity.HistoryEvent{
		Type:       eventType,
		EntityType: entity.EntityProduct,
		Actor:      actor,
		Delta:      delta,
		Note:       note,
	}
	if after != nil {
		event.EntityID = after.ID
		event.EntityName = after.Name
		event.After = snapshot(*after)
	}
	if before != nil {
		event.EntityID = before.ID
		if event.EntityName == "" {
			event.EntityName = before.Name
		}
		event.Before = snapshot(*before)
	}
	// A failed audit write must not roll back the mutation it describes.
	_, _ = uc.history.Append(ctx, event)
}

// updateEventType narrows a generic update to a more specific event when
// exactly one notable field changed.
func updateEventType(old, updated entity.Item) string {
	imageChanged := old.Image != updated.Image
	priceChanged := old.Price != updated.Price
	rest := old
	rest.Image = updated.Image
	rest.Price = updated.Price
	otherChanged := rest != updated

	switch {
	case imageChanged && !priceChanged && !otherChanged:
		return entity.EventImageChange
	case priceChanged && !imageChanged && !otherChanged:
		return entity.EventPriceChange
	default:
		return entity.EventUpdate
	}
}

// computeDelta derives the signed quantity/price change of an update, nil
// when neither moved.
func computeDelta(old, updated entity.Item) *entity.Delta {
	var delta entity.Delta
	if updated.Quantity != old.Quantity {
		q := updated.Quantity - old.Quantity
		delta.Quantity = &q
	}
	if updated.Price != old.Price {
		diff, _ := format.ParsePrice(updated.Price).Sub(format.ParsePrice(old.Price)).Float64()
		if diff != 0 {
			delta.Price = &diff
		}
	}
	if delta.Quantity == nil && delta.Price == nil {
		return nil
	}
	return &delta
}

func snapshot(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}

func toItemResponse(it entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Image:       it.Image,
		Category:    it.Category,
		Quantity:    it.Quantity,
		Unit:        it.Unit,
		ImportDate:  it.ImportDate,
		Price:       it.Price,
		Description: it.Description,
		Supplier:    it.Supplier,
		Employee:    it.Employee,
		ExpiryDate:  it.ExpiryDate,
		Status:      it.Status,
	}
}
