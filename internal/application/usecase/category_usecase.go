package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/nmthanh/backoffice-api/internal/application/dto"
	"github.com/nmthanh/backoffice-api/internal/application/history"
	"github.com/nmthanh/backoffice-api/internal/application/stats"
	"github.com/nmthanh/backoffice-api/internal/application/store"
	"github.com/nmthanh/backoffice-api/internal/domain/entity"
	"github.com/nmthanh/backoffice-api/internal/domain/format"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/remote"
)

// CategoryUseCase manages the category list. Product counts in every
// response come from the aggregator, never from the stored records.
type CategoryUseCase struct {
	store      *store.EntityStore[entity.Category]
	aggregator *stats.Aggregator
	history    *history.Log
	remote     *remote.Client
	now        func() time.Time
}

func NewCategoryUseCase(s *store.EntityStore[entity.Category], agg *stats.Aggregator, log *history.Log, client *remote.Client) *CategoryUseCase {
	return &CategoryUseCase{store: s, aggregator: agg, history: log, remote: client, now: time.Now}
}

// CategorySearchMatches reports whether a category satisfies a keyword; name
// and description both count.
func CategorySearchMatches(c *entity.Category, keyword string) bool {
	return strings.Contains(strings.ToLower(c.Name), keyword) ||
		strings.Contains(strings.ToLower(c.Description), keyword)
}

// List returns a filtered, paginated page with live product counts.
func (uc *CategoryUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	filtered := uc.store.List(ctx, search)
	categories := uc.aggregator.WithCounts(ctx, store.Paginate(filtered, page.Page, page.PageSize))
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: out,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: len(filtered)},
	}, nil
}

// GetByID returns one category with its live count, or (nil, nil).
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, found := uc.store.Get(ctx, id)
	if !found {
		return nil, nil
	}
	category.ProductCount = uc.aggregator.CountByCategory(ctx, category.Name)
	resp := toCategoryResponse(category)
	return &resp, nil
}

// Create stores a new category and logs it.
func (uc *CategoryUseCase) Create(ctx context.Context, actor string, in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	category := entity.Category{
		ID:          uc.store.NewID(),
		Name:        in.Name,
		Description: in.Description,
		CreatedDate: uc.now().Format(format.CanonicalDateLayout),
		Status:      in.Status,
		Color:       in.Color,
	}
	if category.Status == "" {
		category.Status = entity.CategoryActive
	}
	if err := uc.store.Insert(ctx, category); err != nil {
		return nil, err
	}
	uc.logEvent(ctx, entity.EventCreate, actor, nil, &category)
	resp := toCategoryResponse(category)
	return &resp, nil
}

// Update edits a category's fields. Renaming does not touch the items still
// carrying the old label; they simply stop counting toward this category.
func (uc *CategoryUseCase) Update(ctx context.Context, actor, id string, in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	old, found := uc.store.Get(ctx, id)
	if !found {
		return nil, nil
	}
	updated := old
	updated.Name = in.Name
	updated.Description = in.Description
	if in.Status != "" {
		updated.Status = in.Status
	}
	if in.Color != "" {
		updated.Color = in.Color
	}
	replaced, err := uc.store.Replace(ctx, id, updated)
	if err != nil {
		return nil, err
	}
	if !replaced {
		return nil, nil
	}
	uc.logEvent(ctx, entity.EventUpdate, actor, &old, &updated)
	updated.ProductCount = uc.aggregator.CountByCategory(ctx, updated.Name)
	resp := toCategoryResponse(updated)
	return &resp, nil
}

// Delete removes a category after the remote round-trip. Items referencing
// it are left alone; their label just dangles.
func (uc *CategoryUseCase) Delete(ctx context.Context, actor, id string) (*dto.CategoryResponse, error) {
	if _, found := uc.store.Get(ctx, id); !found {
		return nil, nil
	}
	if err := uc.remote.DeleteCategory(ctx, id); err != nil {
		return nil, err
	}
	removed, found, err := uc.store.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	uc.logEvent(ctx, entity.EventDelete, actor, &removed, nil)
	resp := toCategoryResponse(removed)
	return &resp, nil
}

// Items lists the records labeled with the category's name, or (nil, nil)
// for an unknown id.
func (uc *CategoryUseCase) Items(ctx context.Context, id string) ([]dto.ItemResponse, error) {
	category, found := uc.store.Get(ctx, id)
	if !found {
		return nil, nil
	}
	items := uc.aggregator.ItemsByCategory(ctx, category.Name)
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// Stats buckets the category's items by stock status, or (nil, nil) for an
// unknown id.
func (uc *CategoryUseCase) Stats(ctx context.Context, id string) (*dto.CategoryStatsResponse, error) {
	category, found := uc.store.Get(ctx, id)
	if !found {
		return nil, nil
	}
	counts := uc.aggregator.StatusByCategory(ctx, category.Name)
	return &dto.CategoryStatsResponse{
		ProductCount: uc.aggregator.CountByCategory(ctx, category.Name),
		Active:       counts.Active,
		LowStock:     counts.LowStock,
		Expired:      counts.Expired,
	}, nil
}

// Count returns the number of stored categories, for the overview totals.
func (uc *CategoryUseCase) Count(ctx context.Context) int {
	return uc.store.Count(ctx)
}

func (uc *CategoryUseCase) logEvent(ctx context.Context, eventType, actor string, before, after *entity.Category) {
	event := entity.HistoryEvent{
		Type:       eventType,
		EntityType: entity.EntityCategory,
		Actor:      actor,
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
	_, _ = uc.history.Append(ctx, event)
}

func toCategoryResponse(c entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		ProductCount: c.ProductCount,
		CreatedDate:  c.CreatedDate,
		Status:       c.Status,
		Color:        c.Color,
	}
}
