package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmthanh/backoffice-api/internal/application/dto"
	"github.com/nmthanh/backoffice-api/internal/application/history"
	"github.com/nmthanh/backoffice-api/internal/application/store"
	"github.com/nmthanh/backoffice-api/internal/application/usecase"
	"github.com/nmthanh/backoffice-api/internal/domain/entity"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/remote"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/storage"
)

func newItemFixture(t *testing.T) (*usecase.ItemUseCase, *history.Log) {
	t.Helper()
	driver := storage.NewMemory()
	col := store.NewCollection(driver, storage.KeyIngredients, func() []entity.Item { return []entity.Item{} })
	s := store.NewEntityStore(col,
		func(it *entity.Item) string { return it.ID },
		func(it *entity.Item, kw string) bool { return strings.Contains(strings.ToLower(it.Name), kw) },
	)
	log := history.NewLog(store.NewCollection(driver, storage.KeyHistory, func() []entity.HistoryEvent { return []entity.HistoryEvent{} }))
	return usecase.NewItemUseCase(s, log, remote.NewClient(0)), log
}

func TestItemUseCase_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	uc, log := newItemFixture(t)

	created, err := uc.Create(ctx, "admin", dto.SaveItemRequest{
		Name: "Tôm sú", Category: "Cá", Quantity: 10, Unit: "kg", Price: "220000",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	// Missing date falls back to today, price gains the suffix, status
	// defaults to active.
	assert.NotEmpty(t, created.ImportDate)
	assert.Equal(t, "220000đ", created.Price)
	assert.Equal(t, entity.StatusActive, created.Status)
	assert.NotEmpty(t, created.ID)

	events := log.List(ctx, history.Filter{})
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventCreate, events[0].Type)
	assert.Equal(t, entity.EntityProduct, events[0].EntityType)
	assert.Equal(t, "Tôm sú", events[0].EntityName)
	assert.Equal(t, "admin", events[0].Actor)
	assert.NotEmpty(t, events[0].After)
}

func TestItemUseCase_UpdateKeepsDateAndCategoryWhenOmitted(t *testing.T) {
	ctx := context.Background()
	uc, log := newItemFixture(t)

	created, err := uc.Create(ctx, "admin", dto.SaveItemRequest{
		Name: "Tôm sú", Category: "Cá", Quantity: 10, Unit: "kg", Price: "220000", ImportDate: "19/08/2025",
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, "admin", created.ID, dto.SaveItemRequest{
		Name: "Tôm sú loại 1", Quantity: 8, Unit: "kg", Price: "250000",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "19/08/2025", updated.ImportDate, "empty date keeps the stored value")
	assert.Equal(t, "Cá", updated.Category, "empty category keeps the stored label")

	events := log.List(ctx, history.Filter{Types: []string{entity.EventUpdate}})
	require.Len(t, events, 1)
	require.NotNil(t, events[0].Delta)
	require.NotNil(t, events[0].Delta.Quantity)
	assert.Equal(t, -2, *events[0].Delta.Quantity)
	require.NotNil(t, events[0].Delta.Price)
	assert.InDelta(t, 30000, *events[0].Delta.Price, 0.001)
}

func TestItemUseCase_UpdateKeepCategoryIgnoresPayloadLabel(t *testing.T) {
	ctx := context.Background()
	uc, _ := newItemFixture(t)

	created, err := uc.Create(ctx, "admin", dto.SaveItemRequest{
		Name: "Tôm sú", Category: "Cá", Quantity: 10, Unit: "kg", Price: "220000",
	})
	require.NoError(t, err)

	// Even an explicit category in the payload cannot move the item.
	updated, err := uc.UpdateKeepCategory(ctx, "admin", created.ID, dto.SaveItemRequest{
		Name: "Tôm sú", Category: "Thịt", Quantity: 12, Unit: "kg", Price: "220000",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Cá", updated.Category)
	assert.Equal(t, 12, updated.Quantity)
}

func TestItemUseCase_UpdateClassifiesPriceAndImageChanges(t *testing.T) {
	ctx := context.Background()
	uc, log := newItemFixture(t)

	created, err := uc.Create(ctx, "admin", dto.SaveItemRequest{
		Name: "Gạo ST25", Category: "Lương thực", Quantity: 80, Unit: "kg", Price: "32000", Image: "/a.jpg",
	})
	require.NoError(t, err)

	same := dto.SaveItemRequest{Name: "Gạo ST25", Category: "Lương thực", Quantity: 80, Unit: "kg", Price: "32000", Image: "/a.jpg"}

	onlyPrice := same
	onlyPrice.Price = "35000"
	_, err = uc.Update(ctx, "admin", created.ID, onlyPrice)
	require.NoError(t, err)
	assert.Len(t, log.List(ctx, history.Filter{Types: []string{entity.EventPriceChange}}), 1)

	onlyImage := onlyPrice
	onlyImage.Image = "/b.jpg"
	_, err = uc.Update(ctx, "admin", created.ID, onlyImage)
	require.NoError(t, err)
	assert.Len(t, log.List(ctx, history.Filter{Types: []string{entity.EventImageChange}}), 1)
}

func TestItemUseCase_DeleteLogsAndUnknownIsNoOp(t *testing.T) {
	ctx := context.Background()
	uc, log := newItemFixture(t)

	created, err := uc.Create(ctx, "admin", dto.SaveItemRequest{Name: "Cá thu", Category: "Cá", Quantity: 5, Unit: "kg"})
	require.NoError(t, err)

	removed, err := uc.Delete(ctx, "admin", created.ID)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "Cá thu", removed.Name)

	deleteEvents := log.List(ctx, history.Filter{Types: []string{entity.EventDelete}})
	require.Len(t, deleteEvents, 1)
	assert.NotEmpty(t, deleteEvents[0].Before)

	// Unknown id: no result, no event.
	before := log.Count(ctx)
	gone, err := uc.Delete(ctx, "admin", "ghost")
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.Equal(t, before, log.Count(ctx))
}

func TestItemUseCase_ImportLogsPerLine(t *testing.T) {
	ctx := context.Background()
	uc, log := newItemFixture(t)

	created, err := uc.Import(ctx, "thukho", dto.ImportItemsRequest{Items: []dto.SaveItemRequest{
		{Name: "Hành tím", Category: "Rau củ quả", Quantity: 20, Unit: "kg"},
		{Name: "Tiêu đen", Category: "Gia vị", Quantity: 4, Unit: "kg"},
	}})
	require.NoError(t, err)
	assert.Len(t, created, 2)

	events := log.List(ctx, history.Filter{Types: []string{entity.EventImport}})
	require.Len(t, events, 2)
	require.NotNil(t, events[1].Delta.Quantity)
	assert.Equal(t, 20, *events[1].Delta.Quantity)
}

func TestItemUseCase_AdjustClampsAtZero(t *testing.T) {
	ctx := context.Background()
	uc, log := newItemFixture(t)

	created, err := uc.Create(ctx, "admin", dto.SaveItemRequest{Name: "Muối", Category: "Gia vị", Quantity: 3, Unit: "kg"})
	require.NoError(t, err)

	adjusted, err := uc.Adjust(ctx, "admin", created.ID, dto.AdjustItemRequest{Delta: -10, Note: "hao hụt"})
	require.NoError(t, err)
	require.NotNil(t, adjusted)
	assert.Equal(t, 0, adjusted.Quantity)

	events := log.List(ctx, history.Filter{Types: []string{entity.EventAdjust}})
	require.Len(t, events, 1)
	assert.Equal(t, "hao hụt", events[0].Note)
	require.NotNil(t, events[0].Delta.Quantity)
	assert.Equal(t, -3, *events[0].Delta.Quantity, "delta records the applied change, not the request")
}

func TestItemUseCase_ListPaginates(t *testing.T) {
	ctx := context.Background()
	uc, _ := newItemFixture(t)

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		_, err := uc.Create(ctx, "admin", dto.SaveItemRequest{Name: name, Quantity: 1, Unit: "kg"})
		require.NoError(t, err)
	}

	page, err := uc.List(ctx, "", dto.PageRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 5, page.Page.Total)

	// Out-of-range page is empty, not an error.
	page, err = uc.List(ctx, "", dto.PageRequest{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}
