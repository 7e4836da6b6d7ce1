package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmthanh/backoffice-api/internal/application/dto"
	"github.com/nmthanh/backoffice-api/internal/application/history"
	"github.com/nmthanh/backoffice-api/internal/application/stats"
	"github.com/nmthanh/backoffice-api/internal/application/store"
	"github.com/nmthanh/backoffice-api/internal/application/usecase"
	"github.com/nmthanh/backoffice-api/internal/domain/entity"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/remote"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/storage"
)

func newCategoryFixture(t *testing.T, ingredients, products []entity.Item) (*usecase.CategoryUseCase, *history.Log) {
	t.Helper()
	ctx := context.Background()
	driver := storage.NewMemory()
	itemID := func(it *entity.Item) string { return it.ID }
	itemMatch := func(it *entity.Item, kw string) bool { return strings.Contains(strings.ToLower(it.Name), kw) }

	ingCol := store.NewCollection(driver, storage.KeyIngredients, func() []entity.Item { return nil })
	prodCol := store.NewCollection(driver, storage.KeyProducts, func() []entity.Item { return nil })
	require.NoError(t, ingCol.Save(ctx, ingredients))
	require.NoError(t, prodCol.Save(ctx, products))
	agg := stats.NewAggregator(
		store.NewEntityStore(ingCol, itemID, itemMatch),
		store.NewEntityStore(prodCol, itemID, itemMatch),
	)

	catCol := store.NewCollection(driver, storage.KeyCategories, func() []entity.Category { return []entity.Category{} })
	catStore := store.NewEntityStore(catCol,
		func(c *entity.Category) string { return c.ID },
		usecase.CategorySearchMatches,
	)
	log := history.NewLog(store.NewCollection(driver, storage.KeyHistory, func() []entity.HistoryEvent { return []entity.HistoryEvent{} }))
	return usecase.NewCategoryUseCase(catStore, agg, log, remote.NewClient(0)), log
}

func TestCategoryUseCase_CreateAndLiveCounts(t *testing.T) {
	ctx := context.Background()
	uc, log := newCategoryFixture(t,
		[]entity.Item{{ID: "1", Name: "Cá thu", Category: "Cá", Status: entity.StatusActive}},
		[]entity.Item{{ID: "2", Name: "Chả cá", Category: "Cá", Status: entity.StatusLowStock}},
	)

	created, err := uc.Create(ctx, "admin", dto.SaveCategoryRequest{Name: "Cá", Description: "Các loại cá"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.CategoryActive, created.Status)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ProductCount, "count spans ingredients and products")

	events := log.List(ctx, history.Filter{EntityType: entity.EntityCategory})
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventCreate, events[0].Type)
}

func TestCategoryUseCase_RenameLeavesItemsDangling(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCategoryFixture(t,
		[]entity.Item{{ID: "1", Name: "Bia Sài Gòn", Category: "Đồ uống", Status: entity.StatusActive}},
		nil,
	)

	created, err := uc.Create(ctx, "admin", dto.SaveCategoryRequest{Name: "Đồ uống"})
	require.NoError(t, err)

	renamed, err := uc.Update(ctx, "admin", created.ID, dto.SaveCategoryRequest{Name: "Thức uống"})
	require.NoError(t, err)
	require.NotNil(t, renamed)

	// The item still carries the old label, so it no longer counts.
	assert.Equal(t, 0, renamed.ProductCount)
	items, err := uc.Items(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCategoryUseCase_SearchMatchesNameOrDescription(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCategoryFixture(t, nil, nil)

	_, err := uc.Create(ctx, "admin", dto.SaveCategoryRequest{Name: "Gia vị", Description: "Các loại gia vị"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "admin", dto.SaveCategoryRequest{Name: "Cá", Description: "Cá nước ngọt và mặn"})
	require.NoError(t, err)

	page, err := uc.List(ctx, "nước ngọt", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Cá", page.Items[0].Name)
}

func TestCategoryUseCase_StatsAndUnknownID(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCategoryFixture(t,
		[]entity.Item{
			{ID: "1", Category: "Cá", Status: entity.StatusActive},
			{ID: "2", Category: "Cá", Status: entity.StatusExpired},
		},
		nil,
	)

	created, err := uc.Create(ctx, "admin", dto.SaveCategoryRequest{Name: "Cá"})
	require.NoError(t, err)

	got, err := uc.Stats(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ProductCount)
	assert.Equal(t, 1, got.Active)
	assert.Equal(t, 1, got.Expired)

	missing, err := uc.Stats(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoryUseCase_DeleteDoesNotCascade(t *testing.T) {
	ctx := context.Background()
	uc, log := newCategoryFixture(t,
		[]entity.Item{{ID: "1", Name: "Bia", Category: "Đồ uống", Status: entity.StatusActive}},
		nil,
	)

	created, err := uc.Create(ctx, "admin", dto.SaveCategoryRequest{Name: "Đồ uống"})
	require.NoError(t, err)

	removed, err := uc.Delete(ctx, "admin", created.ID)
	require.NoError(t, err)
	require.NotNil(t, removed)

	events := log.List(ctx, history.Filter{Types: []string{entity.EventDelete}})
	require.Len(t, events, 1)
	assert.Equal(t, entity.EntityCategory, events[0].EntityType)
}
