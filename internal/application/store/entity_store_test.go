package store_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmthanh/backoffice-api/internal/application/store"
	"github.com/nmthanh/backoffice-api/internal/domain/entity"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/seed"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/storage"
)

func newItemStore(t *testing.T) (*store.EntityStore[entity.Item], storage.Driver) {
	t.Helper()
	driver := storage.NewMemory()
	col := store.NewCollection(driver, storage.KeyIngredients, seed.Ingredients)
	s := store.NewEntityStore(col,
		func(it *entity.Item) string { return it.ID },
		func(it *entity.Item, kw string) bool {
			return strings.Contains(strings.ToLower(it.Name), kw)
		},
	)
	return s, driver
}

func TestEntityStore_SeedFallback(t *testing.T) {
	ctx := context.Background()
	s, driver := newItemStore(t)

	// Nothing persisted yet: seed data answers.
	assert.Len(t, s.List(ctx, ""), len(seed.Ingredients()))

	// Corrupt payload degrades to seed data too.
	require.NoError(t, driver.Save(ctx, storage.KeyIngredients, []byte(`{not json`)))
	assert.Len(t, s.List(ctx, ""), len(seed.Ingredients()))

	// A real write replaces the defaults.
	require.NoError(t, s.Insert(ctx, entity.Item{ID: "x", Name: "Muối"}))
	raw, ok, err := driver.Load(ctx, storage.KeyIngredients)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), "Muối")
}

func TestEntityStore_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	s, _ := newItemStore(t)

	got := s.List(ctx, "tôm")
	require.Len(t, got, 1)
	assert.Equal(t, "Tôm sú", got[0].Name)

	// Upper-case keyword matches the same record.
	got = s.List(ctx, "TÔM SÚ")
	require.Len(t, got, 1)

	assert.Empty(t, s.List(ctx, "không tồn tại"))
}

func TestEntityStore_CreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newItemStore(t)
	before := s.Count(ctx)

	item := entity.Item{ID: s.NewID(), Name: "Tiêu đen", Category: "Gia vị", Quantity: 5, Unit: "kg"}
	require.NoError(t, s.Insert(ctx, item))
	assert.Equal(t, before+1, s.Count(ctx))

	updated, found, err := s.Update(ctx, item.ID, func(it *entity.Item) { it.Quantity = 9 })
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 9, updated.Quantity)

	removed, found, err := s.Remove(ctx, item.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Tiêu đen", removed.Name)
	assert.Equal(t, before, s.Count(ctx))
}

func TestEntityStore_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, _ := newItemStore(t)
	before := s.Count(ctx)

	_, found := s.Get(ctx, "ghost")
	assert.False(t, found)

	_, found, err := s.Update(ctx, "ghost", func(it *entity.Item) { it.Quantity = 1 })
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = s.Remove(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, found)

	replaced, err := s.Replace(ctx, "ghost", entity.Item{ID: "ghost"})
	require.NoError(t, err)
	assert.False(t, replaced)

	assert.Equal(t, before, s.Count(ctx))
}

func TestEntityStore_ResetRestoresSeed(t *testing.T) {
	ctx := context.Background()
	s, _ := newItemStore(t)

	require.NoError(t, s.Insert(ctx, entity.Item{ID: "x", Name: "Đường"}))
	require.NoError(t, s.Reset(ctx))
	assert.Len(t, s.List(ctx, ""), len(seed.Ingredients()))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, store.Paginate(items, 1, 2))
	assert.Equal(t, []int{3, 4}, store.Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, store.Paginate(items, 3, 2))

	// Past the end: empty page, not an error.
	assert.Empty(t, store.Paginate(items, 4, 2))
	assert.Empty(t, store.Paginate([]int{}, 1, 10))

	// Degenerate inputs normalize instead of failing.
	assert.Equal(t, []int{1, 2}, store.Paginate(items, 0, 2))
	assert.Equal(t, items, store.Paginate(items, 1, 0))
}
