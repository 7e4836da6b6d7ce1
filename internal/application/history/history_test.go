package history_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmthanh/backoffice-api/internal/application/history"
	"github.com/nmthanh/backoffice-api/internal/application/store"
	"github.com/nmthanh/backoffice-api/internal/domain/entity"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/seed"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/storage"
)

func newLog(t *testing.T) *history.Log {
	t.Helper()
	col := store.NewCollection(storage.NewMemory(), storage.KeyHistory, seed.History)
	return history.NewLog(col)
}

func TestLog_AppendPrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	log := newLog(t)

	first, err := log.Append(ctx, entity.HistoryEvent{Type: entity.EventCreate, EntityType: entity.EntityProduct, EntityName: "Tôm sú", Actor: "admin"})
	require.NoError(t, err)
	second, err := log.Append(ctx, entity.HistoryEvent{Type: entity.EventDelete, EntityType: entity.EntityProduct, EntityName: "Tôm sú", Actor: "admin"})
	require.NoError(t, err)

	events := log.List(ctx, history.Filter{})
	require.Len(t, events, 2)
	assert.Equal(t, second.ID, events[0].ID)
	assert.Equal(t, first.ID, events[1].ID)
}

func TestLog_EventIDFormat(t *testing.T) {
	ctx := context.Background()
	log := newLog(t)

	e, err := log.Append(ctx, entity.HistoryEvent{Type: entity.EventCreate, EntityType: entity.EntityProduct})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{13}_[0-9a-f]{6}$`), e.ID)
	assert.NotEmpty(t, e.CreatedAt)
}

func TestLog_Filters(t *testing.T) {
	ctx := context.Background()
	log := newLog(t)

	mustAppend := func(e entity.HistoryEvent) {
		_, err := log.Append(ctx, e)
		require.NoError(t, err)
	}
	mustAppend(entity.HistoryEvent{Type: entity.EventCreate, EntityType: entity.EntityProduct, EntityName: "Tôm sú", Actor: "Nguyễn Văn An"})
	mustAppend(entity.HistoryEvent{Type: entity.EventDelete, EntityType: entity.EntityProduct, EntityName: "Cá thu", Actor: "Trần Thị Bích"})
	mustAppend(entity.HistoryEvent{Type: entity.EventUpdate, EntityType: entity.EntityCategory, EntityName: "Gia vị", Actor: "Nguyễn Văn An"})

	assert.Len(t, log.List(ctx, history.Filter{EntityType: entity.EntityCategory}), 1)
	assert.Len(t, log.List(ctx, history.Filter{Types: []string{entity.EventCreate, entity.EventUpdate}}), 2)

	// Keyword matches entity name or actor, case-insensitively.
	assert.Len(t, log.List(ctx, history.Filter{Keyword: "tôm"}), 1)
	assert.Len(t, log.List(ctx, history.Filter{Keyword: "nguyễn văn an"}), 2)
	assert.Empty(t, log.List(ctx, history.Filter{Keyword: "không khớp"}))

	// Filters combine with AND.
	got := log.List(ctx, history.Filter{Keyword: "nguyễn", EntityType: entity.EntityProduct})
	require.Len(t, got, 1)
	assert.Equal(t, "Tôm sú", got[0].EntityName)
}

func TestLog_Clear(t *testing.T) {
	ctx := context.Background()
	log := newLog(t)

	_, err := log.Append(ctx, entity.HistoryEvent{Type: entity.EventCreate, EntityType: entity.EntityProduct})
	require.NoError(t, err)
	require.NoError(t, log.Clear(ctx))
	assert.Zero(t, log.Count(ctx))
}
