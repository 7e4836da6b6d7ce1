// Package history keeps the append-only audit log of warehouse mutations.
package history

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nmthanh/backoffice-api/internal/application/store"
	"github.com/nmthanh/backoffice-api/internal/domain/entity"
)

// Log records events newest-first. Events are never edited; the only
// destructive operation is clearing the whole log.
type Log struct {
	col *store.Collection[entity.HistoryEvent]

	mu  sync.Mutex
	now func() time.Time
}

func NewLog(col *store.Collection[entity.HistoryEvent]) *Log {
	return &Log{col: col, now: time.Now}
}

// Append stamps the event with an id and timestamp and prepends it to the
// log. The filled-in event is returned.
func (l *Log) Append(ctx context.Context, event entity.HistoryEvent) (entity.HistoryEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	event.ID = newEventID(now)
	event.CreatedAt = now.Format(time.RFC3339)

	events := l.col.Load(ctx)
	events = append([]entity.HistoryEvent{event}, events...)
	if err := l.col.Save(ctx, events); err != nil {
		return entity.HistoryEvent{}, err
	}
	return event, nil
}

// Filter narrows a listing. Zero values mean "no constraint".
type Filter struct {
	Keyword    string   // case-insensitive substring over entity name, actor and note
	Types      []string // event types, OR-ed
	EntityType string
}

// List returns events newest-first, applying the filter.
func (l *Log) List(ctx context.Context, filter Filter) []entity.HistoryEvent {
	events := l.col.Load(ctx)
	keyword := strings.ToLower(strings.TrimSpace(filter.Keyword))
	out := make([]entity.HistoryEvent, 0, len(events))
	for _, e := range events {
		if filter.EntityType != "" && e.EntityType != filter.EntityType {
			continue
		}
		if len(filter.Types) > 0 && !containsFold(filter.Types, e.Type) {
			continue
		}
		if keyword != "" && !matchesKeyword(e, keyword) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns the total number of recorded events.
func (l *Log) Count(ctx context.Context) int {
	return len(l.col.Load(ctx))
}

// Clear wipes the whole log.
func (l *Log) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.col.Save(ctx, []entity.HistoryEvent{})
}

func matchesKeyword(e entity.HistoryEvent, keyword string) bool {
	for _, field := range []string{e.EntityName, e.Actor, e.Note} {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}

func containsFold(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}

// newEventID combines the millisecond timestamp with a short random suffix
// so two events in the same millisecond still get distinct ids.
func newEventID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%d_%s", now.UnixMilli(), suffix)
}
