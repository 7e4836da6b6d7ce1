// Package stats computes read-time aggregates over the item collections.
// Nothing here is stored: category counts are derived on every call so they
// can never drift from the underlying records.
package stats

import (
	"context"

	"github.com/nmthanh/backoffice-api/internal/application/store"
	"github.com/nmthanh/backoffice-api/internal/domain/entity"
)

// StatusCounts buckets items of one category by stock status. Records with
// an empty or unknown status fall outside all three buckets.
type StatusCounts struct {
	Active   int `json:"active"`
	LowStock int `json:"lowStock"`
	Expired  int `json:"expired"`
}

// Overview is the warehouse-wide summary.
type Overview struct {
	TotalIngredients int          `json:"totalIngredients"`
	TotalProducts    int          `json:"totalProducts"`
	TotalCategories  int          `json:"totalCategories"`
	Status           StatusCounts `json:"status"`
}

// Aggregator reads the ingredient and product collections. Both count toward
// category totals; the category link is an exact, case-sensitive name match,
// so an item labeled with a renamed or deleted category counts as zero
// everywhere.
type Aggregator struct {
	ingredients *store.EntityStore[entity.Item]
	products    *store.EntityStore[entity.Item]
}

func NewAggregator(ingredients, products *store.EntityStore[entity.Item]) *Aggregator {
	return &Aggregator{ingredients: ingredients, products: products}
}

// CountByCategory returns how many items carry the exact category name.
func (a *Aggregator) CountByCategory(ctx context.Context, name string) int {
	count := 0
	for _, it := range a.all(ctx) {
		if it.Category == name {
			count++
		}
	}
	return count
}

// StatusByCategory buckets the category's items by stock status.
func (a *Aggregator) StatusByCategory(ctx context.Context, name string) StatusCounts {
	var counts StatusCounts
	for _, it := range a.all(ctx) {
		if it.Category != name {
			continue
		}
		switch it.Status {
		case entity.StatusActive:
			counts.Active++
		case entity.StatusLowStock:
			counts.LowStock++
		case entity.StatusExpired:
			counts.Expired++
		}
	}
	return counts
}

// WithCounts returns the categories with ProductCount recomputed. The stored
// counts are ignored.
func (a *Aggregator) WithCounts(ctx context.Context, categories []entity.Category) []entity.Category {
	byName := make(map[string]int)
	for _, it := range a.all(ctx) {
		byName[it.Category]++
	}
	out := make([]entity.Category, len(categories))
	for i, c := range categories {
		c.ProductCount = byName[c.Name]
		out[i] = c
	}
	return out
}

// ItemsByCategory returns the items carrying the exact category name,
// ingredients first.
func (a *Aggregator) ItemsByCategory(ctx context.Context, name string) []entity.Item {
	var out []entity.Item
	for _, it := range a.all(ctx) {
		if it.Category == name {
			out = append(out, it)
		}
	}
	return out
}

// Summarize builds the warehouse-wide overview.
func (a *Aggregator) Summarize(ctx context.Context, totalCategories int) Overview {
	items := a.all(ctx)
	overview := Overview{
		TotalIngredients: a.ingredients.Count(ctx),
		TotalProducts:    a.products.Count(ctx),
		TotalCategories:  totalCategories,
	}
	for _, it := range items {
		switch it.Status {
		case entity.StatusActive:
			overview.Status.Active++
		case entity.StatusLowStock:
			overview.Status.LowStock++
		case entity.StatusExpired:
			overview.Status.Expired++
		}
	}
	return overview
}

func (a *Aggregator) all(ctx context.Context) []entity.Item {
	items := a.ingredients.List(ctx, "")
	return append(items, a.products.List(ctx, "")...)
}
