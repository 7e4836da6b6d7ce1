// Package pdf renders the warehouse item listing as an A4 report using
// Maroto v2.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TITLE: DANH SACH NGUYEN LIEU        │  export date          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: STT | Ten | Danh muc | SL | Don vi | Ngay | Gia ...  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: record count                                        │
//	└─────────────────────────────────────────────────────────────┘
//
// The built-in helvetica font has no Vietnamese glyph coverage, so every
// string is run through format.FoldAccents before rendering.
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/nmthanh/backoffice-api/internal/domain/entity"
	"github.com/nmthanh/backoffice-api/internal/domain/format"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ItemReport renders item listings to PDF bytes.
type ItemReport struct{}

func NewItemReport() *ItemReport { return &ItemReport{} }

// Render builds the report. title is the human heading ("Danh sách nguyên
// liệu"); it is accent-folded along with every cell.
func (r *ItemReport) Render(_ context.Context, title string, items []entity.Item, exportedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(format.FoldAccents(title), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, exportedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for i, it := range items {
		m.AddRows(itemRow(i+1, it))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate report: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(title string, exportedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(format.FoldAccents(title), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Ngay xuat: "+exportedAt.Format(format.CanonicalDateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(format.FoldAccents(label), props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("STT", 1, align.Center),
		h("Tên nguyên liệu", 3, align.Left),
		h("Danh mục", 2, align.Left),
		h("SL", 1, align.Right),
		h("Đơn vị", 1, align.Center),
		h("Ngày nhập", 2, align.Center),
		h("Giá", 2, align.Right),
	)
}

func itemRow(index int, it entity.Item) core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(format.FoldAccents(value), props.Text{
			Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		cell(strconv.Itoa(index), 1, align.Center),
		cell(it.Name, 3, align.Left),
		cell(it.Category, 2, align.Left),
		cell(strconv.Itoa(it.Quantity), 1, align.Right),
		cell(it.Unit, 1, align.Center),
		cell(it.ImportDate, 2, align.Center),
		cell(it.Price, 2, align.Right),
	)
}

func footerRow(count int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Tong cong: %d ban ghi", count), props.Text{
			Size: 7.5, Color: colorGray, Top: 2,
		}),
	))
}
