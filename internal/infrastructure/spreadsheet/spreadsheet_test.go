package spreadsheet_test

import (
	"context"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmthanh/backoffice-api/internal/domain/entity"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/spreadsheet"
)

func TestWorkbook_Render(t *testing.T) {
	items := []entity.Item{
		{ID: "1", Name: "Tôm sú", Category: "Cá", Quantity: 12, Unit: "kg", ImportDate: "19/08/2025", Price: "220000đ", Supplier: "Vựa hải sản Phan Thiết", Description: "Loại 1"},
		{ID: "2", Name: "Muối", Category: "Gia vị", Quantity: 3, Unit: "kg", ImportDate: "20/08/2025", Price: "8000đ"},
	}

	raw, err := spreadsheet.NewWorkbook().Render(context.Background(), "Danh sách nguyên liệu", items)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(raw))

	sheet := doc.FindElement("//Worksheet")
	require.NotNil(t, sheet)
	assert.Equal(t, "Danh sách nguyên liệu", sheet.SelectAttrValue("ss:Name", ""))

	rows := doc.FindElements("//Row")
	require.Len(t, rows, 3, "header plus one row per item")

	// Header carries all nine columns in order.
	headCells := rows[0].FindElements("Cell/Data")
	require.Len(t, headCells, 9)
	assert.Equal(t, "STT", headCells[0].Text())
	assert.Equal(t, "Mô tả", headCells[8].Text())

	first := rows[1].FindElements("Cell/Data")
	require.Len(t, first, 9)
	assert.Equal(t, "1", first[0].Text())
	assert.Equal(t, "Tôm sú", first[1].Text())
	assert.Equal(t, "220000đ", first[6].Text())

	// Empty supplier and description render as N/A.
	second := rows[2].FindElements("Cell/Data")
	assert.Equal(t, "N/A", second[7].Text())
	assert.Equal(t, "N/A", second[8].Text())
}

func TestWorkbook_RenderEmptyList(t *testing.T) {
	raw, err := spreadsheet.NewWorkbook().Render(context.Background(), "Danh sách nguyên liệu", nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(raw))
	assert.Len(t, doc.FindElements("//Row"), 1, "header only")
}
