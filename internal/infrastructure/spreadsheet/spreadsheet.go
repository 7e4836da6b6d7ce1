// Package spreadsheet writes item listings as SpreadsheetML 2003 workbooks,
// the XML dialect Excel opens natively. XML keeps the output diffable and
// needs no zip container.
package spreadsheet

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/nmthanh/backoffice-api/internal/domain/entity"
)

const ssNamespace = "urn:schemas-microsoft-com:office:spreadsheet"

// Export columns, in order. Supplier and description fall back to "N/A".
var columns = []string{
	"STT",
	"Tên nguyên liệu",
	"Danh mục",
	"Số lượng",
	"Đơn vị",
	"Ngày nhập",
	"Giá",
	"Nhà cung cấp",
	"Mô tả",
}

// Workbook renders item listings to workbook bytes.
type Workbook struct{}

func NewWorkbook() *Workbook { return &Workbook{} }

// Render builds a single-sheet workbook named after sheetName.
func (w *Workbook) Render(_ context.Context, sheetName string, items []entity.Item) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	workbook := doc.CreateElement("Workbook")
	workbook.CreateAttr("xmlns", ssNamespace)
	workbook.CreateAttr("xmlns:ss", ssNamespace)

	styles := workbook.CreateElement("Styles")
	header := styles.CreateElement("Style")
	header.CreateAttr("ss:ID", "header")
	font := header.CreateElement("Font")
	font.CreateAttr("ss:Bold", "1")

	sheet := workbook.CreateElement("Worksheet")
	sheet.CreateAttr("ss:Name", sheetName)
	table := sheet.CreateElement("Table")

	headRow := table.CreateElement("Row")
	for _, label := range columns {
		addCell(headRow, "String", label, "header")
	}

	for i, it := range items {
		row := table.CreateElement("Row")
		addCell(row, "Number", strconv.Itoa(i+1), "")
		addCell(row, "String", it.Name, "")
		addCell(row, "String", it.Category, "")
		addCell(row, "Number", strconv.Itoa(it.Quantity), "")
		addCell(row, "String", it.Unit, "")
		addCell(row, "String", it.ImportDate, "")
		addCell(row, "String", it.Price, "")
		addCell(row, "String", orNA(it.Supplier), "")
		addCell(row, "String", orNA(it.Description), "")
	}

	doc.Indent(2)
	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: serialize workbook: %w", err)
	}
	return raw, nil
}

func addCell(row *etree.Element, dataType, value, styleID string) {
	cell := row.CreateElement("Cell")
	if styleID != "" {
		cell.CreateAttr("ss:StyleID", styleID)
	}
	data := cell.CreateElement("Data")
	data.CreateAttr("ss:Type", dataType)
	data.SetText(value)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
