package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nmthanh/backoffice-api/internal/application/dto"
	"github.com/nmthanh/backoffice-api/internal/application/history"
	"github.com/nmthanh/backoffice-api/internal/application/notify"
	"github.com/nmthanh/backoffice-api/internal/domain/entity"
	"github.com/nmthanh/backoffice-api/internal/domain/format"
)

// SpreadsheetRenderer turns an item listing into workbook bytes.
type SpreadsheetRenderer interface {
	Render(ctx context.Context, sheetName string, items []entity.Item) ([]byte, error)
}

// DocumentRenderer turns an item listing into PDF bytes.
type DocumentRenderer interface {
	Render(ctx context.Context, title string, items []entity.Item, exportedAt time.Time) ([]byte, error)
}

// ExportUseCase writes item listings to files. Outcomes are reported as an
// ExportResult and posted to the notifier; a failed render or write never
// surfaces as a transport error.
type ExportUseCase struct {
	dir         string
	spreadsheet SpreadsheetRenderer
	document    DocumentRenderer
	history     *history.Log
	notifier    *notify.Notifier
	now         func() time.Time
}

func NewExportUseCase(dir string, spreadsheet SpreadsheetRenderer, document DocumentRenderer, log *history.Log, notifier *notify.Notifier) *ExportUseCase {
	return &ExportUseCase{
		dir:         dir,
		spreadsheet: spreadsheet,
		document:    document,
		history:     log,
		notifier:    notifier,
		now:         time.Now,
	}
}

// ExportItems renders the listing in the requested format ("excel" or
// "pdf"), writes it under the export directory and logs an export event.
// title is the human heading, e.g. "Danh sách nguyên liệu".
func (uc *ExportUseCase) ExportItems(ctx context.Context, actor, title string, items []entity.Item, exportFormat string) dto.ExportResult {
	var (
		raw   []byte
		ext   string
		label string
		err   error
	)
	switch exportFormat {
	case dto.ExportFormatPDF:
		label = "PDF"
		ext = ".pdf"
		raw, err = uc.document.Render(ctx, title, items, uc.now())
	case dto.ExportFormatExcel, "":
		label = "Excel"
		ext = ".xls"
		raw, err = uc.spreadsheet.Render(ctx, title, items)
	default:
		return dto.ExportResult{Success: false, Message: fmt.Sprintf("Định dạng không được hỗ trợ: %s", exportFormat)}
	}
	if err == nil {
		err = uc.write(uc.fileName(title, ext), raw)
	}
	if err != nil {
		message := fmt.Sprintf("Có lỗi xảy ra khi xuất file %s!", label)
		uc.notifier.Notify(notify.KindError, message)
		return dto.ExportResult{Success: false, Message: message}
	}

	name := uc.fileName(title, ext)
	_, _ = uc.history.Append(ctx, entity.HistoryEvent{
		Type:       entity.EventExport,
		EntityType: entity.EntityProduct,
		EntityName: name,
		Actor:      actor,
		Note:       fmt.Sprintf("Xuất %d bản ghi", len(items)),
	})

	message := fmt.Sprintf("Xuất file %s thành công!", label)
	uc.notifier.Notify(notify.KindSuccess, message)
	return dto.ExportResult{Success: true, Message: message, File: name}
}

// fileName derives an ASCII file name from the listing title and export day,
// e.g. "Danh_sach_nguyen_lieu_2025-08-30.xls".
func (uc *ExportUseCase) fileName(title, ext string) string {
	base := strings.ReplaceAll(format.FoldAccents(title), " ", "_")
	return fmt.Sprintf("%s_%s%s", base, uc.now().Format("2006-01-02"), ext)
}

func (uc *ExportUseCase) write(name string, raw []byte) error {
	if err := os.MkdirAll(uc.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(uc.dir, name), raw, 0o644)
}
