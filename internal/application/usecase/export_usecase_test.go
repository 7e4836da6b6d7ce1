package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmthanh/backoffice-api/internal/application/dto"
	"github.com/nmthanh/backoffice-api/internal/application/history"
	"github.com/nmthanh/backoffice-api/internal/application/notify"
	"github.com/nmthanh/backoffice-api/internal/application/store"
	"github.com/nmthanh/backoffice-api/internal/application/usecase"
	"github.com/nmthanh/backoffice-api/internal/domain/entity"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/pdf"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/spreadsheet"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/storage"
)

func newExportFixture(t *testing.T) (*usecase.ExportUseCase, *history.Log, *notify.Notifier, string) {
	t.Helper()
	dir := t.TempDir()
	log := history.NewLog(store.NewCollection(storage.NewMemory(), storage.KeyHistory, func() []entity.HistoryEvent { return []entity.HistoryEvent{} }))
	notifier := notify.New(time.Hour, time.Hour)
	uc := usecase.NewExportUseCase(dir, spreadsheet.NewWorkbook(), pdf.NewItemReport(), log, notifier)
	return uc, log, notifier, dir
}

func TestExportUseCase_ExcelWritesFileAndLogs(t *testing.T) {
	ctx := context.Background()
	uc, log, notifier, dir := newExportFixture(t)

	items := []entity.Item{{ID: "1", Name: "Tôm sú", Category: "Cá", Quantity: 12, Unit: "kg", ImportDate: "19/08/2025", Price: "220000đ"}}
	result := uc.ExportItems(ctx, "admin", "Danh sách nguyên liệu", items, dto.ExportFormatExcel)

	require.True(t, result.Success)
	assert.Equal(t, "Xuất file Excel thành công!", result.Message)
	assert.Contains(t, result.File, "Danh_sach_nguyen_lieu_")
	assert.Contains(t, result.File, ".xls")

	raw, err := os.ReadFile(filepath.Join(dir, result.File))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Tôm sú")

	events := log.List(ctx, history.Filter{Types: []string{entity.EventExport}})
	require.Len(t, events, 1)
	assert.Equal(t, result.File, events[0].EntityName)
	assert.Equal(t, "Xuất 1 bản ghi", events[0].Note)

	snap := notifier.Snapshot()
	assert.Equal(t, notify.StateVisible, snap.State)
	assert.Equal(t, notify.KindSuccess, snap.Kind)
}

func TestExportUseCase_PDFWritesFile(t *testing.T) {
	ctx := context.Background()
	uc, _, _, dir := newExportFixture(t)

	result := uc.ExportItems(ctx, "admin", "Danh sách nguyên liệu", []entity.Item{{ID: "1", Name: "Gạo ST25"}}, dto.ExportFormatPDF)
	require.True(t, result.Success)
	assert.Contains(t, result.File, ".pdf")

	info, err := os.Stat(filepath.Join(dir, result.File))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportUseCase_UnknownFormatFails(t *testing.T) {
	ctx := context.Background()
	uc, log, _, _ := newExportFixture(t)

	result := uc.ExportItems(ctx, "admin", "Danh sách nguyên liệu", nil, "csv")
	assert.False(t, result.Success)
	assert.Zero(t, log.Count(ctx), "failed export must not log an event")
}
