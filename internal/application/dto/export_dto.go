package dto

// Export formats accepted by the export endpoints.
const (
	ExportFormatExcel = "excel"
	ExportFormatPDF   = "pdf"
)

// ExportResult reports an export outcome. Failures are part of the result,
// not transport errors: the caller always gets a user-facing message.
type ExportResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
}
