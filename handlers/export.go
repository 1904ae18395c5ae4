package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"rfqintake/drafts"
	"rfqintake/services"
	"rfqintake/templates"
)

// HandleExportJSON handles GET /rfq/export/json
// Downloads the pretty-printed payload as rfq_<date>.json.
func HandleExportJSON(store *drafts.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		now := time.Now()
		payload := services.BuildPayload(store.Get(SessionID(e.Request)), now)

		data, err := services.MarshalPayload(payload)
		if err != nil {
			log.Printf("export_json: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate JSON export")
		}

		e.Response.Header().Set("Content-Type", "application/json")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, services.ExportFilename(now)))
		e.Response.Write(data)
		return nil
	}
}

// HandleExportPDF handles GET /rfq/export/pdf
// Downloads the print-friendly render of the RFQ as a PDF.
func HandleExportPDF(store *drafts.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		now := time.Now()
		payload := services.BuildPayload(store.Get(SessionID(e.Request)), now)

		pdfBytes, err := services.GenerateRFQPDF(payload)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("rfq_%s.pdf", now.Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleExportExcel handles GET /rfq/export/excel
// Downloads the line items as an Excel workbook.
func HandleExportExcel(store *drafts.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		now := time.Now()
		payload := services.BuildPayload(store.Get(SessionID(e.Request)), now)

		xlsxBytes, err := services.GenerateLineItemsExcel(payload)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("rfq_%s.xlsx", now.Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandlePrintView handles GET /rfq/print
// Renders the print-friendly HTML view of the current draft.
func HandlePrintView(store *drafts.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		payload := services.BuildPayload(store.Get(SessionID(e.Request)), time.Now())
		return templates.PrintPage(payload).Render(e.Request.Context(), e.Response)
	}
}
