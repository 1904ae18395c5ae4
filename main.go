package main

import (
	"log"
	"os"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"rfqintake/drafts"
	"rfqintake/handlers"
	"rfqintake/services"
)

func main() {
	app := pocketbase.New()

	store := drafts.NewStore()

	// No intake backend is attached yet; the stub accepts every payload
	// after a short delay. Swap in services.NewEndpointSubmitter with the
	// intake URL (POST /api/rfq) once one exists.
	var submitter services.Submitter = &services.StubSubmitter{Delay: 600 * time.Millisecond}
	if url := os.Getenv("RFQ_INTAKE_URL"); url != "" {
		submitter = services.NewEndpointSubmitter(url)
	}

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Every route works on the session's draft
		se.Router.BindFunc(handlers.SessionMiddleware(store))

		// ── Form view ────────────────────────────────────────────
		se.Router.GET("/", handlers.HandleFormPage(store))

		// ── Field edits ──────────────────────────────────────────
		se.Router.POST("/rfq/fields", handlers.HandleFieldUpdate(store))
		se.Router.POST("/rfq/reset", handlers.HandleReset(store))

		// ── Line items ───────────────────────────────────────────
		se.Router.POST("/rfq/line-items", handlers.HandleLineItemAdd(store))
		se.Router.PATCH("/rfq/line-items/{index}", handlers.HandleLineItemPatch(store))
		se.Router.DELETE("/rfq/line-items/{index}", handlers.HandleLineItemRemove(store))

		// ── Attachments (metadata only) ──────────────────────────
		se.Router.POST("/rfq/files", handlers.HandleFileAdd(store))
		se.Router.DELETE("/rfq/files/{index}", handlers.HandleFileRemove(store))

		// ── Submission ───────────────────────────────────────────
		se.Router.POST("/rfq/submit", handlers.HandleSubmit(store, submitter))

		// ── Exports & print view ─────────────────────────────────
		se.Router.GET("/rfq/export/json", handlers.HandleExportJSON(store))
		se.Router.GET("/rfq/export/pdf", handlers.HandleExportPDF(store))
		se.Router.GET("/rfq/export/excel", handlers.HandleExportExcel(store))
		se.Router.GET("/rfq/print", handlers.HandlePrintView(store))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
