package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"rfqintake/drafts"
	"rfqintake/services"
)

// maxUploadMemory bounds the multipart parse buffer. Only the file
// headers are read; contents are discarded without being stored.
const maxUploadMemory = 32 << 20

// HandleFileAdd handles POST /rfq/files
// Captures metadata for an uploaded batch. The batch is partitioned
// against the extension allow-list: accepted files are appended in their
// given order, rejected ones produce a warning and are discarded.
func HandleFileAdd(store *drafts.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(maxUploadMemory); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid upload")
		}

		headers := e.Request.MultipartForm.File["files"]
		if len(headers) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "No files selected")
		}

		candidates := make([]services.FileRef, 0, len(headers))
		for _, fh := range headers {
			candidates = append(candidates, services.FileRef{
				Name:     fh.Filename,
				Size:     fh.Size,
				MimeType: fh.Header.Get("Content-Type"),
			})
		}

		accepted, rejected := services.PartitionFiles(candidates)

		if len(rejected) > 0 {
			names := make([]string, len(rejected))
			for i, f := range rejected {
				names[i] = f.Name
			}
			SetToast(e, "warning", fmt.Sprintf(
				"Not accepted: %s. Allowed file types: %s",
				strings.Join(names, ", "), services.AllowedExtensionsLabel(),
			))
		} else {
			SetToast(e, "success", fmt.Sprintf("%d file(s) attached", len(accepted)))
		}

		state := store.Dispatch(SessionID(e.Request), services.AddFiles{Candidates: candidates})
		return renderForm(e, state, nil)
	}
}

// HandleFileRemove handles DELETE /rfq/files/{index}
// Removes one attached file reference by position.
func HandleFileRemove(store *drafts.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		index, err := strconv.Atoi(e.Request.PathValue("index"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid file index")
		}

		sessionID := SessionID(e.Request)
		if index < 0 || index >= len(store.Get(sessionID).Files) {
			return ErrorToast(e, http.StatusNotFound, "File not found")
		}

		state := store.Dispatch(sessionID, services.RemoveFile{Index: index})
		SetToast(e, "success", "File removed")
		return renderForm(e, state, nil)
	}
}
