// Package download serves processed artifacts and retires them: an
// artifact is deleted once its bytes have been fully streamed to a
// client. A transfer that fails midway leaves the artifact in place for
// one retry; the storage sweeper bounds how long it can linger.
package download

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/filepress/service/internal/storage"
)

// Handler holds the HTTP handler for the download endpoint.
type Handler struct {
	processed *storage.Area
}

// NewHandler creates a download Handler over the processed area.
func NewHandler(processed *storage.Area) *Handler {
	return &Handler{processed: processed}
}

// Get godoc
//
//	@Summary		Download a processed artifact
//	@Description	Streams the artifact named by the file parameter, then deletes it. A reference is valid for one successful download.
//	@Tags			download
//	@Produce		application/octet-stream
//	@Param			file	query		string	true	"Download reference returned by a compression route"
//	@Success		200		{file}		file
//	@Failure		404		{string}	string	"File not found"
//	@Router			/download [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("file")
	if name == "" {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	info, err := h.processed.Stat(name)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	f, err := h.processed.Open(name)
	if err != nil {
		// Lost a race with another download or the sweeper.
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", info.Name()))
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))

	if _, err := io.Copy(w, f); err != nil {
		// Client went away mid-transfer; keep the artifact so the same
		// reference can be retried.
		log.Printf("download: stream %q: %v", name, err)
		return
	}

	if err := h.processed.RemoveIfExists(name); err != nil {
		log.Printf("download: remove %q: %v", name, err)
	}
}
