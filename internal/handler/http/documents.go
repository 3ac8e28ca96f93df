package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/arc-portal/models"
)

// documentsPath is the route serving attachments. Download links point here.
const documentsPath = "/api/documents"

// downloadURL builds the link under which an attachment can be fetched.
func downloadURL(id string) string {
	return documentsPath + "?id=" + url.QueryEscape(id)
}

// mimeLineLength is the line width of wrapped (MIME) base64.
const mimeLineLength = 76

// uploadBodyLimit caps the upload request body at the encoded size of the
// largest accepted payload, wrapped at 76 columns with JSON-escaped line
// breaks, plus headroom for the other fields.
func uploadBodyLimit(maxUploadBytes int64) int64 {
	encoded := (maxUploadBytes + 2) / 3 * 4
	lineBreaks := encoded/mimeLineLength + 1
	return encoded + lineBreaks*int64(len(`\r\n`)) + 64<<10
}

func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, uploadBodyLimit(h.maxUploadBytes))

	var req models.UploadRequest
	if err := decodeObject(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	attachment, err := h.services.AttachmentService.Upload(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, models.UploadResponse{
		ID:          attachment.ID,
		FileName:    attachment.FileName,
		TestRef:     attachment.TestRef,
		DownloadURL: downloadURL(attachment.ID),
	})
}

// getDocuments serves one attachment when id or testRef is given and the
// metadata listing otherwise.
func (h *Handler) getDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	id, testRef := query.Get("id"), query.Get("testRef")

	if id != "" || testRef != "" {
		h.downloadDocument(w, r, models.AttachmentQuery{ID: id, TestRef: testRef})
		return
	}

	attachments, err := h.services.AttachmentService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	items := make([]models.AttachmentListItem, 0, len(attachments))
	for _, a := range attachments {
		items = append(items, models.AttachmentListItem{Attachment: a, DownloadURL: downloadURL(a.ID)})
	}

	writeJSON(w, r, http.StatusOK, items)
}

func (h *Handler) downloadDocument(w http.ResponseWriter, r *http.Request, query models.AttachmentQuery) {
	attachment, payload, err := h.services.AttachmentService.Download(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	header := w.Header()
	header.Set("Content-Type", attachment.ContentType)
	header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, dispositionFileName(attachment.FileName)))
	header.Set("Content-Length", strconv.Itoa(len(payload)))
	header.Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(payload); err != nil {
		h.logger.Err(err).Str("func", "*Handler.downloadDocument").Str("id", attachment.ID).Msg("error writing document")
	}
}

// dispositionFileName removes double quotes so the name cannot break out of
// the quoted header parameter.
func dispositionFileName(name string) string {
	if name == "" {
		name = models.DefaultAttachmentFileName
	}
	return strings.ReplaceAll(name, `"`, "")
}
