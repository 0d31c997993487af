package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"studycalendar/internal/domain"
)

// FileUploadResponse is the data payload for POST /api/events/{eventID}/files.
// Deliberately narrower than the stored row: mime_type, event_id, and
// created_at are omitted.
type FileUploadResponse struct {
	ID               string `json:"id"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	FileSize         int64  `json:"file_size"`
	UploadedBy       string `json:"uploaded_by"`
}

// FileUploadSuccessResponse is the success envelope for the upload endpoint.
type FileUploadSuccessResponse struct {
	Success bool               `json:"success"`
	Data    FileUploadResponse `json:"data"`
	Message *string            `json:"message"`
}

type FileController struct {
	Logger  *slog.Logger
	Service domain.FileService
}

func NewFileController(logger *slog.Logger, svc domain.FileService) *FileController {
	return &FileController{
		Logger:  logger,
		Service: svc,
	}
}

// readUpload consumes the multipart stream and accumulates the recognized
// parts: "file" (content, filename, content type) and "uploaded_by".
// Unknown parts are skipped. Returns false when no file part was present.
func readUpload(r *http.Request) (domain.FileUpload, bool, error) {
	var upload domain.FileUpload
	haveFile := false

	mr, err := r.MultipartReader()
	if err != nil {
		return upload, false, err
	}
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return upload, false, err
		}
		switch part.FormName() {
		case "uploaded_by":
			data, err := io.ReadAll(part)
			if err != nil {
				return upload, false, err
			}
			upload.UploadedBy = string(data)
		case "file":
			data, err := io.ReadAll(part)
			if err != nil {
				return upload, false, err
			}
			upload.Data = data
			upload.OriginalFilename = part.FileName()
			if upload.OriginalFilename == "" {
				upload.OriginalFilename = "unknown"
			}
			upload.MimeType = part.Header.Get("Content-Type")
			haveFile = true
		}
	}
	return upload, haveFile, nil
}

// contentDispositionFilename makes a client-supplied filename safe to embed in
// a quoted Content-Disposition parameter: control characters are stripped,
// backslashes and double quotes are escaped.
func contentDispositionFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20 || r == 0x7f:
			// drop control characters
		case r == '\\' || r == '"':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UploadFile godoc
// @Summary Upload a file attachment to an event
// @Description Multipart body with a required "file" part and an optional "uploaded_by" part. The blob is written to storage before the metadata row is inserted.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param file formData file true "File content"
// @Param uploaded_by formData string false "Uploader attribution (default Anonymous)"
// @Success 200 {object} http.FileUploadSuccessResponse "data contains the upload summary"
// @Failure 400 {object} http.APIResponse "no file part, or malformed request"
// @Failure 500 {object} http.APIResponse
// @Router /api/events/{eventID}/files [post]
func (c *FileController) UploadFile(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	upload, haveFile, err := readUpload(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !haveFile {
		WriteJSONError(w, http.StatusBadRequest, "missing file field")
		return
	}
	file, err := c.Service.UploadFile(r.Context(), eventID, upload)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSONSuccess(w, http.StatusOK, FileUploadResponse{
		ID:               file.ID,
		Filename:         file.Filename,
		OriginalFilename: file.OriginalFilename,
		FileSize:         file.FileSize,
		UploadedBy:       file.UploadedBy,
	})
}

// DownloadFile godoc
// @Summary Download a file attachment
// @Description Responds with the raw bytes; Content-Type is the stored mime type and Content-Disposition carries the original filename. A metadata row whose blob is missing on disk is treated as not found.
// @Tags files
// @Produce octet-stream
// @Param fileID path string true "File ID (UUID)"
// @Success 200 {file} binary
// @Failure 400 {object} http.APIResponse
// @Failure 404 {object} http.APIResponse
// @Failure 500 {object} http.APIResponse
// @Router /api/files/{fileID}/download [get]
func (c *FileController) DownloadFile(w http.ResponseWriter, r *http.Request) {
	fileID, ok := pathUUID(w, r, "fileID")
	if !ok {
		return
	}
	file, data, err := c.Service.DownloadFile(r.Context(), fileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "file not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", file.MimeType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+contentDispositionFilename(file.OriginalFilename)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
