package httpapi

import (
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ejsis-server/internal/store"
)

const maxPhotoSize = 10 << 20 // 10MB

var (
	tokenSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

	validPhotoTypes = map[string]bool{
		"outdoor":    true,
		"indoor":     true,
		"additional": true,
	}

	// Extension by sniffed content type; uploads outside this set are
	// rejected regardless of the client-supplied filename. The set is
	// limited to formats the report renderer can embed, so a stored
	// photo is never silently absent from the finished PDF.
	photoExtensions = map[string]string{
		"image/jpeg": "jpg",
		"image/png":  "png",
		"image/gif":  "gif",
	}
)

// PhotoHandler stores site photos for later report embedding.
type PhotoHandler struct {
	photos *store.PhotoStore
	logger *zap.Logger
}

func NewPhotoHandler(photos *store.PhotoStore, logger *zap.Logger) *PhotoHandler {
	return &PhotoHandler{photos: photos, logger: logger}
}

// Upload handles POST /api/v1/jsis/photo (multipart/form-data with
// record_id, photo_type and a photo file part).
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize+(1<<20))
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		respondError(w, http.StatusBadRequest, "File too large (max 10MB)")
		return
	}

	recordID := tokenSanitizer.ReplaceAllString(r.FormValue("record_id"), "")
	photoType := tokenSanitizer.ReplaceAllString(r.FormValue("photo_type"), "")
	if recordID == "" || photoType == "" {
		respondError(w, http.StatusBadRequest, "Missing record_id or photo_type")
		return
	}
	if !validPhotoTypes[photoType] {
		respondError(w, http.StatusBadRequest, "Invalid photo_type")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read upload")
		return
	}
	if len(data) > maxPhotoSize {
		respondError(w, http.StatusBadRequest, "File too large (max 10MB)")
		return
	}

	sniff := data
	if len(sniff) > 512 {
		sniff = sniff[:512]
	}
	mimeType := http.DetectContentType(sniff)
	// DetectContentType may append parameters; compare the bare type.
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	ext, ok := photoExtensions[mimeType]
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid file type. Allowed: JPG, PNG, GIF")
		return
	}

	// Nameplate photos overwrite per record; additional photos get a
	// unique suffix so a record can carry any number of them.
	filename := recordID + "_" + photoType + "." + ext
	if photoType == "additional" {
		filename = recordID + "_" + photoType + "_" + uuid.NewString()[:8] + "." + ext
	}

	size, err := h.photos.Save(filename, data)
	if err != nil {
		h.logger.Error("Photo upload failed", zap.String("filename", filename), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to save file")
		return
	}

	h.logger.Info("Stored JSIS photo",
		zap.String("record_id", recordID),
		zap.String("photo_type", photoType),
		zap.String("filename", filename),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"filename":   filename,
		"photo_type": photoType,
		"size":       size,
	})
}
