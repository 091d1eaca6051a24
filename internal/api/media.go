package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

const maxImageBytes = 20 << 20 // 20 MB

// imageExts is the allow-list for uploaded recipe photos.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// ImageHandler accepts and serves recipe photos. Uploads land in a flat
// directory next to the store; the returned URL is what forms put into a
// recipe's imageUrl field.
type ImageHandler struct {
	dir string
}

// NewImageHandler creates a handler storing images under dir. The dir is
// cleaned once here so the containment check in safeName compares
// like-for-like paths (a raw "./data/images" would never prefix-match its
// own joined children).
func NewImageHandler(dir string) *ImageHandler {
	return &ImageHandler{dir: filepath.Clean(dir)}
}

// safeName validates that the filename is a plain image name (no path
// separators, no traversal, allowed extension) and returns the path
// under the images dir.
func (h *ImageHandler) safeName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("filename is required")
	}
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("invalid filename: %s", name)
	}
	if !imageExts[strings.ToLower(filepath.Ext(cleaned))] {
		return "", fmt.Errorf("unsupported image type: %s", name)
	}
	dst := filepath.Join(h.dir, cleaned)
	if filepath.Dir(dst) != h.dir {
		return "", fmt.Errorf("path escapes images directory")
	}
	return dst, nil
}

// write stores the upload atomically: tmp file → fsync → rename. A
// re-upload of an existing filename replaces it in one step, and a failed
// copy never leaves a truncated image at the final path.
func (h *ImageHandler) write(path string, src io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(h.dir, ".mise-img-*")
	if err != nil {
		return 0, fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	written, err := io.Copy(tmp, src)
	if err != nil {
		return 0, fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return 0, fmt.Errorf("fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return 0, fmt.Errorf("rename: %w", err)
	}
	success = true
	return written, nil
}

// ServeFile handles GET /images/{filename}.
func (h *ImageHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	path, err := h.safeName(filename)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

// Upload handles POST /images (multipart/form-data, field "file").
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("file too large or invalid multipart"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'file' field in multipart form"))
		return
	}
	defer file.Close()

	path, err := h.safeName(header.Filename)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody("failed to create images dir"))
		return
	}

	written, err := h.write(path, file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody("failed to write file"))
		return
	}

	writeJSON(w, http.StatusCreated, ImageUploadResponse{
		Filename: header.Filename,
		Size:     written,
		URL:      "/api/images/" + header.Filename,
	})
}
