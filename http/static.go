package http

import (
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// handleStatic serves HTML pages and assets from the configured directory.
// "/" maps to index.html. Anything outside the directory, or any path the
// directory does not contain, gets the built-in 404 page.
func (h *Handler) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	if h.config.StaticDir == "" {
		writeDefaultNotFound(w)
		return
	}

	rel := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if rel == "" || rel == "." {
		rel = "index.html"
	}

	if !isValidPagePath(rel) {
		writeDefaultNotFound(w)
		return
	}

	full := filepath.Join(h.config.StaticDir, filepath.FromSlash(rel))

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			WriteError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
			return
		}
		writeDefaultNotFound(w)
		return
	}

	http.ServeFile(w, r, full)
}

// isValidPagePath rejects traversal and malformed page paths. The path must
// already be slash-separated and relative.
func isValidPagePath(p string) bool {
	if p == "" || p == "." {
		return false
	}

	if strings.HasPrefix(p, "/") || strings.HasSuffix(p, "/") {
		return false
	}

	if strings.Contains(p, "..") || strings.Contains(p, "//") {
		return false
	}

	if strings.ContainsAny(p, "\x00\\") {
		return false
	}

	return true
}
