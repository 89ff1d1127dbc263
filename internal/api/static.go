// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// serveStaticOrIndex serves static frontend files, falling back to
// index.html for unknown routes so client-side routing works.
func (router *Router) serveStaticOrIndex(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	// Cache-Control by file type: long cache for versioned assets,
	// short cache for HTML so deploys propagate quickly.
	switch {
	case strings.HasSuffix(path, ".js") || strings.HasSuffix(path, ".css"):
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	case strings.HasSuffix(path, ".png") || strings.HasSuffix(path, ".svg") ||
		strings.HasSuffix(path, ".jpg") || strings.HasSuffix(path, ".webp"):
		w.Header().Set("Cache-Control", "public, max-age=604800")
	case path == "/" || path == "/index.html":
		w.Header().Set("Cache-Control", "public, max-age=300")
	}

	if path != "/" && path != "/index.html" && router.fileExists(path) {
		http.FileServer(http.Dir(router.staticDir)).ServeHTTP(w, r)
		return
	}

	// SPA fallback
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "public, max-age=300")
	}

	index := filepath.Join(router.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		respondFlatError(w, http.StatusOK, "Frontend build not found.")
		return
	}
	http.ServeFile(w, r, index)
}

// fileExists reports whether path names a regular file under the
// configured static directory.
func (router *Router) fileExists(path string) bool {
	f, err := http.Dir(router.staticDir).Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return false
	}

	return !stat.IsDir()
}
