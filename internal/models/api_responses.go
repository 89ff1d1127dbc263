// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

// Package models defines the wire types shared by the HTTP handlers.
//
// The two book endpoints keep the exact payload shapes the frontend was
// built against ({"books": ...}, {"recommended": ...}, {"error": ...});
// operational endpoints (health, stats) use the richer APIResponse
// envelope.
package models

import "time"

// Book is a single display record: title plus enrichment metadata.
// Author and Image carry explicit defaults ("Unknown Author", "") applied
// when the full catalog has no entry for a title.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Image  string `json:"image"`
}

// TopBooksResponse is the payload of GET /top-books.
type TopBooksResponse struct {
	Books []Book `json:"books"`
}

// RecommendResponse is the payload of GET /recommend.
// Recommended always marshals as an array, never null.
type RecommendResponse struct {
	Recommended []Book `json:"recommended"`
}

// ErrorResponse is the flat error payload the book endpoints return when
// catalog data is not loaded. Delivered with HTTP 200: the frontend
// switches on the presence of the error key, not the status code.
type ErrorResponse struct {
	Error string `json:"error"`
}

// APIResponse is the standardized envelope for operational endpoints.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data,omitempty"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response metadata for operational endpoints.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is a structured error for operational endpoints.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthStatus reports overall service health.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	CatalogLoaded bool    `json:"catalog_loaded"`
	TitleCount    int     `json:"title_count"`
	TopBookCount  int     `json:"top_book_count"`
	Uptime        float64 `json:"uptime_seconds"`
}
