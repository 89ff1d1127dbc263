// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

package api

import (
	"errors"
	"net/http"

	"github.com/bookrec/bookrec/internal/logging"
	"github.com/bookrec/bookrec/internal/metrics"
	"github.com/bookrec/bookrec/internal/models"
	"github.com/bookrec/bookrec/internal/recommend"
)

// Error strings returned by the book endpoints. These are part of the
// wire contract: the frontend matches on them verbatim.
const (
	errMsgTopNotLoaded = "Book data not loaded."
	errMsgNotReady     = "Recommendation engine not ready. Data not loaded."
	errMsgQueryTooLong = "Query too long."
)

// TopBooks handles GET /top-books.
//
// Returns the curated top set as {"books": [...]}, preserving the
// artifact's entry order. When the top set failed to load the endpoint
// returns {"error": "Book data not loaded."} with HTTP 200.
func (h *Handler) TopBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.engine.TopBooks()
	if err != nil {
		if errors.Is(err, recommend.ErrTopNotLoaded) {
			respondFlatError(w, http.StatusOK, errMsgTopNotLoaded)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list top books", err)
		return
	}

	respondJSON(w, http.StatusOK, models.TopBooksResponse{Books: books})
}

// Recommend handles GET /recommend?book=<title>.
//
// Returns up to the configured number of similar titles as
// {"recommended": [...]}. An unknown title yields an empty list, not an
// error. An unloaded catalog returns {"error": "Recommendation engine
// not ready. Data not loaded."} with HTTP 200.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("book")

	if h.config != nil && len(query) > h.config.Recommend.MaxQueryLength {
		logging.Warn().Int("length", len(query)).Msg("Recommendation query exceeds length limit")
		respondFlatError(w, http.StatusBadRequest, errMsgQueryTooLong)
		return
	}

	books, err := h.engine.Recommend(query)
	if err != nil {
		if errors.Is(err, recommend.ErrNotReady) {
			metrics.RecordRecommendation(metrics.OutcomeNotReady, 0)
			respondFlatError(w, http.StatusOK, errMsgNotReady)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Recommendation failed", err)
		return
	}

	if len(books) == 0 {
		metrics.RecordRecommendation(metrics.OutcomeNoMatch, 0)
		logging.Debug().Str("query", sanitizeLogValue(query)).Msg("No recommendations for query")
	} else {
		metrics.RecordRecommendation(metrics.OutcomeServed, len(books))
	}

	respondJSON(w, http.StatusOK, models.RecommendResponse{Recommended: books})
}
