// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

// Package recommend implements the in-memory recommendation engine.
//
// The engine is stateless across requests: every call reads the immutable
// catalog loaded at startup and allocates only request-local results, so
// any number of calls may run concurrently without locking.
package recommend

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bookrec/bookrec/internal/catalog"
	"github.com/bookrec/bookrec/internal/models"
)

// DefaultTopK is the number of similar titles returned per query.
const DefaultTopK = 5

// Engine answers recommendation and listing queries against a loaded
// catalog. Safe for concurrent use; the catalog is never mutated.
type Engine struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
	topK    int
}

// NewEngine creates an engine over the given catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, topK int, logger zerolog.Logger) *Engine {
	if cat == nil {
		cat = catalog.Empty()
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	return &Engine{
		catalog: cat,
		logger:  logger.With().Str("component", "recommend").Logger(),
		topK:    topK,
	}
}

// TopBooks returns every entry of the curated top set in the artifact's
// insertion order. Returns ErrTopNotLoaded when the set is unavailable so
// callers can distinguish "no top books" from "system not ready".
func (e *Engine) TopBooks() ([]models.Book, error) {
	if !e.catalog.TopLoaded() {
		return nil, ErrTopNotLoaded
	}

	books := make([]models.Book, 0, len(e.catalog.TopOrder))
	for _, title := range e.catalog.TopOrder {
		meta := e.catalog.Top[title]
		if meta.Author == "" {
			meta.Author = catalog.UnknownAuthor
		}
		books = append(books, models.Book{
			Title:  title,
			Author: meta.Author,
			Image:  meta.Image,
		})
	}

	return books, nil
}

// Recommend returns up to topK titles most similar to the closest-matching
// known title for the query.
//
// Matching is substring containment against the lowercased title index, in
// index order, first match wins. An unknown title is a valid request with
// zero results, not an error; only an unloaded catalog returns ErrNotReady.
//
// The empty query matches the first title (every string contains ""); that
// degenerate behavior is intentional and not special-cased.
func (e *Engine) Recommend(query string) ([]models.Book, error) {
	if !e.catalog.Ready() {
		return nil, ErrNotReady
	}

	q := strings.ToLower(strings.TrimSpace(query))

	idx := e.firstMatch(q)
	if idx < 0 {
		e.logger.Debug().Str("query", q).Msg("no title matched query")
		return []models.Book{}, nil
	}

	return e.similarTo(idx), nil
}

// firstMatch scans the title index in order and returns the position of
// the first title containing q, or -1. Ties among multiple substring
// matches are deliberately broken by index position, not match quality.
func (e *Engine) firstMatch(q string) int {
	for i, title := range e.catalog.TitleIndex {
		if strings.Contains(strings.ToLower(title), q) {
			return i
		}
	}
	return -1
}

// similarTo ranks row idx of the similarity matrix and assembles display
// records for the top entries.
//
// The sorted list's first element is always discarded as the self-match:
// the diagonal is assumed maximal by construction of the matrix, and the
// row's own index is intentionally NOT excluded explicitly, preserving the
// original ranking policy even for imperfect matrices. The slice is
// clamped, not assumed: a catalog with fewer than topK+1 titles returns
// however many results exist.
func (e *Engine) similarTo(idx int) []models.Book {
	row := e.catalog.Similarity[idx]

	type scored struct {
		col   int
		score float64
	}
	ranked := make([]scored, len(row))
	for col, score := range row {
		ranked[col] = scored{col: col, score: score}
	}

	// Stable sort keeps equal scores in index order, matching the
	// deterministic tie-break of the ranking this engine replaces.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) <= 1 {
		return []models.Book{}
	}

	end := 1 + e.topK
	if end > len(ranked) {
		end = len(ranked)
	}

	books := make([]models.Book, 0, end-1)
	for _, r := range ranked[1:end] {
		// Defensive: an index outside the title index degrades to "no
		// recommendations" rather than propagating a fault.
		if r.col < 0 || r.col >= len(e.catalog.TitleIndex) {
			e.logger.Warn().Int("column", r.col).Msg("similarity column out of range")
			return []models.Book{}
		}

		title := strings.TrimSpace(e.catalog.TitleIndex[r.col])
		meta := e.catalog.Record(title)
		books = append(books, models.Book{
			Title:  title,
			Author: meta.Author,
			Image:  meta.Image,
		})
	}

	return books
}
