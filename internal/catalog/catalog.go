// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

// Package catalog loads and holds the precomputed recommendation data.
//
// Four artifacts are read once at startup and kept memory-resident for the
// process lifetime:
//
//   - title index: the fixed ordering of titles defining row/column
//     identity in the similarity matrix
//   - similarity matrix: N x N pairwise similarity scores
//   - top books: curated subset of titles for the listing view
//   - full books: metadata for every indexed title (gzip-compressed)
//
// Nothing in a Catalog is mutated after Load returns, so a single instance
// is shared read-only across all request handlers without locking.
package catalog

import "strings"

// Metadata is the enrichment record stored per title in the two metadata
// artifacts. Absent fields decode to their zero values; display defaulting
// happens at lookup time via Record.
type Metadata struct {
	Author string `json:"author"`
	Image  string `json:"image"`
}

// UnknownAuthor is the display default for titles without author metadata.
const UnknownAuthor = "Unknown Author"

// Catalog is the immutable in-memory recommendation dataset.
//
// The zero/empty state (nil TitleIndex, nil Similarity, empty maps) is the
// explicit "data unavailable" sentinel produced when any artifact fails to
// load. Callers must check Ready/TopLoaded before use.
type Catalog struct {
	// TitleIndex is the ordered sequence of unique titles. Position is the
	// canonical row/column identifier.
	TitleIndex []string

	// Similarity is the row-major N x N similarity matrix indexed by
	// TitleIndex position on both axes.
	Similarity [][]float64

	// Top maps normalized title to metadata for the curated subset.
	// TopOrder preserves the artifact's insertion order for listing.
	Top      map[string]Metadata
	TopOrder []string

	// Full maps normalized title to metadata for the complete title set.
	Full map[string]Metadata
}

// Empty returns the unavailable sentinel: no index, no matrix, empty maps.
func Empty() *Catalog {
	return &Catalog{
		Top:  map[string]Metadata{},
		Full: map[string]Metadata{},
	}
}

// Ready reports whether the recommendation inputs (index, matrix, full
// metadata set) all loaded. The curated set is checked separately because
// the listing operation can fail independently.
func (c *Catalog) Ready() bool {
	return c.TitleIndex != nil && c.Similarity != nil && len(c.Full) > 0
}

// TopLoaded reports whether the curated listing set is available.
func (c *Catalog) TopLoaded() bool {
	return len(c.Top) > 0
}

// Record returns the display metadata for a normalized title, applying the
// "Unknown Author" / empty image defaults for absent titles and absent
// fields.
func (c *Catalog) Record(title string) Metadata {
	meta := c.Full[title]
	if meta.Author == "" {
		meta.Author = UnknownAuthor
	}
	return meta
}

// normalizeKey strips surrounding whitespace so lookups with a stripped
// query title succeed regardless of inconsistent source formatting.
func normalizeKey(title string) string {
	return strings.TrimSpace(title)
}
