// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

package catalog

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/bookrec/bookrec/internal/config"
	"github.com/bookrec/bookrec/internal/logging"
)

// Load reads the four data artifacts and returns the in-memory catalog.
//
// Load never fails the process: on any missing, unreadable, or malformed
// artifact it logs the condition once and returns the Empty sentinel, so
// the server comes up in a persistent "not ready" state instead of
// crashing. It runs exactly once per process lifetime; there is no reload
// path.
func Load(cfg *config.DataConfig) *Catalog {
	c, err := load(cfg)
	if err != nil {
		logging.Error().Err(err).
			Str("title_index", cfg.TitleIndexPath).
			Str("similarity", cfg.SimilarityPath).
			Str("top_books", cfg.TopBooksPath).
			Str("full_books", cfg.FullBooksPath).
			Msg("Failed to load catalog data; serving in not-ready state")
		return Empty()
	}

	logging.Info().
		Int("titles", len(c.TitleIndex)).
		Int("top_books", len(c.Top)).
		Int("full_books", len(c.Full)).
		Msg("Data loaded successfully")
	return c
}

func load(cfg *config.DataConfig) (*Catalog, error) {
	titles, err := loadTitleIndex(cfg.TitleIndexPath)
	if err != nil {
		return nil, fmt.Errorf("title index: %w", err)
	}

	matrix, err := loadSimilarity(cfg.SimilarityPath, len(titles))
	if err != nil {
		return nil, fmt.Errorf("similarity matrix: %w", err)
	}

	top, topOrder, err := loadOrderedMetadata(cfg.TopBooksPath)
	if err != nil {
		return nil, fmt.Errorf("top books: %w", err)
	}

	full, err := loadCompressedMetadata(cfg.FullBooksPath)
	if err != nil {
		return nil, fmt.Errorf("full books: %w", err)
	}

	return &Catalog{
		TitleIndex: titles,
		Similarity: matrix,
		Top:        top,
		TopOrder:   topOrder,
		Full:       full,
	}, nil
}

// loadTitleIndex reads the ordered title sequence and enforces uniqueness.
func loadTitleIndex(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var titles []string
	if err := json.NewDecoder(f).Decode(&titles); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("%s: empty title index", path)
	}

	seen := make(map[string]struct{}, len(titles))
	for i, t := range titles {
		if _, dup := seen[t]; dup {
			return nil, fmt.Errorf("%s: duplicate title %q at position %d", path, t, i)
		}
		seen[t] = struct{}{}
	}

	return titles, nil
}

// loadSimilarity reads the row-major matrix and checks that both axes
// match the title index length. A mismatched matrix is a load-time
// failure, not a per-request error.
func loadSimilarity(path string, n int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var matrix [][]float64
	if err := json.NewDecoder(f).Decode(&matrix); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if len(matrix) != n {
		return nil, fmt.Errorf("%s: matrix has %d rows, title index has %d entries", path, len(matrix), n)
	}
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d", path, i, len(row), n)
		}
	}

	return matrix, nil
}

// loadOrderedMetadata decodes a JSON object of title -> metadata while
// preserving the object's key order, which defines the listing order of
// the curated set. Keys are whitespace-normalized on insertion; a
// duplicate normalized key keeps its first position and last value.
func loadOrderedMetadata(path string) (map[string]Metadata, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return decodeOrderedMetadata(f, path)
}

func decodeOrderedMetadata(r io.Reader, name string) (map[string]Metadata, []string, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("decode %s: expected JSON object, got %v", name, tok)
	}

	meta := make(map[string]Metadata)
	var order []string

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("decode %s: %w", name, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("decode %s: non-string key %v", name, keyTok)
		}

		var m Metadata
		if err := dec.Decode(&m); err != nil {
			return nil, nil, fmt.Errorf("decode %s entry %q: %w", name, key, err)
		}

		key = normalizeKey(key)
		if _, exists := meta[key]; !exists {
			order = append(order, key)
		}
		meta[key] = m
	}

	// consume closing brace
	if _, err := dec.Token(); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", name, err)
	}

	return meta, order, nil
}

// loadCompressedMetadata reads the gzip-compressed full metadata set.
// Order is irrelevant here; the full set is only used for point lookups.
func loadCompressedMetadata(path string) (map[string]Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("gunzip %s: %w", path, err)
	}
	defer gz.Close()

	var raw map[string]Metadata
	if err := json.NewDecoder(gz).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: empty metadata set", path)
	}

	full := make(map[string]Metadata, len(raw))
	for k, v := range raw {
		full[normalizeKey(k)] = v
	}

	return full, nil
}
