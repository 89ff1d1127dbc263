// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

package recommend

import "errors"

// Sentinel errors distinguishing "system not ready" from "no results".
// A query with no matching title is NOT an error; it yields an empty list.
var (
	// ErrNotReady indicates the recommendation inputs (title index,
	// similarity matrix, full catalog) never loaded.
	ErrNotReady = errors.New("recommendation engine not ready: data not loaded")

	// ErrTopNotLoaded indicates the curated top set never loaded.
	ErrTopNotLoaded = errors.New("top book data not loaded")
)
