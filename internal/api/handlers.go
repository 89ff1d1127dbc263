// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

// Package api provides the HTTP surface of Bookrec: the two book
// endpoints the frontend consumes, Kubernetes-style health probes, and
// Chi routing with CORS, rate limiting, and Prometheus instrumentation.
package api

import (
	"time"

	"github.com/bookrec/bookrec/internal/catalog"
	"github.com/bookrec/bookrec/internal/config"
	"github.com/bookrec/bookrec/internal/recommend"
)

// Version is the reported service version.
const Version = "1.0.0"

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	engine    *recommend.Engine
	catalog   *catalog.Catalog
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a handler over the loaded catalog and engine.
func NewHandler(engine *recommend.Engine, cat *catalog.Catalog, cfg *config.Config) *Handler {
	if cat == nil {
		cat = catalog.Empty()
	}
	return &Handler{
		engine:    engine,
		catalog:   cat,
		config:    cfg,
		startTime: time.Now(),
	}
}
