// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator instance. The instance caches
// struct metadata, so a singleton avoids repeated reflection work.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the configuration against its struct validation tags and
// a few cross-field rules. It returns a single error listing every failed
// field.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return fmt.Errorf("invalid configuration value: %w", err)
		}

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q validation", fe.Namespace(), fe.Tag()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}

	// TopK beyond the catalog size is handled by clamping at query time,
	// but a zero-length CORS list silently blocks the bundled frontend.
	if len(c.Security.CORSOrigins) == 0 {
		return errors.New("security.cors_origins must list at least one origin (use \"*\" to allow all)")
	}

	return nil
}
