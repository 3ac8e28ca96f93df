// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before the server starts.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if err := cfg.Storage.Mongo.Validate(); err != nil {
		return err
	}

	if cfg.Storage.Files.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: max upload bytes must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	return nil
}

func (a App) validate() error {
	if a.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if a.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if a.PasswordCost < bcrypt.MinCost || a.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password cost must be within [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

// Validate checks the document store settings. It is exported for labctl
// commands that only talk to the document store.
func (m Mongo) Validate() error {
	if m.URI == "" {
		return fmt.Errorf("%w: document store URI is required", ErrInvalidStorageConfigs)
	}

	if m.Database == "" {
		return fmt.Errorf("%w: document store database is required", ErrInvalidStorageConfigs)
	}

	return nil
}
