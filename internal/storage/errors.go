// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")
	// ErrConflict is returned by compare-and-set updates when the record
	// exists but its current state doesn't match the expected one.
	ErrConflict = errors.New("record was modified concurrently")
)
