// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestNoopLoggerSecurity(t *testing.T) {
	l := NewNoopLogger()
	if l.Security() == nil {
		t.Fatal("expected security logger to be set")
	}
	l.Security().SystemStartup()
	l.Security().SystemShutdown()
}
