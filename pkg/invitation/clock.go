// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import "time"

var _ ClockInterface = (*systemClock)(nil)

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// NewSystemClock returns a clock backed by time.Now.
func NewSystemClock() ClockInterface {
	return systemClock{}
}
