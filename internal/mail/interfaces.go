// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/canonical/renovation-service/internal/types"
)

type EmailClientInterface interface {
	SendInvitation(ctx context.Context, invitation *types.Invitation, renovationName string) error
}
