// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/types"
)

var _ EmailClientInterface = (*NoopClient)(nil)

// NoopClient logs invitations instead of delivering them. Used when no
// Resend API key is configured.
type NoopClient struct {
	logger logging.LoggerInterface
}

func (c *NoopClient) SendInvitation(ctx context.Context, invitation *types.Invitation, renovationName string) error {
	c.logger.Infof("email delivery disabled, skipping invitation %s to %s", invitation.Token, invitation.Invitee.Email())
	return nil
}

func NewNoopClient(logger logging.LoggerInterface) *NoopClient {
	c := new(NoopClient)
	c.logger = logger
	return c
}
