// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package mail delivers invitation emails through Resend.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/tracing"
	"github.com/canonical/renovation-service/internal/types"
)

const invitationBody = `<p>Hello,</p>
<p>You have been invited to collaborate on the renovation <strong>{{.RenovationName}}</strong>.</p>
<p><a href="{{.AcceptLink}}">Accept the invitation</a> or <a href="{{.DeclineLink}}">decline it</a>.</p>
<p>This invitation expires on {{.ExpiryDate}}.</p>
`

var invitationTemplate = template.Must(template.New("invitation").Parse(invitationBody))

var _ EmailClientInterface = (*Client)(nil)

type Client struct {
	client *resend.Client

	from    string
	baseURL string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (c *Client) SendInvitation(ctx context.Context, invitation *types.Invitation, renovationName string) error {
	ctx, span := c.tracer.Start(ctx, "mail.Client.SendInvitation")
	defer span.End()

	body, err := c.renderBody(invitation, renovationName)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{invitation.Invitee.Email()},
		Subject: fmt.Sprintf("You have been invited to join %s", renovationName),
		Html:    body,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send invitation email to %s: %w", invitation.Invitee.Email(), err)
	}

	c.logger.Debugf("sent invitation email %s for token %s", sent.Id, invitation.Token)
	return nil
}

func (c *Client) renderBody(invitation *types.Invitation, renovationName string) (string, error) {
	var buf bytes.Buffer

	err := invitationTemplate.Execute(&buf, map[string]string{
		"RenovationName": renovationName,
		"AcceptLink":     fmt.Sprintf("%s/invitations/%s/accept", c.baseURL, invitation.Token),
		"DeclineLink":    fmt.Sprintf("%s/invitations/%s/decline", c.baseURL, invitation.Token),
		"ExpiryDate":     invitation.ExpiryDate.Format("2 January 2006"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render invitation email: %w", err)
	}

	return buf.String(), nil
}

func NewClient(apiKey, from, baseURL string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.client = resend.NewClient(apiKey)
	c.from = from
	c.baseURL = baseURL

	c.tracer = tracer
	c.logger = logger

	return c
}
