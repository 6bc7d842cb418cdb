// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package kratos looks accounts up in the Ory Kratos admin API.
package kratos

import (
	"context"
	"fmt"
	"net/http"

	client "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/monitoring"
	"github.com/canonical/renovation-service/internal/tracing"
	"github.com/canonical/renovation-service/internal/types"
)

type Client struct {
	c *client.APIClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) IdentityAPI() client.IdentityAPI {
	return c.c.IdentityAPI
}

// GetAccountByEmail resolves an email to a registered account. It returns
// (nil, nil) when no identity uses the email as a credentials identifier.
func (c *Client) GetAccountByEmail(ctx context.Context, email string) (*types.Account, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetAccountByEmail")
	defer span.End()

	identities, _, err := c.c.IdentityAPI.ListIdentities(ctx).
		CredentialsIdentifier(email).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	if len(identities) == 0 {
		return nil, nil
	}

	return accountFromIdentity(&identities[0]), nil
}

// GetAccount fetches an account by its identity ID.
func (c *Client) GetAccount(ctx context.Context, id string) (*types.Account, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetAccount")
	defer span.End()

	identity, _, err := c.c.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity %s: %w", id, err)
	}

	return accountFromIdentity(identity), nil
}

func accountFromIdentity(identity *client.Identity) *types.Account {
	account := new(types.Account)
	account.ID = identity.Id

	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return account
	}

	if email, ok := traits["email"].(string); ok {
		account.Email = email
	}

	if name, ok := traits["name"].(string); ok {
		account.Name = name
	}

	return account
}

func NewClient(url string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface, debug bool) *Client {
	c := new(Client)

	configuration := client.NewConfiguration()
	configuration.Debug = debug
	configuration.Servers = []client.ServerConfiguration{
		{
			URL: url,
		},
	}
	configuration.HTTPClient = &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	c.c = client.NewAPIClient(configuration)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
