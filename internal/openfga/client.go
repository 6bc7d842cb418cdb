// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package openfga wraps the OpenFGA SDK client.
package openfga

import (
	"context"
	"fmt"

	openfga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/monitoring"
	"github.com/canonical/renovation-service/internal/tracing"
)

type OpenFGAClientInterface interface {
	Check(ctx context.Context, user, relation, object string) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error)
}

type Config struct {
	ApiScheme string
	ApiHost   string
	StoreID   string
	ApiToken  string
	ModelID   string

	Tracer  tracing.TracingInterface
	Monitor monitoring.MonitorInterface
	Logger  logging.LoggerInterface
}

var _ OpenFGAClientInterface = (*Client)(nil)

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) Check(ctx context.Context, user, relation, object string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	r, err := c.c.Check(ctx).
		Body(client.ClientCheckRequest{User: user, Relation: relation, Object: object}).
		Execute()
	if err != nil {
		return false, fmt.Errorf("failed to perform check: %w", err)
	}

	return r.GetAllowed(), nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	_, err := c.c.Write(ctx).
		Body(client.ClientWriteRequest{
			Writes: []client.ClientTupleKey{
				{User: user, Relation: relation, Object: object},
			},
		}).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to write tuple: %w", err)
	}

	return nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	_, err := c.c.Write(ctx).
		Body(client.ClientWriteRequest{
			Deletes: []openfga.TupleKeyWithoutCondition{
				{User: user, Relation: relation, Object: object},
			},
		}).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete tuple: %w", err)
	}

	return nil
}

func (c *Client) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ListObjects")
	defer span.End()

	r, err := c.c.ListObjects(ctx).
		Body(client.ClientListObjectsRequest{User: user, Relation: relation, Type: objectType}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	return r.GetObjects(), nil
}

func NewClient(cfg Config) (*Client, error) {
	c := new(Client)

	configuration := client.ClientConfiguration{
		ApiScheme:            cfg.ApiScheme,
		ApiHost:              cfg.ApiHost,
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.ModelID,
	}

	if cfg.ApiToken != "" {
		configuration.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{ApiToken: cfg.ApiToken},
		}
	}

	fga, err := client.NewSdkClient(&configuration)
	if err != nil {
		return nil, fmt.Errorf("failed to create openfga client: %w", err)
	}

	c.c = fga

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	return c, nil
}
