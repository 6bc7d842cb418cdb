// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import "context"

var _ OpenFGAClientInterface = (*NoopClient)(nil)

// NoopClient allows everything and records nothing. Used when authorization
// is disabled.
type NoopClient struct{}

func (c *NoopClient) Check(ctx context.Context, user, relation, object string) (bool, error) {
	return true, nil
}

func (c *NoopClient) WriteTuple(ctx context.Context, user, relation, object string) error {
	return nil
}

func (c *NoopClient) DeleteTuple(ctx context.Context, user, relation, object string) error {
	return nil
}

func (c *NoopClient) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	return []string{}, nil
}

func NewNoopClient() *NoopClient {
	return new(NoopClient)
}
