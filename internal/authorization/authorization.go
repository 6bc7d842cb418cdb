// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authorization maintains the relationship tuples backing access
// decisions for renovations.
package authorization

import (
	"context"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/monitoring"
	"github.com/canonical/renovation-service/internal/openfga"
	"github.com/canonical/renovation-service/internal/tracing"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client openfga.OpenFGAClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) AssignRenovationOwner(ctx context.Context, accountID, renovationID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignRenovationOwner")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(accountID), OWNER_RELATION, RenovationTuple(renovationID))
}

func (a *Authorizer) AssignRenovationMember(ctx context.Context, accountID, renovationID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignRenovationMember")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(accountID), MEMBER_RELATION, RenovationTuple(renovationID))
}

func (a *Authorizer) RemoveRenovationOwner(ctx context.Context, accountID, renovationID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveRenovationOwner")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(accountID), OWNER_RELATION, RenovationTuple(renovationID))
}

func (a *Authorizer) RemoveRenovationMember(ctx context.Context, accountID, renovationID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveRenovationMember")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(accountID), MEMBER_RELATION, RenovationTuple(renovationID))
}

func (a *Authorizer) CheckRenovationAccess(ctx context.Context, accountID, renovationID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckRenovationAccess")
	defer span.End()

	return a.client.Check(ctx, UserTuple(accountID), CAN_VIEW, RenovationTuple(renovationID))
}

func NewAuthorizer(client openfga.OpenFGAClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)

	a.client = client

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
