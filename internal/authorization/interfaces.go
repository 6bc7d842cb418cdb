// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "context"

type AuthorizerInterface interface {
	AssignRenovationOwner(ctx context.Context, accountID, renovationID string) error
	AssignRenovationMember(ctx context.Context, accountID, renovationID string) error
	RemoveRenovationOwner(ctx context.Context, accountID, renovationID string) error
	RemoveRenovationMember(ctx context.Context, accountID, renovationID string) error
	CheckRenovationAccess(ctx context.Context, accountID, renovationID string) (bool, error)
}
