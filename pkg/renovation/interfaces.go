// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package renovation

import (
	"context"

	"github.com/canonical/renovation-service/internal/types"
)

type ServiceInterface interface {
	CreateRenovation(ctx context.Context, name string, owner *types.Account) (*types.Renovation, error)
	GetRenovation(ctx context.Context, id string) (*types.Renovation, error)
	ListMembers(ctx context.Context, renovationID string) ([]*types.Membership, error)
	RemoveMember(ctx context.Context, renovationID string, member *types.Account) error
}

type StorageInterface interface {
	CreateRenovation(ctx context.Context, name, ownerID string) (*types.Renovation, error)
	GetRenovationByID(ctx context.Context, id string) (*types.Renovation, error)
	AddMember(ctx context.Context, renovationID, accountID, email, role string) (*types.Membership, error)
	RemoveMember(ctx context.Context, renovationID, accountID string) error
	ListMembersByRenovationID(ctx context.Context, renovationID string) ([]*types.Membership, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type InvitationsInterface interface {
	DeleteInvitations(ctx context.Context, renovationID, email string) error
}

type AuthzInterface interface {
	AssignRenovationOwner(ctx context.Context, accountID, renovationID string) error
	RemoveRenovationMember(ctx context.Context, accountID, renovationID string) error
}

type ChatInterface interface {
	CreateGeneralChannel(ctx context.Context, renovationID, accountID string) (*types.ChatChannel, error)
}

type AccountsInterface interface {
	GetAccount(ctx context.Context, id string) (*types.Account, error)
}
