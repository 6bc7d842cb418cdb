// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/renovation-service/internal/types"
)

type StorageInterface interface {
	CreateRenovation(ctx context.Context, name, ownerID string) (*types.Renovation, error)
	GetRenovationByID(ctx context.Context, id string) (*types.Renovation, error)

	AddMember(ctx context.Context, renovationID, accountID, email, role string) (*types.Membership, error)
	RemoveMember(ctx context.Context, renovationID, accountID string) error
	ListMembersByRenovationID(ctx context.Context, renovationID string) ([]*types.Membership, error)
	GetRenovationOwner(ctx context.Context, renovationID string) (*types.Membership, error)
	ListCollaborators(ctx context.Context, accountID, query string) ([]*types.Account, error)

	CreateInvitation(ctx context.Context, invitation *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	ListInvitationsByRenovation(ctx context.Context, renovationID string) ([]*types.Invitation, error)
	ListInvitationsByRenovationAndEmail(ctx context.Context, renovationID, email string) ([]*types.Invitation, error)
	ListInvitationsByAccount(ctx context.Context, accountID string) ([]*types.Invitation, error)
	ListInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	ListInvitationsByOwner(ctx context.Context, ownerID, query string) ([]*types.Invitation, error)
	ListInvitationsDueBefore(ctx context.Context, deadline time.Time) ([]*types.Invitation, error)
	ListInvitationsPendingRegistration(ctx context.Context, email string) ([]*types.Invitation, error)
	UpdateInvitationStatus(ctx context.Context, token string, from, to types.InvitationStatus) (*types.Invitation, error)
	SetInvitationPendingRegistration(ctx context.Context, token string, pending bool) (*types.Invitation, error)
	ClearPendingRegistrationByEmail(ctx context.Context, email string) error
	DeleteInvitation(ctx context.Context, token string) error
	DeleteInvitationsByRenovationAndEmail(ctx context.Context, renovationID, email string, statuses []types.InvitationStatus) error

	GetChannelByRenovationAndName(ctx context.Context, renovationID, name string) (*types.ChatChannel, error)
	CreateChannel(ctx context.Context, renovationID, name string, private bool) (*types.ChatChannel, error)
	AddChannelMember(ctx context.Context, channelID, accountID string) error

	CreateLiveUpdate(ctx context.Context, update *types.LiveUpdate) (*types.LiveUpdate, error)
}
