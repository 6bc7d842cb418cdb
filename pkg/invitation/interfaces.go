// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"time"

	"github.com/canonical/renovation-service/internal/types"
)

type ServiceInterface interface {
	CreateInvite(ctx context.Context, renovationID, email string) (*types.Invitation, error)
	AcceptInvitation(ctx context.Context, token string) (*types.Invitation, error)
	DeclineInvitation(ctx context.Context, token string) (*types.Invitation, error)
	MarkAsAcceptedPendingRegistration(ctx context.Context, token string) (*types.Invitation, error)
	AcceptInvitationsPendingRegistration(ctx context.Context, account *types.Account) error
	ClearInvitationsPendingRegistration(ctx context.Context, email string) error
	ExpireInvitations(ctx context.Context) (int, error)
	ValidateInvitationToken(ctx context.Context, token string) (*types.Invitation, error)
	SendInvitationMail(ctx context.Context, invitation *types.Invitation) error
	DeleteInvitations(ctx context.Context, renovationID, email string) error
	ValidateInviteEmails(ctx context.Context, renovationID string, emails []string) error
	FindInviteSuggestions(ctx context.Context, accountID, renovationID, query string) ([]*types.CollaboratorSuggestion, error)
}

// ExpirerInterface is the slice of the service the sweeper needs.
type ExpirerInterface interface {
	ExpireInvitations(ctx context.Context) (int, error)
}

type StorageInterface interface {
	GetRenovationByID(ctx context.Context, id string) (*types.Renovation, error)
	AddMember(ctx context.Context, renovationID, accountID, email, role string) (*types.Membership, error)
	ListMembersByRenovationID(ctx context.Context, renovationID string) ([]*types.Membership, error)
	GetRenovationOwner(ctx context.Context, renovationID string) (*types.Membership, error)
	ListCollaborators(ctx context.Context, accountID, query string) ([]*types.Account, error)

	CreateInvitation(ctx context.Context, invitation *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	ListInvitationsByRenovationAndEmail(ctx context.Context, renovationID, email string) ([]*types.Invitation, error)
	ListInvitationsByOwner(ctx context.Context, ownerID, query string) ([]*types.Invitation, error)
	ListInvitationsDueBefore(ctx context.Context, deadline time.Time) ([]*types.Invitation, error)
	ListInvitationsPendingRegistration(ctx context.Context, email string) ([]*types.Invitation, error)
	UpdateInvitationStatus(ctx context.Context, token string, from, to types.InvitationStatus) (*types.Invitation, error)
	SetInvitationPendingRegistration(ctx context.Context, token string, pending bool) (*types.Invitation, error)
	ClearPendingRegistrationByEmail(ctx context.Context, email string) error
	DeleteInvitationsByRenovationAndEmail(ctx context.Context, renovationID, email string, statuses []types.InvitationStatus) error
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AccountsInterface interface {
	GetAccountByEmail(ctx context.Context, email string) (*types.Account, error)
	GetAccount(ctx context.Context, id string) (*types.Account, error)
}

type EmailInterface interface {
	SendInvitation(ctx context.Context, invitation *types.Invitation, renovationName string) error
}

type ChatInterface interface {
	FindChannelByRenovationAndName(ctx context.Context, renovationID, name string) (*types.ChatChannel, error)
	AddMemberToChannel(ctx context.Context, channelID, accountID string) error
	CreateAssistantChannel(ctx context.Context, renovationID, accountID, memberName string) (*types.ChatChannel, error)
}

type ActivityInterface interface {
	RecordAndSendUpdate(ctx context.Context, update *types.LiveUpdate) error
}

type AuthzInterface interface {
	AssignRenovationMember(ctx context.Context, accountID, renovationID string) error
}

// ClockInterface lets tests and the sweeper control time.
type ClockInterface interface {
	Now() time.Time
}
