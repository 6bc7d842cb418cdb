// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package invitation implements the invitation lifecycle for renovations:
// creating invites, resolving them, validating invite batches, suggesting
// collaborators and expiring stale invitations.
package invitation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/monitoring"
	"github.com/canonical/renovation-service/internal/storage"
	"github.com/canonical/renovation-service/internal/tracing"
	"github.com/canonical/renovation-service/internal/types"
)

const generalChannelName = "general"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	accounts AccountsInterface
	mail     EmailInterface
	chat     ChatInterface
	activity ActivityInterface
	authz    AuthzInterface
	tx       TxRunnerInterface

	lifetime time.Duration
	clock    ClockInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateInvite creates a pending invitation to a renovation addressed to an
// email. Stale expired or declined invitations to the same email are removed
// first so the invite acts as a fresh one. The invitee is bound to their
// account when the email belongs to a registered one.
func (s *Service) CreateInvite(ctx context.Context, renovationID, email string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.CreateInvite")
	defer span.End()

	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEmail, email)
	}

	if _, err := s.storage.GetRenovationByID(ctx, renovationID); err != nil {
		return nil, err
	}

	err := s.storage.DeleteInvitationsByRenovationAndEmail(
		ctx, renovationID, email,
		[]types.InvitationStatus{types.StatusExpired, types.StatusDeclined},
	)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	invitee := types.EmailInvitee(email)
	if account != nil {
		invitee = types.AccountInvitee(account.ID, email)
	}

	invitation := &types.Invitation{
		Token:        uuid.NewString(),
		RenovationID: renovationID,
		Invitee:      invitee,
		Status:       types.StatusPending,
		ExpiryDate:   s.clock.Now().UTC().Add(s.lifetime),
	}

	return s.storage.CreateInvitation(ctx, invitation)
}

// AcceptInvitation resolves a pending invitation, adding the invitee to the
// renovation. An invitee invited by bare email is resolved to their account
// at accept time, so registering after the invite was sent still works.
// Membership and the status transition commit atomically; joining the general
// chat, creating the assistant channel, granting access and the live update
// are best effort afterwards.
func (s *Service) AcceptInvitation(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.AcceptInvitation")
	defer span.End()

	invitation, err := s.storage.GetInvitationByToken(ctx, token)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrTokenInvalid
	}
	if err != nil {
		return nil, err
	}

	if invitation.Resolved() {
		return nil, types.ErrAlreadyResolved
	}

	accountID := invitation.Invitee.AccountID()
	if !invitation.Invitee.Registered() {
		account, err := s.accounts.GetAccountByEmail(ctx, invitation.Invitee.Email())
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, ErrUnregisteredInvitee
		}
		accountID = account.ID
	}

	return s.accept(ctx, invitation, accountID)
}

func (s *Service) accept(ctx context.Context, invitation *types.Invitation, accountID string) (*types.Invitation, error) {
	var accepted *types.Invitation

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		_, err := s.storage.AddMember(ctx, invitation.RenovationID, accountID, invitation.Invitee.Email(), types.RoleMember)
		if err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
			return err
		}

		accepted, err = s.storage.UpdateInvitationStatus(ctx, invitation.Token, types.StatusPending, types.StatusAccepted)
		return err
	})
	if errors.Is(err, storage.ErrConflict) {
		return nil, types.ErrAlreadyResolved
	}
	if err != nil {
		return nil, err
	}

	s.onAccepted(ctx, accepted, accountID)

	return accepted, nil
}

// onAccepted runs the non-essential side effects of accepting an invitation.
// Failures are logged and never surfaced, the membership already committed.
func (s *Service) onAccepted(ctx context.Context, invitation *types.Invitation, accountID string) {
	if err := s.authz.AssignRenovationMember(ctx, accountID, invitation.RenovationID); err != nil {
		s.logger.Errorf("failed to grant member access for invitation %s: %v", invitation.Token, err)
	}

	channel, err := s.chat.FindChannelByRenovationAndName(ctx, invitation.RenovationID, generalChannelName)
	if err != nil {
		s.logger.Errorf("failed to look up general channel for invitation %s: %v", invitation.Token, err)
	} else if channel != nil {
		if err := s.chat.AddMemberToChannel(ctx, channel.ID, accountID); err != nil {
			s.logger.Errorf("failed to join general channel for invitation %s: %v", invitation.Token, err)
		}
	}

	memberName := ""
	if account, err := s.accounts.GetAccount(ctx, accountID); err != nil {
		s.logger.Errorf("failed to look up account %s: %v", accountID, err)
	} else {
		memberName = account.Name
	}

	if _, err := s.chat.CreateAssistantChannel(ctx, invitation.RenovationID, accountID, memberName); err != nil {
		s.logger.Errorf("failed to create assistant channel for invitation %s: %v", invitation.Token, err)
	}

	update := &types.LiveUpdate{
		AccountID:       accountID,
		RenovationID:    invitation.RenovationID,
		Activity:        types.ActivityInviteAccepted,
		InvitationToken: invitation.Token,
	}
	if err := s.activity.RecordAndSendUpdate(ctx, update); err != nil {
		s.logger.Errorf("failed to record live update for invitation %s: %v", invitation.Token, err)
	}
}

// DeclineInvitation resolves a pending invitation without granting membership.
func (s *Service) DeclineInvitation(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.DeclineInvitation")
	defer span.End()

	declined, err := s.storage.UpdateInvitationStatus(ctx, token, types.StatusPending, types.StatusDeclined)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrTokenInvalid
	}
	if errors.Is(err, storage.ErrConflict) {
		return nil, types.ErrAlreadyResolved
	}
	if err != nil {
		return nil, err
	}

	return declined, nil
}

// MarkAsAcceptedPendingRegistration flags an invitation accepted by someone
// who has no account yet. The acceptance completes once they register.
func (s *Service) MarkAsAcceptedPendingRegistration(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.MarkAsAcceptedPendingRegistration")
	defer span.End()

	invitation, err := s.storage.GetInvitationByToken(ctx, token)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrTokenInvalid
	}
	if err != nil {
		return nil, err
	}

	if invitation.Resolved() {
		return nil, types.ErrAlreadyResolved
	}

	return s.storage.SetInvitationPendingRegistration(ctx, invitation.Token, true)
}

// AcceptInvitationsPendingRegistration completes every invitation the account
// holder flagged before registering. Individual failures are logged and don't
// block the remaining invitations.
func (s *Service) AcceptInvitationsPendingRegistration(ctx context.Context, account *types.Account) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.AcceptInvitationsPendingRegistration")
	defer span.End()

	invitations, err := s.storage.ListInvitationsPendingRegistration(ctx, account.Email)
	if err != nil {
		return err
	}

	for _, invitation := range invitations {
		if invitation.Resolved() {
			continue
		}

		if _, err := s.accept(ctx, invitation, account.ID); err != nil {
			if errors.Is(err, types.ErrAlreadyResolved) {
				continue
			}
			s.logger.Errorf("failed to accept invitation %s after registration: %v", invitation.Token, err)
		}
	}

	return s.storage.ClearPendingRegistrationByEmail(ctx, account.Email)
}

// ClearInvitationsPendingRegistration drops the pending-registration flag on
// every invitation addressed to the email, e.g. when a registration attempt
// is abandoned.
func (s *Service) ClearInvitationsPendingRegistration(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.ClearInvitationsPendingRegistration")
	defer span.End()

	return s.storage.ClearPendingRegistrationByEmail(ctx, email)
}

// ExpireInvitations transitions every pending invitation past its expiry date
// to EXPIRED and returns how many it expired. Invitations resolved
// concurrently are skipped.
func (s *Service) ExpireInvitations(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.ExpireInvitations")
	defer span.End()

	due, err := s.storage.ListInvitationsDueBefore(ctx, s.clock.Now().UTC())
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, invitation := range due {
		if invitation.Resolved() {
			continue
		}

		_, err := s.storage.UpdateInvitationStatus(ctx, invitation.Token, types.StatusPending, types.StatusExpired)
		if errors.Is(err, storage.ErrConflict) || errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			s.logger.Errorf("failed to expire invitation %s: %v", invitation.Token, err)
			continue
		}

		expired++
	}

	return expired, nil
}

// ValidateInvitationToken checks whether a token can still be acted on and
// returns its invitation. Expired invitations get a dedicated error so
// callers can offer a resend.
func (s *Service) ValidateInvitationToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.ValidateInvitationToken")
	defer span.End()

	invitation, err := s.storage.GetInvitationByToken(ctx, token)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrTokenInvalid
	}
	if err != nil {
		return nil, err
	}

	switch {
	case invitation.Status == types.StatusExpired:
		return nil, ErrTokenExpired
	case invitation.Status != types.StatusPending:
		return nil, ErrTokenInvalid
	case invitation.ExpiryDate.Before(s.clock.Now().UTC()):
		// past due but the sweeper hasn't caught up yet
		return nil, ErrTokenExpired
	}

	return invitation, nil
}

// SendInvitationMail delivers the invitation email for an existing invitation.
func (s *Service) SendInvitationMail(ctx context.Context, invitation *types.Invitation) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.SendInvitationMail")
	defer span.End()

	renovation, err := s.storage.GetRenovationByID(ctx, invitation.RenovationID)
	if err != nil {
		return err
	}

	return s.mail.SendInvitation(ctx, invitation, renovation.Name)
}

// DeleteInvitations removes every invitation to an email for a renovation,
// whatever their status. Used when a member is removed from a renovation.
func (s *Service) DeleteInvitations(ctx context.Context, renovationID, email string) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.DeleteInvitations")
	defer span.End()

	return s.storage.DeleteInvitationsByRenovationAndEmail(ctx, renovationID, email, nil)
}

func NewService(
	storage StorageInterface,
	accounts AccountsInterface,
	mail EmailInterface,
	chat ChatInterface,
	activity ActivityInterface,
	authz AuthzInterface,
	tx TxRunnerInterface,
	lifetime time.Duration,
	clock ClockInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.accounts = accounts
	s.mail = mail
	s.chat = chat
	s.activity = activity
	s.authz = authz
	s.tx = tx

	s.lifetime = lifetime
	s.clock = clock
	s.validate = validator.New()

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
