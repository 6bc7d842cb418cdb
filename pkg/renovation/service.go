// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package renovation manages renovation workspaces and their memberships.
package renovation

import (
	"context"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/monitoring"
	"github.com/canonical/renovation-service/internal/tracing"
	"github.com/canonical/renovation-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	invitations InvitationsInterface
	authz       AuthzInterface
	chat        ChatInterface
	tx          TxRunnerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateRenovation creates a workspace with its owner as the first member.
func (s *Service) CreateRenovation(ctx context.Context, name string, owner *types.Account) (*types.Renovation, error) {
	ctx, span := s.tracer.Start(ctx, "renovation.Service.CreateRenovation")
	defer span.End()

	var renovation *types.Renovation

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		renovation, err = s.storage.CreateRenovation(ctx, name, owner.ID)
		if err != nil {
			return err
		}

		_, err = s.storage.AddMember(ctx, renovation.ID, owner.ID, owner.Email, types.RoleOwner)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.authz.AssignRenovationOwner(ctx, owner.ID, renovation.ID); err != nil {
		s.logger.Errorf("failed to grant owner access for renovation %s: %v", renovation.ID, err)
	}

	if _, err := s.chat.CreateGeneralChannel(ctx, renovation.ID, owner.ID); err != nil {
		s.logger.Errorf("failed to create general channel for renovation %s: %v", renovation.ID, err)
	}

	return renovation, nil
}

func (s *Service) GetRenovation(ctx context.Context, id string) (*types.Renovation, error) {
	ctx, span := s.tracer.Start(ctx, "renovation.Service.GetRenovation")
	defer span.End()

	return s.storage.GetRenovationByID(ctx, id)
}

func (s *Service) ListMembers(ctx context.Context, renovationID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "renovation.Service.ListMembers")
	defer span.End()

	return s.storage.ListMembersByRenovationID(ctx, renovationID)
}

// RemoveMember takes a member out of a renovation, dropping their invitations
// to it so they can be invited again later with a clean slate.
func (s *Service) RemoveMember(ctx context.Context, renovationID string, member *types.Account) error {
	ctx, span := s.tracer.Start(ctx, "renovation.Service.RemoveMember")
	defer span.End()

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.RemoveMember(ctx, renovationID, member.ID); err != nil {
			return err
		}

		return s.invitations.DeleteInvitations(ctx, renovationID, member.Email)
	})
	if err != nil {
		return err
	}

	if err := s.authz.RemoveRenovationMember(ctx, member.ID, renovationID); err != nil {
		s.logger.Errorf("failed to revoke member access for renovation %s: %v", renovationID, err)
	}

	return nil
}

func NewService(storage StorageInterface, invitations InvitationsInterface, authz AuthzInterface, chat ChatInterface, tx TxRunnerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.invitations = invitations
	s.authz = authz
	s.chat = chat
	s.tx = tx

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
