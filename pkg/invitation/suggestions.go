// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"

	"github.com/canonical/renovation-service/internal/types"
)

// FindInviteSuggestions builds the invite autocompletion list for an account
// inviting people to a renovation. It merges the account's collaborators with
// everyone they invited before, deduplicated by email. When both sources know
// an email, membership of the target renovation wins over an invitation to
// it, which wins over an invitation to any other renovation. Order follows
// first appearance.
func (s *Service) FindInviteSuggestions(ctx context.Context, accountID, renovationID, query string) ([]*types.CollaboratorSuggestion, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.FindInviteSuggestions")
	defer span.End()

	collaborators, err := s.storage.ListCollaborators(ctx, accountID, query)
	if err != nil {
		return nil, err
	}

	members, err := s.storage.ListMembersByRenovationID(ctx, renovationID)
	if err != nil {
		return nil, err
	}

	memberIDs := make(map[string]bool, len(members))
	for _, m := range members {
		memberIDs[m.AccountID] = true
	}

	invitations, err := s.storage.ListInvitationsByOwner(ctx, accountID, query)
	if err != nil {
		return nil, err
	}

	order := make([]*types.CollaboratorSuggestion, 0, len(collaborators)+len(invitations))
	byEmail := make(map[string]*types.CollaboratorSuggestion)

	for _, collaborator := range collaborators {
		suggestion := &types.CollaboratorSuggestion{
			AccountID: collaborator.ID,
			Email:     collaborator.Email,
			Member:    memberIDs[collaborator.ID],
		}
		if suggestion.Member {
			suggestion.RenovationID = renovationID
		}

		order = append(order, suggestion)
		byEmail[collaborator.Email] = suggestion
	}

	for _, invitation := range invitations {
		suggestion, err := s.invitationSuggestion(ctx, invitation, renovationID)
		if err != nil {
			return nil, err
		}

		existing, ok := byEmail[suggestion.Email]
		if !ok {
			order = append(order, suggestion)
			byEmail[suggestion.Email] = suggestion
			continue
		}

		if existing.Member {
			continue
		}

		if existing.Invited && existing.RenovationID == renovationID {
			continue
		}

		// upgrade in place so the entry keeps its position
		*existing = *suggestion
	}

	return order, nil
}

// invitationSuggestion turns an invitation into a suggestion entry. Invited
// only holds for invitations to the target renovation, an invite elsewhere
// just marks the email as known.
func (s *Service) invitationSuggestion(ctx context.Context, invitation *types.Invitation, renovationID string) (*types.CollaboratorSuggestion, error) {
	suggestion := &types.CollaboratorSuggestion{
		Email:        invitation.Invitee.Email(),
		Invited:      invitation.RenovationID == renovationID,
		RenovationID: invitation.RenovationID,
		Status:       invitation.Status,
	}

	if invitation.Invitee.Registered() {
		suggestion.AccountID = invitation.Invitee.AccountID()
		return suggestion, nil
	}

	// the invitee may have registered since the invitation was created
	account, err := s.accounts.GetAccountByEmail(ctx, invitation.Invitee.Email())
	if err != nil {
		return nil, err
	}
	if account != nil {
		suggestion.AccountID = account.ID
	}

	return suggestion, nil
}
