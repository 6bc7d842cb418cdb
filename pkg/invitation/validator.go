// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/renovation-service/internal/storage"
	"github.com/canonical/renovation-service/internal/types"
)

// ValidateInviteEmails checks a batch of invite emails against a renovation
// and reports every failure at once as a *BatchValidationError. Each email
// gets at most one message, the first check it fails. A nil return means the
// whole batch can be sent.
func (s *Service) ValidateInviteEmails(ctx context.Context, renovationID string, emails []string) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.ValidateInviteEmails")
	defer span.End()

	batch := new(BatchValidationError)

	if len(emails) == 0 {
		batch.Add("", msgNoMembers)
		return batch
	}

	owner, err := s.storage.GetRenovationOwner(ctx, renovationID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	members, err := s.storage.ListMembersByRenovationID(ctx, renovationID)
	if err != nil {
		return err
	}

	memberEmails := make(map[string]bool, len(members))
	for _, m := range members {
		memberEmails[m.Email] = true
	}

	seen := make(map[string]bool, len(emails))
	flaggedDuplicate := make(map[string]bool)

	for _, email := range emails {
		if err := s.validate.Var(email, "required,email"); err != nil {
			batch.Add(email, msgInvalidEmailFormat)
			continue
		}

		if owner != nil && email == owner.Email {
			batch.Add(email, msgCannotInviteSelf)
			continue
		}

		if seen[email] {
			// a duplicate gets flagged once however often it repeats
			if !flaggedDuplicate[email] {
				batch.Add(email, fmt.Sprintf(msgAlreadySelected, email))
				flaggedDuplicate[email] = true
			}
			continue
		}
		seen[email] = true

		invited, err := s.hasOutstandingInvitation(ctx, renovationID, email)
		if err != nil {
			return err
		}
		if invited {
			batch.Add(email, fmt.Sprintf(msgAlreadyInvited, email))
			continue
		}

		if memberEmails[email] {
			batch.Add(email, fmt.Sprintf(msgAlreadyMember, email))
		}
	}

	if batch.HasErrors() {
		return batch
	}

	return nil
}

// hasOutstandingInvitation reports whether a live invitation to the email
// exists for the renovation. Only expired and declined invitations don't
// count, they get replaced when a new invite is created; an accepted one
// still blocks re-inviting.
func (s *Service) hasOutstandingInvitation(ctx context.Context, renovationID, email string) (bool, error) {
	invitations, err := s.storage.ListInvitationsByRenovationAndEmail(ctx, renovationID, email)
	if err != nil {
		return false, err
	}

	for _, invitation := range invitations {
		if invitation.Status == types.StatusExpired || invitation.Status == types.StatusDeclined {
			continue
		}

		return true, nil
	}

	return false, nil
}
