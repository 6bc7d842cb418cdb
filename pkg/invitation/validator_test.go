// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/renovation-service/internal/types"
)

func TestValidateInviteEmailsEmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, _ := newServiceWithMocks(ctrl)

	err := service.ValidateInviteEmails(context.Background(), "renovation-1", nil)

	var batch *BatchValidationError
	if !errors.As(err, &batch) {
		t.Fatalf("expected a BatchValidationError, got %v", err)
	}
	if len(batch.Errors) != 1 || batch.Errors[0].Message != msgNoMembers {
		t.Fatalf("unexpected errors: %v", batch.Errors)
	}
}

func TestValidateInviteEmails(t *testing.T) {
	owner := &types.Membership{AccountID: "owner-1", Email: "owner@doe.nz", Role: types.RoleOwner}
	members := []*types.Membership{
		owner,
		{AccountID: "member-1", Email: "member@doe.nz", Role: types.RoleMember},
	}

	tests := []struct {
		name         string
		emails       []string
		invited      map[string][]*types.Invitation
		wantMessages []string
	}{
		{
			name:    "all valid",
			emails:  []string{"new@doe.nz", "other@doe.nz"},
			invited: map[string][]*types.Invitation{"new@doe.nz": nil, "other@doe.nz": nil},
		},
		{
			name:         "invalid format",
			emails:       []string{"not-an-email"},
			wantMessages: []string{msgInvalidEmailFormat},
		},
		{
			name:         "cannot invite yourself",
			emails:       []string{"owner@doe.nz"},
			wantMessages: []string{msgCannotInviteSelf},
		},
		{
			name:         "already a member",
			emails:       []string{"member@doe.nz"},
			invited:      map[string][]*types.Invitation{"member@doe.nz": nil},
			wantMessages: []string{"member@doe.nz is already a member"},
		},
		{
			name:         "duplicate flagged once",
			emails:       []string{"new@doe.nz", "new@doe.nz", "new@doe.nz"},
			invited:      map[string][]*types.Invitation{"new@doe.nz": nil},
			wantMessages: []string{"new@doe.nz has already been selected"},
		},
		{
			name:   "already invited",
			emails: []string{"pending@doe.nz"},
			invited: map[string][]*types.Invitation{
				"pending@doe.nz": {
					{Token: "token-1", Status: types.StatusPending},
				},
			},
			wantMessages: []string{"User with email address pending@doe.nz has already been invited"},
		},
		{
			name:   "stale invitations are ignored",
			emails: []string{"stale@doe.nz"},
			invited: map[string][]*types.Invitation{
				"stale@doe.nz": {
					{Token: "token-1", Status: types.StatusExpired},
					{Token: "token-2", Status: types.StatusDeclined},
				},
			},
		},
		{
			name:   "accepted invitation still blocks",
			emails: []string{"joined@doe.nz"},
			invited: map[string][]*types.Invitation{
				"joined@doe.nz": {
					{Token: "token-1", Status: types.StatusAccepted},
				},
			},
			wantMessages: []string{"User with email address joined@doe.nz has already been invited"},
		},
		{
			name:   "outstanding invitation reported before membership",
			emails: []string{"member@doe.nz"},
			invited: map[string][]*types.Invitation{
				"member@doe.nz": {
					{Token: "token-1", Status: types.StatusPending},
				},
			},
			wantMessages: []string{"User with email address member@doe.nz has already been invited"},
		},
		{
			name:   "failures aggregate across the batch",
			emails: []string{"bad", "owner@doe.nz", "member@doe.nz", "new@doe.nz"},
			invited: map[string][]*types.Invitation{
				"member@doe.nz": nil,
				"new@doe.nz":    nil,
			},
			wantMessages: []string{
				msgInvalidEmailFormat,
				msgCannotInviteSelf,
				"member@doe.nz is already a member",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service, mocks := newServiceWithMocks(ctrl)
			ctx := context.Background()

			mocks.storage.EXPECT().GetRenovationOwner(ctx, "renovation-1").Return(owner, nil)
			mocks.storage.EXPECT().ListMembersByRenovationID(ctx, "renovation-1").Return(members, nil)

			for email, invitations := range test.invited {
				mocks.storage.EXPECT().ListInvitationsByRenovationAndEmail(ctx, "renovation-1", email).Return(invitations, nil)
			}

			err := service.ValidateInviteEmails(ctx, "renovation-1", test.emails)

			if len(test.wantMessages) == 0 {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var batch *BatchValidationError
			if !errors.As(err, &batch) {
				t.Fatalf("expected a BatchValidationError, got %v", err)
			}
			if len(batch.Errors) != len(test.wantMessages) {
				t.Fatalf("expected %d errors, got %d: %v", len(test.wantMessages), len(batch.Errors), batch.Errors)
			}
			for n, want := range test.wantMessages {
				if batch.Errors[n].Message != want {
					t.Errorf("error %d: expected %q, got %q", n, want, batch.Errors[n].Message)
				}
			}
		})
	}
}
