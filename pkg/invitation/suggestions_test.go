// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/renovation-service/internal/types"
)

func TestFindInviteSuggestionsMergesSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	collaborators := []*types.Account{
		{ID: "member-1", Email: "member@doe.nz"},
		{ID: "known-1", Email: "known@doe.nz"},
	}
	members := []*types.Membership{
		{AccountID: "owner-1", Email: "owner@doe.nz", Role: types.RoleOwner},
		{AccountID: "member-1", Email: "member@doe.nz", Role: types.RoleMember},
	}
	invitations := []*types.Invitation{
		// already covered by a member collaborator, membership wins
		{Token: "t-1", RenovationID: "renovation-1", Invitee: types.AccountInvitee("member-1", "member@doe.nz"), Status: types.StatusPending},
		// upgrades the known collaborator to an invited one
		{Token: "t-2", RenovationID: "renovation-1", Invitee: types.AccountInvitee("known-1", "known@doe.nz"), Status: types.StatusPending},
		// fresh email invited to the target renovation
		{Token: "t-3", RenovationID: "renovation-1", Invitee: types.EmailInvitee("fresh@doe.nz"), Status: types.StatusPending},
		// invite to another renovation only marks the email as known
		{Token: "t-4", RenovationID: "renovation-2", Invitee: types.EmailInvitee("elsewhere@doe.nz"), Status: types.StatusAccepted},
	}

	mocks.storage.EXPECT().ListCollaborators(ctx, "owner-1", "doe").Return(collaborators, nil)
	mocks.storage.EXPECT().ListMembersByRenovationID(ctx, "renovation-1").Return(members, nil)
	mocks.storage.EXPECT().ListInvitationsByOwner(ctx, "owner-1", "doe").Return(invitations, nil)

	// the unregistered invitees get an account lookup
	mocks.accounts.EXPECT().GetAccountByEmail(ctx, "fresh@doe.nz").Return(nil, nil)
	mocks.accounts.EXPECT().GetAccountByEmail(ctx, "elsewhere@doe.nz").Return(&types.Account{ID: "late-1", Email: "elsewhere@doe.nz"}, nil)

	suggestions, err := service.FindInviteSuggestions(ctx, "owner-1", "renovation-1", "doe")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []struct {
		email     string
		accountID string
		member    bool
		invited   bool
	}{
		{email: "member@doe.nz", accountID: "member-1", member: true},
		{email: "known@doe.nz", accountID: "known-1", invited: true},
		{email: "fresh@doe.nz", invited: true},
		{email: "elsewhere@doe.nz", accountID: "late-1"},
	}

	if len(suggestions) != len(want) {
		t.Fatalf("expected %d suggestions, got %d", len(want), len(suggestions))
	}

	for n, w := range want {
		s := suggestions[n]
		if s.Email != w.email {
			t.Errorf("suggestion %d: expected email %s, got %s", n, w.email, s.Email)
		}
		if s.AccountID != w.accountID {
			t.Errorf("suggestion %d: expected account %q, got %q", n, w.accountID, s.AccountID)
		}
		if s.Member != w.member {
			t.Errorf("suggestion %d: expected member=%v", n, w.member)
		}
		if s.Invited != w.invited {
			t.Errorf("suggestion %d: expected invited=%v", n, w.invited)
		}
	}
}

func TestFindInviteSuggestionsTargetInviteIsNotDowngraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	invitations := []*types.Invitation{
		{Token: "t-1", RenovationID: "renovation-1", Invitee: types.AccountInvitee("account-1", "jane@doe.nz"), Status: types.StatusPending},
		{Token: "t-2", RenovationID: "renovation-2", Invitee: types.AccountInvitee("account-1", "jane@doe.nz"), Status: types.StatusPending},
	}

	mocks.storage.EXPECT().ListCollaborators(ctx, "owner-1", "jane").Return([]*types.Account{}, nil)
	mocks.storage.EXPECT().ListMembersByRenovationID(ctx, "renovation-1").Return([]*types.Membership{}, nil)
	mocks.storage.EXPECT().ListInvitationsByOwner(ctx, "owner-1", "jane").Return(invitations, nil)

	suggestions, err := service.FindInviteSuggestions(ctx, "owner-1", "renovation-1", "jane")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}
	if !suggestions[0].Invited || suggestions[0].RenovationID != "renovation-1" {
		t.Fatalf("expected the target renovation invite to win, got %+v", suggestions[0])
	}
}

func TestFindInviteSuggestionsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	mocks.storage.EXPECT().ListCollaborators(ctx, "owner-1", "nobody").Return([]*types.Account{}, nil)
	mocks.storage.EXPECT().ListMembersByRenovationID(ctx, "renovation-1").Return([]*types.Membership{}, nil)
	mocks.storage.EXPECT().ListInvitationsByOwner(ctx, "owner-1", "nobody").Return([]*types.Invitation{}, nil)

	suggestions, err := service.FindInviteSuggestions(ctx, "owner-1", "renovation-1", "nobody")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %d", len(suggestions))
	}
}
