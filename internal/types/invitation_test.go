// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"testing"
	"time"
)

func TestInvitationAccept(t *testing.T) {
	tests := []struct {
		name    string
		status  InvitationStatus
		want    InvitationStatus
		wantErr bool
	}{
		{name: "pending", status: StatusPending, want: StatusAccepted, wantErr: false},
		{name: "already accepted", status: StatusAccepted, want: StatusAccepted, wantErr: true},
		{name: "already declined", status: StatusDeclined, want: StatusDeclined, wantErr: true},
		{name: "already expired", status: StatusExpired, want: StatusExpired, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			i := Invitation{Token: "token", Status: test.status}

			err := i.Accept()

			if test.wantErr {
				if !errors.Is(err, ErrAlreadyResolved) {
					t.Fatalf("expected ErrAlreadyResolved, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if i.Status != test.want {
				t.Fatalf("expected status %s, got %s", test.want, i.Status)
			}
		})
	}
}

func TestInvitationDecline(t *testing.T) {
	tests := []struct {
		name    string
		status  InvitationStatus
		want    InvitationStatus
		wantErr bool
	}{
		{name: "pending", status: StatusPending, want: StatusDeclined, wantErr: false},
		{name: "already accepted", status: StatusAccepted, want: StatusAccepted, wantErr: true},
		{name: "already expired", status: StatusExpired, want: StatusExpired, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			i := Invitation{Token: "token", Status: test.status}

			err := i.Decline()

			if test.wantErr {
				if !errors.Is(err, ErrAlreadyResolved) {
					t.Fatalf("expected ErrAlreadyResolved, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if i.Status != test.want {
				t.Fatalf("expected status %s, got %s", test.want, i.Status)
			}
		})
	}
}

func TestInvitationExpireIsUnconditional(t *testing.T) {
	for _, status := range []InvitationStatus{StatusPending, StatusAccepted, StatusDeclined, StatusExpired} {
		i := Invitation{Token: "token", Status: status, ExpiryDate: time.Now()}

		i.Expire()

		if i.Status != StatusExpired {
			t.Fatalf("expected status %s, got %s", StatusExpired, i.Status)
		}
	}
}

func TestInvitationResolved(t *testing.T) {
	i := Invitation{Status: StatusPending}
	if i.Resolved() {
		t.Fatal("pending invitation reported as resolved")
	}

	for _, status := range []InvitationStatus{StatusAccepted, StatusDeclined, StatusExpired} {
		i := Invitation{Status: status}
		if !i.Resolved() {
			t.Fatalf("%s invitation not reported as resolved", status)
		}
	}
}

func TestInvitee(t *testing.T) {
	registered := AccountInvitee("account-1", "jane@doe.nz")
	if !registered.Registered() {
		t.Fatal("account invitee not reported as registered")
	}
	if registered.AccountID() != "account-1" || registered.Email() != "jane@doe.nz" {
		t.Fatalf("unexpected invitee fields: %s %s", registered.AccountID(), registered.Email())
	}

	unregistered := EmailInvitee("john@doe.nz")
	if unregistered.Registered() {
		t.Fatal("email invitee reported as registered")
	}
	if unregistered.AccountID() != "" {
		t.Fatalf("expected empty account id, got %s", unregistered.AccountID())
	}
	if unregistered.Email() != "john@doe.nz" {
		t.Fatalf("unexpected email: %s", unregistered.Email())
	}
}
