// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"time"
)

type InvitationStatus string

const (
	StatusPending  InvitationStatus = "PENDING"
	StatusAccepted InvitationStatus = "ACCEPTED"
	StatusDeclined InvitationStatus = "DECLINED"
	StatusExpired  InvitationStatus = "EXPIRED"
)

// ErrAlreadyResolved is returned when accepting or declining an invitation
// that has already left the PENDING state.
var ErrAlreadyResolved = errors.New("invitation has already been accepted, declined or expired")

// Invitee identifies who an invitation is addressed to. It is either a
// registered account or a bare email address, never both; use AccountInvitee
// or EmailInvitee to construct one.
type Invitee struct {
	accountID string
	email     string
}

// AccountInvitee addresses an invitation to a registered account. The email
// is captured alongside so the invitation stays resolvable if the account is
// ever removed.
func AccountInvitee(accountID, email string) Invitee {
	return Invitee{accountID: accountID, email: email}
}

// EmailInvitee addresses an invitation to an email with no known account.
func EmailInvitee(email string) Invitee {
	return Invitee{email: email}
}

// Registered reports whether the invitee had an account when invited.
func (i Invitee) Registered() bool {
	return i.accountID != ""
}

func (i Invitee) AccountID() string {
	return i.accountID
}

func (i Invitee) Email() string {
	return i.email
}

// Invitation is an offer to join a renovation, addressed to an invitee and
// valid until its expiry date. Token doubles as the primary key and as the
// secret embedded in invitation links.
type Invitation struct {
	Token                       string           `json:"token"`
	RenovationID                string           `json:"renovation_id"`
	Invitee                     Invitee          `json:"-"`
	Status                      InvitationStatus `json:"status"`
	ExpiryDate                  time.Time        `json:"expiry_date"`
	AcceptedPendingRegistration bool             `json:"accepted_pending_registration"`
	CreatedAt                   time.Time        `json:"created_at"`
}

// Accept transitions the invitation from PENDING to ACCEPTED.
func (i *Invitation) Accept() error {
	if i.Status != StatusPending {
		return fmt.Errorf("%w: status is %s", ErrAlreadyResolved, i.Status)
	}

	i.Status = StatusAccepted
	return nil
}

// Decline transitions the invitation from PENDING to DECLINED.
func (i *Invitation) Decline() error {
	if i.Status != StatusPending {
		return fmt.Errorf("%w: status is %s", ErrAlreadyResolved, i.Status)
	}

	i.Status = StatusDeclined
	return nil
}

// Expire marks the invitation as EXPIRED regardless of its current status.
// Callers that only want to expire pending invitations check first.
func (i *Invitation) Expire() {
	i.Status = StatusExpired
}

// Resolved reports whether the invitation has reached a terminal state.
func (i *Invitation) Resolved() bool {
	return i.Status != StatusPending
}
