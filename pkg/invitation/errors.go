// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTokenInvalid covers unknown tokens and tokens whose invitation is
	// no longer actionable.
	ErrTokenInvalid = errors.New("invitation token is invalid")
	// ErrTokenExpired is returned for tokens whose invitation has expired,
	// so callers can offer a resend.
	ErrTokenExpired = errors.New("invitation token has expired")
	// ErrUnregisteredInvitee is returned when accepting an invitation whose
	// invitee has no account yet.
	ErrUnregisteredInvitee = errors.New("invitee has not registered an account")
	ErrInvalidEmail        = errors.New("email address is invalid")
)

// User-facing validation messages.
const (
	msgInvalidEmailFormat  = "Email address must be in the form 'jane@doe.nz'"
	msgCannotInviteSelf    = "You cannot invite yourself"
	msgNoMembers           = "You must add at least one member before sending invitations"
	msgAlreadySelected     = "%s has already been selected"
	msgAlreadyMember       = "%s is already a member"
	msgAlreadyInvited      = "User with email address %s has already been invited"
)

// InviteError ties a validation failure to the email that caused it. Email is
// empty for failures about the batch as a whole.
type InviteError struct {
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}

// BatchValidationError aggregates every validation failure in a batch of
// invite emails instead of stopping at the first one.
type BatchValidationError struct {
	Errors []InviteError `json:"errors"`
}

func (e *BatchValidationError) Add(email, message string) {
	e.Errors = append(e.Errors, InviteError{Email: email, Message: message})
}

func (e *BatchValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

func (e *BatchValidationError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		messages = append(messages, err.Message)
	}
	return fmt.Sprintf("invite validation failed: %s", strings.Join(messages, "; "))
}
