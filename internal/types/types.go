// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package types holds the domain model shared across services and storage.
package types

import "time"

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// Renovation is a shared workspace that members collaborate on.
type Renovation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Membership ties an account to a renovation. Email is denormalized from the
// identity provider so collaborator lookups don't need a round trip per row.
type Membership struct {
	ID           string    `json:"id"`
	RenovationID string    `json:"renovation_id"`
	AccountID    string    `json:"account_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Account is the subset of an identity we care about.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ChatChannel is a conversation scoped to a renovation.
type ChatChannel struct {
	ID           string    `json:"id"`
	RenovationID string    `json:"renovation_id"`
	Name         string    `json:"name"`
	Private      bool      `json:"private"`
	CreatedAt    time.Time `json:"created_at"`
}

type ActivityType string

const (
	ActivityInviteAccepted ActivityType = "INVITE_ACCEPTED"
)

// LiveUpdate is an activity feed entry broadcast to a renovation's members.
type LiveUpdate struct {
	ID              string       `json:"id"`
	AccountID       string       `json:"account_id"`
	RenovationID    string       `json:"renovation_id"`
	Activity        ActivityType `json:"activity"`
	InvitationToken string       `json:"invitation_token,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// Response is the envelope for API responses.
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
}

// CollaboratorSuggestion is a single entry in the invite autocompletion list.
// AccountID is empty for suggestions built from email-only invitations.
type CollaboratorSuggestion struct {
	AccountID    string           `json:"account_id,omitempty"`
	Email        string           `json:"email"`
	Member       bool             `json:"member"`
	Invited      bool             `json:"invited"`
	RenovationID string           `json:"renovation_id,omitempty"`
	Status       InvitationStatus `json:"status,omitempty"`
}
