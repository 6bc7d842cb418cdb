// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/renovation-service/internal/types"
)

var invitationColumns = []string{
	"token", "renovation_id", "account_id", "email", "status",
	"expiry_date", "accepted_pending_registration", "created_at",
}

func (s *Storage) CreateInvitation(ctx context.Context, invitation *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateInvitation")
	defer span.End()

	var accountID sql.NullString
	if invitation.Invitee.Registered() {
		accountID = sql.NullString{String: invitation.Invitee.AccountID(), Valid: true}
	}

	row := s.db.Statement(ctx).
		Insert("invitations").
		Columns("token", "renovation_id", "account_id", "email", "status", "expiry_date", "accepted_pending_registration").
		Values(
			invitation.Token,
			invitation.RenovationID,
			accountID,
			invitation.Invitee.Email(),
			invitation.Status,
			invitation.ExpiryDate,
			invitation.AcceptedPendingRegistration,
		).
		Suffix(fmt.Sprintf("RETURNING %s", joinColumns(invitationColumns))).
		QueryRowContext(ctx)

	return s.scanInvitation(row)
}

func (s *Storage) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetInvitationByToken")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitations").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx)

	return s.scanInvitation(row)
}

func (s *Storage) ListInvitationsByRenovation(ctx context.Context, renovationID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListInvitationsByRenovation")
	defer span.End()

	return s.listInvitations(ctx, sq.Eq{"renovation_id": renovationID})
}

func (s *Storage) ListInvitationsByRenovationAndEmail(ctx context.Context, renovationID, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListInvitationsByRenovationAndEmail")
	defer span.End()

	return s.listInvitations(ctx, sq.Eq{"renovation_id": renovationID, "email": email})
}

func (s *Storage) ListInvitationsByAccount(ctx context.Context, accountID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListInvitationsByAccount")
	defer span.End()

	return s.listInvitations(ctx, sq.Eq{"account_id": accountID})
}

func (s *Storage) ListInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListInvitationsByEmail")
	defer span.End()

	return s.listInvitations(ctx, sq.Eq{"email": email})
}

// ListInvitationsByOwner returns the invitations sent from any renovation
// owned by ownerID, filtered by a case-insensitive email substring match.
func (s *Storage) ListInvitationsByOwner(ctx context.Context, ownerID, query string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListInvitationsByOwner")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(prefixColumns("i", invitationColumns)...).
		From("invitations i").
		Join("renovations r ON r.id = i.renovation_id").
		Where(sq.Eq{"r.owner_id": ownerID}).
		Where(sq.ILike{"i.email": fmt.Sprintf("%%%s%%", query)}).
		OrderBy("i.created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	return s.scanInvitations(rows)
}

func (s *Storage) ListInvitationsDueBefore(ctx context.Context, deadline time.Time) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListInvitationsDueBefore")
	defer span.End()

	return s.listInvitations(ctx, sq.And{
		sq.Eq{"status": types.StatusPending},
		sq.LtOrEq{"expiry_date": deadline},
	})
}

func (s *Storage) ListInvitationsPendingRegistration(ctx context.Context, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListInvitationsPendingRegistration")
	defer span.End()

	return s.listInvitations(ctx, sq.Eq{"email": email, "accepted_pending_registration": true})
}

// UpdateInvitationStatus transitions an invitation from one status to another
// in a single statement. When no row matches it distinguishes a missing token
// (ErrNotFound) from a concurrent transition (ErrConflict).
func (s *Storage) UpdateInvitationStatus(ctx context.Context, token string, from, to types.InvitationStatus) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateInvitationStatus")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("invitations").
		Set("status", to).
		Where(sq.Eq{"token": token, "status": from}).
		Suffix(fmt.Sprintf("RETURNING %s", joinColumns(invitationColumns))).
		QueryRowContext(ctx)

	invitation, err := s.scanInvitation(row)
	if err == nil {
		return invitation, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if _, getErr := s.GetInvitationByToken(ctx, token); getErr != nil {
		return nil, getErr
	}

	return nil, ErrConflict
}

func (s *Storage) SetInvitationPendingRegistration(ctx context.Context, token string, pending bool) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.SetInvitationPendingRegistration")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("invitations").
		Set("accepted_pending_registration", pending).
		Where(sq.Eq{"token": token}).
		Suffix(fmt.Sprintf("RETURNING %s", joinColumns(invitationColumns))).
		QueryRowContext(ctx)

	return s.scanInvitation(row)
}

func (s *Storage) ClearPendingRegistrationByEmail(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ClearPendingRegistrationByEmail")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("invitations").
		Set("accepted_pending_registration", false).
		Where(sq.Eq{"email": email, "accepted_pending_registration": true}).
		ExecContext(ctx)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *Storage) DeleteInvitation(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteInvitation")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("invitations").
		Where(sq.Eq{"token": token}).
		ExecContext(ctx)
	if err != nil {
		return s.mapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteInvitationsByRenovationAndEmail removes the invitations addressed to
// email for a renovation, restricted to the given statuses when any are
// passed. Used to clear stale EXPIRED and DECLINED entries before re-inviting.
func (s *Storage) DeleteInvitationsByRenovationAndEmail(ctx context.Context, renovationID, email string, statuses []types.InvitationStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteInvitationsByRenovationAndEmail")
	defer span.End()

	stmt := s.db.Statement(ctx).
		Delete("invitations").
		Where(sq.Eq{"renovation_id": renovationID, "email": email})

	if len(statuses) > 0 {
		stmt = stmt.Where(sq.Eq{"status": statuses})
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *Storage) listInvitations(ctx context.Context, pred interface{}) ([]*types.Invitation, error) {
	rows, err := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitations").
		Where(pred).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	return s.scanInvitations(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *Storage) scanInvitation(row rowScanner) (*types.Invitation, error) {
	i := new(types.Invitation)

	var accountID sql.NullString
	var email string

	err := row.Scan(
		&i.Token,
		&i.RenovationID,
		&accountID,
		&email,
		&i.Status,
		&i.ExpiryDate,
		&i.AcceptedPendingRegistration,
		&i.CreatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	if accountID.Valid {
		i.Invitee = types.AccountInvitee(accountID.String, email)
	} else {
		i.Invitee = types.EmailInvitee(email)
	}

	return i, nil
}

func (s *Storage) scanInvitations(rows *sql.Rows) ([]*types.Invitation, error) {
	invitations := make([]*types.Invitation, 0)
	for rows.Next() {
		i, err := s.scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, i)
	}

	return invitations, rows.Err()
}

func joinColumns(columns []string) string {
	result := ""
	for n, c := range columns {
		if n > 0 {
			result += ", "
		}
		result += c
	}
	return result
}

func prefixColumns(prefix string, columns []string) []string {
	result := make([]string, 0, len(columns))
	for _, c := range columns {
		result = append(result, fmt.Sprintf("%s.%s", prefix, c))
	}
	return result
}
