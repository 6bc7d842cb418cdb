// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"

	"github.com/canonical/renovation-service/internal/types"
)

func (s *Storage) CreateLiveUpdate(ctx context.Context, update *types.LiveUpdate) (*types.LiveUpdate, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateLiveUpdate")
	defer span.End()

	var token sql.NullString
	if update.InvitationToken != "" {
		token = sql.NullString{String: update.InvitationToken, Valid: true}
	}

	row := s.db.Statement(ctx).
		Insert("live_updates").
		Columns("account_id", "renovation_id", "activity", "invitation_token").
		Values(update.AccountID, update.RenovationID, update.Activity, token).
		Suffix("RETURNING id, account_id, renovation_id, activity, invitation_token, created_at").
		QueryRowContext(ctx)

	u := new(types.LiveUpdate)
	var returnedToken sql.NullString
	if err := row.Scan(&u.ID, &u.AccountID, &u.RenovationID, &u.Activity, &returnedToken, &u.CreatedAt); err != nil {
		return nil, s.mapError(err)
	}
	u.InvitationToken = returnedToken.String

	return u, nil
}
