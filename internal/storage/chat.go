// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/renovation-service/internal/types"
)

func (s *Storage) GetChannelByRenovationAndName(ctx context.Context, renovationID, name string) (*types.ChatChannel, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetChannelByRenovationAndName")
	defer span.End()

	// channel names aren't unique per renovation, take the oldest one
	row := s.db.Statement(ctx).
		Select("id", "renovation_id", "name", "private", "created_at").
		From("chat_channels").
		Where(sq.Eq{"renovation_id": renovationID, "name": name}).
		OrderBy("created_at ASC").
		Limit(1).
		QueryRowContext(ctx)

	c := new(types.ChatChannel)
	if err := row.Scan(&c.ID, &c.RenovationID, &c.Name, &c.Private, &c.CreatedAt); err != nil {
		return nil, s.mapError(err)
	}

	return c, nil
}

func (s *Storage) CreateChannel(ctx context.Context, renovationID, name string, private bool) (*types.ChatChannel, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateChannel")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("chat_channels").
		Columns("renovation_id", "name", "private").
		Values(renovationID, name, private).
		Suffix("RETURNING id, renovation_id, name, private, created_at").
		QueryRowContext(ctx)

	c := new(types.ChatChannel)
	if err := row.Scan(&c.ID, &c.RenovationID, &c.Name, &c.Private, &c.CreatedAt); err != nil {
		return nil, s.mapError(err)
	}

	return c, nil
}

func (s *Storage) AddChannelMember(ctx context.Context, channelID, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.AddChannelMember")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("chat_channel_members").
		Columns("channel_id", "account_id").
		Values(channelID, accountID).
		ExecContext(ctx)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}
