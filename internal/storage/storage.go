// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package storage implements the persistence layer on top of postgres.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/canonical/renovation-service/internal/db"
	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/monitoring"
	"github.com/canonical/renovation-service/internal/tracing"
	"github.com/canonical/renovation-service/internal/types"
)

const pgUniqueViolation = "23505"

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Storage) CreateRenovation(ctx context.Context, name, ownerID string) (*types.Renovation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateRenovation")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("renovations").
		Columns("name", "owner_id").
		Values(name, ownerID).
		Suffix("RETURNING id, name, owner_id, created_at").
		QueryRowContext(ctx)

	r := new(types.Renovation)
	if err := row.Scan(&r.ID, &r.Name, &r.OwnerID, &r.CreatedAt); err != nil {
		return nil, s.mapError(err)
	}

	return r, nil
}

func (s *Storage) GetRenovationByID(ctx context.Context, id string) (*types.Renovation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetRenovationByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("id", "name", "owner_id", "created_at").
		From("renovations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	r := new(types.Renovation)
	if err := row.Scan(&r.ID, &r.Name, &r.OwnerID, &r.CreatedAt); err != nil {
		return nil, s.mapError(err)
	}

	return r, nil
}

func (s *Storage) AddMember(ctx context.Context, renovationID, accountID, email, role string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.AddMember")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("memberships").
		Columns("renovation_id", "account_id", "email", "role").
		Values(renovationID, accountID, email, role).
		Suffix("RETURNING id, renovation_id, account_id, email, role, created_at").
		QueryRowContext(ctx)

	m := new(types.Membership)
	if err := row.Scan(&m.ID, &m.RenovationID, &m.AccountID, &m.Email, &m.Role, &m.CreatedAt); err != nil {
		return nil, s.mapError(err)
	}

	return m, nil
}

func (s *Storage) RemoveMember(ctx context.Context, renovationID, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.RemoveMember")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{"renovation_id": renovationID, "account_id": accountID}).
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

func (s *Storage) ListMembersByRenovationID(ctx context.Context, renovationID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListMembersByRenovationID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "renovation_id", "account_id", "email", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"renovation_id": renovationID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	memberships := make([]*types.Membership, 0)
	for rows.Next() {
		m := new(types.Membership)
		if err := rows.Scan(&m.ID, &m.RenovationID, &m.AccountID, &m.Email, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}

func (s *Storage) GetRenovationOwner(ctx context.Context, renovationID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetRenovationOwner")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("id", "renovation_id", "account_id", "email", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"renovation_id": renovationID, "role": types.RoleOwner}).
		QueryRowContext(ctx)

	m := new(types.Membership)
	if err := row.Scan(&m.ID, &m.RenovationID, &m.AccountID, &m.Email, &m.Role, &m.CreatedAt); err != nil {
		return nil, s.mapError(err)
	}

	return m, nil
}

// ListCollaborators returns the distinct accounts that share at least one
// renovation with accountID, filtered by a case-insensitive email substring
// match. The account itself is excluded.
func (s *Storage) ListCollaborators(ctx context.Context, accountID, query string) ([]*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListCollaborators")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT other.account_id", "other.email").
		From("memberships own").
		Join("memberships other ON other.renovation_id = own.renovation_id").
		Where(sq.Eq{"own.account_id": accountID}).
		Where(sq.NotEq{"other.account_id": accountID}).
		Where(sq.ILike{"other.email": fmt.Sprintf("%%%s%%", query)}).
		OrderBy("other.email ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	accounts := make([]*types.Account, 0)
	for rows.Next() {
		a := new(types.Account)
		if err := rows.Scan(&a.ID, &a.Email); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

// mapError translates driver errors into the package sentinels.
func (s *Storage) mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateKey
	}

	return err
}

func NewStorage(dbClient db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = dbClient

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
