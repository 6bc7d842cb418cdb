// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package chat manages the conversation channels attached to renovations.
package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/storage"
	"github.com/canonical/renovation-service/internal/tracing"
	"github.com/canonical/renovation-service/internal/types"
)

const (
	GeneralChannelName = "general"

	assistantChannelPrefix = "renovation assistant"
)

type StorageInterface interface {
	GetChannelByRenovationAndName(ctx context.Context, renovationID, name string) (*types.ChatChannel, error)
	CreateChannel(ctx context.Context, renovationID, name string, private bool) (*types.ChatChannel, error)
	AddChannelMember(ctx context.Context, channelID, accountID string) error
}

type Service struct {
	storage StorageInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// FindChannelByRenovationAndName returns (nil, nil) when no channel with the
// name exists for the renovation.
func (s *Service) FindChannelByRenovationAndName(ctx context.Context, renovationID, name string) (*types.ChatChannel, error) {
	ctx, span := s.tracer.Start(ctx, "chat.Service.FindChannelByRenovationAndName")
	defer span.End()

	channel, err := s.storage.GetChannelByRenovationAndName(ctx, renovationID, name)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return channel, nil
}

func (s *Service) AddMemberToChannel(ctx context.Context, channelID, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "chat.Service.AddMemberToChannel")
	defer span.End()

	err := s.storage.AddChannelMember(ctx, channelID, accountID)
	if errors.Is(err, storage.ErrDuplicateKey) {
		// already in the channel
		return nil
	}

	return err
}

// CreateGeneralChannel bootstraps the shared conversation of a renovation
// and adds its creator to it.
func (s *Service) CreateGeneralChannel(ctx context.Context, renovationID, accountID string) (*types.ChatChannel, error) {
	ctx, span := s.tracer.Start(ctx, "chat.Service.CreateGeneralChannel")
	defer span.End()

	channel, err := s.storage.CreateChannel(ctx, renovationID, GeneralChannelName, false)
	if err != nil {
		return nil, err
	}

	if err := s.AddMemberToChannel(ctx, channel.ID, accountID); err != nil {
		return nil, err
	}

	return channel, nil
}

// CreateAssistantChannel creates the private assistant conversation for a
// member joining a renovation and adds them to it.
func (s *Service) CreateAssistantChannel(ctx context.Context, renovationID, accountID, memberName string) (*types.ChatChannel, error) {
	ctx, span := s.tracer.Start(ctx, "chat.Service.CreateAssistantChannel")
	defer span.End()

	name := assistantChannelPrefix
	if memberName != "" {
		name = fmt.Sprintf("%s (%s)", assistantChannelPrefix, memberName)
	}

	channel, err := s.storage.CreateChannel(ctx, renovationID, name, true)
	if err != nil {
		return nil, err
	}

	if err := s.AddMemberToChannel(ctx, channel.ID, accountID); err != nil {
		return nil, err
	}

	return channel, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.logger = logger

	return s
}
