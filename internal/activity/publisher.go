// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package activity records live updates to the activity feed of a renovation.
package activity

import (
	"context"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/tracing"
	"github.com/canonical/renovation-service/internal/types"
)

type StorageInterface interface {
	CreateLiveUpdate(ctx context.Context, update *types.LiveUpdate) (*types.LiveUpdate, error)
}

type Publisher struct {
	storage StorageInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RecordAndSendUpdate persists a live update and emits it to the renovation's
// feed. Delivery is fire and forget, only persistence can fail.
func (p *Publisher) RecordAndSendUpdate(ctx context.Context, update *types.LiveUpdate) error {
	ctx, span := p.tracer.Start(ctx, "activity.Publisher.RecordAndSendUpdate")
	defer span.End()

	stored, err := p.storage.CreateLiveUpdate(ctx, update)
	if err != nil {
		return err
	}

	p.logger.Debugf("emitted %s update %s for renovation %s", stored.Activity, stored.ID, stored.RenovationID)
	return nil
}

func NewPublisher(storage StorageInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Publisher {
	p := new(Publisher)

	p.storage = storage

	p.tracer = tracer
	p.logger = logger

	return p
}
