// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package web assembles the HTTP router for the service.
package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/monitoring"
	"github.com/canonical/renovation-service/internal/tracing"
	"github.com/canonical/renovation-service/pkg/invitation"
	"github.com/canonical/renovation-service/pkg/metrics"
	"github.com/canonical/renovation-service/pkg/renovation"
	"github.com/canonical/renovation-service/pkg/status"
)

func NewRouter(renovationService renovation.ServiceInterface, invitationService invitation.ServiceInterface, accounts renovation.AccountsInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
	)

	// register endpoints behind the middleware chain
	router.Use(middlewares...)
	router.Use(
		cors.Handler(
			cors.Options{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST", "DELETE"},
				AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
				MaxAge:         300,
			},
		),
	)

	statusAPI := status.NewAPI(tracer, logger)
	metricsAPI := metrics.NewAPI(monitor, logger)
	renovationAPI := renovation.NewAPI(renovationService, accounts, tracer, logger)
	invitationAPI := invitation.NewAPI(invitationService, tracer, logger)

	statusAPI.RegisterEndpoints(router)
	metricsAPI.RegisterEndpoints(router)
	renovationAPI.RegisterEndpoints(router)
	invitationAPI.RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
