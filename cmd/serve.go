// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/renovation-service/internal/activity"
	"github.com/canonical/renovation-service/internal/authorization"
	"github.com/canonical/renovation-service/internal/chat"
	"github.com/canonical/renovation-service/internal/config"
	"github.com/canonical/renovation-service/internal/db"
	"github.com/canonical/renovation-service/internal/kratos"
	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/mail"
	"github.com/canonical/renovation-service/internal/monitoring/prometheus"
	"github.com/canonical/renovation-service/internal/openfga"
	"github.com/canonical/renovation-service/internal/storage"
	"github.com/canonical/renovation-service/internal/tracing"
	"github.com/canonical/renovation-service/pkg/invitation"
	"github.com/canonical/renovation-service/pkg/renovation"
	"github.com/canonical/renovation-service/pkg/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the invitation API and run the expiry sweeper",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Security().SystemStartup()

	monitor := prometheus.NewMonitor("renovation-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer, monitor, logger,
	)
	if err != nil {
		return fmt.Errorf("failed to connect to the database: %w", err)
	}
	defer dbClient.Close()

	store := storage.NewStorage(dbClient, tracer, monitor, logger)

	var fgaClient openfga.OpenFGAClientInterface = openfga.NewNoopClient()
	if specs.AuthorizationEnabled {
		fgaClient, err = openfga.NewClient(
			openfga.Config{
				ApiScheme: specs.OpenfgaApiScheme,
				ApiHost:   specs.OpenfgaApiHost,
				StoreID:   specs.OpenfgaStoreId,
				ApiToken:  specs.OpenfgaApiToken,
				ModelID:   specs.OpenfgaModelId,
				Tracer:    tracer,
				Monitor:   monitor,
				Logger:    logger,
			},
		)
		if err != nil {
			return fmt.Errorf("failed to create openfga client: %w", err)
		}
	}
	authorizer := authorization.NewAuthorizer(fgaClient, tracer, monitor, logger)

	accounts := kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger, specs.Debug)

	var mailClient mail.EmailClientInterface = mail.NewNoopClient(logger)
	if specs.ResendAPIKey != "" {
		mailClient = mail.NewClient(specs.ResendAPIKey, specs.MailFromAddress, specs.BaseURL, tracer, logger)
	}

	chatService := chat.NewService(store, tracer, logger)
	activityPublisher := activity.NewPublisher(store, tracer, logger)

	invitationService := invitation.NewService(
		store, accounts, mailClient, chatService, activityPublisher, authorizer, dbClient,
		specs.InvitationLifetime, invitation.NewSystemClock(),
		tracer, monitor, logger,
	)

	renovationService := renovation.NewService(
		store, invitationService, authorizer, chatService, dbClient,
		tracer, monitor, logger,
	)

	sweeper := invitation.NewSweeper(invitationService, specs.ExpirySweepPeriod, tracer, monitor, logger)
	stopSweeper, sweeperDone := sweeper.Start(context.Background())
	defer func() {
		stopSweeper()
		<-sweeperDone
	}()

	router := web.NewRouter(renovationService, invitationService, accounts, tracer, monitor, logger)

	logger.Infof("starting server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", specs.Port),
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("failed to shut the server down gracefully: %v", err)
	}

	logger.Security().SystemShutdown()
	logger.Info("shutting down")

	return nil
}
