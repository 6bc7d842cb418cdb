// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/renovation-service/internal/storage"
	"github.com/canonical/renovation-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_invitation.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const testLifetime = 168 * time.Hour

type serviceMocks struct {
	storage  *MockStorageInterface
	accounts *MockAccountsInterface
	mail     *MockEmailInterface
	chat     *MockChatInterface
	activity *MockActivityInterface
	authz    *MockAuthzInterface
	tx       *MockTxRunnerInterface
	clock    *MockClockInterface
	tracer   *MockTracingInterface
	monitor  *MockMonitorInterface
	logger   *MockLoggerInterface
}

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		accounts: NewMockAccountsInterface(ctrl),
		mail:     NewMockEmailInterface(ctrl),
		chat:     NewMockChatInterface(ctrl),
		activity: NewMockActivityInterface(ctrl),
		authz:    NewMockAuthzInterface(ctrl),
		tx:       NewMockTxRunnerInterface(ctrl),
		clock:    NewMockClockInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
	}

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()

	m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	service := NewService(
		m.storage, m.accounts, m.mail, m.chat, m.activity, m.authz, m.tx,
		testLifetime, m.clock, m.tracer, m.monitor, m.logger,
	)

	return service, m
}

func passthroughTx(m *serviceMocks) {
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func pendingInvitation(token, renovationID string, invitee types.Invitee) *types.Invitation {
	return &types.Invitation{
		Token:        token,
		RenovationID: renovationID,
		Invitee:      invitee,
		Status:       types.StatusPending,
		ExpiryDate:   time.Now().Add(time.Hour),
	}
}

func TestCreateInvite(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		email      string
		account    *types.Account
		registered bool
	}{
		{
			name:       "registered invitee",
			email:      "jane@doe.nz",
			account:    &types.Account{ID: "account-1", Email: "jane@doe.nz"},
			registered: true,
		},
		{
			name:  "unregistered invitee",
			email: "john@doe.nz",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service, mocks := newServiceWithMocks(ctrl)
			ctx := context.Background()

			mocks.clock.EXPECT().Now().Return(now)
			mocks.storage.EXPECT().GetRenovationByID(ctx, "renovation-1").Return(&types.Renovation{ID: "renovation-1"}, nil)
			mocks.storage.EXPECT().DeleteInvitationsByRenovationAndEmail(
				ctx, "renovation-1", test.email,
				[]types.InvitationStatus{types.StatusExpired, types.StatusDeclined},
			).Return(nil)
			mocks.accounts.EXPECT().GetAccountByEmail(ctx, test.email).Return(test.account, nil)
			mocks.storage.EXPECT().CreateInvitation(ctx, gomock.Any()).DoAndReturn(
				func(ctx context.Context, invitation *types.Invitation) (*types.Invitation, error) {
					if invitation.Token == "" {
						t.Error("expected a token to be generated")
					}
					if invitation.Status != types.StatusPending {
						t.Errorf("expected status %s, got %s", types.StatusPending, invitation.Status)
					}
					if !invitation.ExpiryDate.Equal(now.Add(testLifetime)) {
						t.Errorf("unexpected expiry date %s", invitation.ExpiryDate)
					}
					if invitation.Invitee.Registered() != test.registered {
						t.Errorf("expected registered=%v", test.registered)
					}
					if invitation.Invitee.Email() != test.email {
						t.Errorf("expected email %s, got %s", test.email, invitation.Invitee.Email())
					}
					return invitation, nil
				},
			)

			invitation, err := service.CreateInvite(ctx, "renovation-1", test.email)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if invitation.RenovationID != "renovation-1" {
				t.Fatalf("unexpected renovation id %s", invitation.RenovationID)
			}
		})
	}
}

func TestCreateInviteInvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, _ := newServiceWithMocks(ctrl)

	for _, email := range []string{"", "not-an-email", "jane@"} {
		_, err := service.CreateInvite(context.Background(), "renovation-1", email)
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail for %q, got %v", email, err)
		}
	}
}

func TestCreateInviteRenovationNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	mocks.storage.EXPECT().GetRenovationByID(ctx, "missing").Return(nil, storage.ErrNotFound)

	_, err := service.CreateInvite(ctx, "missing", "jane@doe.nz")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAcceptInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()
	passthroughTx(mocks)

	invitation := pendingInvitation("token-1", "renovation-1", types.AccountInvitee("account-1", "jane@doe.nz"))
	accepted := *invitation
	accepted.Status = types.StatusAccepted

	mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(invitation, nil)
	mocks.storage.EXPECT().AddMember(gomock.Any(), "renovation-1", "account-1", "jane@doe.nz", types.RoleMember).Return(&types.Membership{}, nil)
	mocks.storage.EXPECT().UpdateInvitationStatus(gomock.Any(), "token-1", types.StatusPending, types.StatusAccepted).Return(&accepted, nil)

	mocks.authz.EXPECT().AssignRenovationMember(gomock.Any(), "account-1", "renovation-1").Return(nil)
	channel := &types.ChatChannel{ID: "channel-1", RenovationID: "renovation-1", Name: "general"}
	mocks.chat.EXPECT().FindChannelByRenovationAndName(gomock.Any(), "renovation-1", "general").Return(channel, nil)
	mocks.chat.EXPECT().AddMemberToChannel(gomock.Any(), "channel-1", "account-1").Return(nil)
	mocks.accounts.EXPECT().GetAccount(gomock.Any(), "account-1").Return(&types.Account{ID: "account-1", Name: "Jane"}, nil)
	mocks.chat.EXPECT().CreateAssistantChannel(gomock.Any(), "renovation-1", "account-1", "Jane").Return(&types.ChatChannel{}, nil)
	mocks.activity.EXPECT().RecordAndSendUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, update *types.LiveUpdate) error {
			if update.Activity != types.ActivityInviteAccepted {
				t.Errorf("unexpected activity %s", update.Activity)
			}
			if update.InvitationToken != "token-1" {
				t.Errorf("unexpected token %s", update.InvitationToken)
			}
			return nil
		},
	)

	result, err := service.AcceptInvitation(ctx, "token-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Status != types.StatusAccepted {
		t.Fatalf("expected status %s, got %s", types.StatusAccepted, result.Status)
	}
}

func TestAcceptInvitationResolvesAccountByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()
	passthroughTx(mocks)

	// invited before registering, the account exists by the time they accept
	invitation := pendingInvitation("token-1", "renovation-1", types.EmailInvitee("bob@doe.nz"))
	accepted := *invitation
	accepted.Status = types.StatusAccepted

	mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(invitation, nil)
	mocks.accounts.EXPECT().GetAccountByEmail(ctx, "bob@doe.nz").Return(&types.Account{ID: "account-2", Email: "bob@doe.nz", Name: "Bob"}, nil)
	mocks.storage.EXPECT().AddMember(gomock.Any(), "renovation-1", "account-2", "bob@doe.nz", types.RoleMember).Return(&types.Membership{}, nil)
	mocks.storage.EXPECT().UpdateInvitationStatus(gomock.Any(), "token-1", types.StatusPending, types.StatusAccepted).Return(&accepted, nil)

	mocks.authz.EXPECT().AssignRenovationMember(gomock.Any(), "account-2", "renovation-1").Return(nil)
	mocks.chat.EXPECT().FindChannelByRenovationAndName(gomock.Any(), "renovation-1", "general").Return(nil, nil)
	mocks.accounts.EXPECT().GetAccount(gomock.Any(), "account-2").Return(&types.Account{ID: "account-2", Name: "Bob"}, nil)
	mocks.chat.EXPECT().CreateAssistantChannel(gomock.Any(), "renovation-1", "account-2", "Bob").Return(&types.ChatChannel{}, nil)
	mocks.activity.EXPECT().RecordAndSendUpdate(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.AcceptInvitation(ctx, "token-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Status != types.StatusAccepted {
		t.Fatalf("expected status %s, got %s", types.StatusAccepted, result.Status)
	}
}

func TestAcceptInvitationSideEffectFailuresAreSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()
	passthroughTx(mocks)

	invitation := pendingInvitation("token-1", "renovation-1", types.AccountInvitee("account-1", "jane@doe.nz"))
	accepted := *invitation
	accepted.Status = types.StatusAccepted

	boom := fmt.Errorf("downstream unavailable")

	mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(invitation, nil)
	mocks.storage.EXPECT().AddMember(gomock.Any(), "renovation-1", "account-1", "jane@doe.nz", types.RoleMember).Return(&types.Membership{}, nil)
	mocks.storage.EXPECT().UpdateInvitationStatus(gomock.Any(), "token-1", types.StatusPending, types.StatusAccepted).Return(&accepted, nil)

	mocks.authz.EXPECT().AssignRenovationMember(gomock.Any(), "account-1", "renovation-1").Return(boom)
	mocks.chat.EXPECT().FindChannelByRenovationAndName(gomock.Any(), "renovation-1", "general").Return(nil, boom)
	mocks.accounts.EXPECT().GetAccount(gomock.Any(), "account-1").Return(nil, boom)
	mocks.chat.EXPECT().CreateAssistantChannel(gomock.Any(), "renovation-1", "account-1", "").Return(nil, boom)
	mocks.activity.EXPECT().RecordAndSendUpdate(gomock.Any(), gomock.Any()).Return(boom)

	result, err := service.AcceptInvitation(ctx, "token-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Status != types.StatusAccepted {
		t.Fatalf("expected status %s, got %s", types.StatusAccepted, result.Status)
	}
}

func TestAcceptInvitationAlreadyMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()
	passthroughTx(mocks)

	invitation := pendingInvitation("token-1", "renovation-1", types.AccountInvitee("account-1", "jane@doe.nz"))
	accepted := *invitation
	accepted.Status = types.StatusAccepted

	mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(invitation, nil)
	mocks.storage.EXPECT().AddMember(gomock.Any(), "renovation-1", "account-1", "jane@doe.nz", types.RoleMember).Return(nil, storage.ErrDuplicateKey)
	mocks.storage.EXPECT().UpdateInvitationStatus(gomock.Any(), "token-1", types.StatusPending, types.StatusAccepted).Return(&accepted, nil)

	mocks.authz.EXPECT().AssignRenovationMember(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mocks.chat.EXPECT().FindChannelByRenovationAndName(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	mocks.accounts.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(&types.Account{}, nil)
	mocks.chat.EXPECT().CreateAssistantChannel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&types.ChatChannel{}, nil)
	mocks.activity.EXPECT().RecordAndSendUpdate(gomock.Any(), gomock.Any()).Return(nil)

	if _, err := service.AcceptInvitation(ctx, "token-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestAcceptInvitationErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(ctx context.Context, mocks *serviceMocks)
		wantErr error
	}{
		{
			name: "unknown token",
			setup: func(ctx context.Context, mocks *serviceMocks) {
				mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(nil, storage.ErrNotFound)
			},
			wantErr: ErrTokenInvalid,
		},
		{
			name: "already resolved",
			setup: func(ctx context.Context, mocks *serviceMocks) {
				invitation := pendingInvitation("token-1", "renovation-1", types.AccountInvitee("account-1", "jane@doe.nz"))
				invitation.Status = types.StatusDeclined
				mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(invitation, nil)
			},
			wantErr: types.ErrAlreadyResolved,
		},
		{
			name: "unregistered invitee",
			setup: func(ctx context.Context, mocks *serviceMocks) {
				invitation := pendingInvitation("token-1", "renovation-1", types.EmailInvitee("john@doe.nz"))
				mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(invitation, nil)
				mocks.accounts.EXPECT().GetAccountByEmail(ctx, "john@doe.nz").Return(nil, nil)
			},
			wantErr: ErrUnregisteredInvitee,
		},
		{
			name: "resolved concurrently",
			setup: func(ctx context.Context, mocks *serviceMocks) {
				invitation := pendingInvitation("token-1", "renovation-1", types.AccountInvitee("account-1", "jane@doe.nz"))
				mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(invitation, nil)
				mocks.storage.EXPECT().AddMember(gomock.Any(), "renovation-1", "account-1", "jane@doe.nz", types.RoleMember).Return(&types.Membership{}, nil)
				mocks.storage.EXPECT().UpdateInvitationStatus(gomock.Any(), "token-1", types.StatusPending, types.StatusAccepted).Return(nil, storage.ErrConflict)
			},
			wantErr: types.ErrAlreadyResolved,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service, mocks := newServiceWithMocks(ctrl)
			ctx := context.Background()
			passthroughTx(mocks)

			test.setup(ctx, mocks)

			_, err := service.AcceptInvitation(ctx, "token-1")
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestDeclineInvitation(t *testing.T) {
	tests := []struct {
		name      string
		updateErr error
		wantErr   error
	}{
		{name: "success"},
		{name: "unknown token", updateErr: storage.ErrNotFound, wantErr: ErrTokenInvalid},
		{name: "already resolved", updateErr: storage.ErrConflict, wantErr: types.ErrAlreadyResolved},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service, mocks := newServiceWithMocks(ctrl)
			ctx := context.Background()

			var declined *types.Invitation
			if test.updateErr == nil {
				declined = pendingInvitation("token-1", "renovation-1", types.EmailInvitee("jane@doe.nz"))
				declined.Status = types.StatusDeclined
			}
			mocks.storage.EXPECT().UpdateInvitationStatus(ctx, "token-1", types.StatusPending, types.StatusDeclined).Return(declined, test.updateErr)

			result, err := service.DeclineInvitation(ctx, "token-1")
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("expected %v, got %v", test.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.Status != types.StatusDeclined {
				t.Fatalf("expected status %s, got %s", types.StatusDeclined, result.Status)
			}
		})
	}
}

func TestMarkAsAcceptedPendingRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	invitation := pendingInvitation("token-1", "renovation-1", types.EmailInvitee("john@doe.nz"))
	flagged := *invitation
	flagged.AcceptedPendingRegistration = true

	mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(invitation, nil)
	mocks.storage.EXPECT().SetInvitationPendingRegistration(ctx, "token-1", true).Return(&flagged, nil)

	result, err := service.MarkAsAcceptedPendingRegistration(ctx, "token-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.AcceptedPendingRegistration {
		t.Fatal("expected the pending registration flag to be set")
	}
}

func TestMarkAsAcceptedPendingRegistrationResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	invitation := pendingInvitation("token-1", "renovation-1", types.EmailInvitee("john@doe.nz"))
	invitation.Status = types.StatusExpired
	mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(invitation, nil)

	_, err := service.MarkAsAcceptedPendingRegistration(ctx, "token-1")
	if !errors.Is(err, types.ErrAlreadyResolved) {
		t.Fatalf("expected ErrAlreadyResolved, got %v", err)
	}
}

func TestAcceptInvitationsPendingRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()
	passthroughTx(mocks)

	account := &types.Account{ID: "account-1", Email: "john@doe.nz", Name: "John"}

	first := pendingInvitation("token-1", "renovation-1", types.EmailInvitee("john@doe.nz"))
	second := pendingInvitation("token-2", "renovation-2", types.EmailInvitee("john@doe.nz"))
	resolved := pendingInvitation("token-3", "renovation-3", types.EmailInvitee("john@doe.nz"))
	resolved.Status = types.StatusDeclined

	acceptedFirst := *first
	acceptedFirst.Status = types.StatusAccepted

	mocks.storage.EXPECT().ListInvitationsPendingRegistration(ctx, "john@doe.nz").
		Return([]*types.Invitation{first, second, resolved}, nil)

	// first completes, second was resolved concurrently, third is skipped
	mocks.storage.EXPECT().AddMember(gomock.Any(), "renovation-1", "account-1", "john@doe.nz", types.RoleMember).Return(&types.Membership{}, nil)
	mocks.storage.EXPECT().UpdateInvitationStatus(gomock.Any(), "token-1", types.StatusPending, types.StatusAccepted).Return(&acceptedFirst, nil)
	mocks.storage.EXPECT().AddMember(gomock.Any(), "renovation-2", "account-1", "john@doe.nz", types.RoleMember).Return(&types.Membership{}, nil)
	mocks.storage.EXPECT().UpdateInvitationStatus(gomock.Any(), "token-2", types.StatusPending, types.StatusAccepted).Return(nil, storage.ErrConflict)

	mocks.authz.EXPECT().AssignRenovationMember(gomock.Any(), "account-1", "renovation-1").Return(nil)
	mocks.chat.EXPECT().FindChannelByRenovationAndName(gomock.Any(), "renovation-1", "general").Return(nil, nil)
	mocks.accounts.EXPECT().GetAccount(gomock.Any(), "account-1").Return(account, nil)
	mocks.chat.EXPECT().CreateAssistantChannel(gomock.Any(), "renovation-1", "account-1", "John").Return(&types.ChatChannel{}, nil)
	mocks.activity.EXPECT().RecordAndSendUpdate(gomock.Any(), gomock.Any()).Return(nil)

	mocks.storage.EXPECT().ClearPendingRegistrationByEmail(ctx, "john@doe.nz").Return(nil)

	if err := service.AcceptInvitationsPendingRegistration(ctx, account); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestExpireInvitations(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mocks.clock.EXPECT().Now().Return(now)

	first := pendingInvitation("token-1", "renovation-1", types.EmailInvitee("a@doe.nz"))
	second := pendingInvitation("token-2", "renovation-1", types.EmailInvitee("b@doe.nz"))
	third := pendingInvitation("token-3", "renovation-1", types.EmailInvitee("c@doe.nz"))

	mocks.storage.EXPECT().ListInvitationsDueBefore(ctx, now).Return([]*types.Invitation{first, second, third}, nil)

	expiredFirst := *first
	expiredFirst.Status = types.StatusExpired
	mocks.storage.EXPECT().UpdateInvitationStatus(ctx, "token-1", types.StatusPending, types.StatusExpired).Return(&expiredFirst, nil)
	// second was accepted between the listing and the update
	mocks.storage.EXPECT().UpdateInvitationStatus(ctx, "token-2", types.StatusPending, types.StatusExpired).Return(nil, storage.ErrConflict)
	expiredThird := *third
	expiredThird.Status = types.StatusExpired
	mocks.storage.EXPECT().UpdateInvitationStatus(ctx, "token-3", types.StatusPending, types.StatusExpired).Return(&expiredThird, nil)

	expired, err := service.ExpireInvitations(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if expired != 2 {
		t.Fatalf("expected 2 expired invitations, got %d", expired)
	}
}

func TestValidateInvitationToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(ctx context.Context, mocks *serviceMocks)
		wantErr error
	}{
		{
			name: "valid pending token",
			setup: func(ctx context.Context, mocks *serviceMocks) {
				invitation := pendingInvitation("token-1", "renovation-1", types.EmailInvitee("jane@doe.nz"))
				invitation.ExpiryDate = now.Add(time.Hour)
				mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(invitation, nil)
				mocks.clock.EXPECT().Now().Return(now)
			},
		},
		{
			name: "unknown token",
			setup: func(ctx context.Context, mocks *serviceMocks) {
				mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(nil, storage.ErrNotFound)
			},
			wantErr: ErrTokenInvalid,
		},
		{
			name: "expired invitation",
			setup: func(ctx context.Context, mocks *serviceMocks) {
				invitation := pendingInvitation("token-1", "renovation-1", types.EmailInvitee("jane@doe.nz"))
				invitation.Status = types.StatusExpired
				mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(invitation, nil)
			},
			wantErr: ErrTokenExpired,
		},
		{
			name: "accepted invitation",
			setup: func(ctx context.Context, mocks *serviceMocks) {
				invitation := pendingInvitation("token-1", "renovation-1", types.EmailInvitee("jane@doe.nz"))
				invitation.Status = types.StatusAccepted
				mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(invitation, nil)
			},
			wantErr: ErrTokenInvalid,
		},
		{
			name: "pending but past due",
			setup: func(ctx context.Context, mocks *serviceMocks) {
				invitation := pendingInvitation("token-1", "renovation-1", types.EmailInvitee("jane@doe.nz"))
				invitation.ExpiryDate = now.Add(-time.Minute)
				mocks.storage.EXPECT().GetInvitationByToken(ctx, "token-1").Return(invitation, nil)
				mocks.clock.EXPECT().Now().Return(now)
			},
			wantErr: ErrTokenExpired,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service, mocks := newServiceWithMocks(ctrl)
			ctx := context.Background()

			test.setup(ctx, mocks)

			invitation, err := service.ValidateInvitationToken(ctx, "token-1")
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("expected %v, got %v", test.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if invitation.Token != "token-1" {
				t.Fatalf("unexpected token %s", invitation.Token)
			}
		})
	}
}

func TestSendInvitationMail(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	invitation := pendingInvitation("token-1", "renovation-1", types.EmailInvitee("jane@doe.nz"))

	mocks.storage.EXPECT().GetRenovationByID(ctx, "renovation-1").Return(&types.Renovation{ID: "renovation-1", Name: "Kitchen remodel"}, nil)
	mocks.mail.EXPECT().SendInvitation(ctx, invitation, "Kitchen remodel").Return(nil)

	if err := service.SendInvitationMail(ctx, invitation); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestDeleteInvitations(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	mocks.storage.EXPECT().DeleteInvitationsByRenovationAndEmail(ctx, "renovation-1", "jane@doe.nz", nil).Return(nil)

	if err := service.DeleteInvitations(ctx, "renovation-1", "jane@doe.nz"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
