// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/storage"
	"github.com/canonical/renovation-service/internal/tracing"
	"github.com/canonical/renovation-service/internal/types"
)

type createdChannel struct {
	renovationID string
	name         string
	private      bool
}

type fakeStorage struct {
	channels map[string]*types.ChatChannel

	created   []createdChannel
	members   map[string][]string
	memberErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		channels: make(map[string]*types.ChatChannel),
		members:  make(map[string][]string),
	}
}

func (f *fakeStorage) GetChannelByRenovationAndName(ctx context.Context, renovationID, name string) (*types.ChatChannel, error) {
	channel, ok := f.channels[renovationID+"/"+name]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return channel, nil
}

func (f *fakeStorage) CreateChannel(ctx context.Context, renovationID, name string, private bool) (*types.ChatChannel, error) {
	f.created = append(f.created, createdChannel{renovationID, name, private})

	channel := &types.ChatChannel{
		ID:           "channel-" + name,
		RenovationID: renovationID,
		Name:         name,
		Private:      private,
	}
	f.channels[renovationID+"/"+name] = channel

	return channel, nil
}

func (f *fakeStorage) AddChannelMember(ctx context.Context, channelID, accountID string) error {
	if f.memberErr != nil {
		return f.memberErr
	}

	f.members[channelID] = append(f.members[channelID], accountID)
	return nil
}

func newTestService(store *fakeStorage) *Service {
	return NewService(store, tracing.NewNoopTracer(), logging.NewNoopLogger())
}

func TestFindChannelByRenovationAndName(t *testing.T) {
	store := newFakeStorage()
	service := newTestService(store)
	ctx := context.Background()

	channel, err := service.FindChannelByRenovationAndName(ctx, "renovation-1", GeneralChannelName)
	if err != nil {
		t.Fatalf("expected no error for a missing channel, got %v", err)
	}
	if channel != nil {
		t.Fatalf("expected nil channel, got %v", channel)
	}

	if _, err := store.CreateChannel(ctx, "renovation-1", GeneralChannelName, false); err != nil {
		t.Fatal(err)
	}

	channel, err = service.FindChannelByRenovationAndName(ctx, "renovation-1", GeneralChannelName)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if channel == nil || channel.Name != GeneralChannelName {
		t.Fatalf("unexpected channel %v", channel)
	}
}

func TestAddMemberToChannelTwice(t *testing.T) {
	store := newFakeStorage()
	service := newTestService(store)
	ctx := context.Background()

	if err := service.AddMemberToChannel(ctx, "channel-1", "account-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	store.memberErr = storage.ErrDuplicateKey
	if err := service.AddMemberToChannel(ctx, "channel-1", "account-1"); err != nil {
		t.Fatalf("expected duplicate membership to be tolerated, got %v", err)
	}

	store.memberErr = errors.New("connection reset")
	if err := service.AddMemberToChannel(ctx, "channel-1", "account-1"); err == nil {
		t.Fatal("expected storage error to propagate")
	}
}

func TestCreateGeneralChannel(t *testing.T) {
	store := newFakeStorage()
	service := newTestService(store)

	channel, err := service.CreateGeneralChannel(context.Background(), "renovation-1", "owner-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := createdChannel{"renovation-1", GeneralChannelName, false}
	if len(store.created) != 1 || store.created[0] != want {
		t.Fatalf("expected created channel %v, got %v", want, store.created)
	}
	if got := store.members[channel.ID]; len(got) != 1 || got[0] != "owner-1" {
		t.Fatalf("expected owner membership, got %v", got)
	}
}

func TestCreateAssistantChannel(t *testing.T) {
	tests := []struct {
		name       string
		memberName string
		wantName   string
	}{
		{
			name:       "with member name",
			memberName: "Jane Doe",
			wantName:   "renovation assistant (Jane Doe)",
		},
		{
			name:     "without member name",
			wantName: "renovation assistant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStorage()
			service := newTestService(store)

			channel, err := service.CreateAssistantChannel(context.Background(), "renovation-1", "member-1", tt.memberName)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if channel.Name != tt.wantName {
				t.Fatalf("expected channel name %q, got %q", tt.wantName, channel.Name)
			}
			if !channel.Private {
				t.Fatal("expected a private channel")
			}
			if got := store.members[channel.ID]; len(got) != 1 || got[0] != "member-1" {
				t.Fatalf("expected member added to channel, got %v", got)
			}
		})
	}
}
