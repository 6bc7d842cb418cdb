// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"testing"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/monitoring"
	"github.com/canonical/renovation-service/internal/tracing"
)

type recordedTuple struct {
	user     string
	relation string
	object   string
}

type fakeOpenFGAClient struct {
	writes  []recordedTuple
	deletes []recordedTuple
	checks  []recordedTuple
	allowed bool
}

func (f *fakeOpenFGAClient) Check(ctx context.Context, user, relation, object string) (bool, error) {
	f.checks = append(f.checks, recordedTuple{user, relation, object})
	return f.allowed, nil
}

func (f *fakeOpenFGAClient) WriteTuple(ctx context.Context, user, relation, object string) error {
	f.writes = append(f.writes, recordedTuple{user, relation, object})
	return nil
}

func (f *fakeOpenFGAClient) DeleteTuple(ctx context.Context, user, relation, object string) error {
	f.deletes = append(f.deletes, recordedTuple{user, relation, object})
	return nil
}

func (f *fakeOpenFGAClient) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	return []string{}, nil
}

func newTestAuthorizer(client *fakeOpenFGAClient) *Authorizer {
	return NewAuthorizer(client, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestAssignRenovationOwner(t *testing.T) {
	client := new(fakeOpenFGAClient)

	if err := newTestAuthorizer(client).AssignRenovationOwner(context.Background(), "account-1", "renovation-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := recordedTuple{"user:account-1", OWNER_RELATION, "renovation:renovation-1"}
	if len(client.writes) != 1 || client.writes[0] != want {
		t.Fatalf("expected write %v, got %v", want, client.writes)
	}
}

func TestAssignRenovationMember(t *testing.T) {
	client := new(fakeOpenFGAClient)

	if err := newTestAuthorizer(client).AssignRenovationMember(context.Background(), "account-1", "renovation-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := recordedTuple{"user:account-1", MEMBER_RELATION, "renovation:renovation-1"}
	if len(client.writes) != 1 || client.writes[0] != want {
		t.Fatalf("expected write %v, got %v", want, client.writes)
	}
}

func TestRemoveRenovationMember(t *testing.T) {
	client := new(fakeOpenFGAClient)

	if err := newTestAuthorizer(client).RemoveRenovationMember(context.Background(), "account-1", "renovation-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := recordedTuple{"user:account-1", MEMBER_RELATION, "renovation:renovation-1"}
	if len(client.deletes) != 1 || client.deletes[0] != want {
		t.Fatalf("expected delete %v, got %v", want, client.deletes)
	}
}

func TestCheckRenovationAccess(t *testing.T) {
	client := &fakeOpenFGAClient{allowed: true}

	allowed, err := newTestAuthorizer(client).CheckRenovationAccess(context.Background(), "account-1", "renovation-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !allowed {
		t.Fatal("expected access to be allowed")
	}

	want := recordedTuple{"user:account-1", CAN_VIEW, "renovation:renovation-1"}
	if len(client.checks) != 1 || client.checks[0] != want {
		t.Fatalf("expected check %v, got %v", want, client.checks)
	}
}
