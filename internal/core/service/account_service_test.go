package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/homeserve/household-api/internal/core/domain"
)

func newAccountService() (*AccountService, *stubUserRepo, *stubProfileRepo, *stubWorkerRepo) {
	users, profiles, workers := newStubUserRepo(), newStubProfileRepo(), newStubWorkerRepo()
	return NewAccountService(users, profiles, workers, zerolog.Nop()), users, profiles, workers
}

func TestAccountService_SelectRole_CreatesThenUpdates(t *testing.T) {
	svc, users, _, _ := newAccountService()
	id := domain.Identity{Subject: "auth-alice", Email: "alice@example.com"}

	first, err := svc.SelectRole(context.Background(), id, domain.RoleResident)
	if err != nil {
		t.Fatalf("first SelectRole: %v", err)
	}
	if first.Role != domain.RoleResident {
		t.Fatalf("expected RESIDENT, got %s", first.Role)
	}

	second, err := svc.SelectRole(context.Background(), id, domain.RoleWorker)
	if err != nil {
		t.Fatalf("second SelectRole: %v", err)
	}
	if second.UserID != first.UserID {
		t.Fatalf("expected same user, got %s and %s", first.UserID, second.UserID)
	}
	if second.Role != domain.RoleWorker {
		t.Fatalf("expected WORKER, got %s", second.Role)
	}
	if len(users.byAuth) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(users.byAuth))
	}
}

func TestAccountService_SelectRole_InvalidRole(t *testing.T) {
	svc, users, _, _ := newAccountService()

	_, err := svc.SelectRole(context.Background(), domain.Identity{Subject: "auth-bob"}, domain.Role("ADMIN"))
	if !errors.Is(err, domain.ErrRoleNotSelected) {
		t.Fatalf("expected ErrRoleNotSelected, got %v", err)
	}
	if len(users.byAuth) != 0 {
		t.Fatalf("no user should be created for an invalid role")
	}
}

func TestAccountService_Sync_DefaultsToResidentAndIsIdempotent(t *testing.T) {
	svc, users, _, _ := newAccountService()
	id := domain.Identity{Subject: "auth-carol", Email: "carol@example.com"}

	me, err := svc.Sync(context.Background(), id)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if me.User.Role != domain.RoleResident {
		t.Fatalf("expected default RESIDENT, got %s", me.User.Role)
	}
	if me.Profile != nil || me.WorkerProfile != nil {
		t.Fatalf("expected empty profiles, got %+v", me)
	}

	again, err := svc.Sync(context.Background(), id)
	if err != nil {
		t.Fatalf("second Sync: %v", err)
	}
	if again.User.ID != me.User.ID || len(users.byAuth) != 1 {
		t.Fatalf("Sync must not create a second user")
	}
}

func TestAccountService_Sync_KeepsChosenRole(t *testing.T) {
	svc, users, _, _ := newAccountService()
	users.seed("auth-dan", domain.RoleWorker)

	me, err := svc.Sync(context.Background(), domain.Identity{Subject: "auth-dan"})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if me.User.Role != domain.RoleWorker {
		t.Fatalf("Sync must not reset an existing role, got %s", me.User.Role)
	}
}

func TestAccountService_Me_UserNotFound(t *testing.T) {
	svc, _, _, _ := newAccountService()

	if _, err := svc.Me(context.Background(), domain.Identity{Subject: "ghost"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAccountService_Me_Enriched(t *testing.T) {
	svc, users, profiles, workers := newAccountService()
	u := users.seed("auth-erin", domain.RoleWorker)
	_, _ = profiles.Upsert(context.Background(), &domain.Profile{UserID: u.ID, Name: "Erin", Phone: "9876543210"})
	_, _ = workers.Upsert(context.Background(), &domain.WorkerProfile{UserID: u.ID, WorkerType: domain.WorkerCook, Charges: 3000})

	me, err := svc.Me(context.Background(), domain.Identity{Subject: "auth-erin"})
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me.Profile == nil || me.Profile.Name != "Erin" {
		t.Fatalf("expected profile, got %+v", me.Profile)
	}
	if me.WorkerProfile == nil || me.WorkerProfile.WorkerType != domain.WorkerCook {
		t.Fatalf("expected worker profile, got %+v", me.WorkerProfile)
	}
}
