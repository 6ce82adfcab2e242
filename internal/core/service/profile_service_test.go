package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/homeserve/household-api/internal/core/domain"
	"github.com/homeserve/household-api/internal/core/ports"
)

type profileFixture struct {
	svc      *ProfileService
	users    *stubUserRepo
	profiles *stubProfileRepo
	workers  *stubWorkerRepo
}

func newProfileFixture() profileFixture {
	f := profileFixture{users: newStubUserRepo(), profiles: newStubProfileRepo(), workers: newStubWorkerRepo()}
	f.svc = NewProfileService(f.users, f.profiles, f.workers, f.profiles, zerolog.Nop())
	return f
}

func TestProfileService_UpsertProfile_RequiresRole(t *testing.T) {
	f := newProfileFixture()
	in := ports.ProfileInput{Name: "Asha", Phone: "9876543210"}

	if _, err := f.svc.UpsertProfile(context.Background(), domain.Identity{Subject: "nobody"}, in); !errors.Is(err, domain.ErrRoleNotSelected) {
		t.Fatalf("expected ErrRoleNotSelected for missing user, got %v", err)
	}

	f.users.seed("auth-norole", "")
	if _, err := f.svc.UpsertProfile(context.Background(), domain.Identity{Subject: "auth-norole"}, in); !errors.Is(err, domain.ErrRoleNotSelected) {
		t.Fatalf("expected ErrRoleNotSelected for user without role, got %v", err)
	}
}

func TestProfileService_UpsertProfile_IdempotentPerOwner(t *testing.T) {
	f := newProfileFixture()
	f.users.seed("auth-asha", domain.RoleResident)
	id := domain.Identity{Subject: "auth-asha"}

	first, err := f.svc.UpsertProfile(context.Background(), id, ports.ProfileInput{Name: "Asha", Phone: "9876543210", Block: strPtr("B")})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if !first.Verified {
		t.Fatalf("expected verified after first upsert")
	}

	second, err := f.svc.UpsertProfile(context.Background(), id, ports.ProfileInput{Name: "Asha Rao", Phone: "9876543210"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the same profile row, got %s and %s", first.ID, second.ID)
	}
	if second.Name != "Asha Rao" || !second.Verified {
		t.Fatalf("unexpected profile after update: %+v", second)
	}
	if len(f.profiles.byUser) != 1 {
		t.Fatalf("expected one profile row, got %d", len(f.profiles.byUser))
	}
}

func TestProfileService_UpsertProfile_PhoneConflict(t *testing.T) {
	f := newProfileFixture()
	f.users.seed("auth-a", domain.RoleResident)
	f.users.seed("auth-b", domain.RoleResident)

	if _, err := f.svc.UpsertProfile(context.Background(), domain.Identity{Subject: "auth-a"}, ports.ProfileInput{Name: "A", Phone: "9000000001"}); err != nil {
		t.Fatalf("upsert a: %v", err)
	}
	_, err := f.svc.UpsertProfile(context.Background(), domain.Identity{Subject: "auth-b"}, ports.ProfileInput{Name: "B", Phone: "9000000001"})
	if !errors.Is(err, domain.ErrPhoneInUse) {
		t.Fatalf("expected ErrPhoneInUse, got %v", err)
	}
}

func TestProfileService_UpsertWorkerProfile_RequiresWorkerRole(t *testing.T) {
	f := newProfileFixture()
	f.users.seed("auth-res", domain.RoleResident)

	_, err := f.svc.UpsertWorkerProfile(context.Background(), domain.Identity{Subject: "auth-res"}, ports.WorkerProfileInput{WorkerType: domain.WorkerMaid, Charges: 2000})
	if !errors.Is(err, domain.ErrWorkerRoleRequired) {
		t.Fatalf("expected ErrWorkerRoleRequired, got %v", err)
	}
}

func TestProfileService_UpsertWorkerProfile_DefaultsExperienceAndDoesNotVerify(t *testing.T) {
	f := newProfileFixture()
	u := f.users.seed("auth-wrk", domain.RoleWorker)
	id := domain.Identity{Subject: "auth-wrk"}

	wp, err := f.svc.UpsertWorkerProfile(context.Background(), id, ports.WorkerProfileInput{WorkerType: domain.WorkerCook, Charges: 4500})
	if err != nil {
		t.Fatalf("upsert worker profile: %v", err)
	}
	if wp.ExperienceYears == nil || *wp.ExperienceYears != 0 {
		t.Fatalf("expected experience to default to 0, got %v", wp.ExperienceYears)
	}

	again, err := f.svc.UpsertWorkerProfile(context.Background(), id, ports.WorkerProfileInput{WorkerType: domain.WorkerBoth, Charges: 5000, ExperienceYears: intPtr(3)})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if again.ID != wp.ID || again.WorkerType != domain.WorkerBoth || *again.ExperienceYears != 3 {
		t.Fatalf("unexpected worker profile after update: %+v", again)
	}
	if _, ok := f.profiles.byUser[u.ID]; ok {
		t.Fatalf("worker profile upsert must not touch the basic profile")
	}
}

func TestProfileService_GetWorkerProfile_NotFound(t *testing.T) {
	f := newProfileFixture()
	f.users.seed("auth-wrk", domain.RoleWorker)

	if _, err := f.svc.GetWorkerProfile(context.Background(), domain.Identity{Subject: "auth-wrk"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.svc.GetWorkerProfile(context.Background(), domain.Identity{Subject: "ghost"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestProfileService_VerifyMe_MissingBasicProfile(t *testing.T) {
	f := newProfileFixture()
	f.users.seed("auth-res", domain.RoleResident)

	_, err := f.svc.VerifyMe(context.Background(), domain.Identity{Subject: "auth-res"})
	var incomplete *domain.VerificationIncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected VerificationIncompleteError, got %v", err)
	}
	if !incomplete.BasicProfile || incomplete.WorkerProfile {
		t.Fatalf("unexpected missing set: %+v", incomplete)
	}
}

func TestProfileService_VerifyMe_UnknownUser(t *testing.T) {
	f := newProfileFixture()

	_, err := f.svc.VerifyMe(context.Background(), domain.Identity{Subject: "ghost"})
	var incomplete *domain.VerificationIncompleteError
	if !errors.As(err, &incomplete) || !incomplete.BasicProfile {
		t.Fatalf("expected missing basic profile, got %v", err)
	}
}

func TestProfileService_VerifyMe_WorkerNeedsWorkerProfile(t *testing.T) {
	f := newProfileFixture()
	u := f.users.seed("auth-wrk", domain.RoleWorker)
	f.profiles.byUser[u.ID] = &domain.Profile{ID: "p1", UserID: u.ID, Name: "Ravi", Phone: "9111111111"}

	_, err := f.svc.VerifyMe(context.Background(), domain.Identity{Subject: "auth-wrk"})
	var incomplete *domain.VerificationIncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected VerificationIncompleteError, got %v", err)
	}
	if incomplete.BasicProfile || !incomplete.WorkerProfile {
		t.Fatalf("unexpected missing set: %+v", incomplete)
	}
	if f.profiles.byUser[u.ID].Verified {
		t.Fatalf("profile must stay unverified")
	}
}

func TestProfileService_VerifyMe_Success(t *testing.T) {
	f := newProfileFixture()
	u := f.users.seed("auth-wrk", domain.RoleWorker)
	f.profiles.byUser[u.ID] = &domain.Profile{ID: "p1", UserID: u.ID, Name: "Ravi", Phone: "9111111111"}
	f.workers.byUser[u.ID] = &domain.WorkerProfile{ID: "w1", UserID: u.ID, WorkerType: domain.WorkerCook, Charges: 3000, ExperienceYears: intPtr(2)}

	p, err := f.svc.VerifyMe(context.Background(), domain.Identity{Subject: "auth-wrk"})
	if err != nil {
		t.Fatalf("VerifyMe: %v", err)
	}
	if !p.Verified {
		t.Fatalf("expected verified profile")
	}
}

func TestProfileService_AdminVerify(t *testing.T) {
	f := newProfileFixture()
	u := f.users.seed("auth-res", domain.RoleResident)
	f.profiles.byUser[u.ID] = &domain.Profile{ID: "p1", UserID: u.ID, Name: "Meera", Phone: "9222222222", Verified: true}

	p, err := f.svc.AdminVerify(context.Background(), ports.VerifyTarget{AuthID: "auth-res"}, false)
	if err != nil {
		t.Fatalf("AdminVerify by auth id: %v", err)
	}
	if p.Verified {
		t.Fatalf("expected unverified profile")
	}

	p, err = f.svc.AdminVerify(context.Background(), ports.VerifyTarget{UserID: u.ID}, true)
	if err != nil {
		t.Fatalf("AdminVerify by user id: %v", err)
	}
	if !p.Verified {
		t.Fatalf("expected verified profile")
	}
}

func TestProfileService_AdminVerify_Missing(t *testing.T) {
	f := newProfileFixture()
	f.users.seed("auth-noprofile", domain.RoleResident)

	if _, err := f.svc.AdminVerify(context.Background(), ports.VerifyTarget{UserID: "nope"}, true); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := f.svc.AdminVerify(context.Background(), ports.VerifyTarget{AuthID: "auth-noprofile"}, true); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing profile, got %v", err)
	}
	if _, err := f.svc.AdminVerify(context.Background(), ports.VerifyTarget{}, true); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for empty target, got %v", err)
	}
}
