package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/homeserve/household-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories. Owner-scoped methods mirror the SQL predicates
// of the Postgres repositories.
// ---------------------------------------------------------------------------

var baseTime = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

type stubUserRepo struct {
	byAuth map[string]*domain.User
	seq    int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byAuth: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

// seed stores a user directly, bypassing the role rules.
func (r *stubUserRepo) seed(authID string, role domain.Role) *domain.User {
	r.seq++
	u := &domain.User{
		ID:        fmt.Sprintf("user-%d", r.seq),
		AuthID:    authID,
		Email:     authID + "@example.com",
		Role:      role,
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
	}
	r.byAuth[authID] = u
	return cloneUser(u)
}

func (r *stubUserRepo) FindByAuthID(_ context.Context, authID string) (*domain.User, error) {
	u, ok := r.byAuth[authID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byAuth {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpsertRole(_ context.Context, authID, email string, role domain.Role) (*domain.User, bool, error) {
	if u, ok := r.byAuth[authID]; ok {
		u.Role = role
		return cloneUser(u), false, nil
	}
	u := r.seed(authID, role)
	r.byAuth[authID].Email = email
	u.Email = email
	return u, true, nil
}

func (r *stubUserRepo) EnsureUser(_ context.Context, authID, email string, defaultRole domain.Role) (*domain.User, bool, error) {
	if u, ok := r.byAuth[authID]; ok {
		return cloneUser(u), false, nil
	}
	u := r.seed(authID, defaultRole)
	r.byAuth[authID].Email = email
	u.Email = email
	return u, true, nil
}

type stubProfileRepo struct {
	byUser    map[string]*domain.Profile
	seq       int
	upsertErr error
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{byUser: make(map[string]*domain.Profile)}
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

// Upsert mirrors INSERT ... ON CONFLICT (user_id) DO UPDATE SET ..., verified = true.
func (r *stubProfileRepo) Upsert(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	for userID, other := range r.byUser {
		if userID != p.UserID && other.Phone == p.Phone {
			return nil, domain.ErrPhoneInUse
		}
	}

	stored, ok := r.byUser[p.UserID]
	if !ok {
		r.seq++
		stored = &domain.Profile{ID: fmt.Sprintf("profile-%d", r.seq), UserID: p.UserID, CreatedAt: baseTime}
		r.byUser[p.UserID] = stored
	}
	stored.Name = p.Name
	stored.Phone = p.Phone
	stored.Block = p.Block
	stored.Flat = p.Flat
	stored.Age = p.Age
	stored.Verified = true
	stored.UpdatedAt = baseTime

	clone := *stored
	return &clone, nil
}

func (r *stubProfileRepo) SetVerified(_ context.Context, userID string, verified bool) (*domain.Profile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Verified = verified
	clone := *p
	return &clone, nil
}

type stubWorkerRepo struct {
	byUser map[string]*domain.WorkerProfile
	seq    int
}

func newStubWorkerRepo() *stubWorkerRepo {
	return &stubWorkerRepo{byUser: make(map[string]*domain.WorkerProfile)}
}

func (r *stubWorkerRepo) FindByUserID(_ context.Context, userID string) (*domain.WorkerProfile, error) {
	wp, ok := r.byUser[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *wp
	return &clone, nil
}

func (r *stubWorkerRepo) Upsert(_ context.Context, wp *domain.WorkerProfile) (*domain.WorkerProfile, error) {
	stored, ok := r.byUser[wp.UserID]
	if !ok {
		r.seq++
		stored = &domain.WorkerProfile{ID: fmt.Sprintf("worker-%d", r.seq), UserID: wp.UserID, CreatedAt: baseTime}
		r.byUser[wp.UserID] = stored
	}
	stored.WorkerType = wp.WorkerType
	stored.Cuisine = wp.Cuisine
	stored.ExperienceYears = wp.ExperienceYears
	stored.Charges = wp.Charges
	stored.LongTermOffer = wp.LongTermOffer
	stored.TimeSlots = wp.TimeSlots

	clone := *stored
	return &clone, nil
}

type stubPostRepo struct {
	posts   map[string]*domain.ServicePost
	workers *stubWorkerRepo
	seq     int
}

func newStubPostRepo(workers *stubWorkerRepo) *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.ServicePost), workers: workers}
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.ServicePost) (*domain.ServicePost, error) {
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("post-%d", r.seq)
	clone.CreatedAt = baseTime.Add(time.Duration(r.seq) * time.Minute)
	r.posts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) ListActive(_ context.Context) ([]domain.ServiceListing, error) {
	out := []domain.ServiceListing{}
	for _, p := range r.posts {
		if p.Active {
			out = append(out, domain.ServiceListing{ServicePost: *p})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubPostRepo) ListByOwner(_ context.Context, userID string) ([]domain.ServicePost, error) {
	out := []domain.ServicePost{}
	wp, ok := r.workers.byUser[userID]
	if !ok {
		return out, nil
	}
	for _, p := range r.posts {
		if p.WorkerID == wp.ID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// owned mirrors "WHERE p.id = $1 AND w.user_id = $2".
func (r *stubPostRepo) owned(postID, userID string) (*domain.ServicePost, bool) {
	p, ok := r.posts[postID]
	if !ok {
		return nil, false
	}
	wp, ok := r.workers.byUser[userID]
	if !ok || p.WorkerID != wp.ID {
		return nil, false
	}
	return p, true
}

func (r *stubPostRepo) ToggleActive(_ context.Context, postID, userID string) (*domain.ServicePost, error) {
	p, ok := r.owned(postID, userID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Active = !p.Active
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) Delete(_ context.Context, postID, userID string) error {
	if _, ok := r.owned(postID, userID); !ok {
		return domain.ErrNotFound
	}
	delete(r.posts, postID)
	return nil
}

type stubRequirementRepo struct {
	reqs map[string]*domain.Requirement
	seq  int
}

func newStubRequirementRepo() *stubRequirementRepo {
	return &stubRequirementRepo{reqs: make(map[string]*domain.Requirement)}
}

func (r *stubRequirementRepo) Create(_ context.Context, req *domain.Requirement) (*domain.Requirement, error) {
	r.seq++
	clone := *req
	clone.ID = fmt.Sprintf("req-%d", r.seq)
	clone.CreatedAt = baseTime.Add(time.Duration(r.seq) * time.Minute)
	r.reqs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubRequirementRepo) ListOpen(_ context.Context) ([]domain.RequirementListing, error) {
	out := []domain.RequirementListing{}
	for _, req := range r.reqs {
		if req.Open {
			out = append(out, domain.RequirementListing{Requirement: *req})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubRequirementRepo) ListByOwner(_ context.Context, userID string) ([]domain.Requirement, error) {
	out := []domain.Requirement{}
	for _, req := range r.reqs {
		if req.UserID == userID {
			out = append(out, *req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubRequirementRepo) ToggleOpen(_ context.Context, id, userID string) (*domain.Requirement, error) {
	req, ok := r.reqs[id]
	if !ok || req.UserID != userID {
		return nil, domain.ErrNotFound
	}
	req.Open = !req.Open
	clone := *req
	return &clone, nil
}

func (r *stubRequirementRepo) Delete(_ context.Context, id, userID string) error {
	req, ok := r.reqs[id]
	if !ok || req.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.reqs, id)
	return nil
}

// ---------------------------------------------------------------------------
// Language model and cache stubs
// ---------------------------------------------------------------------------

type stubModel struct {
	generateFn  func(prompt string) (string, error)
	calls       atomic.Int32
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	delay       time.Duration
}

func (m *stubModel) Generate(_ context.Context, prompt string) (string, error) {
	m.calls.Add(1)
	n := m.inFlight.Add(1)
	defer m.inFlight.Add(-1)
	for {
		cur := m.maxInFlight.Load()
		if n <= cur || m.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	return m.generateFn(prompt)
}

type stubCache struct {
	mu      sync.Mutex
	entries map[string]string
	getErr  error
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]string)}
}

func (c *stubCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", false, c.getErr
	}
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *stubCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
