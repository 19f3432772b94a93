package http

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/domain"
)

type memUserRepo struct {
	mu         sync.Mutex
	nextID     int
	byUsername map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	saved := *user
	r.byUsername[user.Username] = &saved
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byUsername[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

// setRole promotes an account out-of-band, the way admins are provisioned.
func (r *memUserRepo) setRole(username string, role domain.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.byUsername[username]; ok {
		user.Role = role
	}
}

func (r *memUserRepo) remove(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byUsername, username)
}

type memOfferRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.JobOffer
}

func newMemOfferRepo() *memOfferRepo {
	return &memOfferRepo{byID: make(map[int64]*domain.JobOffer)}
}

func (r *memOfferRepo) Create(_ context.Context, offer *domain.JobOffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	offer.ID = r.nextID
	saved := *offer
	r.byID[offer.ID] = &saved
	return nil
}

func (r *memOfferRepo) List(_ context.Context) ([]domain.JobOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	offers := make([]domain.JobOffer, 0, len(r.byID))
	for _, offer := range r.byID {
		offers = append(offers, *offer)
	}
	sort.Slice(offers, func(i, j int) bool { return offers[i].ID > offers[j].ID })
	return offers, nil
}

func (r *memOfferRepo) GetByID(_ context.Context, id int64) (*domain.JobOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	offer, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *offer
	return &copied, nil
}

func (r *memOfferRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}
