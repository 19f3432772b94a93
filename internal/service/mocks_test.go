package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
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

type memOfferRepo struct {
	mu        sync.Mutex
	nextID    int64
	byID      map[int64]*domain.JobOffer
	listCalls int
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
	r.listCalls++
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

type memListingCache struct {
	mu          sync.Mutex
	offers      []domain.JobOffer
	warm        bool
	invalidated int
}

func (c *memListingCache) Get(_ context.Context) ([]domain.JobOffer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.warm {
		return nil, repository.ErrCacheMiss
	}
	return c.offers, nil
}

func (c *memListingCache) Set(_ context.Context, offers []domain.JobOffer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offers = offers
	c.warm = true
	return nil
}

func (c *memListingCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offers = nil
	c.warm = false
	c.invalidated++
	return nil
}

type memAuditTrail struct {
	mu      sync.Mutex
	records [][]byte
}

func (t *memAuditTrail) Append(_ context.Context, record []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = append(t.records, record)
	return nil
}

func captureEvents(dispatcher events.Dispatcher, types ...events.EventType) *[]events.Event {
	captured := &[]events.Event{}
	var mu sync.Mutex
	for _, eventType := range types {
		dispatcher.Subscribe(eventType, func(_ context.Context, event events.Event) error {
			mu.Lock()
			defer mu.Unlock()
			*captured = append(*captured, event)
			return nil
		})
	}
	return captured
}
