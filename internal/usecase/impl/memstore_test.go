package impl

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"carmarket/internal/domain/entity"
	"carmarket/internal/domain/repository"
	"carmarket/internal/domain/service"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the Postgres adapters. It keeps the
// same error contract (not found, FK, conditional updates) but no rollback.
// Transactions run one at a time, which is the strongest form of the row
// locks the Postgres adapters take.
type memStore struct {
	mu   sync.Mutex
	txMu sync.Mutex

	// afterRequestLock runs once a transaction holds a request row.
	afterRequestLock func(requestID uuid.UUID)

	identities  map[string]bool
	profiles    map[string]*entity.UserProfile
	dealerships map[uuid.UUID]*entity.Dealership
	memberships []*entity.DealerMembership
	requests    map[uuid.UUID]*entity.BuyerRequest
	offers      map[uuid.UUID]*entity.Offer
	messages    []*entity.OfferMessage
	devices     []*entity.UserDevice

	clock time.Time
}

func newMemStore() *memStore {
	return &memStore{
		identities:  map[string]bool{},
		profiles:    map[string]*entity.UserProfile{},
		dealerships: map[uuid.UUID]*entity.Dealership{},
		requests:    map[uuid.UUID]*entity.BuyerRequest{},
		offers:      map[uuid.UUID]*entity.Offer{},
		clock:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// tick hands out strictly increasing timestamps, like commit order.
func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)

	return s.clock
}

func (s *memStore) mirror(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identities[userID] = true
}

// --- TransactionManager / RepositoryFactory ---

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	return fn(s)
}

func (s *memStore) NewProfileRepository() repository.ProfileRepository { return memProfiles{s} }
func (s *memStore) NewDealershipRepository() repository.DealershipRepository {
	return memDealerships{s}
}
func (s *memStore) NewBuyerRequestRepository() repository.BuyerRequestRepository {
	return memRequests{s}
}
func (s *memStore) NewOfferRepository() repository.OfferRepository { return memOffers{s} }

// --- profiles ---

type memProfiles struct{ s *memStore }

func (r memProfiles) FindByUserID(_ context.Context, userID string) (*entity.UserProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	profile, ok := r.s.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	clone := *profile

	return &clone, nil
}

func (r memProfiles) Create(_ context.Context, profile *entity.UserProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.identities[profile.UserID] {
		return repository.ErrIdentityNotSynced
	}
	if _, ok := r.s.profiles[profile.UserID]; ok {
		return repository.ErrDuplicate
	}
	profile.CreatedAt = r.s.tick()
	profile.UpdatedAt = profile.CreatedAt
	clone := *profile
	r.s.profiles[profile.UserID] = &clone

	return nil
}

func (r memProfiles) UpdateRole(_ context.Context, userID string, role entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	profile, ok := r.s.profiles[userID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	profile.Role = role

	return nil
}

// --- dealerships ---

type memDealerships struct{ s *memStore }

func (r memDealerships) Create(_ context.Context, dealership *entity.Dealership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.profiles[dealership.OwnerID]; !ok {
		return repository.ErrProfileNotFound
	}
	dealership.ID = uuid.New()
	dealership.CreatedAt = r.s.tick()
	clone := *dealership
	r.s.dealerships[dealership.ID] = &clone

	return nil
}

func (r memDealerships) FindByID(_ context.Context, id uuid.UUID) (*entity.Dealership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	dealership, ok := r.s.dealerships[id]
	if !ok {
		return nil, repository.ErrDealershipNotFound
	}
	clone := *dealership

	return &clone, nil
}

func (r memDealerships) ListByOwner(_ context.Context, ownerID string) ([]*entity.Dealership, error) {
	return r.list(func(d *entity.Dealership) bool { return d.OwnerID == ownerID }), nil
}

func (r memDealerships) ListForMember(ctx context.Context, userID string) ([]*entity.Dealership, error) {
	return r.list(func(d *entity.Dealership) bool { return r.isMember(d.ID, userID) }), nil
}

func (r memDealerships) list(keep func(*entity.Dealership) bool) []*entity.Dealership {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.Dealership{}
	for _, d := range r.s.dealerships {
		if keep(d) {
			clone := *d
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out
}

func (r memDealerships) AddMember(_ context.Context, membership *entity.DealerMembership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.memberships {
		if m.DealershipID == membership.DealershipID && m.UserID == membership.UserID {
			return repository.ErrDuplicate
		}
	}
	membership.ID = uuid.New()
	membership.CreatedAt = r.s.tick()
	clone := *membership
	r.s.memberships = append(r.s.memberships, &clone)

	return nil
}

func (r memDealerships) IsMember(_ context.Context, dealershipID uuid.UUID, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.isMember(dealershipID, userID), nil
}

// isMember expects the lock to be held.
func (r memDealerships) isMember(dealershipID uuid.UUID, userID string) bool {
	if d, ok := r.s.dealerships[dealershipID]; ok && d.OwnerID == userID {
		return true
	}

	return slices.ContainsFunc(r.s.memberships, func(m *entity.DealerMembership) bool {
		return m.DealershipID == dealershipID && m.UserID == userID
	})
}

// --- buyer requests ---

type memRequests struct{ s *memStore }

func (r memRequests) Create(_ context.Context, request *entity.BuyerRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.profiles[request.BuyerID]; !ok {
		return repository.ErrProfileNotFound
	}
	request.ID = uuid.New()
	request.CreatedAt = r.s.tick()
	request.UpdatedAt = request.CreatedAt
	clone := *request
	r.s.requests[request.ID] = &clone

	return nil
}

func (r memRequests) FindByID(_ context.Context, id uuid.UUID) (*entity.BuyerRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	request, ok := r.s.requests[id]
	if !ok {
		return nil, repository.ErrRequestNotFound
	}
	clone := *request

	return &clone, nil
}

func (r memRequests) FindByIDForShare(ctx context.Context, id uuid.UUID) (*entity.BuyerRequest, error) {
	request, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.s.afterRequestLock != nil {
		r.s.afterRequestLock(id)
	}

	return request, nil
}

func (r memRequests) FindByIDAndBuyer(ctx context.Context, id uuid.UUID, buyerID string) (*entity.BuyerRequest, error) {
	request, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.BuyerID != buyerID {
		return nil, repository.ErrRequestNotFound
	}

	return request, nil
}

func (r memRequests) ListByBuyer(_ context.Context, buyerID string) ([]*entity.BuyerRequest, error) {
	return r.list(func(req *entity.BuyerRequest) bool { return req.BuyerID == buyerID }), nil
}

func (r memRequests) ListByStatus(_ context.Context, status entity.RequestStatus) ([]*entity.BuyerRequest, error) {
	return r.list(func(req *entity.BuyerRequest) bool { return req.Status == status }), nil
}

func (r memRequests) list(keep func(*entity.BuyerRequest) bool) []*entity.BuyerRequest {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.BuyerRequest{}
	for _, req := range r.s.requests {
		if keep(req) {
			clone := *req
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out
}

func (r memRequests) UpdateStatus(_ context.Context, id uuid.UUID, from []entity.RequestStatus, to entity.RequestStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	request, ok := r.s.requests[id]
	if !ok || !slices.Contains(from, request.Status) {
		return repository.ErrStatusConflict
	}
	request.Status = to

	return nil
}

func (r memRequests) MarkAccepted(_ context.Context, id uuid.UUID, offerID uuid.UUID, from []entity.RequestStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	request, ok := r.s.requests[id]
	if !ok || !slices.Contains(from, request.Status) {
		return repository.ErrStatusConflict
	}
	request.Status = entity.RequestAccepted
	request.AcceptedOfferID = &offerID

	return nil
}

func (r memRequests) ExpireOverdue(_ context.Context, now time.Time) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var expired []uuid.UUID
	for id, request := range r.s.requests {
		if request.Status == entity.RequestOpen && request.ExpiresAt != nil && request.ExpiresAt.Before(now) {
			request.Status = entity.RequestExpired
			expired = append(expired, id)
		}
	}

	return expired, nil
}

// --- offers ---

type memOffers struct{ s *memStore }

func (r memOffers) Create(_ context.Context, offer *entity.Offer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.requests[offer.RequestID]; !ok {
		return repository.ErrRequestNotFound
	}
	offer.ID = uuid.New()
	offer.CreatedAt = r.s.tick()
	offer.UpdatedAt = offer.CreatedAt
	clone := *offer
	r.s.offers[offer.ID] = &clone

	return nil
}

func (r memOffers) FindByID(_ context.Context, id uuid.UUID) (*entity.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	offer, ok := r.s.offers[id]
	if !ok {
		return nil, repository.ErrOfferNotFound
	}
	clone := *offer

	return &clone, nil
}

func (r memOffers) FindThread(_ context.Context, offerID uuid.UUID) (*entity.OfferThread, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	offer, ok := r.s.offers[offerID]
	if !ok {
		return nil, repository.ErrOfferNotFound
	}
	offerClone := *offer
	requestClone := *r.s.requests[offer.RequestID]
	dealershipClone := *r.s.dealerships[offer.DealershipID]

	return &entity.OfferThread{Offer: &offerClone, Request: &requestClone, Dealership: &dealershipClone}, nil
}

func (r memOffers) newestFirst(keep func(*entity.Offer) bool) []*entity.Offer {
	out := []*entity.Offer{}
	for _, offer := range r.s.offers {
		if keep(offer) {
			clone := *offer
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out
}

func (r memOffers) ListByDealership(_ context.Context, dealershipID uuid.UUID) ([]*entity.OfferWithRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rows := []*entity.OfferWithRequest{}
	for _, offer := range r.newestFirst(func(o *entity.Offer) bool { return o.DealershipID == dealershipID }) {
		request := *r.s.requests[offer.RequestID]
		rows = append(rows, &entity.OfferWithRequest{Offer: offer, Request: &request})
	}

	return rows, nil
}

func (r memOffers) ListByRequestForBuyer(_ context.Context, requestID uuid.UUID, buyerID string) ([]*entity.OfferWithDealership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rows := []*entity.OfferWithDealership{}
	request, ok := r.s.requests[requestID]
	if !ok || request.BuyerID != buyerID {
		return rows, nil
	}
	for _, offer := range r.newestFirst(func(o *entity.Offer) bool { return o.RequestID == requestID }) {
		dealership := *r.s.dealerships[offer.DealershipID]
		rows = append(rows, &entity.OfferWithDealership{Offer: offer, Dealership: &dealership})
	}

	return rows, nil
}

func (r memOffers) UpdateStatus(_ context.Context, id uuid.UUID, from entity.OfferStatus, to entity.OfferStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	offer, ok := r.s.offers[id]
	if !ok || offer.Status != from {
		return repository.ErrStatusConflict
	}
	offer.Status = to

	return nil
}

func (r memOffers) RejectSiblings(_ context.Context, requestID uuid.UUID, acceptedOfferID uuid.UUID) ([]*entity.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var rejected []*entity.Offer
	for id, offer := range r.s.offers {
		if offer.RequestID == requestID && id != acceptedOfferID && offer.Status == entity.OfferSubmitted {
			offer.Status = entity.OfferRejected
			clone := *offer
			rejected = append(rejected, &clone)
		}
	}

	return rejected, nil
}

func (r memOffers) ExpireForRequests(_ context.Context, requestIDs []uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, offer := range r.s.offers {
		if slices.Contains(requestIDs, offer.RequestID) && offer.Status == entity.OfferSubmitted {
			offer.Status = entity.OfferExpired
			n++
		}
	}

	return n, nil
}

// --- messages ---

type memMessages struct{ s *memStore }

func (r memMessages) Create(_ context.Context, message *entity.OfferMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.offers[message.OfferID]; !ok {
		return repository.ErrOfferNotFound
	}
	message.ID = uuid.New()
	message.CreatedAt = r.s.tick()
	clone := *message
	r.s.messages = append(r.s.messages, &clone)

	return nil
}

func (r memMessages) ListByOffer(_ context.Context, offerID uuid.UUID) ([]*entity.OfferMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.OfferMessage{}
	for _, m := range r.s.messages {
		if m.OfferID == offerID {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out, nil
}

// --- collaborators ---

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.MarketEvent
}

func (p *recordingPublisher) PublishMarketEvent(_ context.Context, event *service.MarketEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) ofType(eventType service.MarketEventType) []*service.MarketEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []*service.MarketEvent
	for _, e := range p.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}

	return out
}

type nopMetrics struct{}

func (nopMetrics) RequestCreated()            {}
func (nopMetrics) OfferSubmitted()            {}
func (nopMetrics) OfferStatusChanged(string)  {}
func (nopMetrics) MessagePosted(string)       {}
func (nopMetrics) RequestsExpired(int)        {}
func (nopMetrics) NotificationsSent(int, int) {}
