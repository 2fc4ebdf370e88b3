package repository

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"enhancives/internal/domain"
)

// MemoryStore keeps everything in process-local maps. It backs the server when
// no database is configured and doubles as the fixture store in tests. All
// repositories share one lock; reads hand out copies so callers never alias
// stored state.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]*domain.User
	items    map[string]map[uuid.UUID]*domain.Item
	equip    map[string]*domain.EquipmentIndex
	loadouts map[string]map[uuid.UUID]*domain.Loadout
	listings map[string][]*domain.Listing
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]*domain.User),
		items:    make(map[string]map[uuid.UUID]*domain.Item),
		equip:    make(map[string]*domain.EquipmentIndex),
		loadouts: make(map[string]map[uuid.UUID]*domain.Loadout),
		listings: make(map[string][]*domain.Listing),
	}
}

func (s *MemoryStore) Users() UserRepository { return &memUserRepository{s} }
func (s *MemoryStore) Items() ItemRepository { return &memItemRepository{s} }
func (s *MemoryStore) Equipment() EquipmentRepository { return &memEquipmentRepository{s} }
func (s *MemoryStore) Loadouts() LoadoutRepository { return &memLoadoutRepository{s} }
func (s *MemoryStore) Listings() ListingRepository { return &memListingRepository{s} }

func (s *MemoryStore) Close() error { return nil }

type memUserRepository struct{ store *MemoryStore }

func (r *memUserRepository) Create(user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.users[user.Username]; exists {
		return ErrUserExists
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	copied := *user
	r.store.users[user.Username] = &copied
	return nil
}

func (r *memUserRepository) FindByUsername(username string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

type memItemRepository struct{ store *MemoryStore }

func copyItem(item *domain.Item) *domain.Item {
	copied := *item
	copied.Targets = make(domain.TargetList, len(item.Targets))
	copy(copied.Targets, item.Targets)
	return &copied
}

func (r *memItemRepository) FindByUsername(username string) ([]*domain.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]*domain.Item, 0, len(r.store.items[username]))
	for _, item := range r.store.items[username] {
		items = append(items, copyItem(item))
	}
	return items, nil
}

func (r *memItemRepository) FindByID(username string, id uuid.UUID) (*domain.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.items[username][id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return copyItem(item), nil
}

func (r *memItemRepository) Create(item *domain.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.ID = uuid.New()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt

	if r.store.items[item.Username] == nil {
		r.store.items[item.Username] = make(map[uuid.UUID]*domain.Item)
	}
	r.store.items[item.Username][item.ID] = copyItem(item)
	return nil
}

func (r *memItemRepository) Update(item *domain.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.items[item.Username][item.ID]
	if !ok {
		return ErrItemNotFound
	}

	item.CreatedAt = stored.CreatedAt
	item.UpdatedAt = time.Now()
	r.store.items[item.Username][item.ID] = copyItem(item)
	return nil
}

func (r *memItemRepository) Delete(username string, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.items[username][id]; !ok {
		return ErrItemNotFound
	}
	delete(r.store.items[username], id)
	return nil
}

type memEquipmentRepository struct{ store *MemoryStore }

func copyIndex(index *domain.EquipmentIndex) (*domain.EquipmentIndex, error) {
	data, err := json.Marshal(index)
	if err != nil {
		return nil, err
	}
	copied := domain.NewEquipmentIndex()
	if err := json.Unmarshal(data, copied); err != nil {
		return nil, err
	}
	return copied, nil
}

func (r *memEquipmentRepository) Get(username string) (*domain.EquipmentIndex, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	index, ok := r.store.equip[username]
	if !ok {
		return domain.NewEquipmentIndex(), nil
	}
	return copyIndex(index)
}

func (r *memEquipmentRepository) Save(username string, index *domain.EquipmentIndex) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied, err := copyIndex(index)
	if err != nil {
		return err
	}
	r.store.equip[username] = copied
	return nil
}

type memLoadoutRepository struct{ store *MemoryStore }

func copyLoadout(loadout *domain.Loadout) (*domain.Loadout, error) {
	copied := *loadout
	if loadout.Equipment != nil {
		index, err := copyIndex(loadout.Equipment)
		if err != nil {
			return nil, err
		}
		copied.Equipment = index
	}
	return &copied, nil
}

func (r *memLoadoutRepository) FindByUsername(username string) ([]*domain.Loadout, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	loadouts := make([]*domain.Loadout, 0, len(r.store.loadouts[username]))
	for _, loadout := range r.store.loadouts[username] {
		copied, err := copyLoadout(loadout)
		if err != nil {
			return nil, err
		}
		loadouts = append(loadouts, copied)
	}
	return loadouts, nil
}

func (r *memLoadoutRepository) FindByID(username string, id uuid.UUID) (*domain.Loadout, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	loadout, ok := r.store.loadouts[username][id]
	if !ok {
		return nil, ErrLoadoutNotFound
	}
	return copyLoadout(loadout)
}

func (r *memLoadoutRepository) Upsert(loadout *domain.Loadout) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.loadouts[loadout.Username] == nil {
		r.store.loadouts[loadout.Username] = make(map[uuid.UUID]*domain.Loadout)
	}

	for _, existing := range r.store.loadouts[loadout.Username] {
		if existing.Name == loadout.Name {
			loadout.ID = existing.ID
			loadout.CreatedAt = existing.CreatedAt
			loadout.UpdatedAt = time.Now()
			copied, err := copyLoadout(loadout)
			if err != nil {
				return err
			}
			r.store.loadouts[loadout.Username][existing.ID] = copied
			return nil
		}
	}

	loadout.ID = uuid.New()
	loadout.CreatedAt = time.Now()
	loadout.UpdatedAt = loadout.CreatedAt
	copied, err := copyLoadout(loadout)
	if err != nil {
		return err
	}
	r.store.loadouts[loadout.Username][loadout.ID] = copied
	return nil
}

func (r *memLoadoutRepository) Delete(username string, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.loadouts[username][id]; !ok {
		return ErrLoadoutNotFound
	}
	delete(r.store.loadouts[username], id)
	return nil
}

type memListingRepository struct{ store *MemoryStore }

func copyListing(listing *domain.Listing) *domain.Listing {
	copied := *listing
	copied.Targets = make(domain.TargetList, len(listing.Targets))
	copy(copied.Targets, listing.Targets)
	return &copied
}

func (r *memListingRepository) FindAvailable() ([]*domain.Listing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	available := make([]*domain.Listing, 0)
	for _, listings := range r.store.listings {
		for _, listing := range listings {
			if listing.Available {
				available = append(available, copyListing(listing))
			}
		}
	}
	return available, nil
}

func (r *memListingRepository) FindByUsername(username string) ([]*domain.Listing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	listings := make([]*domain.Listing, 0, len(r.store.listings[username]))
	for _, listing := range r.store.listings[username] {
		listings = append(listings, copyListing(listing))
	}
	return listings, nil
}

func (r *memListingRepository) ReplaceForUser(username string, listings []*domain.Listing) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := make([]*domain.Listing, 0, len(listings))
	for _, listing := range listings {
		listing.Username = username
		listing.ID = uuid.New()
		listing.CreatedAt = time.Now()
		listing.UpdatedAt = listing.CreatedAt
		stored = append(stored, copyListing(listing))
	}
	r.store.listings[username] = stored
	return nil
}

func (r *memListingRepository) ExpireOlderThan(cutoff time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var expired int64
	for _, listings := range r.store.listings {
		for _, listing := range listings {
			if listing.Available && listing.UpdatedAt.Before(cutoff) {
				listing.Available = false
				expired++
			}
		}
	}
	return expired, nil
}
