package product

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore holds the catalog in process memory. Single-record
// operations are atomic under the mutex; it backs local runs and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]Product
}

var _ ProductStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		items:  make(map[int]Product),
	}
}

func (s *MemoryStore) GetByID(_ context.Context, id int) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.items[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}

	return p, nil
}

func (s *MemoryStore) GetAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sorted(ProductFilter{}), nil
}

func (s *MemoryStore) GetFiltered(_ context.Context, filter ProductFilter, page Page) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matching := s.sorted(filter)

	offset := page.Offset()
	if offset >= len(matching) {
		return []Product{}, nil
	}

	end := offset + page.Size
	if end > len(matching) {
		end = len(matching)
	}

	return matching[offset:end], nil
}

func (s *MemoryStore) Count(_ context.Context, filter ProductFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, p := range s.items {
		if filter.Matches(p) {
			count++
		}
	}

	return count, nil
}

func (s *MemoryStore) Add(_ context.Context, p Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	p.CreatedAt = time.Now().UTC()
	s.nextID++
	s.items[p.ID] = p

	return p, nil
}

func (s *MemoryStore) Update(_ context.Context, p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[p.ID]; !ok {
		return ErrProductNotFound
	}

	s.items[p.ID] = p
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
	return nil
}

// sorted returns the matching products ordered by ascending id. Callers
// must hold at least the read lock.
func (s *MemoryStore) sorted(filter ProductFilter) []Product {
	matching := make([]Product, 0, len(s.items))
	for _, p := range s.items {
		if filter.Matches(p) {
			matching = append(matching, p)
		}
	}

	sort.Slice(matching, func(i, j int) bool {
		return matching[i].ID < matching[j].ID
	})

	return matching
}
