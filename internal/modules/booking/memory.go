// README: In-memory repository with the same conditional-write semantics as the store.
package booking

import (
	"context"
	"sort"
	"sync"

	"courier/internal/types"
)

// MemoryRepository implements Repository for tests and DB-less runs. Its
// compare-and-swap mirrors the SQL store so concurrent transition behavior
// can be exercised without Postgres.
type MemoryRepository struct {
	mu       sync.Mutex
	bookings map[types.ID]*Booking
	history  map[types.ID][]StatusHistoryEntry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		bookings: make(map[types.ID]*Booking),
		history:  make(map[types.ID][]StatusHistoryEntry),
	}
}

var _ Repository = (*MemoryRepository)(nil)

func (m *MemoryRepository) Create(_ context.Context, b *Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *MemoryRepository) Get(_ context.Context, id types.ID) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *MemoryRepository) List(_ context.Context) ([]*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryRepository) UpdateStatusAndRider(_ context.Context, id types.ID, from, to Status, version int, riderName, riderPhone *string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return false, nil
	}
	if b.Status != from || b.StatusVersion != version {
		return false, nil
	}
	b.Status = to
	b.StatusVersion++
	b.RiderName = riderName
	b.RiderPhone = riderPhone
	return true, nil
}

func (m *MemoryRepository) AppendHistory(_ context.Context, e *StatusHistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history[e.BookingID] = append(m.history[e.BookingID], *e)
	return nil
}

func (m *MemoryRepository) ListHistory(_ context.Context, bookingID types.ID) ([]StatusHistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := m.history[bookingID]
	out := make([]StatusHistoryEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
