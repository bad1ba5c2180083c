package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/retailpoint/possync/models"
)

// In-memory fallback repositories, used when the on-device database cannot be
// opened. They honor the same contracts as the SQLite-backed repositories but
// lose everything on process exit; callers are warned via
// [ErrStorageUnavailable] at construction time.

type memoryProductRepository struct {
	mu    sync.RWMutex
	items map[string]models.Product
}

func NewMemoryProductRepository() ProductCacheRepository {
	return &memoryProductRepository{items: make(map[string]models.Product)}
}

func (m *memoryProductRepository) Put(_ context.Context, p models.Product) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[p.LocalID] = p
	return p, nil
}

func (m *memoryProductRepository) Get(_ context.Context, localID string) (models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.items[localID]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (m *memoryProductRepository) GetByRemoteID(_ context.Context, remoteID string) (models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.items {
		if p.RemoteID != "" && p.RemoteID == remoteID {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (m *memoryProductRepository) GetAll(_ context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	products := make([]models.Product, 0, len(m.items))
	for _, p := range m.items {
		products = append(products, p)
	}
	return products, nil
}

func (m *memoryProductRepository) GetByIndex(_ context.Context, index string, value any) ([]models.Product, error) {
	if _, ok := productIndexes[index]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIndex, index)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var products []models.Product
	for _, p := range m.items {
		var match bool
		switch index {
		case "tenant_id":
			match = p.TenantID == value
		case "remote_id":
			match = p.RemoteID == value
		case "sku":
			match = p.SKU == value
		case "synced":
			match = p.Synced == value
		}
		if match {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *memoryProductRepository) Delete(_ context.Context, localID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, localID)
	return nil
}

func (m *memoryProductRepository) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]models.Product)
	return nil
}

type memoryPendingSaleRepository struct {
	mu    sync.RWMutex
	items map[string]models.PendingSale
}

func NewMemoryPendingSaleRepository() PendingSaleRepository {
	return &memoryPendingSaleRepository{items: make(map[string]models.PendingSale)}
}

func (m *memoryPendingSaleRepository) Put(_ context.Context, s models.PendingSale) (models.PendingSale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[s.ID] = s
	return s, nil
}

func (m *memoryPendingSaleRepository) Get(_ context.Context, id string) (models.PendingSale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.items[id]
	if !ok {
		return models.PendingSale{}, ErrSaleNotFound
	}
	return s, nil
}

func (m *memoryPendingSaleRepository) GetAll(_ context.Context) ([]models.PendingSale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sales := make([]models.PendingSale, 0, len(m.items))
	for _, s := range m.items {
		sales = append(sales, s)
	}
	return sales, nil
}

func (m *memoryPendingSaleRepository) GetByIndex(_ context.Context, index string, value any) ([]models.PendingSale, error) {
	if _, ok := pendingSaleIndexes[index]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIndex, index)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var sales []models.PendingSale
	for _, s := range m.items {
		var match bool
		switch index {
		case "tenant_id":
			match = s.TenantID == value
		case "synced":
			match = s.Synced == value
		}
		if match {
			sales = append(sales, s)
		}
	}
	sortSalesByCreation(sales)
	return sales, nil
}

func (m *memoryPendingSaleRepository) GetPending(_ context.Context, tenantID string) ([]models.PendingSale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var sales []models.PendingSale
	for _, s := range m.items {
		if s.TenantID == tenantID && !s.Synced {
			sales = append(sales, s)
		}
	}
	sortSalesByCreation(sales)
	return sales, nil
}

func (m *memoryPendingSaleRepository) CountPending(_ context.Context, tenantID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, s := range m.items {
		if s.TenantID == tenantID && !s.Synced {
			count++
		}
	}
	return count, nil
}

func (m *memoryPendingSaleRepository) PruneSynced(_ context.Context, tenantID string, olderThan int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var pruned int64
	for id, s := range m.items {
		if s.TenantID == tenantID && s.Synced && s.CreatedAt < olderThan {
			delete(m.items, id)
			pruned++
		}
	}
	return pruned, nil
}

func (m *memoryPendingSaleRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *memoryPendingSaleRepository) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]models.PendingSale)
	return nil
}

func sortSalesByCreation(sales []models.PendingSale) {
	sort.Slice(sales, func(i, j int) bool {
		return sales[i].CreatedAt < sales[j].CreatedAt
	})
}

type memoryConflictLogRepository struct {
	mu      sync.RWMutex
	entries []models.ConflictLogEntry
}

func NewMemoryConflictLogRepository() ConflictLogRepository {
	return &memoryConflictLogRepository{}
}

func (m *memoryConflictLogRepository) Append(_ context.Context, e models.ConflictLogEntry) (models.ConflictLogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return e, nil
}

func (m *memoryConflictLogRepository) Get(_ context.Context, id string) (models.ConflictLogEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.ConflictLogEntry{}, ErrConflictEntryNotFound
}

func (m *memoryConflictLogRepository) GetAll(_ context.Context) ([]models.ConflictLogEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]models.ConflictLogEntry, len(m.entries))
	copy(entries, m.entries)
	return entries, nil
}

func (m *memoryConflictLogRepository) GetByIndex(_ context.Context, index string, value any) ([]models.ConflictLogEntry, error) {
	if _, ok := conflictIndexes[index]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIndex, index)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var entries []models.ConflictLogEntry
	for _, e := range m.entries {
		var match bool
		switch index {
		case "tenant_id":
			match = e.TenantID == value
		case "entity_type":
			match = e.EntityType == value
		}
		if match {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *memoryConflictLogRepository) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}
