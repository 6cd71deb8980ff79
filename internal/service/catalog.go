// Package service contains the business logic for the pizzeria service.
package service

import (
	"fmt"
	"sync"

	"github.com/guttosm/pizzeria-service/internal/domain/model"
)

// CatalogEvent describes one catalog mutation.
type CatalogEvent struct {
	Op       string
	Category model.Category
	Key      string
	Version  uint64
}

// Catalog operation names carried by CatalogEvent.
const (
	CatalogOpAdd    = "add"
	CatalogOpUpdate = "update"
	CatalogOpRemove = "remove"
	CatalogOpToggle = "toggle"
	CatalogOpInfo   = "info"
)

// CategoryMenu is one section of the menu in display order.
type CategoryMenu struct {
	Category model.Category       `json:"category"`
	Label    string               `json:"label"`
	Items    []model.CatalogEntry `json:"items"`
}

// CategoryStats counts entries of a category for the admin dashboard.
type CategoryStats struct {
	Category  model.Category `json:"category"`
	Label     string         `json:"label"`
	Total     int            `json:"total"`
	Available int            `json:"available"`
}

// CatalogService is the menu catalog: read by the menu browser and the
// configurator, written by the admin panel.
type CatalogService interface {
	Menu() ([]CategoryMenu, uint64)
	List(category model.Category) ([]model.CatalogEntry, error)
	Get(category model.Category, key string) (model.CatalogEntry, error)
	Add(category model.Category, entry model.CatalogEntry) (model.CatalogEntry, bool, error)
	Update(category model.Category, key string, patch model.CatalogEntryPatch) (model.CatalogEntry, error)
	Remove(category model.Category, key string) error
	ToggleAvailability(category model.Category, key string) (model.CatalogEntry, error)
	Dashboard() []CategoryStats
	Info() model.PizzeriaInfo
	UpdateInfo(patch model.PizzeriaInfoPatch) model.PizzeriaInfo
	Subscribe(fn func(CatalogEvent)) func()
}

type categoryEntries struct {
	order []string
	items map[string]model.CatalogEntry
}

// CatalogStore is the in-memory CatalogService. State lives for the process
// lifetime only.
type CatalogStore struct {
	mu       sync.RWMutex
	sections map[model.Category]*categoryEntries
	info     model.PizzeriaInfo
	version  uint64
	subs     subscribers[CatalogEvent]
}

var _ CatalogService = (*CatalogStore)(nil)

// NewCatalogStore creates a store seeded with menu and info. Entries that fail
// validation are skipped.
func NewCatalogStore(menu map[model.Category][]model.CatalogEntry, info model.PizzeriaInfo) *CatalogStore {
	s := &CatalogStore{
		sections: make(map[model.Category]*categoryEntries, len(model.Categories)),
		info:     cloneInfo(info),
	}
	for _, c := range model.Categories {
		s.sections[c] = &categoryEntries{items: make(map[string]model.CatalogEntry)}
	}
	for category, entries := range menu {
		section, ok := s.sections[category]
		if !ok {
			continue
		}
		for _, e := range entries {
			e.Category = category
			if e.Validate() != nil {
				continue
			}
			if _, exists := section.items[e.Key]; !exists {
				section.order = append(section.order, e.Key)
			}
			section.items[e.Key] = e.Clone()
		}
	}
	return s
}

// NewDefaultCatalogStore creates a store seeded with the demo menu.
func NewDefaultCatalogStore() *CatalogStore {
	return NewCatalogStore(DefaultMenu(), DefaultPizzeriaInfo())
}

func (s *CatalogStore) section(category model.Category) (*categoryEntries, error) {
	section, ok := s.sections[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return section, nil
}

func (section *categoryEntries) list() []model.CatalogEntry {
	out := make([]model.CatalogEntry, 0, len(section.order))
	for _, key := range section.order {
		out = append(out, section.items[key].Clone())
	}
	return out
}

// Menu returns every section in display order with the catalog version.
func (s *CatalogStore) Menu() ([]CategoryMenu, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CategoryMenu, 0, len(model.Categories))
	for _, c := range model.Categories {
		out = append(out, CategoryMenu{Category: c, Label: c.Label(), Items: s.sections[c].list()})
	}
	return out, s.version
}

// List returns the entries of one category in display order.
func (s *CatalogStore) List(category model.Category) ([]model.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	section, err := s.section(category)
	if err != nil {
		return nil, err
	}
	return section.list(), nil
}

// Get returns a copy of a single entry.
func (s *CatalogStore) Get(category model.Category, key string) (model.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	section, err := s.section(category)
	if err != nil {
		return model.CatalogEntry{}, err
	}
	entry, ok := section.items[key]
	if !ok {
		return model.CatalogEntry{}, fmt.Errorf("%w: %s/%s", ErrItemNotFound, category, key)
	}
	return entry.Clone(), nil
}

// Add stores entry under its key, replacing any entry with the same key. The
// returned bool is true when the key was new.
func (s *CatalogStore) Add(category model.Category, entry model.CatalogEntry) (model.CatalogEntry, bool, error) {
	entry.Category = category
	if err := entry.Validate(); err != nil {
		return model.CatalogEntry{}, false, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}

	s.mu.Lock()
	section, err := s.section(category)
	if err != nil {
		s.mu.Unlock()
		return model.CatalogEntry{}, false, err
	}
	_, exists := section.items[entry.Key]
	if !exists {
		section.order = append(section.order, entry.Key)
	}
	section.items[entry.Key] = entry.Clone()
	version := s.bump()
	s.mu.Unlock()

	s.subs.notify(CatalogEvent{Op: CatalogOpAdd, Category: category, Key: entry.Key, Version: version})
	return entry, !exists, nil
}

// Update merges patch into an existing entry. The merged entry must still
// validate.
func (s *CatalogStore) Update(category model.Category, key string, patch model.CatalogEntryPatch) (model.CatalogEntry, error) {
	return s.mutate(CatalogOpUpdate, category, key, patch.Apply)
}

// ToggleAvailability flips the available flag of an entry.
func (s *CatalogStore) ToggleAvailability(category model.Category, key string) (model.CatalogEntry, error) {
	return s.mutate(CatalogOpToggle, category, key, func(e model.CatalogEntry) model.CatalogEntry {
		e.Available = !e.Available
		return e
	})
}

func (s *CatalogStore) mutate(op string, category model.Category, key string, fn func(model.CatalogEntry) model.CatalogEntry) (model.CatalogEntry, error) {
	s.mu.Lock()
	section, err := s.section(category)
	if err != nil {
		s.mu.Unlock()
		return model.CatalogEntry{}, err
	}
	current, ok := section.items[key]
	if !ok {
		s.mu.Unlock()
		return model.CatalogEntry{}, fmt.Errorf("%w: %s/%s", ErrItemNotFound, category, key)
	}

	next := fn(current.Clone())
	next.Key = key
	next.Category = category
	if err := next.Validate(); err != nil {
		s.mu.Unlock()
		return model.CatalogEntry{}, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	section.items[key] = next
	version := s.bump()
	s.mu.Unlock()

	s.subs.notify(CatalogEvent{Op: op, Category: category, Key: key, Version: version})
	return next.Clone(), nil
}

// Remove deletes an entry.
func (s *CatalogStore) Remove(category model.Category, key string) error {
	s.mu.Lock()
	section, err := s.section(category)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if _, ok := section.items[key]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s/%s", ErrItemNotFound, category, key)
	}
	delete(section.items, key)
	for i, k := range section.order {
		if k == key {
			section.order = append(section.order[:i], section.order[i+1:]...)
			break
		}
	}
	version := s.bump()
	s.mu.Unlock()

	s.subs.notify(CatalogEvent{Op: CatalogOpRemove, Category: category, Key: key, Version: version})
	return nil
}

// Dashboard counts total and available entries per category.
func (s *CatalogStore) Dashboard() []CategoryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CategoryStats, 0, len(model.Categories))
	for _, c := range model.Categories {
		stats := CategoryStats{Category: c, Label: c.Label()}
		for _, e := range s.sections[c].items {
			stats.Total++
			if e.Available {
				stats.Available++
			}
		}
		out = append(out, stats)
	}
	return out
}

// Info returns the pizzeria contact and delivery data.
func (s *CatalogStore) Info() model.PizzeriaInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneInfo(s.info)
}

// UpdateInfo merges patch into the pizzeria data.
func (s *CatalogStore) UpdateInfo(patch model.PizzeriaInfoPatch) model.PizzeriaInfo {
	s.mu.Lock()
	s.info = cloneInfo(patch.Apply(s.info))
	info := cloneInfo(s.info)
	version := s.bump()
	s.mu.Unlock()

	s.subs.notify(CatalogEvent{Op: CatalogOpInfo, Version: version})
	return info
}

// Subscribe registers fn to run after every mutation. The returned func
// unregisters it.
func (s *CatalogStore) Subscribe(fn func(CatalogEvent)) func() {
	return s.subs.add(fn)
}

// bump must be called with mu held.
func (s *CatalogStore) bump() uint64 {
	s.version++
	return s.version
}

func cloneInfo(info model.PizzeriaInfo) model.PizzeriaInfo {
	info.DeliveryAreas = append([]string(nil), info.DeliveryAreas...)
	return info
}
