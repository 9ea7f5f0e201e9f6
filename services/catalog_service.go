package services

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/rokan2059/coffee/entity"
	"github.com/rokan2059/coffee/repository"
)

// Blobs is the persistence boundary shared by the stores: named JSON
// blobs loaded once at startup and rewritten whole on every mutation.
type Blobs interface {
	Load(key string, out any) error
	Save(key string, v any) error
}

var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidCategory = errors.New("invalid category")
	ErrNegativePrice   = errors.New("price must not be negative")
)

type CatalogService struct {
	mu    sync.Mutex
	store Blobs
	items []entity.MenuItem
}

func NewCatalogService(store Blobs) (*CatalogService, error) {
	s := &CatalogService{store: store}
	err := store.Load(repository.BlobMenu, &s.items)
	if err != nil && !errors.Is(err, repository.ErrBlobNotFound) {
		return nil, err
	}
	return s, nil
}

// List returns a copy of the menu, newest items first, optionally
// filtered to one category.
func (s *CatalogService) List(category entity.Category) []entity.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.MenuItem, 0, len(s.items))
	for _, it := range s.items {
		if category != "" && it.Category != category {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (s *CatalogService) Get(id string) (entity.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return entity.MenuItem{}, false
}

type MenuItemIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       float64         `json:"price"`
	Category    entity.Category `json:"category" binding:"required"`
	Image       string          `json:"image"`
}

func (s *CatalogService) Create(in *MenuItemIn) (entity.MenuItem, error) {
	if in.Name == "" {
		return entity.MenuItem{}, ErrNameRequired
	}
	if !in.Category.Valid() {
		return entity.MenuItem{}, ErrInvalidCategory
	}
	if in.Price < 0 {
		return entity.MenuItem{}, ErrNegativePrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := entity.MenuItem{
		ID:          strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
	}
	s.items = append([]entity.MenuItem{item}, s.items...)
	if err := s.persist(); err != nil {
		s.items = s.items[1:]
		return entity.MenuItem{}, err
	}
	return item, nil
}

type MenuItemUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *float64         `json:"price"`
	Category    *entity.Category `json:"category"`
	Image       *string          `json:"image"`
}

// Update patches an existing item. A missing id is a silent miss and
// reports applied=false. Orders keep their own snapshots, so an update
// never rewrites history.
func (s *CatalogService) Update(id string, in *MenuItemUpdate) (entity.MenuItem, bool, error) {
	if in.Category != nil && !in.Category.Valid() {
		return entity.MenuItem{}, false, ErrInvalidCategory
	}
	if in.Price != nil && *in.Price < 0 {
		return entity.MenuItem{}, false, ErrNegativePrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		prev := s.items[i]
		if in.Name != nil {
			s.items[i].Name = *in.Name
		}
		if in.Description != nil {
			s.items[i].Description = *in.Description
		}
		if in.Price != nil {
			s.items[i].Price = *in.Price
		}
		if in.Category != nil {
			s.items[i].Category = *in.Category
		}
		if in.Image != nil {
			s.items[i].Image = *in.Image
		}
		if err := s.persist(); err != nil {
			s.items[i] = prev
			return entity.MenuItem{}, false, err
		}
		return s.items[i], true, nil
	}
	return entity.MenuItem{}, false, nil
}

func (s *CatalogService) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		prev := s.items
		next := make([]entity.MenuItem, 0, len(s.items)-1)
		next = append(next, s.items[:i]...)
		next = append(next, s.items[i+1:]...)
		s.items = next
		if err := s.persist(); err != nil {
			s.items = prev
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (s *CatalogService) persist() error {
	return s.store.Save(repository.BlobMenu, s.items)
}
