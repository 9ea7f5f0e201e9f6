package services

import (
	"errors"
	"sync"

	"github.com/rokan2059/coffee/entity"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

// CartService keeps one cart per client token. Carts live in memory
// only: the shop never persisted baskets, so a restart drops them.
type CartService struct {
	mu      sync.Mutex
	catalog *CatalogService
	carts   map[string][]entity.CartItem
}

func NewCartService(catalog *CatalogService) *CartService {
	return &CartService{
		catalog: catalog,
		carts:   make(map[string][]entity.CartItem),
	}
}

func (s *CartService) Get(token string) []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.carts[token])
}

// Add puts one unit of the menu item into the cart. A line already
// holding the same item id gains quantity instead of duplicating. The
// cart keeps its own copy of the item, priced as of this moment.
func (s *CartService) Add(token, menuID string) (entity.CartItem, error) {
	item, ok := s.catalog.Get(menuID)
	if !ok {
		return entity.CartItem{}, ErrMenuItemNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[token]
	for i := range lines {
		if lines[i].ID == menuID {
			lines[i].Quantity++
			return lines[i], nil
		}
	}
	line := entity.CartItem{MenuItem: item, Quantity: 1}
	s.carts[token] = append(lines, line)
	return line, nil
}

// Remove drops the line entirely; an unknown id is a silent no-op.
func (s *CartService) Remove(token, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[token]
	for i := range lines {
		if lines[i].ID == itemID {
			s.carts[token] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// AdjustQuantity applies a delta but never drops below one unit;
// removal is the only way off the cart. Unknown ids are ignored.
func (s *CartService) AdjustQuantity(token, itemID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[token]
	for i := range lines {
		if lines[i].ID == itemID {
			q := lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			lines[i].Quantity = q
			return
		}
	}
}

// Total is recomputed on every call; the cart mutates too often for a
// cached figure to stay honest.
func (s *CartService) Total(token string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum float64
	for _, it := range s.carts[token] {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

func (s *CartService) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, token)
}

func cloneItems(items []entity.CartItem) []entity.CartItem {
	out := make([]entity.CartItem, len(items))
	copy(out, items)
	return out
}
