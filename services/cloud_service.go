package services

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/rokan2059/coffee/entity"
	"github.com/rokan2059/coffee/repository"
)

// CloudService simulates the hosted variant of the shop: while enabled,
// a ticker injects remote orders into the same ledger customers use, so
// both histories read as one. There is no real remote protocol behind
// it; the injector goes through the ordinary checkout path and can
// never race user mutations.
type CloudService struct {
	mu       sync.Mutex
	store    Blobs
	catalog  *CatalogService
	orders   *OrderService
	interval time.Duration
	cfg      entity.CloudConfig
}

func NewCloudService(store Blobs, catalog *CatalogService, orders *OrderService, interval time.Duration) (*CloudService, error) {
	s := &CloudService{store: store, catalog: catalog, orders: orders, interval: interval}
	err := store.Load(repository.BlobCloudConfig, &s.cfg)
	if err != nil && !errors.Is(err, repository.ErrBlobNotFound) {
		return nil, err
	}
	return s, nil
}

func (s *CloudService) Config() entity.CloudConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// SetConfig replaces the stored cloud settings. LastSync carries over;
// it belongs to the injector, not the caller.
func (s *CloudService) SetConfig(cfg entity.CloudConfig) (entity.CloudConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg.LastSync = s.cfg.LastSync
	prev := s.cfg
	s.cfg = cfg
	if err := s.store.Save(repository.BlobCloudConfig, s.cfg); err != nil {
		s.cfg = prev
		return entity.CloudConfig{}, err
	}
	return s.cfg, nil
}

func (s *CloudService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.syncOnce()
		}
	}
}

func (s *CloudService) syncOnce() {
	if !s.Config().Enabled {
		return
	}

	menu := s.catalog.List("")
	if len(menu) == 0 {
		return
	}

	// A remote order looks like any walk-in one: a few menu items at
	// small quantities.
	rand.Shuffle(len(menu), func(i, j int) { menu[i], menu[j] = menu[j], menu[i] })
	n := 1 + rand.Intn(3)
	if n > len(menu) {
		n = len(menu)
	}
	items := make([]entity.CartItem, 0, n)
	for _, m := range menu[:n] {
		items = append(items, entity.CartItem{MenuItem: m, Quantity: 1 + rand.Intn(2)})
	}

	method := entity.PaymentOnline
	if rand.Intn(4) == 0 {
		method = entity.PaymentCash
	}

	order, err := s.orders.Checkout(items, method, entity.SourceCloud)
	if err != nil {
		log.Printf("cloud sync: inject failed: %v", err)
		return
	}

	s.mu.Lock()
	s.cfg.LastSync = time.Now().UnixMilli()
	if err := s.store.Save(repository.BlobCloudConfig, s.cfg); err != nil {
		log.Printf("cloud sync: save config: %v", err)
	}
	s.mu.Unlock()

	log.Printf("cloud sync: injected order %s (%d items)", order.ID, len(order.Items))
}
