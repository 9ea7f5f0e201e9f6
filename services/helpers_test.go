package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rokan2059/coffee/entity"
	"github.com/rokan2059/coffee/repository"
)

// memBlobs satisfies Blobs without a database; tests exercise the same
// load/save hooks the sqlite-backed repository serves in production.
type memBlobs struct {
	data map[string][]byte
}

func newMemBlobs() *memBlobs {
	return &memBlobs{data: make(map[string][]byte)}
}

func (m *memBlobs) Load(key string, out any) error {
	b, ok := m.data[key]
	if !ok {
		return repository.ErrBlobNotFound
	}
	return json.Unmarshal(b, out)
}

func (m *memBlobs) Save(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

var errSaveFailed = errors.New("save failed")

// failSaves wraps a store whose next n Saves fail.
type failSaves struct {
	Blobs
	n int
}

func (f *failSaves) Save(key string, v any) error {
	if f.n > 0 {
		f.n--
		return errSaveFailed
	}
	return f.Blobs.Save(key, v)
}

func seedCatalog(t *testing.T, store Blobs) *CatalogService {
	t.Helper()
	menu := []entity.MenuItem{
		{ID: "a", Name: "Caramel Macchiato", Description: "steamed milk, espresso", Price: 5.50, Category: entity.CategoryHotCoffee},
		{ID: "b", Name: "Earl Grey Tea", Description: "bergamot black tea", Price: 3.50, Category: entity.CategoryTea},
		{ID: "c", Name: "Cold Brew", Description: "slow-steeped", Price: 4.75, Category: entity.CategoryIceCoffee},
	}
	if err := store.Save(repository.BlobMenu, menu); err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	catalog, err := NewCatalogService(store)
	if err != nil {
		t.Fatalf("NewCatalogService: %v", err)
	}
	return catalog
}

func fillCart(t *testing.T, carts *CartService, token string, adds map[string]int) {
	t.Helper()
	for id, n := range adds {
		for i := 0; i < n; i++ {
			if _, err := carts.Add(token, id); err != nil {
				t.Fatalf("add %s: %v", id, err)
			}
		}
	}
}
