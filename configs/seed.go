package configs

import (
	"errors"
	"log"

	"github.com/rokan2059/coffee/entity"
	"github.com/rokan2059/coffee/repository"
)

// SeedMenu writes the starter menu the first time the shop boots. An
// existing menu blob, even an empty one, is left alone.
func SeedMenu(repo *repository.BlobRepository) error {
	var existing []entity.MenuItem
	err := repo.Load(repository.BlobMenu, &existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrBlobNotFound) {
		return err
	}

	menu := []entity.MenuItem{
		{ID: "1", Name: "Caramel Macchiato", Description: "Freshly steamed milk with vanilla-flavored syrup marked with espresso.", Price: 5.50, Category: entity.CategoryHotCoffee, Image: "https://images.unsplash.com/photo-1485808191679-5f86510681a2?auto=format&fit=crop&q=80&w=400"},
		{ID: "2", Name: "Cold Brew", Description: "Handcrafted in small batches daily, slow-steeped in cool water for 20 hours.", Price: 4.75, Category: entity.CategoryIceCoffee, Image: "https://images.unsplash.com/photo-1517701604599-bb29b56509d1?auto=format&fit=crop&q=80&w=400"},
		{ID: "3", Name: "Earl Grey Tea", Description: "A bright blend of fine black teas, fragrant with citrusy bergamot.", Price: 3.50, Category: entity.CategoryTea, Image: "https://images.unsplash.com/photo-1544787210-2211d4d70404?auto=format&fit=crop&q=80&w=400"},
		{ID: "4", Name: "Iced Matcha Latte", Description: "Smooth and creamy matcha sweetened just right and served over ice.", Price: 6.25, Category: entity.CategoryIceCoffee, Image: "https://images.unsplash.com/photo-1536304993881-ff6e9eefa2a6?auto=format&fit=crop&q=80&w=400"},
	}
	if err := repo.Save(repository.BlobMenu, menu); err != nil {
		return err
	}
	log.Println("seeded starter menu:", len(menu), "items")
	return nil
}
