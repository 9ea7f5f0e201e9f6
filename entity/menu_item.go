package entity

type Category string

const (
	CategoryHotCoffee Category = "Hot Coffee"
	CategoryIceCoffee Category = "Ice Coffee"
	CategoryTea       Category = "Tea"
	CategorySpecialty Category = "Specialty"
	CategoryBakery    Category = "Bakery"
)

// Categories is the fixed set shown on the menu, in display order.
var Categories = []Category{
	CategoryHotCoffee, CategoryIceCoffee, CategoryTea, CategorySpecialty, CategoryBakery,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
}
