package models

import "time"

// Category groups menu items on the storefront
type Category string

const (
	CategoryCoffee      Category = "coffee"
	CategoryNonCoffee   Category = "non-coffee"
	CategoryFood        Category = "food"
	CategoryDessert     Category = "dessert"
	CategoryMerchandise Category = "merchandise"
)

// Categories lists every category in menu display order
var Categories = []Category{
	CategoryCoffee,
	CategoryNonCoffee,
	CategoryFood,
	CategoryDessert,
	CategoryMerchandise,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID             string          `json:"id" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description"`
	Category       Category        `json:"category" validate:"required,oneof=coffee non-coffee food dessert merchandise"`
	Price          float64         `json:"price" validate:"gte=0"`
	Image          string          `json:"image,omitempty"`
	IsPopular      bool            `json:"is_popular"`
	IsNew          bool            `json:"is_new"`
	IsAvailable    bool            `json:"is_available"`
	Customizations []Customization `json:"customizations,omitempty" validate:"dive"`
	Nutrition      *NutritionInfo  `json:"nutrition,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at,omitempty"`
}

// Customization is a named group of mutually selectable options
type Customization struct {
	ID            string                `json:"id" validate:"required"`
	Name          string                `json:"name" validate:"required"`
	Options       []CustomizationOption `json:"options" validate:"min=1,dive"`
	Required      bool                  `json:"required"`
	MaxSelections int                   `json:"max_selections,omitempty" validate:"gte=0"`
}

type CustomizationOption struct {
	ID            string  `json:"id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	PriceModifier float64 `json:"price_modifier"`
}

type NutritionInfo struct {
	Calories int  `json:"calories"`
	Protein  int  `json:"protein"`
	Carbs    int  `json:"carbs"`
	Fat      int  `json:"fat"`
	Caffeine *int `json:"caffeine,omitempty"`
}

// Clone returns a deep copy so cart snapshots never share slices with the catalog
func (m MenuItem) Clone() MenuItem {
	out := m
	if m.Customizations != nil {
		out.Customizations = make([]Customization, len(m.Customizations))
		for i, c := range m.Customizations {
			c.Options = append([]CustomizationOption(nil), c.Options...)
			out.Customizations[i] = c
		}
	}
	if m.Nutrition != nil {
		n := *m.Nutrition
		if n.Caffeine != nil {
			caffeine := *n.Caffeine
			n.Caffeine = &caffeine
		}
		out.Nutrition = &n
	}
	return out
}
