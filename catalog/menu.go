package catalog

import "kacip-storefront/models"

func caffeine(mg int) *int { return &mg }

var milkAndSize = []models.Customization{
	{
		ID:       "milk-type",
		Name:     "Milk Type",
		Required: true,
		Options: []models.CustomizationOption{
			{ID: "whole", Name: "Whole Milk", PriceModifier: 0},
			{ID: "oat", Name: "Oat Milk", PriceModifier: 0.50},
			{ID: "almond", Name: "Almond Milk", PriceModifier: 0.50},
			{ID: "soy", Name: "Soy Milk", PriceModifier: 0.50},
		},
	},
	{
		ID:       "size",
		Name:     "Size",
		Required: true,
		Options: []models.CustomizationOption{
			{ID: "small", Name: "Small", PriceModifier: 0},
			{ID: "medium", Name: "Medium", PriceModifier: 0.75},
			{ID: "large", Name: "Large", PriceModifier: 1.50},
		},
	},
}

// DefaultMenu is the storefront menu loaded at startup
func DefaultMenu() []models.MenuItem {
	items := []models.MenuItem{
		// Coffee
		{
			ID: "espresso", Name: "Classic Espresso", Category: models.CategoryCoffee, Price: 3.50,
			Description: "Rich and bold espresso shot, perfectly extracted",
			Image:       "/images/espresso.jpg", IsPopular: true,
			Nutrition: &models.NutritionInfo{Calories: 5, Carbs: 1, Caffeine: caffeine(75)},
		},
		{
			ID: "latte", Name: "Caffe Latte", Category: models.CategoryCoffee, Price: 4.50,
			Description: "Smooth espresso with steamed milk and a light foam",
			Image:       "/images/latte.jpg", IsPopular: true,
			Customizations: milkAndSize,
			Nutrition:      &models.NutritionInfo{Calories: 150, Protein: 8, Carbs: 14, Fat: 6, Caffeine: caffeine(75)},
		},
		{
			ID: "cappuccino", Name: "Cappuccino", Category: models.CategoryCoffee, Price: 4.25,
			Description: "Equal parts espresso, steamed milk, and foam",
			Image:       "/images/cappuccino.jpg", IsPopular: true,
			Nutrition: &models.NutritionInfo{Calories: 120, Protein: 6, Carbs: 12, Fat: 4, Caffeine: caffeine(75)},
		},
		{
			ID: "americano", Name: "Americano", Category: models.CategoryCoffee, Price: 3.75,
			Description: "Espresso diluted with hot water for a smooth finish",
			Image:       "/images/americano.jpg",
			Nutrition:   &models.NutritionInfo{Calories: 10, Carbs: 2, Caffeine: caffeine(150)},
		},
		{
			ID: "mocha", Name: "Mocha", Category: models.CategoryCoffee, Price: 5.25,
			Description: "Rich chocolate and espresso with steamed milk",
			Image:       "/images/mocha.jpg", IsNew: true,
			Nutrition: &models.NutritionInfo{Calories: 290, Protein: 10, Carbs: 35, Fat: 12, Caffeine: caffeine(95)},
		},
		{
			ID: "flat-white", Name: "Flat White", Category: models.CategoryCoffee, Price: 4.75,
			Description: "Velvety microfoam over a double shot of espresso",
			Image:       "/images/flat-white.jpg",
			Nutrition:   &models.NutritionInfo{Calories: 130, Protein: 7, Carbs: 11, Fat: 5, Caffeine: caffeine(130)},
		},
		{
			ID: "cold-brew", Name: "Cold Brew", Category: models.CategoryCoffee, Price: 4.50,
			Description: "Smooth, slow-steeped coffee served over ice",
			Image:       "/images/cold-brew.jpg", IsPopular: true,
			Nutrition: &models.NutritionInfo{Calories: 5, Carbs: 1, Caffeine: caffeine(200)},
		},

		// Non-coffee
		{
			ID: "matcha-latte", Name: "Matcha Latte", Category: models.CategoryNonCoffee, Price: 5.50,
			Description: "Premium Japanese matcha with steamed milk",
			Image:       "/images/matcha.jpg", IsPopular: true, IsNew: true,
			Nutrition: &models.NutritionInfo{Calories: 190, Protein: 8, Carbs: 28, Fat: 5, Caffeine: caffeine(70)},
		},
		{
			ID: "chai-latte", Name: "Chai Latte", Category: models.CategoryNonCoffee, Price: 4.75,
			Description: "Spiced black tea with steamed milk and honey",
			Image:       "/images/chai.jpg",
			Nutrition:   &models.NutritionInfo{Calories: 240, Protein: 6, Carbs: 42, Fat: 5, Caffeine: caffeine(50)},
		},
		{
			ID: "hot-chocolate", Name: "Hot Chocolate", Category: models.CategoryNonCoffee, Price: 4.25,
			Description: "Rich Belgian chocolate with steamed milk",
			Image:       "/images/hot-chocolate.jpg",
			Nutrition:   &models.NutritionInfo{Calories: 320, Protein: 12, Carbs: 45, Fat: 12, Caffeine: caffeine(15)},
		},

		// Food
		{
			ID: "croissant", Name: "Butter Croissant", Category: models.CategoryFood, Price: 3.50,
			Description: "Flaky, buttery French pastry",
			Image:       "/images/croissant.jpg", IsPopular: true,
			Nutrition: &models.NutritionInfo{Calories: 280, Protein: 5, Carbs: 32, Fat: 15},
		},
		{
			ID: "avocado-toast", Name: "Avocado Toast", Category: models.CategoryFood, Price: 7.50,
			Description: "Fresh avocado on artisan sourdough with cherry tomatoes",
			Image:       "/images/avocado-toast.jpg", IsPopular: true,
			Nutrition: &models.NutritionInfo{Calories: 350, Protein: 12, Carbs: 38, Fat: 18},
		},
		{
			ID: "breakfast-sandwich", Name: "Breakfast Sandwich", Category: models.CategoryFood, Price: 6.50,
			Description: "Egg, cheese, and bacon on a toasted English muffin",
			Image:       "/images/breakfast-sandwich.jpg",
			Nutrition:   &models.NutritionInfo{Calories: 420, Protein: 22, Carbs: 35, Fat: 22},
		},

		// Desserts
		{
			ID: "chocolate-cake", Name: "Chocolate Cake", Category: models.CategoryDessert, Price: 5.50,
			Description: "Decadent triple chocolate layer cake",
			Image:       "/images/chocolate-cake.jpg",
			Nutrition:   &models.NutritionInfo{Calories: 450, Protein: 6, Carbs: 58, Fat: 24},
		},
		{
			ID: "cheesecake", Name: "New York Cheesecake", Category: models.CategoryDessert, Price: 6.00,
			Description: "Classic creamy cheesecake with graham cracker crust",
			Image:       "/images/cheesecake.jpg", IsPopular: true,
			Nutrition: &models.NutritionInfo{Calories: 410, Protein: 8, Carbs: 42, Fat: 24},
		},
	}
	for i := range items {
		items[i].IsAvailable = true
	}
	return items
}
