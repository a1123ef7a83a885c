package customers

import (
	"time"

	"kacip-storefront/models"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func lastOrder(s string) *time.Time {
	t := day(s)
	return &t
}

// DemoCustomers seeds the admin customer directory
func DemoCustomers() []models.Customer {
	return []models.Customer{
		{
			ID: "1", Name: "Ahmad Ibrahim", Email: "ahmad.ibrahim@email.com", Phone: "+60 12-345 6789",
			JoinedDate: day("2024-01-15"), TotalOrders: 45, TotalSpent: 1250.50, RewardPoints: 450,
			Status: models.CustomerActive, LastOrderDate: lastOrder("2024-12-08"),
			FavoriteItems: []string{"Kacip Latte", "Espresso"},
		},
		{
			ID: "2", Name: "Siti Nurhaliza", Email: "siti.nur@email.com", Phone: "+60 13-456 7890",
			JoinedDate: day("2024-02-20"), TotalOrders: 32, TotalSpent: 890.25, RewardPoints: 320,
			Status: models.CustomerActive, LastOrderDate: lastOrder("2024-12-09"),
			FavoriteItems: []string{"Cappuccino", "Croissant"},
		},
		{
			ID: "3", Name: "Muhammad Ali", Email: "muhammad.ali@email.com", Phone: "+60 14-567 8901",
			JoinedDate: day("2024-03-10"), TotalOrders: 28, TotalSpent: 675.00, RewardPoints: 280,
			Status: models.CustomerActive, LastOrderDate: lastOrder("2024-12-07"),
			FavoriteItems: []string{"Americano"},
		},
		{
			ID: "4", Name: "Fatimah Zahra", Email: "fatimah.z@email.com", Phone: "+60 15-678 9012",
			JoinedDate: day("2024-04-05"), TotalOrders: 18, TotalSpent: 425.75, RewardPoints: 180,
			Status: models.CustomerActive, LastOrderDate: lastOrder("2024-12-05"),
		},
		{
			ID: "5", Name: "Hassan Abdullah", Email: "hassan.a@email.com",
			JoinedDate: day("2024-05-12"), TotalOrders: 12, TotalSpent: 310.00, RewardPoints: 120,
			Status: models.CustomerInactive, LastOrderDate: lastOrder("2024-11-20"),
		},
		{
			ID: "6", Name: "Nurul Aina", Email: "nurul.aina@email.com", Phone: "+60 17-890 1234",
			JoinedDate: day("2024-06-18"), TotalOrders: 25, TotalSpent: 580.50, RewardPoints: 250,
			Status: models.CustomerActive, LastOrderDate: lastOrder("2024-12-10"),
			FavoriteItems: []string{"Mocha", "Chocolate Cake"},
		},
		{
			ID: "7", Name: "Azman Razak", Email: "azman.r@email.com", Phone: "+60 18-901 2345",
			JoinedDate: day("2024-07-22"), TotalOrders: 8, TotalSpent: 195.00, RewardPoints: 80,
			Status: models.CustomerInactive, LastOrderDate: lastOrder("2024-10-15"),
		},
		{
			ID: "8", Name: "Zainab Mohd", Email: "zainab.m@email.com", Phone: "+60 19-012 3456",
			JoinedDate: day("2024-08-30"), TotalOrders: 35, TotalSpent: 920.75, RewardPoints: 350,
			Status: models.CustomerActive, LastOrderDate: lastOrder("2024-12-09"),
			FavoriteItems: []string{"Latte", "Matcha Latte"},
		},
	}
}
