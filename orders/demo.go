package orders

import (
	"time"

	"kacip-storefront/models"
)

// DemoOrders seeds the admin console relative to now
func DemoOrders(now time.Time) []models.Order {
	order := func(id uint, number, name, email string, items int, total float64,
		status models.OrderStatus, kind models.OrderType, age time.Duration) models.Order {
		created := now.Add(-age)
		payment := models.PaymentPending
		if status == models.StatusCompleted {
			payment = models.PaymentPaid
		}
		return models.Order{
			ID: id, OrderNumber: number,
			CustomerName: name, CustomerEmail: email,
			ItemCount: items, Total: total,
			Status: status, OrderType: kind,
			PaymentMethod: models.PaymentCard, PaymentStatus: payment,
			CreatedAt: created, UpdatedAt: created,
		}
	}
	return []models.Order{
		order(1, "#1001", "Ahmad Abdullah", "ahmad@example.com", 3, 45.50, models.StatusPending, models.OrderPickup, 0),
		order(2, "#1002", "Siti Nurhaliza", "siti@example.com", 2, 28.00, models.StatusPreparing, models.OrderDineIn, 15*time.Minute),
		order(3, "#1003", "Lee Wei Ming", "lee@example.com", 5, 67.80, models.StatusReady, models.OrderDelivery, 30*time.Minute),
		order(4, "#1004", "Raj Kumar", "raj@example.com", 1, 15.00, models.StatusCompleted, models.OrderPickup, time.Hour),
	}
}
