// Package orders is the in-memory order book behind checkout and the admin orders screen.
package orders

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"kacip-storefront/cart"
	"kacip-storefront/models"
	"kacip-storefront/statemachine"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidOrder  = errors.New("invalid order")
	ErrInvalidStatus = errors.New("unknown order status")
)

// Checkout carries what the customer fills in at checkout
type Checkout struct {
	CustomerID      string
	CustomerName    string
	CustomerEmail   string
	OrderType       models.OrderType
	PaymentMethod   models.PaymentMethod
	DeliveryAddress string
	Notes           string
}

// Filter narrows List. Zero fields match everything.
type Filter struct {
	Status     models.OrderStatus
	CustomerID string
	// Query matches order number, customer name or email, case-insensitively
	Query string
}

type Book struct {
	mu         sync.RWMutex
	orders     []models.Order
	nextID     uint
	nextNumber int
	now        func() time.Time
}

// NewBook starts a book holding seed. New orders are numbered after the highest seeded one.
func NewBook(seed []models.Order) *Book {
	b := &Book{nextID: 1, nextNumber: 1001, now: time.Now}
	for _, o := range seed {
		b.orders = append(b.orders, cloneOrder(o))
		if o.ID >= b.nextID {
			b.nextID = o.ID + 1
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(o.OrderNumber, "#")); err == nil && n >= b.nextNumber {
			b.nextNumber = n + 1
		}
	}
	return b
}

// Place turns a cart into a pending order. Line names and prices are copied from the cart
// snapshot, not from the live catalog.
func (b *Book) Place(req Checkout, lines []cart.Line) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if req.OrderType == "" {
		req.OrderType = models.OrderPickup
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentCard
	}
	switch req.OrderType {
	case models.OrderPickup, models.OrderDineIn:
	case models.OrderDelivery:
		if strings.TrimSpace(req.DeliveryAddress) == "" {
			return models.Order{}, fmt.Errorf("%w: delivery orders need an address", ErrInvalidOrder)
		}
	default:
		return models.Order{}, fmt.Errorf("%w: unknown order type %q", ErrInvalidOrder, req.OrderType)
	}

	order := models.Order{
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		Status:          models.StatusPending,
		OrderType:       req.OrderType,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   models.PaymentPending,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	}
	for _, l := range lines {
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: l.ID,
			Name:       l.Name,
			Price:      l.Price,
			Quantity:   l.Quantity,
		})
		order.ItemCount += l.Quantity
		order.Total += l.Subtotal()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	order.ID = b.nextID
	order.OrderNumber = "#" + strconv.Itoa(b.nextNumber)
	order.CreatedAt = now
	order.UpdatedAt = now
	order.StatusHistory = []models.OrderStatusHistory{{
		ToStatus:  models.StatusPending,
		Actor:     string(statemachine.ActorCustomer),
		Note:      "Order placed",
		CreatedAt: now,
	}}
	b.nextID++
	b.nextNumber++
	b.orders = append(b.orders, order)
	return cloneOrder(order), nil
}

// List returns the matching orders, newest first
func (b *Book) List(f Filter) []models.Order {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	b.mu.RLock()
	defer b.mu.RUnlock()
	result := []models.Order{}
	for _, o := range b.orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(o.OrderNumber), q) &&
			!strings.Contains(strings.ToLower(o.CustomerName), q) &&
			!strings.Contains(strings.ToLower(o.CustomerEmail), q) {
			continue
		}
		result = append(result, cloneOrder(o))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (b *Book) Get(id uint) (models.Order, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	i := b.indexLocked(id)
	if i < 0 {
		return models.Order{}, ErrNotFound
	}
	return cloneOrder(b.orders[i]), nil
}

// UpdateStatus moves an order along its lifecycle if actor may make that move
func (b *Book) UpdateStatus(id uint, to models.OrderStatus, actor statemachine.Actor, note string) (models.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexLocked(id)
	if i < 0 {
		return models.Order{}, ErrNotFound
	}
	if err := statemachine.CanTransition(b.orders[i].Status, to, actor); err != nil {
		return models.Order{}, err
	}
	b.applyLocked(i, to, string(actor), note)
	return cloneOrder(b.orders[i]), nil
}

// ForceStatus lets an admin override any order state (emergency use)
func (b *Book) ForceStatus(id uint, to models.OrderStatus, reason string) (models.Order, error) {
	if !to.Valid() {
		return models.Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexLocked(id)
	if i < 0 {
		return models.Order{}, ErrNotFound
	}
	b.applyLocked(i, to, "admin", "Admin override: "+reason)
	return cloneOrder(b.orders[i]), nil
}

func (b *Book) applyLocked(i int, to models.OrderStatus, actor, note string) {
	o := &b.orders[i]
	now := b.now()
	o.StatusHistory = append(o.StatusHistory, models.OrderStatusHistory{
		FromStatus: o.Status,
		ToStatus:   to,
		Actor:      actor,
		Note:       note,
		CreatedAt:  now,
	})
	o.Status = to
	o.UpdatedAt = now

	switch {
	case to == models.StatusCompleted && o.PaymentStatus == models.PaymentPending:
		o.PaymentStatus = models.PaymentPaid
	case to == models.StatusCancelled && o.PaymentStatus == models.PaymentPaid:
		o.PaymentStatus = models.PaymentRefunded
	}
}

func (b *Book) indexLocked(id uint) int {
	for i, o := range b.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// Stats aggregates the book for the admin dashboard
type Stats struct {
	Total        int                        `json:"total"`
	ByStatus     map[models.OrderStatus]int `json:"by_status"`
	Revenue      float64                    `json:"revenue"`
	OrdersToday  int                        `json:"orders_today"`
	RevenueToday float64                    `json:"revenue_today"`
}

// Stats counts every order; revenue only includes completed ones
func (b *Book) Stats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	now := b.now()
	y, m, d := now.Date()
	st := Stats{Total: len(b.orders), ByStatus: map[models.OrderStatus]int{}}
	for _, s := range models.OrderStatuses {
		st.ByStatus[s] = 0
	}
	for _, o := range b.orders {
		st.ByStatus[o.Status]++
		oy, om, od := o.CreatedAt.In(now.Location()).Date()
		today := oy == y && om == m && od == d
		if today {
			st.OrdersToday++
		}
		if o.Status == models.StatusCompleted {
			st.Revenue += o.Total
			if today {
				st.RevenueToday += o.Total
			}
		}
	}
	return st
}

func cloneOrder(o models.Order) models.Order {
	o.Items = append([]models.OrderItem(nil), o.Items...)
	o.StatusHistory = append([]models.OrderStatusHistory(nil), o.StatusHistory...)
	return o
}
