// Package customers is the in-memory customer directory of the admin console.
package customers

import (
	"errors"
	"strings"
	"sync"
	"time"

	"kacip-storefront/models"
)

var ErrNotFound = errors.New("customer not found")

// Filter narrows List; zero fields match everything
type Filter struct {
	Status models.CustomerStatus
	// Query matches name, email or phone, case-insensitively
	Query string
}

type Directory struct {
	mu        sync.RWMutex
	customers []models.Customer
	now       func() time.Time
}

func NewDirectory(seed []models.Customer) *Directory {
	d := &Directory{now: time.Now}
	for _, c := range seed {
		d.customers = append(d.customers, clone(c))
	}
	return d
}

func (d *Directory) List(f Filter) []models.Customer {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	d.mu.RLock()
	defer d.mu.RUnlock()
	result := []models.Customer{}
	for _, c := range d.customers {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) &&
			!strings.Contains(strings.ToLower(c.Phone), q) {
			continue
		}
		result = append(result, clone(c))
	}
	return result
}

func (d *Directory) Get(id string) (models.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.customers {
		if c.ID == id {
			return clone(c), nil
		}
	}
	return models.Customer{}, ErrNotFound
}

// ToggleStatus flips a customer between active and inactive
func (d *Directory) ToggleStatus(id string) (models.Customer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.customers {
		c := &d.customers[i]
		if c.ID != id {
			continue
		}
		if c.Status == models.CustomerActive {
			c.Status = models.CustomerInactive
		} else {
			c.Status = models.CustomerActive
		}
		return clone(*c), nil
	}
	return models.Customer{}, ErrNotFound
}

type Stats struct {
	Total        int     `json:"total_customers"`
	Active       int     `json:"active_customers"`
	NewThisMonth int     `json:"new_this_month"`
	TotalRevenue float64 `json:"total_revenue"`
}

func (d *Directory) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	now := d.now()
	st := Stats{Total: len(d.customers)}
	for _, c := range d.customers {
		if c.Status == models.CustomerActive {
			st.Active++
		}
		joined := c.JoinedDate.In(now.Location())
		if joined.Year() == now.Year() && joined.Month() == now.Month() {
			st.NewThisMonth++
		}
		st.TotalRevenue += c.TotalSpent
	}
	return st
}

func clone(c models.Customer) models.Customer {
	c.FavoriteItems = append([]string(nil), c.FavoriteItems...)
	if c.LastOrderDate != nil {
		t := *c.LastOrderDate
		c.LastOrderDate = &t
	}
	return c
}
