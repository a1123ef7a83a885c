package cart

import (
	"encoding/json"
	"fmt"

	"kacip-storefront/models"
)

// Line is one aggregated cart entry: a snapshot of the menu item plus its quantity.
// It serializes as every menu item field with an extra "quantity".
type Line struct {
	models.MenuItem
	Quantity int `json:"quantity"`
}

// Subtotal is price × quantity for this line
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Encode writes lines as the persisted JSON array
func Encode(lines []Line) ([]byte, error) {
	if lines == nil {
		lines = []Line{}
	}
	return json.Marshal(lines)
}

// Decode parses a persisted cart and restores the line invariants: lines without an id or
// with a non-positive quantity are dropped and repeated ids are merged.
func Decode(data []byte) ([]Line, error) {
	var raw []Line
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}

	lines := make([]Line, 0, len(raw))
	index := map[string]int{}
	for _, l := range raw {
		if l.ID == "" || l.Quantity <= 0 {
			continue
		}
		if i, ok := index[l.ID]; ok {
			lines[i].Quantity += l.Quantity
			continue
		}
		index[l.ID] = len(lines)
		lines = append(lines, l)
	}
	return lines, nil
}
