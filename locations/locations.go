// Package locations is the read-only store locator.
package locations

import (
	"math"
	"sort"
	"strings"

	"kacip-storefront/models"
)

const (
	earthRadiusKm = 6371

	// DefaultRadiusKm is used by Nearby when no positive radius is given
	DefaultRadiusKm = 10
)

// Directory answers store lookups over a fixed list
type Directory struct {
	stores []models.Store
}

func NewDirectory(stores []models.Store) *Directory {
	return &Directory{stores: append([]models.Store(nil), stores...)}
}

func (d *Directory) All() []models.Store {
	return append([]models.Store(nil), d.stores...)
}

func (d *Directory) GetByID(id string) (models.Store, bool) {
	for _, s := range d.stores {
		if s.ID == id {
			return s, true
		}
	}
	return models.Store{}, false
}

// ByCity matches the city name case-insensitively
func (d *Directory) ByCity(city string) []models.Store {
	result := []models.Store{}
	for _, s := range d.stores {
		if strings.EqualFold(s.City, strings.TrimSpace(city)) {
			result = append(result, s)
		}
	}
	return result
}

// Nearby returns the stores within radiusKm of the point, in directory order
func (d *Directory) Nearby(lat, lng, radiusKm float64) []models.Store {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	from := models.Coordinates{Lat: lat, Lng: lng}
	result := []models.Store{}
	for _, s := range d.stores {
		if Distance(from, s.Coordinates) <= radiusKm {
			result = append(result, s)
		}
	}
	return result
}

// Cities lists the distinct cities, sorted
func (d *Directory) Cities() []string {
	seen := map[string]bool{}
	cities := []string{}
	for _, s := range d.stores {
		if !seen[s.City] {
			seen[s.City] = true
			cities = append(cities, s.City)
		}
	}
	sort.Strings(cities)
	return cities
}

// Distance is the great-circle distance in kilometres (haversine)
func Distance(a, b models.Coordinates) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
