package models

// StoreFeature is an amenity tag shown on the store locator
type StoreFeature string

const (
	FeatureWifi           StoreFeature = "wifi"
	FeatureParking        StoreFeature = "parking"
	FeatureOutdoorSeating StoreFeature = "outdoor-seating"
	FeatureDriveThru      StoreFeature = "drive-thru"
	FeatureMobileOrder    StoreFeature = "mobile-order"
	FeatureDelivery       StoreFeature = "delivery"
)

type Store struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	ZipCode     string         `json:"zip_code"`
	Phone       string         `json:"phone"`
	Hours       StoreHours     `json:"hours"`
	Coordinates Coordinates    `json:"coordinates"`
	Features    []StoreFeature `json:"features"`
	Image       string         `json:"image,omitempty"`
}

type StoreHours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
