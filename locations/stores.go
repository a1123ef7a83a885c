package locations

import "kacip-storefront/models"

func sameHours(open string) models.StoreHours {
	return models.StoreHours{
		Monday: open, Tuesday: open, Wednesday: open, Thursday: open,
		Friday: open, Saturday: open, Sunday: open,
	}
}

// DefaultStores is the Klang Valley store list
func DefaultStores() []models.Store {
	return []models.Store{
		{
			ID: "store-kl-central", Name: "KL Central",
			Address: "Lot G-23, Ground Floor, Nu Sentral", City: "Kuala Lumpur",
			State: "Federal Territory", ZipCode: "50470", Phone: "+60 3-2274 1234",
			Coordinates: models.Coordinates{Lat: 3.1336, Lng: 101.6869},
			Hours: models.StoreHours{
				Monday: "7:00 AM - 10:00 PM", Tuesday: "7:00 AM - 10:00 PM",
				Wednesday: "7:00 AM - 10:00 PM", Thursday: "7:00 AM - 10:00 PM",
				Friday: "7:00 AM - 11:00 PM", Saturday: "8:00 AM - 11:00 PM",
				Sunday: "8:00 AM - 10:00 PM",
			},
			Features: []models.StoreFeature{models.FeatureWifi, models.FeatureParking, models.FeatureMobileOrder, models.FeatureDelivery},
			Image:    "/images/store-kl-central.jpg",
		},
		{
			ID: "store-pavilion", Name: "Pavilion KL",
			Address: "Level 3, Pavilion Kuala Lumpur", City: "Kuala Lumpur",
			State: "Federal Territory", ZipCode: "55100", Phone: "+60 3-2142 5678",
			Coordinates: models.Coordinates{Lat: 3.1493, Lng: 101.7143},
			Hours:       sameHours("10:00 AM - 10:00 PM"),
			Features:    []models.StoreFeature{models.FeatureWifi, models.FeatureOutdoorSeating, models.FeatureMobileOrder},
			Image:       "/images/store-pavilion.jpg",
		},
		{
			ID: "store-bangsar", Name: "Bangsar Village",
			Address: "G-12, Bangsar Village II", City: "Kuala Lumpur",
			State: "Federal Territory", ZipCode: "59100", Phone: "+60 3-2282 9012",
			Coordinates: models.Coordinates{Lat: 3.1285, Lng: 101.6714},
			Hours: models.StoreHours{
				Monday: "7:30 AM - 9:30 PM", Tuesday: "7:30 AM - 9:30 PM",
				Wednesday: "7:30 AM - 9:30 PM", Thursday: "7:30 AM - 9:30 PM",
				Friday: "7:30 AM - 10:00 PM", Saturday: "8:00 AM - 10:00 PM",
				Sunday: "8:00 AM - 9:30 PM",
			},
			Features: []models.StoreFeature{models.FeatureWifi, models.FeatureParking, models.FeatureOutdoorSeating, models.FeatureMobileOrder, models.FeatureDelivery},
			Image:    "/images/store-bangsar.jpg",
		},
		{
			ID: "store-mid-valley", Name: "Mid Valley Megamall",
			Address: "LG-234, Lower Ground Floor", City: "Kuala Lumpur",
			State: "Federal Territory", ZipCode: "58000", Phone: "+60 3-2938 3456",
			Coordinates: models.Coordinates{Lat: 3.1185, Lng: 101.6774},
			Hours:       sameHours("10:00 AM - 10:00 PM"),
			Features:    []models.StoreFeature{models.FeatureWifi, models.FeatureParking, models.FeatureMobileOrder},
			Image:       "/images/store-mid-valley.jpg",
		},
		{
			ID: "store-pj", Name: "Petaling Jaya",
			Address: "45, Jalan SS 2/24, SS 2", City: "Petaling Jaya",
			State: "Selangor", ZipCode: "47300", Phone: "+60 3-7875 2345",
			Coordinates: models.Coordinates{Lat: 3.1166, Lng: 101.6197},
			Hours: models.StoreHours{
				Monday: "7:00 AM - 9:00 PM", Tuesday: "7:00 AM - 9:00 PM",
				Wednesday: "7:00 AM - 9:00 PM", Thursday: "7:00 AM - 9:00 PM",
				Friday: "7:00 AM - 10:00 PM", Saturday: "8:00 AM - 10:00 PM",
				Sunday: "8:00 AM - 9:00 PM",
			},
			Features: []models.StoreFeature{models.FeatureWifi, models.FeatureParking, models.FeatureDriveThru, models.FeatureMobileOrder, models.FeatureDelivery},
			Image:    "/images/store-pj.jpg",
		},
		{
			ID: "store-sunway", Name: "Sunway Pyramid",
			Address: "LG2.112, Sunway Pyramid Shopping Mall", City: "Subang Jaya",
			State: "Selangor", ZipCode: "47500", Phone: "+60 3-7492 6789",
			Coordinates: models.Coordinates{Lat: 3.0733, Lng: 101.6069},
			Hours:       sameHours("10:00 AM - 10:00 PM"),
			Features:    []models.StoreFeature{models.FeatureWifi, models.FeatureParking, models.FeatureOutdoorSeating, models.FeatureMobileOrder},
			Image:       "/images/store-sunway.jpg",
		},
	}
}
