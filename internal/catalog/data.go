package catalog

var defaultLots = []Lot{
	{
		ID:             1,
		Name:           "Eastgate Shopping Centre",
		Address:        "43 Bradford Rd, Bedfordview, Johannesburg",
		DistanceMiles:  0.2,
		AvailableSpots: 45,
		TotalSpots:     200,
		PricePerHour:   25,
		Hours:          HoursAlwaysOpen,
		Features:       []string{FeatureEVCharging, FeatureSecurity, FeatureHandicap},
		Rating:         4.8,
		Badges:         []string{"Secure Zone", "24/7", "Wheelchair Friendly"},
	},
	{
		ID:             2,
		Name:           "Mall of Africa",
		Address:        "Cnr Lone Creek & Magwa Crescent, Waterfall City, Midrand",
		DistanceMiles:  0.4,
		AvailableSpots: 12,
		TotalSpots:     150,
		PricePerHour:   20,
		Hours:          "6 AM - 11 PM",
		Features:       []string{FeatureSecurity, FeatureHandicap},
		Rating:         4.5,
		Badges:         []string{"Secure Zone", "Backup Power"},
	},
	{
		ID:             3,
		Name:           "Sandton City",
		Address:        "Cnr Rivonia Rd & 5th St, Sandton, Johannesburg",
		DistanceMiles:  0.6,
		AvailableSpots: 89,
		TotalSpots:     300,
		PricePerHour:   15,
		Hours:          HoursAlwaysOpen,
		Features:       []string{FeatureEVCharging, FeatureHandicap},
		Rating:         4.2,
		Badges:         []string{"Secure Zone", "24/7", "Premium Location"},
	},
	{
		ID:             4,
		Name:           "Rosebank Mall",
		Address:        "50 Bath Ave, Rosebank, Johannesburg",
		DistanceMiles:  0.8,
		AvailableSpots: 156,
		TotalSpots:     400,
		PricePerHour:   18,
		Hours:          "8 AM - 10 PM",
		Features:       []string{FeatureEVCharging, FeatureSecurity},
		Rating:         4.6,
		Badges:         []string{"Secure Zone", "EV Friendly"},
	},
	{
		ID:             5,
		Name:           "Menlyn Park Shopping Centre",
		Address:        "Atterbury Rd, Menlyn, Pretoria",
		DistanceMiles:  1.2,
		AvailableSpots: 78,
		TotalSpots:     250,
		PricePerHour:   22,
		Hours:          "9 AM - 9 PM",
		Features:       []string{FeatureSecurity, FeatureHandicap, FeatureCovered},
		Rating:         4.4,
		Badges:         []string{"Secure Zone", "Covered Parking"},
	},
	{
		ID:             6,
		Name:           "Gateway Theatre of Shopping",
		Address:        "1 Palm Blvd, Umhlanga Ridge, Durban",
		DistanceMiles:  1.5,
		AvailableSpots: 34,
		TotalSpots:     180,
		PricePerHour:   28,
		Hours:          "9 AM - 10 PM",
		Features:       []string{FeatureEVCharging, FeatureSecurity, FeatureHandicap},
		Rating:         4.7,
		Badges:         []string{"Secure Zone", "Premium Location", "EV Friendly"},
	},
	{
		ID:             7,
		Name:           "Canal Walk Shopping Centre",
		Address:        "Century Blvd, Century City, Cape Town",
		DistanceMiles:  1.8,
		AvailableSpots: 92,
		TotalSpots:     320,
		PricePerHour:   16,
		Hours:          "9 AM - 9 PM",
		Features:       []string{FeatureSecurity, FeatureHandicap},
		Rating:         4.3,
		Badges:         []string{"Secure Zone", "Family Friendly"},
	},
	{
		ID:             8,
		Name:           "Cavendish Square",
		Address:        "Cnr Main Rd & Cavendish Rd, Claremont, Cape Town",
		DistanceMiles:  2.1,
		AvailableSpots: 45,
		TotalSpots:     200,
		PricePerHour:   19,
		Hours:          "8 AM - 8 PM",
		Features:       []string{FeatureEVCharging, FeatureSecurity},
		Rating:         4.5,
		Badges:         []string{"Secure Zone", "EV Friendly"},
	},
	{
		ID:             9,
		Name:           "Brooklyn Mall",
		Address:        "Cnr Bronkhorst St & Veale St, Brooklyn, Pretoria",
		DistanceMiles:  2.3,
		AvailableSpots: 67,
		TotalSpots:     220,
		PricePerHour:   17,
		Hours:          "8 AM - 9 PM",
		Features:       []string{FeatureSecurity, FeatureHandicap, FeatureCovered},
		Rating:         4.1,
		Badges:         []string{"Secure Zone", "Covered Parking"},
	},
	{
		ID:             10,
		Name:           "Fourways Mall",
		Address:        "Cnr William Nicol Dr & Fourways Blvd, Fourways, Johannesburg",
		DistanceMiles:  2.5,
		AvailableSpots: 123,
		TotalSpots:     350,
		PricePerHour:   21,
		Hours:          "9 AM - 9 PM",
		Features:       []string{FeatureEVCharging, FeatureSecurity, FeatureHandicap},
		Rating:         4.6,
		Badges:         []string{"Secure Zone", "EV Friendly", "Family Friendly"},
	},
	{
		ID:             11,
		Name:           "V&A Waterfront",
		Address:        "Dock Rd, Victoria & Alfred Waterfront, Cape Town",
		DistanceMiles:  2.8,
		AvailableSpots: 89,
		TotalSpots:     280,
		PricePerHour:   30,
		Hours:          HoursAlwaysOpen,
		Features:       []string{FeatureEVCharging, FeatureSecurity, FeatureHandicap, FeatureCovered},
		Rating:         4.9,
		Badges:         []string{"Secure Zone", "24/7", "Premium Location", "Covered Parking"},
	},
	{
		ID:             12,
		Name:           "Greenstone Mall",
		Address:        "Cnr Modderfontein Rd & Van Riebeeck Ave, Edenvale, Johannesburg",
		DistanceMiles:  3.0,
		AvailableSpots: 56,
		TotalSpots:     190,
		PricePerHour:   18,
		Hours:          "8 AM - 8 PM",
		Features:       []string{FeatureSecurity, FeatureHandicap},
		Rating:         4.2,
		Badges:         []string{"Secure Zone", "Family Friendly"},
	},
}
