package catalog

import "fmt"

// Feature tags carried by a parking lot.
const (
	FeatureEVCharging = "EV Charging"
	FeatureHandicap   = "Handicap"
	FeatureSecurity   = "Security"
	FeatureCovered    = "Covered Parking"
)

// HoursAlwaysOpen is the operating-hours descriptor for lots open round the
// clock. The 24-hour filter matches this value exactly.
const HoursAlwaysOpen = "24/7"

// Lot is a single parking location. Lots are immutable once the store is
// built; distance is a precomputed catalog field, not derived from the user.
type Lot struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	DistanceMiles   float64  `json:"distance_miles"`
	AvailableSpots  int      `json:"available_spots"`
	TotalSpots      int      `json:"total_spots"`
	PricePerHour    int      `json:"price_per_hour"`
	Hours           string   `json:"hours"`
	Features        []string `json:"features"`
	Rating          float64  `json:"rating"`
	Badges          []string `json:"badges"`
}

func (l Lot) HasFeature(name string) bool {
	for _, f := range l.Features {
		if f == name {
			return true
		}
	}
	return false
}

// AvailabilityRatio is available over total spots, used for sorting.
func (l Lot) AvailabilityRatio() float64 {
	if l.TotalSpots == 0 {
		return 0
	}
	return float64(l.AvailableSpots) / float64(l.TotalSpots)
}

// Store holds the lot catalog. It is read-only after construction and safe
// to share across goroutines.
type Store struct {
	lots []Lot
	byID map[int]Lot
}

func NewStore(lots []Lot) (*Store, error) {
	s := &Store{
		lots: make([]Lot, len(lots)),
		byID: make(map[int]Lot, len(lots)),
	}
	copy(s.lots, lots)
	for _, lot := range s.lots {
		if lot.AvailableSpots < 0 || lot.AvailableSpots > lot.TotalSpots {
			return nil, fmt.Errorf("lot %d (%s): available spots %d out of range 0..%d",
				lot.ID, lot.Name, lot.AvailableSpots, lot.TotalSpots)
		}
		if _, dup := s.byID[lot.ID]; dup {
			return nil, fmt.Errorf("duplicate lot id %d", lot.ID)
		}
		s.byID[lot.ID] = lot
	}
	return s, nil
}

// DefaultStore returns the built-in ParkSmart catalog.
func DefaultStore() *Store {
	s, err := NewStore(defaultLots)
	if err != nil {
		panic(err)
	}
	return s
}

// All returns every lot in catalog order. The slice is a copy.
func (s *Store) All() []Lot {
	out := make([]Lot, len(s.lots))
	copy(out, s.lots)
	return out
}

func (s *Store) Get(id int) (Lot, bool) {
	lot, ok := s.byID[id]
	return lot, ok
}

func (s *Store) Len() int { return len(s.lots) }
