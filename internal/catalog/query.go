package catalog

import (
	"sort"
	"strings"
)

// SortKey selects the ordering of query results.
type SortKey string

const (
	SortDistance     SortKey = "distance"     // nearest first
	SortPrice        SortKey = "price"        // cheapest first
	SortAvailability SortKey = "availability" // highest available/total ratio first
	SortRating       SortKey = "rating"       // highest rating first
)

// Filter narrows results to lots carrying a feature. Filter24Hour matches
// the operating-hours descriptor exactly rather than a feature tag.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterEV       Filter = "ev"
	FilterHandicap Filter = "handicap"
	FilterSecurity Filter = "security"
	Filter24Hour   Filter = "24h"
	FilterCovered  Filter = "covered"
)

var filterFeatures = map[Filter]string{
	FilterEV:       FeatureEVCharging,
	FilterHandicap: FeatureHandicap,
	FilterSecurity: FeatureSecurity,
	FilterCovered:  FeatureCovered,
}

// LoadMoreStep is how many more lots a "load more" request reveals.
const LoadMoreStep = 4

// Query describes one pass over the catalog. The zero value matches
// everything in catalog order.
type Query struct {
	Search string
	Filter Filter
	Sort   SortKey
	Limit  int // 0 or negative means no limit
}

// Find runs search, filter, sort and pagination over the catalog. It has no
// side effects and may be called on every keystroke. Sorting is stable, so
// ties keep their original catalog order.
func (s *Store) Find(q Query) []Lot {
	lots := make([]Lot, 0, len(s.lots))
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, lot := range s.lots {
		if term != "" &&
			!strings.Contains(strings.ToLower(lot.Name), term) &&
			!strings.Contains(strings.ToLower(lot.Address), term) {
			continue
		}
		if !matchesFilter(lot, q.Filter) {
			continue
		}
		lots = append(lots, lot)
	}

	switch q.Sort {
	case SortDistance:
		sort.SliceStable(lots, func(i, j int) bool { return lots[i].DistanceMiles < lots[j].DistanceMiles })
	case SortPrice:
		sort.SliceStable(lots, func(i, j int) bool { return lots[i].PricePerHour < lots[j].PricePerHour })
	case SortAvailability:
		sort.SliceStable(lots, func(i, j int) bool { return lots[i].AvailabilityRatio() > lots[j].AvailabilityRatio() })
	case SortRating:
		sort.SliceStable(lots, func(i, j int) bool { return lots[i].Rating > lots[j].Rating })
	}

	if q.Limit > 0 && q.Limit < len(lots) {
		lots = lots[:q.Limit]
	}
	return lots
}

func matchesFilter(lot Lot, f Filter) bool {
	switch f {
	case "", FilterAll:
		return true
	case Filter24Hour:
		return lot.Hours == HoursAlwaysOpen
	default:
		feature, ok := filterFeatures[f]
		if !ok {
			return true
		}
		return lot.HasFeature(feature)
	}
}

// NextLimit grows a page size by LoadMoreStep, capped at the result length.
func NextLimit(current, total int) int {
	next := current + LoadMoreStep
	if next > total {
		next = total
	}
	return next
}
