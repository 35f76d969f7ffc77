package domain

import "sort"

// Feature is an optional capability a business enables on its public page
type Feature string

const (
	FeatureMessaging  Feature = "messaging"
	FeatureDirections Feature = "directions"
	FeatureMenuPrices Feature = "menu_prices"
	FeatureReviews    Feature = "reviews"
	FeatureStatistics Feature = "statistics"
)

// AllFeatures lists every known feature in page order
var AllFeatures = []Feature{
	FeatureMenuPrices,
	FeatureReviews,
	FeatureMessaging,
	FeatureDirections,
	FeatureStatistics,
}

// FeatureSet is the set of capabilities enabled for a business
type FeatureSet map[Feature]struct{}

// NewFeatureSet builds a set, silently dropping unknown values
func NewFeatureSet(features ...Feature) FeatureSet {
	set := make(FeatureSet, len(features))
	for _, f := range features {
		if f.IsValid() {
			set[f] = struct{}{}
		}
	}
	return set
}

// IsValid returns true for known features
func (f Feature) IsValid() bool {
	for _, known := range AllFeatures {
		if f == known {
			return true
		}
	}
	return false
}

// Has returns true if the feature is enabled
func (s FeatureSet) Has(f Feature) bool {
	_, ok := s[f]
	return ok
}

// List returns enabled features sorted by name
func (s FeatureSet) List() []Feature {
	out := make([]Feature, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
