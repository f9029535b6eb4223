package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
)

const (
	earthRadiusKm    = 6371
	maxNearbyResults = 5
)

// Defaults used when no position is available: Gwangju city center and the
// standard search radius.
const (
	DefaultLatitude  = 35.1595454
	DefaultLongitude = 126.8526012
	DefaultRadiusKm  = 5
)

// NearbyFilter narrows nearby-office results. An office with no category
// passes the category filter regardless; the keyword filter is a
// case-sensitive substring match over name and address.
type NearbyFilter struct {
	Categories []types.OfficeCategory `json:"categories,omitempty" toml:"categories"`
	Keywords   []string               `json:"keywords,omitempty" toml:"keywords"`
}

// HaversineKm computes the great-circle distance in kilometers between two
// coordinates.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// Locate computes the distance from the user coordinate to each office,
// keeps offices within radiusKm sorted nearest-first, applies the optional
// filter, and truncates for display. When the filter empties the result the
// radius-filtered list is used instead, so over-restrictive filters never
// hide every candidate that exists within radius.
func Locate(lat, lng float64, offices []*model.Office, radiusKm float64, filter *NearbyFilter) []*model.OfficeWithDistance {
	withinRadius := make([]*model.OfficeWithDistance, 0, len(offices))
	for _, office := range offices {
		if office == nil {
			continue
		}
		distance := HaversineKm(lat, lng, office.Latitude, office.Longitude)
		if distance > radiusKm {
			continue
		}
		withinRadius = append(withinRadius, &model.OfficeWithDistance{
			Office:     *office,
			DistanceKm: distance,
		})
	}

	sort.SliceStable(withinRadius, func(i, j int) bool {
		return withinRadius[i].DistanceKm < withinRadius[j].DistanceKm
	})

	result := applyNearbyFilter(withinRadius, filter)
	if len(result) == 0 {
		result = withinRadius
	}
	if len(result) > maxNearbyResults {
		result = result[:maxNearbyResults]
	}
	return result
}

func applyNearbyFilter(offices []*model.OfficeWithDistance, filter *NearbyFilter) []*model.OfficeWithDistance {
	if filter == nil {
		return offices
	}

	filtered := offices
	if len(filter.Categories) > 0 {
		kept := make([]*model.OfficeWithDistance, 0, len(filtered))
		for _, office := range filtered {
			if office.Category == "" || containsCategory(filter.Categories, office.Category) {
				kept = append(kept, office)
			}
		}
		filtered = kept
	}

	if len(filter.Keywords) > 0 {
		kept := make([]*model.OfficeWithDistance, 0, len(filtered))
		for _, office := range filtered {
			if matchesKeyword(office, filter.Keywords) {
				kept = append(kept, office)
			}
		}
		filtered = kept
	}

	return filtered
}

func containsCategory(categories []types.OfficeCategory, category types.OfficeCategory) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}

func matchesKeyword(office *model.OfficeWithDistance, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(office.Name, keyword) || strings.Contains(office.Address, keyword) {
			return true
		}
	}
	return false
}

// FormatDistance renders a distance for display: meters under one
// kilometer, otherwise one decimal place in kilometers.
func FormatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%dm", int(math.Round(distanceKm*1000)))
	}
	return fmt.Sprintf("%.1fkm", distanceKm)
}
