package model

import "github.com/cloudbridge-lab/minwon/pkg/domain/types"

// Office is one government office location.
type Office struct {
	ID           string               `json:"id" toml:"id"`
	Name         string               `json:"name" toml:"name"`
	Category     types.OfficeCategory `json:"category,omitempty" toml:"category"`
	RegionCode   string               `json:"regionCode,omitempty" toml:"region_code"`
	Address      string               `json:"address" toml:"address"`
	Phone        string               `json:"phone,omitempty" toml:"phone"`
	OpeningHours string               `json:"openingHours,omitempty" toml:"opening_hours"`
	Notes        string               `json:"notes,omitempty" toml:"notes"`
	Latitude     float64              `json:"latitude" toml:"latitude"`
	Longitude    float64              `json:"longitude" toml:"longitude"`
}

// OfficeWithDistance is an office annotated with its distance from a query
// coordinate. Never persisted; recomputed per query.
type OfficeWithDistance struct {
	Office
	DistanceKm float64 `json:"distanceKm"`
}
