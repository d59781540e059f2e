package models

import "time"

// Cities a hotel can belong to. Free text is accepted on input but these are
// the values the dashboard offers.
const (
	CityMakkah  = "Makkah"
	CityMadinah = "Madinah"
	CityJeddah  = "Jeddah"
	CityTaif    = "Taif"
)

type Hotel struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	TagStatus TagStatus `json:"tag_status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateHotelRequest represents the request body for creating a hotel
type CreateHotelRequest struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// UpdateHotelRequest represents the request body for updating a hotel
type UpdateHotelRequest struct {
	Name string `json:"name"`
	City string `json:"city"`
}
