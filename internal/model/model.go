// Package model defines the domain records shared across the dashboard:
// boats, boat types, reviews, and geocoordinates. Event payloads are typed
// structs owned by the package that emits them; this package only holds the
// records those payloads refer to.
package model

import "time"

// Coordinates is a WGS 84 geographic position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BoatType categorizes boats (Fishing, Sailboat, ...). Boats reference a type
// by ID; an empty type filter matches all boats.
type BoatType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Boat is the top-level searchable record.
type Boat struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	TypeID      string      `json:"typeId"`
	TypeName    string      `json:"typeName,omitempty"`
	Length      float64     `json:"length"`
	Price       float64     `json:"price"`
	Description string      `json:"description"`
	Picture     string      `json:"picture,omitempty"`
	Geolocation Coordinates `json:"geolocation"`
}

// BoatReview belongs to exactly one boat and is created through the
// related-record write path only.
type BoatReview struct {
	ID        string    `json:"id"`
	BoatID    string    `json:"boatId"`
	Name      string    `json:"name"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// RowChange is one row of a batch update: the row ID plus the edited fields.
// Field names match the editable table columns (name, length, price,
// description).
type RowChange struct {
	RowID  string         `json:"rowId"`
	Fields map[string]any `json:"fields"`
}

// SimilarBy enumerates the comparison criteria for the similar-boats panel.
type SimilarBy string

const (
	SimilarByType   SimilarBy = "Type"
	SimilarByPrice  SimilarBy = "Price"
	SimilarByLength SimilarBy = "Length"
)
