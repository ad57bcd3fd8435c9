package store

import (
	"context"
	"database/sql"

	"boatdash/internal/model"
)

var defaultTypes = []model.BoatType{
	{ID: "type-fishing", Name: "Fishing"},
	{ID: "type-houseboat", Name: "Houseboat"},
	{ID: "type-pontoon", Name: "Pontoon"},
	{ID: "type-sailboat", Name: "Sailboat"},
	{ID: "type-yacht", Name: "Yacht"},
}

var defaultBoats = []model.Boat{
	{ID: "boat-osprey", Name: "Osprey", TypeID: "type-fishing", Length: 24, Price: 38000,
		Description: "Center console with a shallow draft.", Geolocation: model.Coordinates{Latitude: 37.79, Longitude: -122.43}},
	{ID: "boat-pelican", Name: "Pelican", TypeID: "type-fishing", Length: 27, Price: 45500,
		Description: "Twin outboards, rigged for offshore trips.", Geolocation: model.Coordinates{Latitude: 37.81, Longitude: -122.41}},
	{ID: "boat-heron", Name: "Heron", TypeID: "type-sailboat", Length: 31, Price: 62000,
		Description: "Sloop rig, sleeps four.", Geolocation: model.Coordinates{Latitude: 37.86, Longitude: -122.37}},
	{ID: "boat-kestrel", Name: "Kestrel", TypeID: "type-sailboat", Length: 29, Price: 58800,
		Description: "Fast cruiser with a fresh bottom job.", Geolocation: model.Coordinates{Latitude: 37.77, Longitude: -122.39}},
	{ID: "boat-wavecutter", Name: "Wave Cutter", TypeID: "type-yacht", Length: 58, Price: 520000,
		Description: "Flybridge motor yacht, two staterooms.", Geolocation: model.Coordinates{Latitude: 37.80, Longitude: -122.44}},
	{ID: "boat-driftwood", Name: "Driftwood", TypeID: "type-houseboat", Length: 44, Price: 130000,
		Description: "Liveaboard with a rooftop deck.", Geolocation: model.Coordinates{Latitude: 37.84, Longitude: -122.33}},
	{ID: "boat-lilypad", Name: "Lily Pad", TypeID: "type-pontoon", Length: 22, Price: 27500,
		Description: "Party pontoon, seats ten.", Geolocation: model.Coordinates{Latitude: 37.75, Longitude: -122.45}},
}

// SeedDefaults inserts the default boat types and demo boats when the
// database is empty. Re-running it is a no-op.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM boat_types`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return WithTx(db, func(tx *sql.Tx) error {
		for _, t := range defaultTypes {
			if _, err := tx.ExecContext(ctx, `INSERT INTO boat_types(id, name) VALUES(?, ?)`, t.ID, t.Name); err != nil {
				return err
			}
		}
		for _, b := range defaultBoats {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO boats(id, name, boat_type_id, length, price, description, picture, latitude, longitude)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				b.ID, b.Name, b.TypeID, b.Length, b.Price, b.Description, b.Picture,
				b.Geolocation.Latitude, b.Geolocation.Longitude); err != nil {
				return err
			}
		}
		return nil
	})
}
