package store

import (
	"context"
	"database/sql"
	"fmt"

	"boatdash/internal/model"
)

// similarBand is the relative band used when comparing boats by price or
// length: a boat is similar when its value falls within ±20% of the
// reference boat's.
const similarBand = 0.20

// nearbyLimit caps the proximity query result.
const nearbyLimit = 10

const boatColumns = `b.id, b.name, b.boat_type_id, t.name, b.length, b.price, b.description, b.picture, b.latitude, b.longitude`

// BoatRepo handles boats and boat types.
type BoatRepo struct {
	db *sql.DB
}

func NewBoatRepo(db *sql.DB) *BoatRepo { return &BoatRepo{db: db} }

// Types lists all boat types ordered by name.
func (r *BoatRepo) Types(ctx context.Context) ([]model.BoatType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM boat_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BoatType
	for rows.Next() {
		var t model.BoatType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// List returns boats, optionally filtered to one type. Empty typeID matches
// all boats.
func (r *BoatRepo) List(ctx context.Context, typeID string) ([]model.Boat, error) {
	query := `SELECT ` + boatColumns + `
	FROM boats b JOIN boat_types t ON t.id = b.boat_type_id`
	var args []interface{}
	if typeID != "" {
		query += ` WHERE b.boat_type_id = ?`
		args = append(args, typeID)
	}
	query += ` ORDER BY b.name`

	return r.queryBoats(ctx, query, args...)
}

// Get returns one boat by ID.
func (r *BoatRepo) Get(ctx context.Context, id string) (model.Boat, error) {
	boats, err := r.queryBoats(ctx, `SELECT `+boatColumns+`
	FROM boats b JOIN boat_types t ON t.id = b.boat_type_id WHERE b.id = ?`, id)
	if err != nil {
		return model.Boat{}, err
	}
	if len(boats) == 0 {
		return model.Boat{}, sql.ErrNoRows
	}
	return boats[0], nil
}

// Nearby returns at most nearbyLimit boats ordered by distance from the
// given position, optionally filtered to one type. Distance is the squared
// coordinate delta, good enough for ranking at dashboard scale.
func (r *BoatRepo) Nearby(ctx context.Context, lat, lon float64, typeID string) ([]model.Boat, error) {
	query := `SELECT ` + boatColumns + `
	FROM boats b JOIN boat_types t ON t.id = b.boat_type_id`
	args := []interface{}{}
	if typeID != "" {
		query += ` WHERE b.boat_type_id = ?`
		args = append(args, typeID)
	}
	query += ` ORDER BY (b.latitude - ?) * (b.latitude - ?) + (b.longitude - ?) * (b.longitude - ?) LIMIT ?`
	args = append(args, lat, lat, lon, lon, nearbyLimit)

	return r.queryBoats(ctx, query, args...)
}

// Similar returns boats similar to the given boat by the chosen criterion:
// the same type, or a price/length within ±20% of the reference boat's. The
// reference boat itself is excluded.
func (r *BoatRepo) Similar(ctx context.Context, boatID string, by model.SimilarBy) ([]model.Boat, error) {
	ref, err := r.Get(ctx, boatID)
	if err != nil {
		return nil, err
	}

	base := `SELECT ` + boatColumns + `
	FROM boats b JOIN boat_types t ON t.id = b.boat_type_id WHERE b.id != ?`
	switch by {
	case model.SimilarByType:
		return r.queryBoats(ctx, base+` AND b.boat_type_id = ? ORDER BY b.name`, boatID, ref.TypeID)
	case model.SimilarByPrice:
		lo, hi := band(ref.Price)
		return r.queryBoats(ctx, base+` AND b.price BETWEEN ? AND ? ORDER BY b.price`, boatID, lo, hi)
	case model.SimilarByLength:
		lo, hi := band(ref.Length)
		return r.queryBoats(ctx, base+` AND b.length BETWEEN ? AND ? ORDER BY b.length`, boatID, lo, hi)
	default:
		return nil, fmt.Errorf("unknown similarity criterion %q", by)
	}
}

func band(v float64) (lo, hi float64) {
	return v * (1 - similarBand), v * (1 + similarBand)
}

// editableColumns maps batch-update field names onto columns. Anything else
// in a row change is rejected before the write starts.
var editableColumns = map[string]string{
	"name":        "name",
	"length":      "length",
	"price":       "price",
	"description": "description",
}

// BatchUpdate applies all row changes in one transaction: either every edit
// lands or none do.
func (r *BoatRepo) BatchUpdate(ctx context.Context, changes []model.RowChange) error {
	return WithTx(r.db, func(tx *sql.Tx) error {
		for _, change := range changes {
			for field, value := range change.Fields {
				col, ok := editableColumns[field]
				if !ok {
					return fmt.Errorf("field %q is not editable", field)
				}
				res, err := tx.ExecContext(ctx,
					`UPDATE boats SET `+col+` = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
					value, change.RowID)
				if err != nil {
					return err
				}
				n, err := res.RowsAffected()
				if err != nil {
					return err
				}
				if n == 0 {
					return fmt.Errorf("boat %q not found", change.RowID)
				}
			}
		}
		return nil
	})
}

// Insert adds a boat (used by seeding and tests).
func (r *BoatRepo) Insert(ctx context.Context, b model.Boat) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO boats(id, name, boat_type_id, length, price, description, picture, latitude, longitude)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Name, b.TypeID, b.Length, b.Price, b.Description, b.Picture,
		b.Geolocation.Latitude, b.Geolocation.Longitude)
	return err
}

func (r *BoatRepo) queryBoats(ctx context.Context, query string, args ...interface{}) ([]model.Boat, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Boat
	for rows.Next() {
		var b model.Boat
		if err := rows.Scan(&b.ID, &b.Name, &b.TypeID, &b.TypeName, &b.Length, &b.Price,
			&b.Description, &b.Picture, &b.Geolocation.Latitude, &b.Geolocation.Longitude); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
