package store

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boatdash/internal/model"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, RunMigrations(db))
	require.NoError(t, SeedDefaults(context.Background(), db))
	return db
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	db := testDB(t)
	require.NoError(t, SeedDefaults(context.Background(), db))

	types, err := NewBoatRepo(db).Types(context.Background())
	require.NoError(t, err)
	assert.Len(t, types, 5)
}

func TestBoatRepo_ListFiltersByType(t *testing.T) {
	repo := NewBoatRepo(testDB(t))
	ctx := context.Background()

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 7)

	fishing, err := repo.List(ctx, "type-fishing")
	require.NoError(t, err)
	require.Len(t, fishing, 2)
	for _, b := range fishing {
		assert.Equal(t, "type-fishing", b.TypeID)
		assert.Equal(t, "Fishing", b.TypeName)
	}
}

func TestBoatRepo_GetUnknownID(t *testing.T) {
	repo := NewBoatRepo(testDB(t))
	_, err := repo.Get(context.Background(), "boat-missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestBoatRepo_NearbyOrdersByDistanceAndHonorsLimit(t *testing.T) {
	db := testDB(t)
	repo := NewBoatRepo(db)
	ctx := context.Background()

	// Query from the Osprey's position: it must rank first.
	boats, err := repo.Nearby(ctx, 37.79, -122.43, "")
	require.NoError(t, err)
	require.NotEmpty(t, boats)
	assert.Equal(t, "Osprey", boats[0].Name)
	assert.LessOrEqual(t, len(boats), 10)

	// Insert extra boats so the limit binds.
	for i := 0; i < 12; i++ {
		require.NoError(t, repo.Insert(ctx, model.Boat{
			ID:          fmt.Sprintf("boat-extra-%d", i),
			Name:        "Extra",
			TypeID:      "type-fishing",
			Geolocation: model.Coordinates{Latitude: 37.79, Longitude: -122.43},
		}))
	}
	boats, err = repo.Nearby(ctx, 37.79, -122.43, "")
	require.NoError(t, err)
	assert.Len(t, boats, 10)
}

func TestBoatRepo_SimilarByTypeExcludesReference(t *testing.T) {
	repo := NewBoatRepo(testDB(t))
	similar, err := repo.Similar(context.Background(), "boat-osprey", model.SimilarByType)
	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, "Pelican", similar[0].Name)
}

func TestBoatRepo_SimilarByPriceBand(t *testing.T) {
	repo := NewBoatRepo(testDB(t))
	// Kestrel (58800) and Heron (62000) sit within ±20% of each other.
	similar, err := repo.Similar(context.Background(), "boat-kestrel", model.SimilarByPrice)
	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, "Heron", similar[0].Name)
}

func TestBoatRepo_SimilarUnknownCriterion(t *testing.T) {
	repo := NewBoatRepo(testDB(t))
	_, err := repo.Similar(context.Background(), "boat-osprey", model.SimilarBy("Color"))
	assert.Error(t, err)
}

func TestBoatRepo_BatchUpdateAppliesAllFields(t *testing.T) {
	repo := NewBoatRepo(testDB(t))
	ctx := context.Background()

	err := repo.BatchUpdate(ctx, []model.RowChange{
		{RowID: "boat-osprey", Fields: map[string]any{"price": 39950.0, "name": "Osprey II"}},
		{RowID: "boat-pelican", Fields: map[string]any{"length": 28.0}},
	})
	require.NoError(t, err)

	osprey, err := repo.Get(ctx, "boat-osprey")
	require.NoError(t, err)
	assert.Equal(t, "Osprey II", osprey.Name)
	assert.Equal(t, 39950.0, osprey.Price)

	pelican, err := repo.Get(ctx, "boat-pelican")
	require.NoError(t, err)
	assert.Equal(t, 28.0, pelican.Length)
}

func TestBoatRepo_BatchUpdateRollsBackOnBadRow(t *testing.T) {
	repo := NewBoatRepo(testDB(t))
	ctx := context.Background()

	err := repo.BatchUpdate(ctx, []model.RowChange{
		{RowID: "boat-osprey", Fields: map[string]any{"price": 1.0}},
		{RowID: "boat-missing", Fields: map[string]any{"price": 2.0}},
	})
	require.Error(t, err)

	osprey, err := repo.Get(ctx, "boat-osprey")
	require.NoError(t, err)
	assert.Equal(t, 38000.0, osprey.Price, "first row's update must be rolled back")
}

func TestBoatRepo_BatchUpdateRejectsNonEditableField(t *testing.T) {
	repo := NewBoatRepo(testDB(t))
	err := repo.BatchUpdate(context.Background(), []model.RowChange{
		{RowID: "boat-osprey", Fields: map[string]any{"latitude": 0.0}},
	})
	assert.Error(t, err)
}

func TestReviewRepo_CreateAndListNewestFirst(t *testing.T) {
	db := testDB(t)
	reviews := NewReviewRepo(db)
	ctx := context.Background()

	first, err := reviews.Create(ctx, model.BoatReview{BoatID: "boat-osprey", Name: "Great trip", Comment: "Handled chop well.", Rating: 4})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = reviews.Create(ctx, model.BoatReview{BoatID: "boat-osprey", Name: "Again", Comment: "Would charter again.", Rating: 5})
	require.NoError(t, err)

	got, err := reviews.ListForBoat(ctx, "boat-osprey")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, rv := range got {
		assert.Equal(t, "boat-osprey", rv.BoatID)
	}

	other, err := reviews.ListForBoat(ctx, "boat-heron")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestReviewRepo_CreateValidation(t *testing.T) {
	reviews := NewReviewRepo(testDB(t))
	ctx := context.Background()

	_, err := reviews.Create(ctx, model.BoatReview{Name: "No boat", Rating: 3})
	assert.Error(t, err)

	_, err = reviews.Create(ctx, model.BoatReview{BoatID: "boat-osprey", Rating: 6})
	assert.Error(t, err)
}
