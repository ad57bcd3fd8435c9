package ui

import (
	"boatdash/internal/model"
)

// SelectBoatMsg is sent when the user selects a boat tile in the search
// results. The app publishes it on the selection bus.
type SelectBoatMsg struct {
	BoatID string
}

// BoatTypesLoadedMsg carries the type filter options, loaded once at startup.
type BoatTypesLoadedMsg struct {
	Types []model.BoatType
	Err   error
}

// BoatsLoadedMsg is a settled search-results fetch, pinned to the parameter
// generation that issued it. Stale generations are discarded on arrival.
type BoatsLoadedMsg struct {
	Generation uint64
	Boats      []model.Boat
	Err        error
}

// BoatLoadedMsg is a settled single-boat fetch for the detail panels.
type BoatLoadedMsg struct {
	Generation uint64
	Boat       model.Boat
	Err        error
}

// ReviewsLoadedMsg is a settled reviews fetch for the selected boat.
type ReviewsLoadedMsg struct {
	Generation uint64
	Reviews    []model.BoatReview
	Err        error
}

// SimilarLoadedMsg is a settled similar-boats fetch.
type SimilarLoadedMsg struct {
	Generation uint64
	Boats      []model.Boat
	Err        error
}

// NearbyLoadedMsg is a settled proximity query. Doc is the JSON document the
// data service returns; it is decoded before markers are composed.
type NearbyLoadedMsg struct {
	Generation uint64
	Doc        string
	Err        error
}

// LocationAcquiredMsg is the one-shot viewer position read. Err set means the
// position is unavailable; the nearby panel degrades silently.
type LocationAcquiredMsg struct {
	Coords model.Coordinates
	Err    error
}

// WidgetAssetsLoadedMsg reports the one-time rating widget asset load.
type WidgetAssetsLoadedMsg struct {
	Err error
}

// SaveSettledMsg reports the outcome of an in-flight batch save.
type SaveSettledMsg struct {
	Err error
}

// ReviewCreatedMsg reports a submitted review. On success the reviews list
// refreshes and the detail panel switches to the Reviews tab.
type ReviewCreatedMsg struct {
	Review model.BoatReview
	Err    error
}

// ShowFullDetailMsg switches to the full-screen record page for a boat.
type ShowFullDetailMsg struct {
	BoatID string
}

// dismissToastMsg clears the status bar toast after its display window.
type dismissToastMsg struct {
	id int
}
