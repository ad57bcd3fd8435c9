package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"boatdash/internal/binding"
	"boatdash/internal/dataservice"
	"boatdash/internal/editbuffer"
	"boatdash/internal/geo"
	"boatdash/internal/model"
	"boatdash/internal/widget"
)

// toastDuration is how long a toast stays in the status bar.
var toastDuration = 4 * time.Second

// loadBoatTypesCmd loads the type filter options.
func loadBoatTypesCmd(svc *dataservice.Service) tea.Cmd {
	return func() tea.Msg {
		types, err := svc.GetBoatTypes(context.Background())
		return BoatTypesLoadedMsg{Types: types, Err: err}
	}
}

// runBoatsTicket executes a search-results fetch ticket. The resulting
// message carries the ticket's generation so the binding can reject it if the
// parameters moved on while the fetch was in flight.
func runBoatsTicket(t *binding.Ticket) tea.Cmd {
	return func() tea.Msg {
		data, err := t.Run(context.Background())
		msg := BoatsLoadedMsg{Generation: t.Generation(), Err: err}
		if boats, ok := data.([]model.Boat); ok {
			msg.Boats = boats
		}
		return msg
	}
}

// runBoatTicket executes a single-boat fetch ticket for the detail panels.
func runBoatTicket(t *binding.Ticket) tea.Cmd {
	return func() tea.Msg {
		data, err := t.Run(context.Background())
		msg := BoatLoadedMsg{Generation: t.Generation(), Err: err}
		if boat, ok := data.(model.Boat); ok {
			msg.Boat = boat
		}
		return msg
	}
}

// runReviewsTicket executes a reviews fetch ticket.
func runReviewsTicket(t *binding.Ticket) tea.Cmd {
	return func() tea.Msg {
		data, err := t.Run(context.Background())
		msg := ReviewsLoadedMsg{Generation: t.Generation(), Err: err}
		if reviews, ok := data.([]model.BoatReview); ok {
			msg.Reviews = reviews
		}
		return msg
	}
}

// runSimilarTicket executes a similar-boats fetch ticket.
func runSimilarTicket(t *binding.Ticket) tea.Cmd {
	return func() tea.Msg {
		data, err := t.Run(context.Background())
		msg := SimilarLoadedMsg{Generation: t.Generation(), Err: err}
		if boats, ok := data.([]model.Boat); ok {
			msg.Boats = boats
		}
		return msg
	}
}

// runNearbyTicket executes a proximity query ticket.
func runNearbyTicket(t *binding.Ticket) tea.Cmd {
	return func() tea.Msg {
		data, err := t.Run(context.Background())
		msg := NearbyLoadedMsg{Generation: t.Generation(), Err: err}
		if doc, ok := data.(string); ok {
			msg.Doc = doc
		}
		return msg
	}
}

// acquireLocationCmd performs the one-shot viewer position read.
func acquireLocationCmd(src geo.Source) tea.Cmd {
	return func() tea.Msg {
		coords, err := src.CurrentPosition(context.Background())
		return LocationAcquiredMsg{Coords: coords, Err: err}
	}
}

// loadWidgetAssetsCmd performs the one-time rating widget asset load.
func loadWidgetAssetsCmd(bridge *widget.Bridge) tea.Cmd {
	return func() tea.Msg {
		return WidgetAssetsLoadedMsg{Err: bridge.Load(context.Background())}
	}
}

// commitSaveCmd writes one batch of drafts through the data service.
func commitSaveCmd(svc *dataservice.Service, commit *editbuffer.Commit) tea.Cmd {
	return func() tea.Msg {
		return SaveSettledMsg{Err: svc.UpdateBoatList(context.Background(), commit.Changes())}
	}
}

// createReviewCmd submits a new review.
func createReviewCmd(svc *dataservice.Service, review model.BoatReview) tea.Cmd {
	return func() tea.Msg {
		created, err := svc.CreateReview(context.Background(), review)
		return ReviewCreatedMsg{Review: created, Err: err}
	}
}

// dismissToastCmd schedules removal of the toast with the given id.
func dismissToastCmd(id int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return dismissToastMsg{id: id}
	})
}
