package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"boatdash/internal/bus"
	"boatdash/internal/dataservice"
	"boatdash/internal/model"
	"boatdash/internal/notify"
)

// Review-creation toast text.
const (
	ReviewCreatedTitle = "Review Created!"
	errorTitle         = "Error"
)

// handleMsg processes every non-key message: settled fetches, selection
// events, and component ticks.
func (a *appModelAdapter) handleMsg(msg tea.Msg) []tea.Cmd {
	switch msg := msg.(type) {
	case BoatTypesLoadedMsg:
		if msg.Err == nil {
			a.Search.Types = msg.Types
		}
		return nil

	case SelectBoatMsg:
		return a.handleSelection(msg.BoatID)

	case TypeFilterChangedMsg:
		return a.handleTypeFilter(msg.TypeID)

	case SimilarCriterionChangedMsg:
		if t := a.similarBinding.SetParam("similarBy", string(msg.By)); t != nil {
			return []tea.Cmd{runSimilarTicket(t)}
		}
		return nil

	case BoatsLoadedMsg:
		return a.handleBoatsLoaded(msg)

	case BoatLoadedMsg:
		if a.boatBinding.Apply(msg.Generation, msg.Boat, msg.Err) {
			a.Detail.SetBoat(msg.Boat, msg.Err)
			if msg.Err == nil {
				a.Map.SetBoat(msg.Boat)
			}
		}
		return nil

	case ReviewsLoadedMsg:
		a.reviewsLoading.Settle()
		if a.reviewsBinding.Apply(msg.Generation, msg.Reviews, msg.Err) {
			a.Reviews.SetReviews(msg.Reviews, msg.Err)
		}
		return nil

	case SimilarLoadedMsg:
		if a.similarBinding.Apply(msg.Generation, msg.Boats, msg.Err) {
			a.Similar.SetBoats(msg.Boats, msg.Err)
		}
		return nil

	case NearbyLoadedMsg:
		return a.handleNearbyLoaded(msg)

	case LocationAcquiredMsg:
		return a.handleLocation(msg)

	case WidgetAssetsLoadedMsg:
		if msg.Err == nil {
			if err := a.AddReview.InitializeWidget(); err != nil {
				a.logger.Error("rating widget init failed", "error", err)
			}
		}
		return nil

	case SaveSettledMsg:
		if a.flow.Settle(msg.Err) {
			return []tea.Cmd{a.refreshBoats()}
		}
		return nil

	case SubmitReviewMsg:
		return []tea.Cmd{createReviewCmd(a.svc, msg.Review)}

	case ReviewCreatedMsg:
		return a.handleReviewCreated(msg)

	case ShowFullDetailMsg:
		a.Mode = ModeFullDetail
		return nil

	case dismissToastMsg:
		if msg.id == a.toastID {
			a.toast = nil
		}
		return nil
	}

	// Component messages (spinner ticks, cursor blinks) fan out to every
	// panel that animates.
	return a.broadcast(msg)
}

// handleSelection publishes the boat on the bus and issues the dependent
// fetches: record, reviews, and similar boats.
func (a *appModelAdapter) handleSelection(boatID string) []tea.Cmd {
	a.bus.Publish(bus.Selection{BoatID: boatID})
	a.Similar.SetSelected(boatID != "")

	var cmds []tea.Cmd
	if t := a.boatBinding.SetParam("boatID", boatID); t != nil {
		cmds = append(cmds, runBoatTicket(t))
	}
	if t := a.reviewsBinding.SetParam("boatID", boatID); t != nil {
		a.reviewsLoading.Begin()
		cmds = append(cmds, runReviewsTicket(t), a.Reviews.Init())
	}
	if t := a.similarBinding.SetParam("boatID", boatID); t != nil {
		cmds = append(cmds, runSimilarTicket(t))
	}
	return cmds
}

// handleTypeFilter re-issues the search and the proximity query under the new
// filter.
func (a *appModelAdapter) handleTypeFilter(typeID string) []tea.Cmd {
	var cmds []tea.Cmd
	if t := a.boatsBinding.SetParam("boatTypeID", typeID); t != nil {
		a.searchLoading.Begin()
		cmds = append(cmds, runBoatsTicket(t), a.Search.Init())
	}
	if t := a.nearbyBinding.SetParam("boatTypeID", typeID); t != nil {
		a.nearbyLoading.Begin()
		cmds = append(cmds, runNearbyTicket(t), a.Nearby.Init())
	}
	return cmds
}

func (a *appModelAdapter) handleBoatsLoaded(msg BoatsLoadedMsg) []tea.Cmd {
	// The operation finished either way; only fresh results get applied.
	a.searchLoading.Settle()
	if !a.boatsBinding.Apply(msg.Generation, msg.Boats, msg.Err) {
		return nil
	}
	a.Search.SetBoats(msg.Boats, msg.Err)
	if msg.Err != nil {
		a.toasts.Notify(notify.Notification{
			Title:   errorTitle,
			Message: msg.Err.Error(),
			Variant: notify.VariantError,
		})
	}
	return nil
}

// handleNearbyLoaded settles the proximity query. On error the previously
// composed markers stay visible and only a toast is raised.
func (a *appModelAdapter) handleNearbyLoaded(msg NearbyLoadedMsg) []tea.Cmd {
	a.nearbyLoading.Settle()
	if !a.nearbyBinding.Apply(msg.Generation, msg.Doc, msg.Err) {
		return nil
	}

	err := msg.Err
	if err == nil {
		var boats []model.Boat
		boats, err = dataservice.DecodeBoats(msg.Doc)
		if err == nil {
			a.composer.ApplyBoats(boats)
			return nil
		}
	}
	a.toasts.Notify(notify.Notification{
		Title:   NearbyErrorTitle,
		Message: err.Error(),
		Variant: notify.VariantError,
	})
	return nil
}

// handleLocation records the one-shot viewer position. Unavailability is
// silent: the nearby panel shows its empty state and no query is issued.
func (a *appModelAdapter) handleLocation(msg LocationAcquiredMsg) []tea.Cmd {
	if msg.Err != nil {
		a.Nearby.SetGeoUnavailable()
		a.logger.Info("viewer location unavailable", "error", msg.Err)
		return nil
	}
	a.composer.SetSelfLocation(msg.Coords)

	a.nearbyBinding.SetParam("latitude", msg.Coords.Latitude)
	t := a.nearbyBinding.SetParam("longitude", msg.Coords.Longitude)
	if t == nil {
		return nil
	}
	a.nearbyLoading.Begin()
	return []tea.Cmd{runNearbyTicket(t), a.Nearby.Init()}
}

func (a *appModelAdapter) handleReviewCreated(msg ReviewCreatedMsg) []tea.Cmd {
	if msg.Err != nil {
		a.toasts.Notify(notify.Notification{
			Title:   errorTitle,
			Message: msg.Err.Error(),
			Variant: notify.VariantError,
		})
		return nil
	}
	a.toasts.Notify(notify.Notification{
		Title:   ReviewCreatedTitle,
		Variant: notify.VariantSuccess,
	})
	a.AddReview.Reset()
	a.Detail.OnReviewCreated()

	if t := a.reviewsBinding.Refresh(); t != nil {
		a.reviewsLoading.Begin()
		return []tea.Cmd{runReviewsTicket(t), a.Reviews.Init()}
	}
	return nil
}

// broadcast fans a component message out to every panel.
func (a *appModelAdapter) broadcast(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd

	v, cmd := a.Search.Update(msg)
	a.Search = v.(*SearchResultsView)
	cmds = append(cmds, cmd)

	v, cmd = a.AddReview.Update(msg)
	a.AddReview = v.(*AddReviewView)
	cmds = append(cmds, cmd)

	v, cmd = a.Nearby.Update(msg)
	a.Nearby = v.(*NearbyView)
	cmds = append(cmds, cmd)

	v, cmd = a.Reviews.Update(msg)
	a.Reviews = v.(*ReviewsView)
	cmds = append(cmds, cmd)

	return cmds
}
