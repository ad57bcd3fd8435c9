package ui

// AppMode represents the top-level application mode.
type AppMode int

const (
	// ModeSearch is the dashboard: search results beside the detail panels.
	ModeSearch AppMode = iota
	// ModeFullDetail is the full-screen record page for one boat.
	ModeFullDetail
)

func (m AppMode) String() string {
	switch m {
	case ModeSearch:
		return "Search"
	case ModeFullDetail:
		return "FullDetail"
	default:
		return "Unknown"
	}
}
