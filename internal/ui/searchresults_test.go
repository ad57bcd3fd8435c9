package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"boatdash/internal/binding"
	"boatdash/internal/editbuffer"
	"boatdash/internal/model"
)

func testFlow() *editbuffer.Flow {
	return editbuffer.NewFlow(editbuffer.NewBuffer(), binding.NewLoadingCoordinator(nil), nil)
}

func testBoats() []model.Boat {
	return []model.Boat{
		{ID: "b1", Name: "Osprey", TypeName: "Fishing", Length: 24, Price: 38000},
		{ID: "b2", Name: "Heron", TypeName: "Sailboat", Length: 31, Price: 62000},
		{ID: "b3", Name: "Lily Pad", TypeName: "Pontoon", Length: 22, Price: 27500},
	}
}

func TestSearchResults_JKNavigation(t *testing.T) {
	v := NewSearchResultsView(testFlow())
	v.SetBoats(testBoats(), nil)

	v.Update(keyMsg("j"))
	v.Update(keyMsg("j"))
	if v.cursor != 2 {
		t.Errorf("after j j: cursor = %d, want 2", v.cursor)
	}

	// j at bottom stays put.
	v.Update(keyMsg("j"))
	if v.cursor != 2 {
		t.Errorf("j at bottom: cursor = %d, want 2", v.cursor)
	}

	v.Update(keyMsg("g"))
	if v.cursor != 0 {
		t.Errorf("after g: cursor = %d, want 0", v.cursor)
	}
	v.Update(keyMsg("G"))
	if v.cursor != 2 {
		t.Errorf("after G: cursor = %d, want 2", v.cursor)
	}
}

func TestSearchResults_EnterEmitsSelection(t *testing.T) {
	v := NewSearchResultsView(testFlow())
	v.SetBoats(testBoats(), nil)
	v.Update(keyMsg("j"))

	_, cmd := v.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should emit a selection")
	}
	msg, ok := cmd().(SelectBoatMsg)
	if !ok {
		t.Fatalf("expected SelectBoatMsg, got %T", cmd())
	}
	if msg.BoatID != "b2" {
		t.Errorf("selected boat = %q, want b2", msg.BoatID)
	}
}

func TestSearchResults_TypeFilterCycles(t *testing.T) {
	v := NewSearchResultsView(testFlow())
	v.Types = []model.BoatType{{ID: "t1", Name: "Fishing"}, {ID: "t2", Name: "Sailboat"}}

	_, cmd := v.Update(keyMsg("t"))
	if msg := cmd().(TypeFilterChangedMsg); msg.TypeID != "t1" {
		t.Errorf("first cycle = %q, want t1", msg.TypeID)
	}
	_, cmd = v.Update(keyMsg("t"))
	if msg := cmd().(TypeFilterChangedMsg); msg.TypeID != "t2" {
		t.Errorf("second cycle = %q, want t2", msg.TypeID)
	}
	// Wraps back to all types.
	_, cmd = v.Update(keyMsg("t"))
	if msg := cmd().(TypeFilterChangedMsg); msg.TypeID != "" {
		t.Errorf("third cycle = %q, want empty (all)", msg.TypeID)
	}
}

func TestSearchResults_EditRecordsDraft(t *testing.T) {
	flow := testFlow()
	v := NewSearchResultsView(flow)
	v.SetBoats(testBoats(), nil)

	// Move the edit column to price, open the editor, type a value.
	v.Update(keyMsg("l"))
	v.Update(keyMsg("l"))
	v.Update(keyMsg("e"))
	if !v.editing {
		t.Fatal("e should enter editing mode")
	}
	v.input.SetValue("41000")
	v.Update(keyMsg("enter"))

	if v.editing {
		t.Error("enter should close the editor")
	}
	draft, ok := flow.Buffer().Draft("b1", "price")
	if !ok {
		t.Fatal("expected a price draft for b1")
	}
	if draft != 41000.0 {
		t.Errorf("draft = %v (%T), want 41000.0", draft, draft)
	}
}

func TestSearchResults_InvalidNumberKeepsEditing(t *testing.T) {
	flow := testFlow()
	v := NewSearchResultsView(flow)
	v.SetBoats(testBoats(), nil)

	v.Update(keyMsg("l")) // length column
	v.Update(keyMsg("e"))
	v.input.SetValue("not a number")
	v.Update(keyMsg("enter"))

	if !v.editing {
		t.Error("invalid number should keep the editor open")
	}
	if !flow.Buffer().Empty() {
		t.Error("no draft should be recorded for an invalid value")
	}

	v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if v.editing {
		t.Error("esc should abandon the edit")
	}
}

func TestSearchResults_DraftOverlaysFetchedValue(t *testing.T) {
	flow := testFlow()
	v := NewSearchResultsView(flow)
	v.SetBoats(testBoats(), nil)

	flow.Buffer().RecordEdit("b1", "name", "Osprey II")
	if got := v.cellValue(testBoats()[0], "name"); got != "Osprey II" {
		t.Errorf("cell value = %q, want draft overlay", got)
	}

	out := v.View()
	if !strings.Contains(out, "Osprey II") {
		t.Error("rendered table should show the draft value")
	}
	if !strings.Contains(out, "1 unsaved row(s)") {
		t.Error("rendered table should show the unsaved count")
	}
}
