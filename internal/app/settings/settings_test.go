package settings

import (
	"testing"

	"github.com/muurk/debloater/internal/app/view"
)

func TestUpdate(t *testing.T) {
	m := New()
	if m.Values() != Defaults() {
		t.Fatalf("New() values = %+v, want defaults", m.Values())
	}

	m = m.Update(ToggleExpertMode{})
	m = m.Update(ToggleNotifications{})
	m = m.Update(CycleSortBy{})

	got := m.Values()
	want := Values{ExpertMode: true, Notifications: true, SortBy: SortByTier}
	if got != want {
		t.Errorf("Values() = %+v, want %+v", got, want)
	}

	m = m.Update(CycleSortBy{}).Update(ToggleDisableMode{})
	if v := m.Values(); v.SortBy != SortByID || !v.DisableMode {
		t.Errorf("Values() = %+v, want id sort and disable mode", v)
	}
}

func TestUpdateIsValueSemantics(t *testing.T) {
	before := New()
	_ = before.Update(ToggleExpertMode{})
	if before.Values().ExpertMode {
		t.Error("Update mutated the receiver")
	}
}

func TestRenderTogglesEmitMessages(t *testing.T) {
	tree := New().Update(ToggleExpertMode{}).Render()

	n, ok := tree.Find("settings.expert")
	if !ok {
		t.Fatal("expert toggle missing")
	}
	if n.Kind != view.KindToggle || !n.Checked {
		t.Errorf("expert toggle = %+v, want checked toggle", n)
	}
	if _, ok := n.OnPress.(ToggleExpertMode); !ok {
		t.Errorf("OnPress = %T, want ToggleExpertMode", n.OnPress)
	}

	sort, _ := tree.Find("settings.sort")
	if sort.Text != "Sort by: id" {
		t.Errorf("sort button = %q", sort.Text)
	}
}
