package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pickerLabels(p *Picker) []string {
	items := p.Items()
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func TestPickerFiltersAndRanksWithinSection(t *testing.T) {
	p := NewPicker("sort by", []PickerItem{
		{ID: "email", Label: "Email", Section: "Columns"},
		{ID: "name", Label: "Name", Section: "Columns"},
		{ID: "username", Label: "Username", Section: "Columns"},
		{ID: "clear", Label: "Clear sort", Section: "Actions"},
	})
	for _, k := range []string{"n", "a"} {
		p.HandleKey(k)
	}
	got := pickerLabels(p)
	if len(got) != 2 || got[0] != "Name" || got[1] != "Username" {
		t.Fatalf("filtered = %v", got)
	}
	res := p.HandleKey("enter")
	if res.Action != PickerActionSelected || res.Item.ID != "name" {
		t.Fatalf("selected %+v", res)
	}
}

func TestPickerLettersFilterInsteadOfMoving(t *testing.T) {
	p := NewPicker("jump", []PickerItem{{ID: "j", Label: "jobs"}, {ID: "k", Label: "keys"}})
	p.HandleKey("k")
	if got := pickerLabels(p); len(got) != 1 || got[0] != "keys" {
		t.Fatalf("k should filter, got %v", got)
	}
	p.HandleKey("backspace")
	if res := p.HandleKey("down"); res.Action != PickerActionMoved || p.Cursor() != 1 {
		t.Fatalf("down should move the cursor")
	}
	if res := p.HandleKey("down"); res.Action != PickerActionNone {
		t.Fatalf("cursor should stop at the last item")
	}
	if res := p.HandleKey("esc"); res.Action != PickerActionCancelled {
		t.Fatalf("esc should cancel")
	}
}

func TestMatchTermsPrefersWordStartsAndExact(t *testing.T) {
	prefix, _ := matchTerms("name", []string{"na"})
	inner, _ := matchTerms("username", []string{"na"})
	if prefix <= inner {
		t.Fatalf("prefix score %d should beat inner %d", prefix, inner)
	}
	exact, _ := matchTerms("name", []string{"name"})
	if exact <= prefix {
		t.Fatalf("exact score %d should beat prefix %d", exact, prefix)
	}
	later, _ := matchTerms("name descending", []string{"d"})
	early, _ := matchTerms("added", []string{"d"})
	if later <= early {
		t.Fatalf("word start %d should beat inner letter %d", later, early)
	}
	if _, ok := matchTerms("role", []string{"x"}); ok {
		t.Fatalf("unexpected match")
	}
}

func sortPickerItems() []PickerItem {
	return []PickerItem{
		{ID: "name:asc", Label: "Name ▲", Section: "Columns", Search: "Name ascending", Group: "name"},
		{ID: "name:desc", Label: "Name ▼", Section: "Columns", Search: "Name descending", Group: "name"},
		{ID: "email:asc", Label: "Email ▲", Section: "Columns", Search: "Email ascending", Group: "email"},
		{ID: "email:desc", Label: "Email ▼", Section: "Columns", Search: "Email descending", Group: "email"},
		{ID: "clear", Label: "Clear sort", Section: "Actions"},
	}
}

func TestPickerKeepsGroupsTogether(t *testing.T) {
	p := NewPicker("sort by", sortPickerItems())
	// "d" starts a word only in the descending entries, but each column's
	// pair stays adjacent and the groups keep their order on a tie.
	p.SetQuery("d")
	if diff := cmp.Diff([]string{"Name ▲", "Name ▼", "Email ▲", "Email ▼"}, pickerLabels(p)); diff != "" {
		t.Fatalf("grouped order (-want +got):\n%s", diff)
	}
}

func TestPickerRequiresEveryTerm(t *testing.T) {
	p := NewPicker("sort by", sortPickerItems())
	p.SetQuery("email desc")
	if diff := cmp.Diff([]string{"Email ▼"}, pickerLabels(p)); diff != "" {
		t.Fatalf("multi-term filter (-want +got):\n%s", diff)
	}
	p.SetQuery("desc")
	if diff := cmp.Diff([]string{"Name ▼", "Email ▼"}, pickerLabels(p)); diff != "" {
		t.Fatalf("direction filter (-want +got):\n%s", diff)
	}
	if p.Cursor() != 0 {
		t.Fatalf("cursor = %d", p.Cursor())
	}
}
