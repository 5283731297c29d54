package content

import (
	"reflect"
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPublishedExcludesDrafts(t *testing.T) {
	items := []Item{
		{Title: "live", Date: date("2024-01-01")},
		{Title: "draft", Date: date("2024-02-01"), Draft: true},
		{Title: "live-2", Date: date("2024-03-01")},
	}
	got := Published(items)
	if len(got) != 2 {
		t.Fatalf("Published count = %d, want 2", len(got))
	}
	for _, it := range got {
		if it.Draft {
			t.Errorf("draft %q leaked into published output", it.Title)
		}
	}
}

func TestPublishedOrdersByDateDescending(t *testing.T) {
	items := []Item{
		{Title: "march", Date: date("2024-03-22")},
		{Title: "old", Date: date("2023-01-01")},
		{Title: "june", Date: date("2024-06-01")},
	}
	got := Published(items)
	want := []string{"june", "march", "old"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("Published[%d] = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestPublishedIsRestartable(t *testing.T) {
	items := []Item{
		{Title: "b", Date: date("2024-01-02")},
		{Title: "a", Date: date("2024-01-01")},
		{Title: "hidden", Date: date("2024-01-03"), Draft: true},
	}
	first := Published(items)
	second := Published(items)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Published calls differ: %v vs %v", first, second)
	}
}

func TestPublishedDoesNotMutateInput(t *testing.T) {
	items := []Item{
		{Title: "older", Date: date("2024-01-01")},
		{Title: "newer", Date: date("2024-06-01")},
	}
	Published(items)
	if items[0].Title != "older" || items[1].Title != "newer" {
		t.Errorf("input slice was reordered: %v", items)
	}
}

func TestPublishedEmptyInput(t *testing.T) {
	if got := Published(nil); len(got) != 0 {
		t.Errorf("Published(nil) = %v, want empty", got)
	}
}

func TestPublishedStableForEqualDates(t *testing.T) {
	d := date("2024-05-05")
	items := []Item{
		{Title: "first", Date: d},
		{Title: "second", Date: d},
		{Title: "third", Date: d},
	}
	got := Published(items)
	want := []string{"first", "second", "third"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("Published[%d] = %q, want %q (stable order)", i, got[i].Title, title)
		}
	}
}

func TestTags(t *testing.T) {
	items := []Item{
		{Title: "a", Tags: []string{"Go", "Web"}},
		{Title: "b", Tags: []string{"go", "api"}},
		{Title: "c"},
	}
	got := Tags(items)
	want := []string{"api", "go", "web"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tags = %v, want %v", got, want)
	}
}

func TestFilterTag(t *testing.T) {
	items := []Item{
		{Title: "a", Tags: []string{"go", "tutorial"}},
		{Title: "b", Tags: []string{"GoLang"}},
		{Title: "c", Tags: []string{"go"}},
	}

	if got := FilterTag(items, "go"); len(got) != 2 {
		t.Errorf("FilterTag(go) count = %d, want 2", len(got))
	}
	if got := FilterTag(items, "GOLANG"); len(got) != 1 {
		t.Errorf("FilterTag(GOLANG) count = %d, want 1 (case-insensitive)", len(got))
	}
	if got := FilterTag(items, ""); len(got) != 3 {
		t.Errorf("FilterTag(empty) count = %d, want all 3", len(got))
	}
	if got := FilterTag(items, "missing"); len(got) != 0 {
		t.Errorf("FilterTag(missing) count = %d, want 0", len(got))
	}
}

func TestByDate(t *testing.T) {
	items := []Item{
		{Title: "old", Date: date("2023-01-01")},
		{Title: "new", Date: date("2024-01-01"), Draft: true},
	}
	ByDate(items)
	if items[0].Title != "new" {
		t.Errorf("ByDate should include drafts and sort descending, got %q first", items[0].Title)
	}
}
