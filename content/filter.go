package content

import (
	"sort"
	"strings"
)

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// Published returns the items eligible for publication: drafts excluded,
// ordered by date descending (newest first). The input slice is not
// modified; calling Published again on the same input yields the same
// result. Equal dates keep their input order.
func Published(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !it.Draft {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ByDate sorts items in place by date descending. Used for admin listings
// where drafts are included.
func ByDate(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}

// Tags returns the sorted, deduplicated set of tags across the given items.
func Tags(items []Item) []string {
	set := make(map[string]struct{})
	for _, it := range items {
		for _, t := range it.Tags {
			set[normalizeTag(t)] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// FilterTag returns the items carrying the given tag, case-insensitively.
// An empty tag returns the input unchanged.
func FilterTag(items []Item, tag string) []Item {
	if tag == "" {
		return items
	}
	want := normalizeTag(tag)
	var out []Item
	for _, it := range items {
		for _, t := range it.Tags {
			if normalizeTag(t) == want {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
