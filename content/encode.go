package content

import (
	"sort"
	"strings"
	"time"
)

// Encode renders an Item back into content-file bytes: a fenced front-matter
// block followed by the body. Encode and Parse round-trip: parsing the
// encoded bytes yields an item with the same metadata and body.
func Encode(it Item) []byte {
	var b strings.Builder
	b.WriteString(fence + "\n")
	b.WriteString("title = " + quote(it.Title) + "\n")
	b.WriteString("date = " + it.Date.Format(time.RFC3339) + "\n")
	if it.Draft {
		b.WriteString("draft = true\n")
	} else {
		b.WriteString("draft = false\n")
	}
	if it.Summary != "" {
		b.WriteString("summary = " + quote(it.Summary) + "\n")
	}
	if len(it.Tags) > 0 {
		b.WriteString("tags = " + quote(strings.Join(it.Tags, ", ")) + "\n")
	}
	for _, key := range sortedKeys(it.Params) {
		b.WriteString(key + " = " + quote(it.Params[key]) + "\n")
	}
	b.WriteString(fence + "\n")
	b.WriteString(it.Body)
	return []byte(b.String())
}

// quote single-quotes a value, falling back to double quotes when the value
// itself contains a single quote.
func quote(v string) string {
	if strings.Contains(v, "'") {
		return `"` + v + `"`
	}
	return "'" + v + "'"
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
