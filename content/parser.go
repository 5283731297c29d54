package content

import (
	"fmt"
	"strings"
	"time"
)

// fence delimits the front-matter block, on a line of its own.
const fence = "+++"

// dateFormats are tried in order when parsing the date field. The canonical
// form is RFC3339 with an explicit offset; the two fallbacks cover files
// written by hand without one.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Parse converts raw content-file bytes into an Item. It is a pure
// function: identical input bytes always yield an identical Item, and on
// error no partial Item is returned.
func Parse(src []byte) (Item, error) {
	meta, body, err := splitFrontMatter(string(src))
	if err != nil {
		return Item{}, err
	}
	item, err := validate(meta)
	if err != nil {
		return Item{}, err
	}
	item.Body = body
	return item, nil
}

// splitFrontMatter separates the fenced key-value block from the body. The
// body is everything after the closing fence, passed through verbatim.
func splitFrontMatter(src string) (map[string]string, string, error) {
	src = strings.TrimPrefix(src, "\uFEFF")
	lines := strings.Split(src, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != fence {
		return nil, "", ErrMissingFrontMatter
	}

	meta := make(map[string]string)
	for i := 1; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if line == fence {
			return meta, strings.Join(lines[i+1:], "\n"), nil
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, "", fmt.Errorf("%w: line %d: %q", ErrMalformedFrontMatter, i+1, trimmed)
		}
		meta[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}
	return nil, "", fmt.Errorf("%w: unterminated fence", ErrMalformedFrontMatter)
}

// unquote strips one level of matching single or double quotes. Unquoted
// values (booleans, timestamps) pass through unchanged.
func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '\'' && v[len(v)-1] == '\'') || (v[0] == '"' && v[len(v)-1] == '"') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// validate checks the required front-matter keys, coerces the typed ones,
// and preserves everything it does not consume in Params.
func validate(meta map[string]string) (Item, error) {
	var item Item

	title, ok := meta["title"]
	if !ok {
		return Item{}, &MissingFieldError{Key: "title"}
	}
	if strings.TrimSpace(title) == "" {
		return Item{}, &FieldTypeError{Key: "title", Want: "non-empty string"}
	}
	item.Title = title

	dateRaw, ok := meta["date"]
	if !ok {
		return Item{}, &MissingFieldError{Key: "date"}
	}
	date, err := parseDate(dateRaw)
	if err != nil {
		return Item{}, &FieldTypeError{Key: "date", Want: "timestamp"}
	}
	item.Date = date

	switch draft := meta["draft"]; draft {
	case "", "false":
		item.Draft = false
	case "true":
		item.Draft = true
	default:
		return Item{}, &FieldTypeError{Key: "draft", Want: "boolean"}
	}

	item.Summary = meta["summary"]
	item.Tags = splitTags(meta["tags"])

	for key, value := range meta {
		switch key {
		case "title", "date", "draft", "summary", "tags":
			continue
		}
		if item.Params == nil {
			item.Params = make(map[string]string)
		}
		item.Params[key] = value
	}
	return item, nil
}

func parseDate(raw string) (time.Time, error) {
	var firstErr error
	for _, format := range dateFormats {
		t, err := time.Parse(format, raw)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// splitTags turns a comma-separated tag string into a normalized slice.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
