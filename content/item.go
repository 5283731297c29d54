// Package content implements the ingestion contract of the publishing
// engine: parsing content files into items, validating their front matter,
// and selecting the publishable subset.
//
// A content file starts with a front-matter block fenced by "+++" lines,
// followed by a markdown body that is passed through verbatim:
//
//	+++
//	title = 'Aliasing providers in Terraform'
//	date = 2024-03-22T10:10:47+01:00
//	draft = false
//	summary = 'What provider aliasing actually does'
//	+++
//	Body markdown...
//
// Parsing is a pure function of the input bytes: the same bytes always
// produce the same Item or the same error, and no partial Item is ever
// returned on error.
package content

import "time"

// Item is one discrete unit of publishable content, parsed from a single
// source file. Items are value types and are never mutated after parsing.
type Item struct {
	Title   string
	Date    time.Time
	Draft   bool
	Summary string
	Tags    []string
	Body    string

	// Slug identifies the item in URLs. It is derived from the source
	// filename by the caller; Parse leaves it empty.
	Slug string

	// SourcePath is the file the item was parsed from, for error reporting
	// and admin tooling. Empty when parsing from memory.
	SourcePath string

	// Params holds front-matter keys the validator did not consume,
	// preserved verbatim for templates.
	Params map[string]string
}

// Link returns the canonical site-relative URL for the item.
func (it Item) Link() string {
	return "/blog/" + it.Slug + "/"
}
