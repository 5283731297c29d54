package stanza

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apamildner/stanza/content"
)

// FileError wraps a content parse error with the path of the offending
// file, so callers can report exactly which file failed and why.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Library reads content items from a directory of markdown files. Each
// .md file holds one item; the slug is the filename without extension.
// The Library itself is stateless: every Scan re-reads the filesystem.
type Library struct {
	dir string
}

// NewLibrary creates a Library over the given content directory.
func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

// Dir returns the content directory the library reads from.
func (l *Library) Dir() string {
	return l.dir
}

// Scan parses every content file and fails on the first bad one. Used by
// the static builder, where a broken file should halt the batch.
func (l *Library) Scan() ([]content.Item, error) {
	items, fileErrs, err := l.ScanPartial()
	if err != nil {
		return nil, err
	}
	if len(fileErrs) > 0 {
		return nil, fileErrs[0]
	}
	return items, nil
}

// ScanPartial parses every content file, collecting per-file parse errors
// instead of halting, so serve mode can skip broken files and keep the
// site up. The returned error covers filesystem failures only.
func (l *Library) ScanPartial() ([]content.Item, []*FileError, error) {
	var items []content.Item
	var fileErrs []*FileError

	err := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") && path != l.dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".md") {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		item, err := content.Parse(src)
		if err != nil {
			fileErrs = append(fileErrs, &FileError{Path: path, Err: err})
			return nil
		}
		item.Slug = slugFromFilename(name)
		item.SourcePath = path
		items = append(items, item)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("content directory %q not found", l.dir)
		}
		return nil, nil, err
	}
	return items, fileErrs, nil
}

// Save writes an item back to disk as a content file. Items loaded by Scan
// keep their original path; new items land in the library root under their
// slug.
func (l *Library) Save(item content.Item) error {
	path := item.SourcePath
	if path == "" {
		path = filepath.Join(l.dir, item.Slug+".md")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, content.Encode(item), 0o644)
}

// Delete removes the content file behind the given item.
func (l *Library) Delete(item content.Item) error {
	path := item.SourcePath
	if path == "" {
		path = filepath.Join(l.dir, item.Slug+".md")
	}
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func slugFromFilename(name string) string {
	return Slugify(strings.TrimSuffix(name, filepath.Ext(name)))
}
