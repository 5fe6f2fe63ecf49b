// Package fs reads source documents from and exports logs to the file system.
package fs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/termgate"
)

// Ensure Reader implements termgate.DocumentReader at compile time.
var _ termgate.DocumentReader = (*Reader)(nil)

// maxRecordSize bounds one JSONL page record.
const maxRecordSize = 16 << 20

// Reader reads page text from files. Plain text files (.txt, .md) are split
// into pages at form feeds, as written by pdftotext. JSONL files (.jsonl)
// hold one page record per line. Other extensions are delegated to HTML when
// set, and are otherwise unsupported.
type Reader struct {
	// HTML reads .html and .htm files.
	HTML termgate.DocumentReader
}

// NewReader creates a new Reader. html may be nil.
func NewReader(html termgate.DocumentReader) *Reader {
	return &Reader{HTML: html}
}

// Read returns the pages of the document at path.
func (r *Reader) Read(ctx context.Context, path string) ([]termgate.Page, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".text", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return SplitPages(string(data)), nil
	case ".jsonl":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ParseJSONL(data)
	case ".html", ".htm":
		if r.HTML == nil {
			return nil, termgate.Errorf(termgate.EINVALID, "no HTML reader configured for %s", path)
		}
		return r.HTML.Read(ctx, path)
	default:
		return nil, termgate.Errorf(termgate.EINVALID, "unsupported document type %q", ext)
	}
}

// Supported reports whether Read handles files with the extension of path.
func (r *Reader) Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".md", ".jsonl":
		return true
	case ".html", ".htm":
		return r.HTML != nil
	}
	return false
}

// SplitPages splits text at form feeds into pages numbered from 1. A
// trailing form feed does not start a new page.
func SplitPages(text string) []termgate.Page {
	text = strings.TrimSuffix(text, "\f")
	parts := strings.Split(text, "\f")
	pages := make([]termgate.Page, len(parts))
	for i, p := range parts {
		pages[i] = termgate.Page{Number: i + 1, Text: p}
	}
	return pages
}

// ParseJSONL decodes one page record per line. Records without a page
// number are numbered by their position. Page languages are canonicalized
// and unsupported ones are rejected.
func ParseJSONL(data []byte) ([]termgate.Page, error) {
	var pages []termgate.Page
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var p termgate.Page
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, termgate.Errorf(termgate.EINVALID, "line %d: invalid page record: %v", line, err)
		}
		if p.Language != "" {
			lang, err := termgate.ParseLanguage(string(p.Language))
			if err != nil {
				return nil, termgate.Errorf(termgate.EINVALID, "line %d: %s", line, termgate.ErrorMessage(err))
			}
			p.Language = lang
		}
		if p.Number == 0 {
			p.Number = len(pages) + 1
		}
		pages = append(pages, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read page records: %w", err)
	}
	return pages, nil
}

// Discover returns the supported files under root in lexical order. A root
// that is a file is returned as is.
func (r *Reader) Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if r.Supported(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)
	return paths, nil
}
