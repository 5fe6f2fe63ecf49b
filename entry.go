package termgate

import (
	"context"
	"slices"
	"strings"
	"time"
)

// Source identifies the body of documents an entry was taken from.
type Source string

// Known sources.
const (
	SourceInternal Source = "internal"
	SourceNAMUR    Source = "NAMUR"
	SourceDIN      Source = "DIN"
	SourceASME     Source = "ASME"
	SourceISO      Source = "ISO"
	SourceIEC      Source = "IEC"
	SourceVDI      Source = "VDI"
)

var sources = []Source{SourceInternal, SourceNAMUR, SourceDIN, SourceASME, SourceISO, SourceIEC, SourceVDI}

// ParseSource returns the Source matching s, ignoring case.
func ParseSource(s string) (Source, error) {
	for _, src := range sources {
		if strings.EqualFold(string(src), strings.TrimSpace(s)) {
			return src, nil
		}
	}
	return "", Errorf(EINVALID, "unknown source %q", s)
}

// ValidationStatus tracks manual review of an entry.
type ValidationStatus string

// Validation statuses.
const (
	StatusPending   ValidationStatus = "pending"
	StatusValidated ValidationStatus = "validated"
	StatusRejected  ValidationStatus = "rejected"
)

// ParseValidationStatus returns the ValidationStatus matching s.
func ParseValidationStatus(s string) (ValidationStatus, error) {
	switch st := ValidationStatus(strings.ToLower(s)); st {
	case StatusPending, StatusValidated, StatusRejected:
		return st, nil
	}
	return "", Errorf(EINVALID, "unknown validation status %q", s)
}

// Definition is one definition of an entry with its provenance.
type Definition struct {
	Text       string `json:"text"`
	Pages      []int  `json:"pages"`
	DocumentID string `json:"documentId"`
}

// Entry is a glossary entry. The combination of term, language, and source
// is unique; terms are compared case-insensitively.
type Entry struct {
	ID          string           `json:"id"`
	Term        string           `json:"term"`
	Language    Language         `json:"language"`
	Source      Source           `json:"source"`
	Definitions []Definition     `json:"definitions"`
	Status      ValidationStatus `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Term) == "" {
		return Errorf(EINVALID, "entry term required")
	}
	if e.Language == "" {
		return Errorf(EINVALID, "entry language required")
	}
	if e.Source == "" {
		return Errorf(EINVALID, "entry source required")
	}
	if len(e.Definitions) == 0 {
		return Errorf(EINVALID, "entry %q has no definitions", e.Term)
	}
	return nil
}

// Key returns the uniqueness key of the entry.
func (e *Entry) Key() EntryKey {
	return NewEntryKey(e.Term, e.Language, e.Source)
}

// AddDefinition appends d unless a definition with the same text is already
// present, in which case the page numbers are merged. It reports whether a
// new definition was added.
func (e *Entry) AddDefinition(d Definition) bool {
	for i := range e.Definitions {
		if e.Definitions[i].Text != d.Text {
			continue
		}
		e.Definitions[i].Pages = MergePages(e.Definitions[i].Pages, d.Pages)
		return false
	}
	e.Definitions = append(e.Definitions, d)
	return true
}

// EntryKey identifies an entry for merge purposes.
type EntryKey struct {
	Term     string
	Language Language
	Source   Source
}

// NewEntryKey folds term to its comparison form.
func NewEntryKey(term string, lang Language, source Source) EntryKey {
	return EntryKey{
		Term:     strings.ToLower(strings.Join(strings.Fields(term), " ")),
		Language: lang,
		Source:   source,
	}
}

// MergePages returns the sorted union of a and b without duplicates.
func MergePages(a, b []int) []int {
	pages := make([]int, 0, len(a)+len(b))
	pages = append(pages, a...)
	pages = append(pages, b...)
	slices.Sort(pages)
	return slices.Compact(pages)
}

// EntryService represents a service for managing glossary entries.
// Entries are created and merged through BatchWriter.
type EntryService interface {
	// FindEntryByID retrieves an entry by ID.
	// Returns ENOTFOUND if entry does not exist.
	FindEntryByID(ctx context.Context, id string) (*Entry, error)

	// FindEntryByKey retrieves the entry with the given key.
	// Returns ENOTFOUND if entry does not exist.
	FindEntryByKey(ctx context.Context, key EntryKey) (*Entry, error)

	// FindEntries retrieves entries matching the filter.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// UpdateEntryStatus sets the validation status of an entry.
	// Returns ENOTFOUND if entry does not exist.
	UpdateEntryStatus(ctx context.Context, id string, status ValidationStatus) error

	// DeleteEntry permanently removes an entry and its definitions.
	// Returns ENOTFOUND if entry does not exist.
	DeleteEntry(ctx context.Context, id string) error
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	Term     *string           `json:"term"`
	Language *Language         `json:"language"`
	Source   *Source           `json:"source"`
	Status   *ValidationStatus `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
