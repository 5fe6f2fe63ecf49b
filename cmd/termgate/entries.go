package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/termgate"
)

// Run executes the entries command.
func (c *EntriesCmd) Run(deps *Dependencies) error {
	filter := termgate.EntryFilter{Offset: c.Offset, Limit: c.Limit}
	if c.Term != "" {
		filter.Term = &c.Term
	}
	if c.Lang != "" {
		lang, err := termgate.ParseLanguage(c.Lang)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
			return err
		}
		filter.Language = &lang
	}
	if c.Source != "" {
		source, err := termgate.ParseSource(c.Source)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
			return err
		}
		filter.Source = &source
	}
	if c.Status != "" {
		status, err := termgate.ParseValidationStatus(c.Status)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
			return err
		}
		filter.Status = &status
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		for _, e := range entries {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found. Use 'termgate ingest' to process documents.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %s  [%s/%s]  %s\n", e.ID, e.Term, e.Language, e.Source, e.Status)
		for _, d := range e.Definitions {
			fmt.Fprintf(deps.Stdout, "    - %s%s\n", d.Text, formatPages(d.Pages))
		}
	}
	return nil
}

// Run executes the mark command.
func (c *MarkCmd) Run(deps *Dependencies) error {
	status, err := termgate.ParseValidationStatus(c.Status)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
		return err
	}
	if err := deps.Entries.UpdateEntryStatus(deps.Ctx, c.ID, status); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Marked %s as %s\n", c.ID, status)
	return nil
}

func formatPages(pages []int) string {
	switch len(pages) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf(" (p. %d)", pages[0])
	}
	s := " (pp. "
	for i, p := range pages {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(p)
	}
	return s + ")"
}
