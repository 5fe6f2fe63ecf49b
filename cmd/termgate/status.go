package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/termgate"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	filter := termgate.DocumentFilter{Limit: c.Limit}
	if c.Skipped {
		status := termgate.DocumentSkipped
		filter.Status = &status
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents processed yet. Use 'termgate ingest' to add some.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %-9s  %s  [%s/%s]  %d pages, %d entries\n",
			d.ProcessedAt.Format(time.DateTime), d.Status, d.Path, d.Language, d.Source, d.PageCount, d.EntryCount)
		if d.Error != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", d.Error)
		}
	}
	return nil
}
