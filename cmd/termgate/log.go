package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/fs"
)

// Run executes the log command.
func (c *LogCmd) Run(deps *Dependencies) error {
	filter := termgate.LogFilter{Offset: c.Offset, Limit: c.Limit}
	if c.Document != "" {
		filter.DocumentID = &c.Document
	}
	if c.Rejected || c.Accepted {
		accepted := c.Accepted
		filter.Accepted = &accepted
	}
	if c.Reason != "" {
		reason := termgate.ReasonCode(c.Reason)
		filter.Reason = &reason
	}
	if c.Rule != "" {
		filter.Rule = &c.Rule
	}

	records, err := deps.Log.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No log records found.")
		return nil
	}

	for _, r := range records {
		verdict := "accept"
		if !r.Accepted {
			verdict = "reject"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %-18s %-22s %q",
			r.Timestamp.Format(time.DateTime), verdict, r.Reason, r.Rule, r.OriginalText)
		if r.Term != "" && r.Term != r.OriginalText {
			fmt.Fprintf(deps.Stdout, " -> %q", r.Term)
		}
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}

// Run executes the export-log command.
func (c *ExportLogCmd) Run(deps *Dependencies) error {
	var filter termgate.LogFilter
	if c.Rejected {
		accepted := false
		filter.Accepted = &accepted
	}
	if c.Reason != "" {
		reason := termgate.ReasonCode(c.Reason)
		filter.Reason = &reason
	}

	n, err := fs.NewLogExporter(deps.Log).Export(deps.Ctx, c.Path, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Exported %d records to %s\n", n, c.Path)
	return nil
}
