package main

import (
	"fmt"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/pipeline"
)

// Run executes the revalidate command.
func (c *RevalidateCmd) Run(deps *Dependencies) error {
	var filter termgate.EntryFilter
	if c.Source != "" {
		source, err := termgate.ParseSource(c.Source)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
			return err
		}
		filter.Source = &source
	}
	if c.Lang != "" {
		lang, err := termgate.ParseLanguage(c.Lang)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
			return err
		}
		filter.Language = &lang
	}

	r := &pipeline.Revalidator{
		Entries:   deps.Entries,
		Log:       deps.Log,
		Validator: deps.Validator,
		Config:    deps.Config,
		Purge:     c.Purge,
		DryRun:    c.DryRun,
	}
	res, err := r.Run(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
		return err
	}

	action := "rejected"
	switch {
	case c.DryRun:
		action = "would reject"
	case c.Purge:
		action = "purged"
	}
	for _, ch := range res.Changes {
		fmt.Fprintf(deps.Stdout, "  %s %q [%s/%s]: %s (%s)\n",
			action, ch.Entry.Term, ch.Entry.Language, ch.Entry.Source, ch.Verdict.Reason, ch.Verdict.Rule)
	}
	fmt.Fprintf(deps.Stdout, "Checked %d entries: %d %s\n", res.Checked, len(res.Changes), action)
	return nil
}
