package main

import (
	"fmt"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/bloom"
	"github.com/fwojciec/termgate/extract"
	"github.com/fwojciec/termgate/pipeline"
)

// seenCapacity sizes the seen-document filter.
const seenCapacity = 100_000

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	source, err := termgate.ParseSource(c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
		return err
	}

	var inputs []pipeline.Input
	for _, root := range c.Paths {
		paths, err := deps.Files.Discover(root)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		for _, path := range paths {
			inputs = append(inputs, pipeline.Input{Path: path})
		}
	}
	if len(inputs) == 0 {
		fmt.Fprintln(deps.Stdout, "No supported documents found.")
		return nil
	}

	p := &pipeline.Processor{
		Reader:      deps.Reader,
		Extractor:   extract.New(deps.Config),
		Validator:   deps.Validator,
		Synthesizer: deps.Synthesizer,
		Writer:      deps.Writer,
		Documents:   deps.Documents,
		Seen:        bloom.NewFilter(seenCapacity, 0.01),
		Config:      deps.Config,
		Source:      source,
		Concurrency: c.Concurrency,
		Reprocess:   c.Reprocess,
		Logger: func(format string, args ...any) {
			deps.Logger.Warn(fmt.Sprintf(format, args...))
		},
	}
	if err := p.LoadSeen(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
		return err
	}
	deps.Logger.Debug("loaded seen documents", "count", p.Seen.EstimatedCount())

	progress := func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d documents\n", event.Total)
		case pipeline.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Path, event.Result.Err)
		case pipeline.ProgressCompleted:
			if event.Result.Unchanged {
				fmt.Fprintf(deps.Stdout, "  [%d/%d] %s unchanged\n", event.Completed, event.Total, event.Path)
				return
			}
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s: %d accepted, %d rejected\n",
				event.Completed, event.Total, event.Path, event.Result.Accepted, event.Result.Rejected)
		case pipeline.ProgressFinished:
			// Summary printed below
		}
	}

	summary, err := p.ProcessAll(deps.Ctx, inputs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Committed %d, unchanged %d, skipped %d documents\n",
		summary.Committed, summary.Unchanged, summary.Skipped)
	fmt.Fprintf(deps.Stdout, "Accepted %d and rejected %d candidates: %d new entries, %d merged\n",
		summary.Accepted, summary.Rejected, summary.Created, summary.Merged)
	return nil
}
