package main

import (
	"fmt"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/normalize"
)

// Run executes the normalize command. Pages are separated by form feeds.
func (c *NormalizeCmd) Run(deps *Dependencies) error {
	pages, err := deps.Reader.Read(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", termgate.ErrorMessage(err))
		return err
	}
	for i, p := range pages {
		if i > 0 {
			fmt.Fprint(deps.Stdout, "\f")
		}
		fmt.Fprintln(deps.Stdout, normalize.Text(p.Text))
	}
	return nil
}
