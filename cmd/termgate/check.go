package main

import (
	"fmt"

	"github.com/fwojciec/termgate/normalize"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	for _, raw := range c.Terms {
		term := normalize.Normalize(raw)
		v := deps.Validator.Validate(term, deps.Config)
		if v.Accepted {
			fmt.Fprintf(deps.Stdout, "accept  %q\n", term)
			continue
		}
		fmt.Fprintf(deps.Stdout, "reject  %q  %s (%s)\n", term, v.Reason, v.Rule)
	}
	return nil
}
