package mock

import "github.com/fwojciec/termgate"

var _ termgate.Converter = (*Converter)(nil)

// Converter is a mock implementation of termgate.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
