package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/mock"
	"github.com/fwojciec/termgate/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const glossaryPage = `<!DOCTYPE html>
<html>
<head><title>Glossary - Process Engineering Handbook</title></head>
<body>
<nav><a href="/">Home</a><a href="/glossary">Glossary</a></nav>
<article>
<h1>Glossary</h1>
<p>Mixing Time: the time required to reach a defined degree of homogeneity in a stirred vessel after a tracer has been added.</p>
<p>Flow Rate: the volume of fluid passing a cross section of a pipe per unit of time, usually given in cubic metres per hour.</p>
<p>Residence Time: the average time a fluid element spends inside the reactor before it leaves through the outlet.</p>
</article>
<footer>Copyright 2026 Example Plant Services</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("keeps article text and drops boilerplate", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor(nil).Extract(glossaryPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Mixing Time")
		assert.Contains(t, result.ContentHTML, "Residence Time")
		assert.NotContains(t, result.ContentHTML, "Copyright 2026")
		assert.NotEmpty(t, result.Title)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor(nil).Extract("  ")

		assert.Equal(t, termgate.EINVALID, termgate.ErrorCode(err))
	})

	t.Run("falls back when no content is found", func(t *testing.T) {
		t.Parallel()

		var called bool
		fallback := &mock.ContentExtractor{
			ExtractFn: func(html string) (*termgate.ExtractResult, error) {
				called = true
				return &termgate.ExtractResult{ContentHTML: "<p>fallback</p>"}, nil
			},
		}

		result, err := trafilatura.NewExtractor(fallback).Extract("<html><body></body></html>")

		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "<p>fallback</p>", result.ContentHTML)
	})
}
