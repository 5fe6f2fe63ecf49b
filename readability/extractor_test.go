package readability_test

import (
	"testing"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract("")

		require.Error(t, err)
		assert.Equal(t, termgate.EINVALID, termgate.ErrorCode(err))
	})

	t.Run("extracts title and article body", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Pump Glossary</title></head>
<body>
<div class="sidebar"><a href="/a">A</a> <a href="/b">B</a></div>
<article>
<p>Net Positive Suction Head: the difference between the absolute pressure at the pump inlet and the vapour pressure of the liquid, expressed as a head of liquid.</p>
<p>Shut-off Head: the head developed by a centrifugal pump operating against a closed discharge valve, where the flow through the pump is zero.</p>
</article>
</body>
</html>`

		result, err := readability.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Pump Glossary", result.Title)
		assert.Contains(t, result.ContentHTML, "Net Positive Suction Head")
	})

	t.Run("reports pages without readable content", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract("<html><body><script>var x = 1;</script></body></html>")

		require.Error(t, err)
	})
}
