package synthesize_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/synthesize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractive_Synthesize(t *testing.T) {
	t.Parallel()

	t.Run("prefers the candidate sentence containing the term", func(t *testing.T) {
		t.Parallel()

		got, err := synthesize.NewExtractive().Synthesize(context.Background(), termgate.SynthesisRequest{
			Term:     "Mixing Time",
			Sentence: "The Mixing Time is the time required to reach homogeneity.",
			Context:  "Intro. The Mixing Time is the time required to reach homogeneity. More.",
			Pages:    []int{4},
		})

		require.NoError(t, err)
		assert.Equal(t, "The Mixing Time is the time required to reach homogeneity.", got)
	})

	t.Run("finds a sentence mentioning the term in the context", func(t *testing.T) {
		t.Parallel()

		got, err := synthesize.NewExtractive().Synthesize(context.Background(), termgate.SynthesisRequest{
			Term:    "Pump",
			Context: "Intro text. The Pump moves fluid. More text.",
			Pages:   []int{2},
		})

		require.NoError(t, err)
		assert.Equal(t, "The Pump moves fluid.", got)
	})

	t.Run("uses a complete definition sentence without the term", func(t *testing.T) {
		t.Parallel()

		got, err := synthesize.NewExtractive().Synthesize(context.Background(), termgate.SynthesisRequest{
			Term:     "Mixing Time",
			Sentence: "the time required to reach homogeneity.",
			Context:  "the time required to reach homogeneity.",
			Pages:    []int{1},
		})

		require.NoError(t, err)
		assert.Equal(t, "the time required to reach homogeneity.", got)
	})

	t.Run("falls back to an excerpt with page reference", func(t *testing.T) {
		t.Parallel()

		got, err := synthesize.NewExtractive().Synthesize(context.Background(), termgate.SynthesisRequest{
			Term:    "Mixing Time",
			Context: "Mixing Time of stirred tanks",
			Pages:   []int{4, 6},
		})

		require.NoError(t, err)
		assert.Equal(t, "Mixing Time of stirred tanks (pp. 4, 6)", got)
	})

	t.Run("bounds the excerpt around the term", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("alpha ", 60) + "Mixing Time" + strings.Repeat(" beta", 60)

		got, err := synthesize.NewExtractive().Synthesize(context.Background(), termgate.SynthesisRequest{
			Term:    "Mixing Time",
			Context: text,
			Pages:   []int{4},
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "..."))
		assert.True(t, strings.HasSuffix(got, "... (p. 4)"))
		assert.Contains(t, got, "Mixing Time")
		assert.LessOrEqual(t, utf8.RuneCountInString(got), synthesize.DefaultWindow+len("...... (p. 4)"))
	})

	t.Run("rejects request without text", func(t *testing.T) {
		t.Parallel()

		_, err := synthesize.NewExtractive().Synthesize(context.Background(), termgate.SynthesisRequest{Term: "Pump"})

		assert.Equal(t, termgate.EINVALID, termgate.ErrorCode(err))
	})
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	t.Run("returns short text unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a short text", synthesize.Excerpt("a  short\ntext", "short", 50))
	})

	t.Run("cuts at word boundaries", func(t *testing.T) {
		t.Parallel()

		got := synthesize.Excerpt("one two three four five six seven", "one", 12)

		assert.Equal(t, "one two...", got)
	})

	t.Run("centers on the term after runes that grow when lowercased", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("\u023A", 300) + " Mixing Time"

		got := synthesize.Excerpt(text, "Mixing Time", 250)

		assert.True(t, strings.HasSuffix(got, "Mixing Time"))
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("finds the term in mixed case text with growing runes", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("\u023A\u023E ", 150) + "see MIXING time here"

		got := synthesize.Excerpt(text, "Mixing Time", 40)

		assert.Contains(t, got, "MIXING time")
	})
}

func TestPageRef(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", synthesize.PageRef(nil))
	assert.Equal(t, "(p. 5)", synthesize.PageRef([]int{5}))
	assert.Equal(t, "(pp. 5, 7)", synthesize.PageRef([]int{5, 7}))
}
