package extract_test

import (
	"testing"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor() *extract.Extractor {
	return extract.New(termgate.DefaultConfig(termgate.English))
}

func terms(candidates []termgate.Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Term
	}
	return out
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("strips leading article from capitalized run", func(t *testing.T) {
		t.Parallel()

		page := termgate.Page{Number: 4, Text: "The Mixing Time is the time required to reach homogeneity."}

		got := newExtractor().Extract(page, "doc-1")

		require.Len(t, got, 1)
		assert.Equal(t, "Mixing Time", got[0].Term)
		assert.Equal(t, "The Mixing Time", got[0].Original)
		assert.Equal(t, "The Mixing Time is the time required to reach homogeneity.", got[0].Sentence)
		assert.Equal(t, []int{4}, got[0].Pages)
		assert.Equal(t, "doc-1", got[0].DocumentID)
		assert.Equal(t, termgate.English, got[0].Language)
	})

	t.Run("extracts colon definition", func(t *testing.T) {
		t.Parallel()

		page := termgate.Page{Number: 1, Text: "Mixing Time: the time required to reach homogeneity."}

		got := newExtractor().Extract(page, "doc-1")

		require.Len(t, got, 1)
		assert.Equal(t, "Mixing Time", got[0].Term)
		assert.Equal(t, "the time required to reach homogeneity.", got[0].Context)
		assert.Equal(t, "the time required to reach homogeneity.", got[0].Sentence)
	})

	t.Run("keeps glossary list definitions apart", func(t *testing.T) {
		t.Parallel()

		page := termgate.Page{Number: 1, Text: "Pump: a device.\nValve: a device that controls flow."}

		got := newExtractor().Extract(page, "doc-1")

		require.Len(t, got, 2)
		assert.Equal(t, "Pump", got[0].Term)
		assert.Equal(t, "a device.", got[0].Context)
		assert.Equal(t, "Valve", got[1].Term)
		assert.Equal(t, "a device that controls flow.", got[1].Context)
	})

	t.Run("extracts numbered heading with following body", func(t *testing.T) {
		t.Parallel()

		page := termgate.Page{Number: 2, Text: "3.2 Flow Rate\nThe volume passing per unit time."}

		got := newExtractor().Extract(page, "doc-1")

		require.Len(t, got, 1)
		assert.Equal(t, "Flow Rate", got[0].Term)
		assert.Equal(t, "The volume passing per unit time.", got[0].Context)
	})

	t.Run("uses next paragraph as context of a standalone heading", func(t *testing.T) {
		t.Parallel()

		page := termgate.Page{Number: 2, Text: "# Control Valve\n\nA valve that modulates flow."}

		got := newExtractor().Extract(page, "doc-1")

		require.NotEmpty(t, got)
		assert.Equal(t, "Control Valve", got[0].Term)
		assert.Equal(t, "A valve that modulates flow.", got[0].Context)
	})

	t.Run("does not treat wrapped prose as heading", func(t *testing.T) {
		t.Parallel()

		page := termgate.Page{Number: 1, Text: "The Mixing Time is measured\nin seconds for each Stirred Tank."}

		got := newExtractor().Extract(page, "doc-1")

		assert.Equal(t, []string{"Mixing Time", "Stirred Tank"}, terms(got))
	})

	t.Run("reports duplicate spans once", func(t *testing.T) {
		t.Parallel()

		page := termgate.Page{Number: 1, Text: "We measured the Mixing Time. Then the Mixing Time was reduced."}

		got := newExtractor().Extract(page, "doc-1")

		assert.Equal(t, []string{"Mixing Time"}, terms(got))
	})

	t.Run("does not filter implausible candidates", func(t *testing.T) {
		t.Parallel()

		page := termgate.Page{Number: 1, Text: "And Then: whatever follows here."}

		got := newExtractor().Extract(page, "doc-1")

		assert.Equal(t, []string{"And Then"}, terms(got))
	})

	t.Run("keeps article when stripping is disabled", func(t *testing.T) {
		t.Parallel()

		cfg := termgate.DefaultConfig(termgate.English)
		cfg.StripArticles = false
		page := termgate.Page{Number: 1, Text: "The Mixing Time is short."}

		got := extract.New(cfg).Extract(page, "doc-1")

		assert.Equal(t, []string{"The Mixing Time"}, terms(got))
	})

	t.Run("uses page language over extractor default", func(t *testing.T) {
		t.Parallel()

		page := termgate.Page{Number: 1, Language: termgate.German, Text: "Die Mischzeit: die Zeit bis zur Homogenität."}

		got := newExtractor().Extract(page, "doc-1")

		require.NotEmpty(t, got)
		assert.Equal(t, "Mischzeit", got[0].Term)
		assert.Equal(t, "Die Mischzeit", got[0].Original)
		assert.Equal(t, termgate.German, got[0].Language)
	})

	t.Run("returns nothing for empty page", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, newExtractor().Extract(termgate.Page{Number: 1}, "doc-1"))
	})
}

func TestStripArticle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		span string
		lang termgate.Language
		want string
	}{
		{"english definite article", "The Sensor", termgate.English, "Sensor"},
		{"english indefinite article", "an Actuator", termgate.English, "Actuator"},
		{"german article", "Die Temperatur", termgate.German, "Temperatur"},
		{"trailing article untouched", "Sensor The", termgate.English, "Sensor The"},
		{"mid-phrase article untouched", "Time of the Day", termgate.English, "Time of the Day"},
		{"strips only once", "The The Band", termgate.English, "The Band"},
		{"article alone is kept", "The", termgate.English, "The"},
		{"other language articles ignored", "Die Hard", termgate.English, "Die Hard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, extract.StripArticle(tt.span, tt.lang))
		})
	}
}

func TestSentences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"splits at terminal punctuation", "The pump starts. It stops!", []string{"The pump starts.", "It stops!"}},
		{"ignores abbreviations", "See Fig. 3 for details. Done.", []string{"See Fig. 3 for details.", "Done."}},
		{"ignores decimal points", "Set to 3.5 bar. Then wait.", []string{"Set to 3.5 bar.", "Then wait."}},
		{"ignores e.g.", "Use a fluid, e.g. water, here.", []string{"Use a fluid, e.g. water, here."}},
		{"keeps unterminated tail", "First. Second part", []string{"First.", "Second part"}},
		{"empty text", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, extract.Sentences(tt.text))
		})
	}
}

func TestIsComplete(t *testing.T) {
	t.Parallel()

	assert.True(t, extract.IsComplete("The pump starts."))
	assert.True(t, extract.IsComplete("Is it \"done?\""))
	assert.False(t, extract.IsComplete("the time required to"))
}
