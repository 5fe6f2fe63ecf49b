package termgate_test

import (
	"testing"

	"github.com/fwojciec/termgate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *termgate.Entry {
		return &termgate.Entry{
			Term:        "Mixing Time",
			Language:    termgate.English,
			Source:      termgate.SourceNAMUR,
			Definitions: []termgate.Definition{{Text: "The time required to mix.", Pages: []int{3}}},
		}
	}

	t.Run("accepts complete entry", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, valid().Validate())
	})

	t.Run("requires term", func(t *testing.T) {
		t.Parallel()

		e := valid()
		e.Term = "  "
		assert.Equal(t, termgate.EINVALID, termgate.ErrorCode(e.Validate()))
	})

	t.Run("requires a definition", func(t *testing.T) {
		t.Parallel()

		e := valid()
		e.Definitions = nil
		assert.Equal(t, termgate.EINVALID, termgate.ErrorCode(e.Validate()))
	})
}

func TestEntry_AddDefinition(t *testing.T) {
	t.Parallel()

	t.Run("appends a new definition", func(t *testing.T) {
		t.Parallel()

		e := &termgate.Entry{Definitions: []termgate.Definition{{Text: "first", Pages: []int{1}}}}

		added := e.AddDefinition(termgate.Definition{Text: "second", Pages: []int{4}})

		assert.True(t, added)
		require.Len(t, e.Definitions, 2)
		assert.Equal(t, "second", e.Definitions[1].Text)
	})

	t.Run("merges pages of an identical definition", func(t *testing.T) {
		t.Parallel()

		e := &termgate.Entry{Definitions: []termgate.Definition{{Text: "same", Pages: []int{5, 2}}}}

		added := e.AddDefinition(termgate.Definition{Text: "same", Pages: []int{2, 7}})

		assert.False(t, added)
		require.Len(t, e.Definitions, 1)
		assert.Equal(t, []int{2, 5, 7}, e.Definitions[0].Pages)
	})
}

func TestNewEntryKey(t *testing.T) {
	t.Parallel()

	a := termgate.NewEntryKey("Mixing  Time", termgate.English, termgate.SourceDIN)
	b := termgate.NewEntryKey("mixing time", termgate.English, termgate.SourceDIN)
	c := termgate.NewEntryKey("mixing time", termgate.English, termgate.SourceISO)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestParseSource(t *testing.T) {
	t.Parallel()

	src, err := termgate.ParseSource("namur")
	require.NoError(t, err)
	assert.Equal(t, termgate.SourceNAMUR, src)

	_, err = termgate.ParseSource("wikipedia")
	assert.Equal(t, termgate.EINVALID, termgate.ErrorCode(err))
}

func TestBatch_Validate(t *testing.T) {
	t.Parallel()

	t.Run("skipped document cannot carry entries", func(t *testing.T) {
		t.Parallel()

		b := &termgate.Batch{
			Document: &termgate.Document{ID: "d1", Path: "a.txt", Status: termgate.DocumentSkipped},
			Entries: []*termgate.Entry{{
				Term: "Fan", Language: termgate.English, Source: termgate.SourceInternal,
				Definitions: []termgate.Definition{{Text: "x"}},
			}},
		}

		assert.Equal(t, termgate.EINVALID, termgate.ErrorCode(b.Validate()))
	})

	t.Run("requires document", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, termgate.EINVALID, termgate.ErrorCode((&termgate.Batch{}).Validate()))
	})
}
