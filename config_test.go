package termgate_test

import (
	"testing"

	"github.com/fwojciec/termgate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	t.Run("english profile is valid", func(t *testing.T) {
		t.Parallel()

		cfg := termgate.DefaultConfig(termgate.English)

		require.NoError(t, cfg.Validate())
		assert.Equal(t, 3, cfg.MinTermLength)
		assert.Equal(t, 100, cfg.MaxTermLength)
		assert.Equal(t, 1, cfg.MinWordCount)
		assert.Equal(t, 5, cfg.MaxWordCount)
		assert.True(t, cfg.FragmentWords.Has("with"))
		assert.True(t, cfg.SuffixBlacklist.Has("tion"))
		assert.True(t, cfg.GenericWordBlacklist.Has("gas"))
	})

	t.Run("german profile uses german word lists", func(t *testing.T) {
		t.Parallel()

		cfg := termgate.DefaultConfig(termgate.German)

		require.NoError(t, cfg.Validate())
		assert.True(t, cfg.FragmentWords.Has("und"))
		assert.False(t, cfg.FragmentWords.Has("and"))
		assert.True(t, cfg.SuffixBlacklist.Has("ung"))
	})
}

func TestValidationConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*termgate.ValidationConfig)
	}{
		{"missing language", func(c *termgate.ValidationConfig) { c.Language = "" }},
		{"max length below min length", func(c *termgate.ValidationConfig) { c.MaxTermLength = 2 }},
		{"zero min word count", func(c *termgate.ValidationConfig) { c.MinWordCount = 0 }},
		{"max word count below min", func(c *termgate.ValidationConfig) { c.MinWordCount = 3; c.MaxWordCount = 2 }},
		{"symbol ratio above one", func(c *termgate.ValidationConfig) { c.MaxSymbolRatio = 1.5 }},
		{"inverted acronym bounds", func(c *termgate.ValidationConfig) { c.MinAcronymLength = 9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := termgate.DefaultConfig(termgate.English)
			tt.modify(&cfg)

			err := cfg.Validate()
			assert.Equal(t, termgate.EINVALID, termgate.ErrorCode(err))
		})
	}
}

func TestValidationConfig_WithLanguage(t *testing.T) {
	t.Parallel()

	cfg := termgate.DefaultConfig(termgate.English)
	cfg.MaxWordCount = 4

	de := cfg.WithLanguage(termgate.German)

	assert.Equal(t, termgate.German, de.Language)
	assert.Equal(t, 4, de.MaxWordCount)
	assert.True(t, de.FragmentWords.Has("oder"))
	assert.Equal(t, termgate.English, cfg.Language, "original config is unchanged")
}

func TestWordSet(t *testing.T) {
	t.Parallel()

	t.Run("lookup ignores case", func(t *testing.T) {
		t.Parallel()

		s := termgate.NewWordSet("Gas", " air ", "")

		assert.True(t, s.Has("gas"))
		assert.True(t, s.Has("AIR"))
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, []string{"air", "gas"}, s.Words())
	})

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()

		var s termgate.WordSet

		assert.False(t, s.Has("gas"))
		assert.Empty(t, s.Words())
	})

	t.Run("union combines both sets", func(t *testing.T) {
		t.Parallel()

		s := termgate.NewWordSet("gas").Union(termgate.NewWordSet("air"))

		assert.Equal(t, []string{"air", "gas"}, s.Words())
	})
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	lang, err := termgate.ParseLanguage("DE")
	require.NoError(t, err)
	assert.Equal(t, termgate.German, lang)

	_, err = termgate.ParseLanguage("fr")
	assert.Equal(t, termgate.EINVALID, termgate.ErrorCode(err))
}
