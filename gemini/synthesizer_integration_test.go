//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestSynthesizer_Integration_ReturnsDefinition(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	s := gemini.NewSynthesizer(client, 1, nil)

	def, err := s.Synthesize(ctx, termgate.SynthesisRequest{
		Term:     "Mixing Time",
		Context:  "The Mixing Time is the time required to reach homogeneity in a stirred vessel.",
		Language: termgate.English,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, def)
	assert.NotContains(t, def, "\n\n")
}
