// Package gemini generates definitions with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/termgate"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is the model used when Synthesizer.Model is empty.
const DefaultModel = "gemini-2.5-flash"

// maxDefinitionLength bounds generated definitions in bytes.
const maxDefinitionLength = 600

// Ensure Synthesizer implements termgate.Synthesizer at compile time.
var _ termgate.Synthesizer = (*Synthesizer)(nil)

// Synthesizer implements termgate.Synthesizer using Google Gemini. Requests
// are rate limited. When generation fails and Fallback is set, the fallback
// definition is returned instead.
type Synthesizer struct {
	client  *genai.Client
	limiter *rate.Limiter

	Model    string
	Fallback termgate.Synthesizer
}

// NewSynthesizer creates a new Synthesizer allowing rps requests per second.
// A non-positive rps disables rate limiting.
func NewSynthesizer(client *genai.Client, rps float64, fallback termgate.Synthesizer) *Synthesizer {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Synthesizer{
		client:   client,
		limiter:  rate.NewLimiter(limit, 1),
		Model:    DefaultModel,
		Fallback: fallback,
	}
}

// Synthesize returns a one or two sentence definition of req.Term written
// from the surrounding text.
func (s *Synthesizer) Synthesize(ctx context.Context, req termgate.SynthesisRequest) (string, error) {
	if strings.TrimSpace(req.Term) == "" {
		return "", termgate.Errorf(termgate.EINVALID, "term required")
	}
	if strings.TrimSpace(req.Context) == "" && strings.TrimSpace(req.Sentence) == "" {
		return "", termgate.Errorf(termgate.EINVALID, "no context to define %q", req.Term)
	}

	def, err := s.generate(ctx, req)
	if err == nil {
		return def, nil
	}
	if s.Fallback == nil || ctx.Err() != nil {
		return "", err
	}
	return s.Fallback.Synthesize(ctx, req)
}

func (s *Synthesizer) generate(ctx context.Context, req termgate.SynthesisRequest) (string, error) {
	if s.client == nil {
		return "", termgate.Errorf(termgate.EINVALID, "gemini client not configured")
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	model := s.Model
	if model == "" {
		model = DefaultModel
	}

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildPrompt(req)}},
		}},
		BuildConfig(req.Language),
	)
	if err != nil {
		return "", fmt.Errorf("generate definition for %q: %w", req.Term, err)
	}
	if result == nil {
		return "", termgate.Errorf(termgate.EINTERNAL, "gemini returned nil result")
	}

	def := CleanDefinition(result.Text())
	if def == "" {
		return "", termgate.Errorf(termgate.EINTERNAL, "gemini returned an empty definition for %q", req.Term)
	}
	return def, nil
}

// BuildConfig returns the GenerateContentConfig for definition requests.
func BuildConfig(lang termgate.Language) *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You write glossary definitions for technical terms found in engineering documents. " +
					"Use only the information in the provided excerpt. " +
					"Answer with one or two plain sentences in " + languageName(lang) + ", without markdown and without repeating the term as a heading.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt builds the user prompt for req.
func BuildPrompt(req termgate.SynthesisRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<term>%s</term>\n", req.Term)
	if req.Sentence != "" {
		fmt.Fprintf(&sb, "<sentence>%s</sentence>\n", req.Sentence)
	}
	if req.Context != "" {
		fmt.Fprintf(&sb, "<excerpt>%s</excerpt>\n", req.Context)
	}
	if len(req.Pages) > 0 {
		pages := make([]string, len(req.Pages))
		for i, p := range req.Pages {
			pages[i] = fmt.Sprint(p)
		}
		fmt.Fprintf(&sb, "<pages>%s</pages>\n", strings.Join(pages, ", "))
	}
	sb.WriteString("\nDefine the term.")
	return sb.String()
}

// CleanDefinition trims model output to a single paragraph of plain text.
func CleanDefinition(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "\n\n"); i >= 0 {
		s = s[:i]
	}
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, "*_\"")
	if len(s) > maxDefinitionLength {
		cut := strings.LastIndexByte(s[:maxDefinitionLength], ' ')
		if cut <= 0 {
			cut = maxDefinitionLength
			for cut > 0 && !utf8.RuneStart(s[cut]) {
				cut--
			}
		}
		s = s[:cut] + "…"
	}
	return s
}

func languageName(lang termgate.Language) string {
	if lang == termgate.German {
		return "German"
	}
	return "English"
}
