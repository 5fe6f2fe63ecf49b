package termgate

// Candidate is an unvalidated span of text proposed as a terminology entry,
// together with the text it was found in.
type Candidate struct {
	// Term is the candidate span after article stripping.
	Term string

	// Original is the span as it appeared in the text.
	Original string

	// Context is the surrounding text the span was found in.
	Context string

	// Sentence is the complete sentence containing the span, if one was found.
	Sentence string

	Language   Language
	DocumentID string
	Pages      []int
}

// Extractor segments normalized page text into term candidates.
// Implementations must not filter candidates; that is the validator's job.
type Extractor interface {
	Extract(page Page, documentID string) []Candidate
}
