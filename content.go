package termgate

// ExtractResult is the main content of an HTML document.
type ExtractResult struct {
	Title string

	// ContentHTML keeps headings, paragraphs, lists and definition
	// paragraphs. Navigation, footers and scripts are gone.
	ContentHTML string
}

// ContentExtractor isolates the main content of an HTML document so that
// menus and page furniture do not turn into term candidates.
type ContentExtractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter turns content HTML into page text. Headings stay on lines of
// their own so the extractor can use them as term cues.
type Converter interface {
	Convert(html string) (string, error)
}
