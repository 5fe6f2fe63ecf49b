package termgate

import "strings"

// Language identifies the language of a document and its terms.
type Language string

// Supported languages.
const (
	English Language = "en"
	German  Language = "de"
)

// ParseLanguage returns the Language for a code such as "en" or "DE".
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case German:
		return German, nil
	}
	return "", Errorf(EINVALID, "unsupported language %q", s)
}

// Articles returns the leading articles stripped from candidates in this
// language. Unknown languages have no articles.
func (l Language) Articles() WordSet {
	switch l {
	case English:
		return englishArticles
	case German:
		return germanArticles
	}
	return WordSet{}
}

var (
	englishArticles = NewWordSet("the", "a", "an")
	germanArticles  = NewWordSet("der", "die", "das", "den", "dem", "des")
)
