package termgate

// ValidationConfig holds every threshold and word list used by the
// validation rules. Values are passed explicitly into each call and never
// modified after construction; derive variants by copying the value.
type ValidationConfig struct {
	Language Language

	MinTermLength  int
	MaxTermLength  int
	MinWordCount   int
	MaxWordCount   int
	MaxSymbolRatio float64

	AllowAllUppercase bool
	MinAcronymLength  int
	MaxAcronymLength  int

	RejectPureNumbers bool
	StripArticles     bool
	RejectOCRErrors   bool
	RejectFragments   bool

	SuffixBlacklist      WordSet
	PrefixBlacklist      WordSet
	GenericWordBlacklist WordSet
	FragmentWords        WordSet
	CaseExceptions       WordSet

	// MathSymbols lists the runes treated as mathematical notation.
	MathSymbols string
}

// DefaultConfig returns the built-in profile for lang. Languages without a
// dedicated profile get the English word lists.
func DefaultConfig(lang Language) ValidationConfig {
	cfg := ValidationConfig{
		Language:          lang,
		MinTermLength:     3,
		MaxTermLength:     100,
		MinWordCount:      1,
		MaxWordCount:      5,
		MaxSymbolRatio:    0.25,
		AllowAllUppercase: true,
		MinAcronymLength:  2,
		MaxAcronymLength:  8,
		RejectPureNumbers: true,
		StripArticles:     true,
		RejectOCRErrors:   true,
		RejectFragments:   true,
		CaseExceptions:    NewWordSet("pH", "mA", "mV", "kW", "kWh", "kPa", "MPa", "dB", "eV"),
		MathSymbols:       "+=<>±×÷∑∫√∞≤≥≠≈∂∆π^*/|\u2212",
	}

	switch lang {
	case German:
		cfg.SuffixBlacklist = NewWordSet("ung", "heit", "keit", "schaft", "lich", "isch", "bar", "los", "sam", "chen", "lein", "tion", "ität", "ismus")
		cfg.PrefixBlacklist = NewWordSet("un", "vor", "ver", "ent", "zer", "be", "ge", "miss", "ab", "an", "auf", "aus", "ein")
		cfg.GenericWordBlacklist = NewWordSet("gas", "luft", "ende", "teil", "wert", "art", "seite", "tabelle", "bild", "beispiel", "system", "daten")
		cfg.FragmentWords = NewWordSet("und", "oder", "aber", "an", "in", "auf", "für", "mit", "von", "bei", "zu", "aus", "nach")
	default:
		cfg.SuffixBlacklist = NewWordSet("tion", "sion", "ment", "ness", "ing", "ity", "able", "ible", "ous", "ive", "ful", "less", "ism", "ist", "ize", "ise", "ance", "ence", "ed", "er", "ly")
		cfg.PrefixBlacklist = NewWordSet("un", "re", "pre", "dis", "non", "anti", "de", "mis", "over", "under", "sub", "super", "inter", "trans")
		cfg.GenericWordBlacklist = NewWordSet("gas", "air", "end", "use", "data", "value", "part", "type", "form", "case", "way", "item", "note", "page", "section", "table", "figure", "example", "result", "system")
		cfg.FragmentWords = NewWordSet("and", "or", "but", "at", "in", "on", "for", "with", "from", "by", "to")
	}

	return cfg
}

// Validate returns an error if the configuration bounds are inconsistent.
func (c ValidationConfig) Validate() error {
	if c.Language == "" {
		return Errorf(EINVALID, "validation config language required")
	}
	if c.MinTermLength < 1 {
		return Errorf(EINVALID, "min_term_length must be at least 1")
	}
	if c.MaxTermLength < c.MinTermLength {
		return Errorf(EINVALID, "max_term_length %d is below min_term_length %d", c.MaxTermLength, c.MinTermLength)
	}
	if c.MinWordCount < 1 {
		return Errorf(EINVALID, "min_word_count must be at least 1")
	}
	if c.MaxWordCount < c.MinWordCount {
		return Errorf(EINVALID, "max_word_count %d is below min_word_count %d", c.MaxWordCount, c.MinWordCount)
	}
	if c.MaxSymbolRatio < 0 || c.MaxSymbolRatio > 1 {
		return Errorf(EINVALID, "max_symbol_ratio must be between 0 and 1")
	}
	if c.MinAcronymLength < 1 || c.MaxAcronymLength < c.MinAcronymLength {
		return Errorf(EINVALID, "acronym length bounds %d-%d are invalid", c.MinAcronymLength, c.MaxAcronymLength)
	}
	return nil
}

// WithLanguage returns a copy of c with the language and language-specific
// word lists of lang. Numeric thresholds and switches are kept.
func (c ValidationConfig) WithLanguage(lang Language) ValidationConfig {
	d := DefaultConfig(lang)
	c.Language = lang
	c.SuffixBlacklist = d.SuffixBlacklist
	c.PrefixBlacklist = d.PrefixBlacklist
	c.GenericWordBlacklist = d.GenericWordBlacklist
	c.FragmentWords = d.FragmentWords
	return c
}
