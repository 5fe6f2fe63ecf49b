// Package yaml loads validation profiles from YAML files.
//
// A profile names a language and overrides any subset of the built-in
// defaults for it:
//
//	language: de
//	min_term_length: 4
//	generic_word_blacklist: [luft, wasser]
//
// Keys left out keep the language default. Word lists replace the default
// list unless given under the matching extra_ key, which extends it.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/termgate"
	"gopkg.in/yaml.v3"
)

// Profile is the on-disk form of a termgate.ValidationConfig.
type Profile struct {
	Language string `yaml:"language"`

	MinTermLength  *int     `yaml:"min_term_length"`
	MaxTermLength  *int     `yaml:"max_term_length"`
	MinWordCount   *int     `yaml:"min_word_count"`
	MaxWordCount   *int     `yaml:"max_word_count"`
	MaxSymbolRatio *float64 `yaml:"max_symbol_ratio"`

	AllowAllUppercase *bool `yaml:"allow_all_uppercase"`
	MinAcronymLength  *int  `yaml:"min_acronym_length"`
	MaxAcronymLength  *int  `yaml:"max_acronym_length"`

	RejectPureNumbers *bool `yaml:"reject_pure_numbers"`
	StripArticles     *bool `yaml:"strip_articles"`
	RejectOCRErrors   *bool `yaml:"reject_ocr_errors"`
	RejectFragments   *bool `yaml:"reject_fragments"`

	SuffixBlacklist      []string `yaml:"suffix_blacklist"`
	PrefixBlacklist      []string `yaml:"prefix_blacklist"`
	GenericWordBlacklist []string `yaml:"generic_word_blacklist"`
	FragmentWords        []string `yaml:"fragment_words"`
	CaseExceptions       []string `yaml:"case_exceptions"`

	ExtraSuffixBlacklist      []string `yaml:"extra_suffix_blacklist"`
	ExtraPrefixBlacklist      []string `yaml:"extra_prefix_blacklist"`
	ExtraGenericWordBlacklist []string `yaml:"extra_generic_word_blacklist"`

	MathSymbols *string `yaml:"math_symbols"`
}

// LoadProfile reads the profile at path and returns the resulting
// configuration. fallback is used when the profile names no language.
func LoadProfile(path string, fallback termgate.Language) (termgate.ValidationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return termgate.ValidationConfig{}, fmt.Errorf("read profile: %w", err)
	}
	cfg, err := ParseProfile(data, fallback)
	if err != nil {
		return termgate.ValidationConfig{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return cfg, nil
}

// ParseProfile decodes a YAML profile. Unknown keys are an error.
func ParseProfile(data []byte, fallback termgate.Language) (termgate.ValidationConfig, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return termgate.ValidationConfig{}, termgate.Errorf(termgate.EINVALID, "invalid profile: %v", err)
	}
	return p.Config(fallback)
}

// Config applies p on top of the defaults for its language.
func (p *Profile) Config(fallback termgate.Language) (termgate.ValidationConfig, error) {
	lang := fallback
	if p.Language != "" {
		l, err := termgate.ParseLanguage(p.Language)
		if err != nil {
			return termgate.ValidationConfig{}, err
		}
		lang = l
	}
	cfg := termgate.DefaultConfig(lang)

	setInt(&cfg.MinTermLength, p.MinTermLength)
	setInt(&cfg.MaxTermLength, p.MaxTermLength)
	setInt(&cfg.MinWordCount, p.MinWordCount)
	setInt(&cfg.MaxWordCount, p.MaxWordCount)
	setInt(&cfg.MinAcronymLength, p.MinAcronymLength)
	setInt(&cfg.MaxAcronymLength, p.MaxAcronymLength)
	if p.MaxSymbolRatio != nil {
		cfg.MaxSymbolRatio = *p.MaxSymbolRatio
	}

	setBool(&cfg.AllowAllUppercase, p.AllowAllUppercase)
	setBool(&cfg.RejectPureNumbers, p.RejectPureNumbers)
	setBool(&cfg.StripArticles, p.StripArticles)
	setBool(&cfg.RejectOCRErrors, p.RejectOCRErrors)
	setBool(&cfg.RejectFragments, p.RejectFragments)

	setWords(&cfg.SuffixBlacklist, p.SuffixBlacklist, p.ExtraSuffixBlacklist)
	setWords(&cfg.PrefixBlacklist, p.PrefixBlacklist, p.ExtraPrefixBlacklist)
	setWords(&cfg.GenericWordBlacklist, p.GenericWordBlacklist, p.ExtraGenericWordBlacklist)
	setWords(&cfg.FragmentWords, p.FragmentWords, nil)
	setWords(&cfg.CaseExceptions, p.CaseExceptions, nil)

	if p.MathSymbols != nil {
		cfg.MathSymbols = *p.MathSymbols
	}

	if err := cfg.Validate(); err != nil {
		return termgate.ValidationConfig{}, err
	}
	return cfg, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setWords(dst *termgate.WordSet, replace, extra []string) {
	if replace != nil {
		*dst = termgate.NewWordSet(replace...)
	}
	if len(extra) > 0 {
		*dst = dst.Union(termgate.NewWordSet(extra...))
	}
}
