package model

import "fmt"

// DelimiterMode selects how raw text is split into items.
type DelimiterMode int

const (
	DelimAuto DelimiterMode = iota
	DelimNewline
	DelimComma
	DelimSemicolon
	DelimWhitespace
	DelimCustom
)

var delimNames = map[DelimiterMode]string{
	DelimAuto:       "auto",
	DelimNewline:    "newline",
	DelimComma:      "comma",
	DelimSemicolon:  "semicolon",
	DelimWhitespace: "whitespace",
	DelimCustom:     "custom",
}

func (d DelimiterMode) String() string {
	if s, ok := delimNames[d]; ok {
		return s
	}
	return "auto"
}

// ParseDelimiterMode maps the wire value to a mode.
func ParseDelimiterMode(s string) (DelimiterMode, error) {
	for d, name := range delimNames {
		if s == name {
			return d, nil
		}
	}
	return DelimAuto, fmt.Errorf("unknown delimiter mode: %q", s)
}

func (d DelimiterMode) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *DelimiterMode) UnmarshalText(b []byte) error {
	m, err := ParseDelimiterMode(string(b))
	if err != nil {
		return err
	}
	*d = m
	return nil
}

// Options is the full configuration for one comparison run. Immutable once
// built; every run gets its own copy.
type Options struct {
	Delimiter       DelimiterMode `json:"delimiter"`
	CustomDelimiter string        `json:"customDelimiter,omitempty"`
	CaseSensitive   bool          `json:"caseSensitive"`
	TrimItems       bool          `json:"trimItems"`
	Deduplicate     bool          `json:"deduplicate"`
	SortResults     bool          `json:"sortResults"`
}

// DefaultOptions mirrors the defaults of the original comparison form:
// auto-detected delimiter, case-insensitive, trimmed, deduplicated, unsorted.
func DefaultOptions() Options {
	return Options{
		Delimiter:   DelimAuto,
		TrimItems:   true,
		Deduplicate: true,
	}
}

// ParsedList is one list after splitting and filtering. Items keeps the
// original strings in source order (never case-folded). Keys holds the
// normalized keys in first-appearance order; Reps maps each key to the
// first-seen original string (later duplicates still count for membership,
// never as representatives).
type ParsedList struct {
	Items []string
	Keys  []string
	Reps  map[string]string
}

// Has reports set membership of a normalized key.
func (p ParsedList) Has(key string) bool {
	_, ok := p.Reps[key]
	return ok
}

// Size is the normalized-set cardinality, not the item count.
func (p ParsedList) Size() int { return len(p.Keys) }

// Counts carries the key-set cardinalities of each region, sized for a
// two-circle area diagram on the client.
type Counts struct {
	AOnly        int `json:"aOnly"`
	Intersection int `json:"intersection"`
	BOnly        int `json:"bOnly"`
	Union        int `json:"union"`
}

// Result is an immutable snapshot of one comparison run.
type Result struct {
	LabelA       string   `json:"labelA"`
	LabelB       string   `json:"labelB"`
	AOnly        []string `json:"aOnly"`
	Intersection []string `json:"intersection"`
	BOnly        []string `json:"bOnly"`
	Counts       Counts   `json:"counts"`
	Jaccard      float64  `json:"jaccard"`
	Overlap      float64  `json:"overlap"`
	Opts         Options  `json:"opts"`
}
