package service

import (
	"strings"

	"golang.org/x/text/cases"

	"listcompare-service/internal/compare/model"
)

// Parse splits raw text into cleaned items and derives the normalized key set.
// Empty pieces never make it into the list; empty input yields an empty list,
// not an error.
func Parse(text string, opt model.Options) model.ParsedList {
	pieces := split(text, opt)

	items := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if opt.TrimItems {
			p = strings.TrimSpace(p)
		}
		if p == "" {
			continue
		}
		items = append(items, p)
	}

	out := model.ParsedList{
		Items: items,
		Reps:  make(map[string]string, len(items)),
	}

	fold := folder(opt)
	for _, it := range items {
		key := fold(it)
		// first-seen-wins: only the first insertion for a key is kept
		if _, ok := out.Reps[key]; ok {
			continue
		}
		out.Reps[key] = it
		out.Keys = append(out.Keys, key)
	}
	return out
}

func split(text string, opt model.Options) []string {
	switch opt.Delimiter {
	case model.DelimNewline:
		return splitLines(text)
	case model.DelimComma:
		return strings.Split(text, ",")
	case model.DelimSemicolon:
		return strings.Split(text, ";")
	case model.DelimWhitespace:
		return strings.Fields(text)
	case model.DelimCustom:
		if opt.CustomDelimiter == "" {
			return []string{text}
		}
		return strings.Split(text, opt.CustomDelimiter)
	default: // auto: newline first, comma when the text is a single line
		parts := splitLines(text)
		if len(parts) <= 1 {
			parts = strings.Split(text, ",")
		}
		return parts
	}
}

// splitLines handles \r\n, \n and bare \r line endings. A final terminator
// ends the last line, it does not open an empty one: "a, b, c\n" is a single
// line, which lets auto mode fall through to comma splitting.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// folder returns the key-normalization function for the run. Full Unicode
// case folding, not ToLower: "Straße" and "STRASSE" must collide.
func folder(opt model.Options) func(string) string {
	if opt.CaseSensitive {
		return func(s string) string { return s }
	}
	c := cases.Fold()
	return c.String
}
