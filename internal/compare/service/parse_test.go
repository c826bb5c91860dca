package service

import (
	"reflect"
	"testing"

	"listcompare-service/internal/compare/model"
)

func TestParseSplitting(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		opt   model.Options
		items []string
	}{
		{
			name:  "newline",
			text:  "apple\nbanana\ncherry",
			opt:   model.Options{Delimiter: model.DelimNewline, TrimItems: true},
			items: []string{"apple", "banana", "cherry"},
		},
		{
			name:  "newline crlf and bare cr",
			text:  "a\r\nb\rc",
			opt:   model.Options{Delimiter: model.DelimNewline, TrimItems: true},
			items: []string{"a", "b", "c"},
		},
		{
			name:  "comma",
			text:  "a, b ,c",
			opt:   model.Options{Delimiter: model.DelimComma, TrimItems: true},
			items: []string{"a", "b", "c"},
		},
		{
			name:  "semicolon",
			text:  "x;y;;z",
			opt:   model.Options{Delimiter: model.DelimSemicolon, TrimItems: true},
			items: []string{"x", "y", "z"},
		},
		{
			name:  "whitespace",
			text:  "  one\ttwo\nthree  ",
			opt:   model.Options{Delimiter: model.DelimWhitespace},
			items: []string{"one", "two", "three"},
		},
		{
			name:  "custom multi-char",
			text:  "a | b | c",
			opt:   model.Options{Delimiter: model.DelimCustom, CustomDelimiter: " | "},
			items: []string{"a", "b", "c"},
		},
		{
			name:  "custom empty delimiter keeps whole text",
			text:  "hello world",
			opt:   model.Options{Delimiter: model.DelimCustom, TrimItems: true},
			items: []string{"hello world"},
		},
		{
			name:  "auto single line falls back to comma",
			text:  "a, b, c",
			opt:   model.Options{Delimiter: model.DelimAuto, TrimItems: true},
			items: []string{"a", "b", "c"},
		},
		{
			name:  "auto single line with trailing newline still comma",
			text:  "a, b, c\n",
			opt:   model.Options{Delimiter: model.DelimAuto, TrimItems: true},
			items: []string{"a", "b", "c"},
		},
		{
			name:  "auto single line with trailing crlf still comma",
			text:  "a, b, c\r\n",
			opt:   model.Options{Delimiter: model.DelimAuto, TrimItems: true},
			items: []string{"a", "b", "c"},
		},
		{
			name:  "newline trailing terminator adds no item",
			text:  "a\nb\n",
			opt:   model.Options{Delimiter: model.DelimNewline, TrimItems: true},
			items: []string{"a", "b"},
		},
		{
			name:  "auto multiline ignores embedded commas",
			text:  "a\nb,c",
			opt:   model.Options{Delimiter: model.DelimAuto, TrimItems: true},
			items: []string{"a", "b,c"},
		},
		{
			name:  "trim disabled keeps padding",
			text:  " a \n b ",
			opt:   model.Options{Delimiter: model.DelimNewline},
			items: []string{" a ", " b "},
		},
		{
			name:  "empty input",
			text:  "",
			opt:   model.Options{Delimiter: model.DelimAuto, TrimItems: true},
			items: []string{},
		},
		{
			name:  "all whitespace input",
			text:  "  \n\t\n  ",
			opt:   model.Options{Delimiter: model.DelimNewline, TrimItems: true},
			items: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text, tt.opt)
			if !reflect.DeepEqual(got.Items, tt.items) {
				t.Errorf("items = %q, want %q", got.Items, tt.items)
			}
		})
	}
}

func TestParseNormalization(t *testing.T) {
	opt := model.Options{Delimiter: model.DelimNewline, TrimItems: true}

	p := Parse("apple\nBanana\napple\nBANANA", opt)
	if want := []string{"apple", "Banana", "apple", "BANANA"}; !reflect.DeepEqual(p.Items, want) {
		t.Fatalf("items = %q, want %q", p.Items, want)
	}
	if want := []string{"apple", "banana"}; !reflect.DeepEqual(p.Keys, want) {
		t.Fatalf("keys = %q, want %q", p.Keys, want)
	}
	// first-seen casing wins as representative
	if got := p.Reps["banana"]; got != "Banana" {
		t.Errorf("rep for banana = %q, want %q", got, "Banana")
	}
	if p.Size() != 2 {
		t.Errorf("size = %d, want 2", p.Size())
	}
}

func TestParseCaseSensitive(t *testing.T) {
	opt := model.Options{Delimiter: model.DelimNewline, TrimItems: true, CaseSensitive: true}

	p := Parse("Apple\napple", opt)
	if want := []string{"Apple", "apple"}; !reflect.DeepEqual(p.Keys, want) {
		t.Fatalf("keys = %q, want %q", p.Keys, want)
	}
	if p.Reps["Apple"] != "Apple" || p.Reps["apple"] != "apple" {
		t.Errorf("reps = %v, distinct cased forms must stay distinct", p.Reps)
	}
}

func TestParseUnicodeFolding(t *testing.T) {
	opt := model.Options{Delimiter: model.DelimNewline, TrimItems: true}

	// full case folding: ß folds to ss, so Straße == STRASSE
	p := Parse("Straße\nSTRASSE", opt)
	if p.Size() != 1 {
		t.Fatalf("size = %d, want 1 (Straße and STRASSE must fold together)", p.Size())
	}
	if got := p.Reps[p.Keys[0]]; got != "Straße" {
		t.Errorf("rep = %q, want first-seen %q", got, "Straße")
	}
}
