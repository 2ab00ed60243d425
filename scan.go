package dynfmt

import (
	"iter"
)

// SegmentKind distinguishes literal runs from placeholders.
type SegmentKind int

const (
	Literal SegmentKind = iota
	Placeholder
)

// String returns the kind name.
func (k SegmentKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Placeholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Segment is one piece of a scanned template.
//
// For a Literal, Text holds the output text; it is always a substring of the
// template, so an escaped brace pair yields a one-byte segment. For a
// Placeholder, Spec holds the parsed content. Offset is the byte position in
// the template where the segment starts.
type Segment struct {
	Kind   SegmentKind
	Text   string
	Spec   Spec
	Offset int
}

// Segments scans tmpl left to right. The sequence is lazy and restartable:
// each range over it scans the template again. On a structural error it
// yields a zero Segment with a [*TemplateError] and stops.
func Segments(tmpl string) iter.Seq2[Segment, error] {
	return func(yield func(Segment, error) bool) {
		start := 0
		for i := 0; i < len(tmpl); i++ {
			c := tmpl[i]
			if c != '{' && c != '}' {
				continue
			}
			if i+1 < len(tmpl) && tmpl[i+1] == c {
				// Doubled brace: emit the pending run up to and including the first.
				if !yield(Segment{Kind: Literal, Text: tmpl[start : i+1], Offset: start}, nil) {
					return
				}
				i++
				start = i + 1
				continue
			}
			if c == '}' {
				yield(Segment{}, &TemplateError{Offset: i, Reason: "unmatched '}'"})
				return
			}

			if start < i {
				if !yield(Segment{Kind: Literal, Text: tmpl[start:i], Offset: start}, nil) {
					return
				}
			}
			end, err := closingBrace(tmpl, i)
			if err != nil {
				yield(Segment{}, err)
				return
			}
			spec, err := parseSpec(tmpl[i+1:end], i)
			if err != nil {
				yield(Segment{}, err)
				return
			}
			if !yield(Segment{Kind: Placeholder, Spec: spec, Offset: i}, nil) {
				return
			}
			i = end
			start = end + 1
		}
		if start < len(tmpl) {
			yield(Segment{Kind: Literal, Text: tmpl[start:], Offset: start}, nil)
		}
	}
}

// closingBrace finds the '}' closing the placeholder opened at open.
func closingBrace(tmpl string, open int) (int, error) {
	for j := open + 1; j < len(tmpl); j++ {
		switch tmpl[j] {
		case '}':
			return j, nil
		case '{':
			return 0, &TemplateError{Offset: j, Reason: "nested placeholder"}
		}
	}
	return 0, &TemplateError{Offset: open, Reason: "unterminated placeholder"}
}
