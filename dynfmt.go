package dynfmt

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// ErrMalformedTemplate is the sentinel matched by every structural template
// error. Use [errors.As] with [*TemplateError] to get the offset.
var ErrMalformedTemplate = errors.New("malformed template")

// TemplateError reports a structural problem in a template: an unterminated
// or nested placeholder, an unmatched '}', or a bad placeholder field.
type TemplateError struct {
	// Offset is the byte position in the template of the offending brace.
	Offset int
	Reason string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", ErrMalformedTemplate, e.Offset, e.Reason)
}

// Unwrap returns [ErrMalformedTemplate].
func (e *TemplateError) Unwrap() error { return ErrMalformedTemplate }

// Format substitutes args into tmpl. Each argument is adapted with [Value].
//
// Placeholders without an index take the next sequential argument; indexed
// placeholders do not advance that cursor. Placeholders that resolve past
// the end of args render as empty text, and extra arguments are ignored.
// Only a malformed template is an error, and then no output is produced.
func Format(tmpl string, args ...any) (string, error) {
	return renderString(tmpl, Values(args...))
}

// FormatValues is like [Format] but takes renderables directly.
// Nil entries render as empty text.
func FormatValues(tmpl string, args ...Renderable) (string, error) {
	return renderString(tmpl, args)
}

// Write formats tmpl with args and writes the result to w.
// Nothing is written when the template is malformed.
func Write(w io.Writer, tmpl string, args ...any) error {
	_, err := writeRendered(w, tmpl, Values(args...))
	return err
}

// Validate scans tmpl and returns the first structural error, if any.
func Validate(tmpl string) error {
	for _, err := range Segments(tmpl) {
		if err != nil {
			return err
		}
	}
	return nil
}

// Template is a format string with method-style helpers:
//
//	s, err := dynfmt.Template("{}a{}b").Format(1, 2)
type Template string

// Format is shorthand for [Format].
func (t Template) Format(args ...any) (string, error) {
	return Format(string(t), args...)
}

// Write is shorthand for [Write].
func (t Template) Write(w io.Writer, args ...any) error {
	return Write(w, string(t), args...)
}

// Validate is shorthand for [Validate].
func (t Template) Validate() error { return Validate(string(t)) }

// Segments is shorthand for [Segments].
func (t Template) Segments() iter.Seq2[Segment, error] {
	return Segments(string(t))
}

// Arguments binds a template to its arguments without rendering. It can be
// passed wherever a [fmt.Stringer] or [io.WriterTo] is accepted, so the
// work happens only when the value is printed.
type Arguments struct {
	tmpl string
	args []Renderable
}

// New returns Arguments for tmpl and args, each adapted with [Value].
// Values are adapted once, here; rendering happens on each use.
func New(tmpl string, args ...any) Arguments {
	return Arguments{tmpl: tmpl, args: Values(args...)}
}

// Format renders the template.
func (a Arguments) Format() (string, error) {
	return renderString(a.tmpl, a.args)
}

// WriteTo implements [io.WriterTo].
func (a Arguments) WriteTo(w io.Writer) (int64, error) {
	return writeRendered(w, a.tmpl, a.args)
}

// String implements [fmt.Stringer]. A malformed template renders as
// %!(malformed template ...) in the manner of the fmt package.
func (a Arguments) String() string {
	s, err := a.Format()
	if err != nil {
		return "%!(" + err.Error() + ")"
	}
	return s
}
