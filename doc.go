// Package dynfmt formats strings from templates chosen at runtime.
//
// A template is literal text with brace placeholders. It is the runtime
// counterpart of a fixed format string: the template can come from a file,
// a flag or a translation table.
//
//	s, err := dynfmt.Format("{}a{}b{}c", 1, 2, 3) // "1a2b3c"
//
// # Placeholders
//
// A placeholder has the form {[index][:[0][width][.precision]]}:
//
//   - {} takes the next sequential argument. The cursor starts at zero and
//     only indexless placeholders advance it.
//   - {2} takes argument 2 and leaves the cursor alone.
//   - {:5} pads to five display columns. Numbers right-align, text
//     left-aligns.
//   - {:05} pads numbers with zeros after the sign.
//   - {:.3} prints floats with three digits after the decimal point.
//
// Write {{ and }} for literal braces.
//
// # Arguments
//
// Placeholders that resolve past the last argument render as nothing, and
// surplus arguments are ignored, so one template can serve callers with
// different argument counts:
//
//	dynfmt.Format("{}a{}b{}c", 1, 2)       // "1a2bc"
//	dynfmt.Format("{}a{}b{}c", 1, 2, 3, 4) // "1a2b3c"
//
// Arguments are rendered through the [Renderable] interface. [Format] adapts
// plain Go values with [Value]; implement Renderable to control how your own
// types honour width and precision, and pass them to [FormatValues] or
// [Format] directly.
//
// # Errors
//
// A malformed template (unterminated or nested placeholder, unmatched '}',
// a non-digit in a numeric field) fails with a [*TemplateError] that wraps
// [ErrMalformedTemplate] and carries the byte offset. No partial output is
// returned or written.
//
// # Lazy forms
//
// [Segments] exposes the scanner as an iterator. [New] pairs a template with
// its arguments in an [Arguments] value that renders when printed. [FuncMap]
// makes the formatter available to text/template.
package dynfmt
