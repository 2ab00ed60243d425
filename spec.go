package dynfmt

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// Spec is a parsed placeholder: [index][:[0][width][.precision]].
// Unset components are distinct from zero; use the accessor methods.
type Spec struct {
	index     int
	width     int
	precision int
	set       specFlags
}

type specFlags uint8

const (
	hasIndex specFlags = 1 << iota
	hasWidth
	hasPrecision
	zeroPad
)

// Index returns the explicit argument index and whether one was given.
func (s Spec) Index() (int, bool) { return s.index, s.set&hasIndex != 0 }

// Width returns the minimum field width and whether one was given.
func (s Spec) Width() (int, bool) { return s.width, s.set&hasWidth != 0 }

// Precision returns the precision and whether one was given.
func (s Spec) Precision() (int, bool) { return s.precision, s.set&hasPrecision != 0 }

// ZeroPad reports whether the width was written with a leading zero, as in
// {:04}. Numeric values pad with zeros after the sign; text ignores it.
func (s Spec) ZeroPad() bool { return s.set&zeroPad != 0 }

// String returns the placeholder content in template syntax, without braces.
func (s Spec) String() string {
	var b []byte
	if i, ok := s.Index(); ok {
		b = strconv.AppendInt(b, int64(i), 10)
	}
	w, hw := s.Width()
	p, hp := s.Precision()
	if !hw && !hp && !s.ZeroPad() {
		return string(b)
	}
	b = append(b, ':')
	if s.ZeroPad() {
		b = append(b, '0')
	}
	if hw {
		b = strconv.AppendInt(b, int64(w), 10)
	}
	if hp {
		b = append(b, '.')
		b = strconv.AppendInt(b, int64(p), 10)
	}
	return string(b)
}

// ParseSpec parses the content between a placeholder's braces.
// Errors are [*TemplateError] values reporting offset 0.
func ParseSpec(content string) (Spec, error) {
	return parseSpec(content, 0)
}

// maxField bounds width and precision, as the fmt package does, so a
// template cannot demand an unbounded allocation.
const maxField = 1_000_000

// parseSpec parses placeholder content; offset is the position of the
// opening brace in the template and is reported on error.
func parseSpec(s string, offset int) (Spec, error) {
	var spec Spec
	fail := func(format string, args ...any) (Spec, error) {
		return Spec{}, &TemplateError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
	}
	unexpected := func(rest string) (Spec, error) {
		r, _ := utf8.DecodeRuneInString(rest)
		return fail("unexpected %q in placeholder {%s}", r, s)
	}

	num, rest := leadingDigits(s)
	if num != "" {
		n, ok := parseField(num, math.MaxInt)
		if !ok {
			return fail("index out of range")
		}
		spec.index = n
		spec.set |= hasIndex
	}
	if rest == "" {
		return spec, nil
	}
	if rest[0] != ':' {
		return unexpected(rest)
	}

	num, rest = leadingDigits(rest[1:])
	if len(num) > 1 && num[0] == '0' {
		spec.set |= zeroPad
		num = num[1:]
	}
	if num != "" {
		n, ok := parseField(num, maxField)
		if !ok {
			return fail("width out of range")
		}
		spec.width = n
		spec.set |= hasWidth
	}
	if rest == "" {
		return spec, nil
	}
	if rest[0] != '.' {
		return unexpected(rest)
	}

	num, rest = leadingDigits(rest[1:])
	if num == "" {
		return fail("missing precision in placeholder {%s}", s)
	}
	n, ok := parseField(num, maxField)
	if !ok {
		return fail("precision out of range")
	}
	spec.precision = n
	spec.set |= hasPrecision
	if rest != "" {
		return unexpected(rest)
	}
	return spec, nil
}

func parseField(num string, limit int) (int, bool) {
	n, err := strconv.Atoi(num)
	if err != nil || n > limit {
		return 0, false
	}
	return n, true
}

func leadingDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}
