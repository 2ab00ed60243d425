package dynfmt

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// render walks the segments of tmpl and appends the substituted text to b.
// Explicit indices never move the sequential cursor. Indices past the end
// of args, and nil arguments, render as nothing.
func render(b *strings.Builder, tmpl string, args []Renderable) error {
	cursor := 0
	for seg, err := range Segments(tmpl) {
		if err != nil {
			return err
		}
		if seg.Kind == Literal {
			b.WriteString(seg.Text)
			continue
		}
		i, ok := seg.Spec.Index()
		if !ok {
			i = cursor
			cursor++
		}
		if i >= len(args) || args[i] == nil {
			continue
		}
		b.WriteString(args[i].Render(seg.Spec))
	}
	return nil
}

func renderString(tmpl string, args []Renderable) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))
	if err := render(&b, tmpl, args); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeRendered(w io.Writer, tmpl string, args []Renderable) (int64, error) {
	s, err := renderString(tmpl, args)
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, s)
	return int64(n), err
}

// --- Padding ---

// padText left-aligns s within the spec width, measured in display columns.
func padText(s string, spec Spec) string {
	if w, ok := spec.Width(); ok {
		return runewidth.FillRight(s, w)
	}
	return s
}

// padNumber right-aligns s within the spec width. With zero set, zeros are
// inserted between the sign and the digits instead of leading spaces.
func padNumber(s string, spec Spec, zero bool) string {
	w, ok := spec.Width()
	if !ok {
		return s
	}
	n := runewidth.StringWidth(s)
	if n >= w {
		return s
	}
	if !zero {
		return runewidth.FillLeft(s, w)
	}
	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	return sign + strings.Repeat("0", w-n) + s
}
