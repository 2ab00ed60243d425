package dynfmt

import (
	"text/template"
)

// FuncMap returns template functions exposing this package to
// [text/template]:
//
//	dynfmt TEMPLATE ARGS...   renders like [Format]
//
// A malformed template stops execution with the template error.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"dynfmt": Format,
	}
}
