package dynfmt

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Renderable is a value that can render itself for a placeholder.
// Implementations apply the width and precision of spec as suits their
// kind. The index has already been resolved and should be ignored.
type Renderable interface {
	Render(spec Spec) string
}

// Int renders a signed integer, right-aligned. Precision is ignored.
type Int int64

// Render implements [Renderable].
func (v Int) Render(spec Spec) string {
	return padNumber(strconv.FormatInt(int64(v), 10), spec, spec.ZeroPad())
}

// Uint renders an unsigned integer, right-aligned. Precision is ignored.
type Uint uint64

// Render implements [Renderable].
func (v Uint) Render(spec Spec) string {
	return padNumber(strconv.FormatUint(uint64(v), 10), spec, spec.ZeroPad())
}

// Float renders a float64, right-aligned. With a precision it prints that
// many digits after the decimal point, rounding; without one it prints the
// shortest exact decimal form.
type Float float64

// Render implements [Renderable].
func (v Float) Render(spec Spec) string {
	return renderFloat(float64(v), 64, spec)
}

// Float32 renders a float32 like [Float], using the shortest form that
// round-trips at 32 bits.
type Float32 float32

// Render implements [Renderable].
func (v Float32) Render(spec Spec) string {
	return renderFloat(float64(v), 32, spec)
}

func renderFloat(f float64, bitSize int, spec Spec) string {
	prec := -1
	if p, ok := spec.Precision(); ok {
		prec = p
	}
	s := strconv.FormatFloat(f, 'f', prec, bitSize)
	zero := spec.ZeroPad() && !math.IsNaN(f) && !math.IsInf(f, 0)
	return padNumber(s, spec, zero)
}

// String renders text, left-aligned. Precision and the zero flag are ignored.
type String string

// Render implements [Renderable].
func (v String) Render(spec Spec) string {
	return padText(string(v), spec)
}

// Bool renders true or false as text.
type Bool bool

// Render implements [Renderable].
func (v Bool) Render(spec Spec) string {
	return padText(strconv.FormatBool(bool(v)), spec)
}

// Value adapts an arbitrary Go value to a [Renderable]. Values that already
// implement Renderable are returned as is. Built-in numeric, string and bool
// kinds, including named types built on them, map to the types of this
// package; anything else renders as text via its String or Error method, or
// fmt.Sprint.
func Value(v any) Renderable {
	switch v := v.(type) {
	case Renderable:
		return v
	case int:
		return Int(v)
	case int8:
		return Int(v)
	case int16:
		return Int(v)
	case int32:
		return Int(v)
	case int64:
		return Int(v)
	case uint:
		return Uint(v)
	case uint8:
		return Uint(v)
	case uint16:
		return Uint(v)
	case uint32:
		return Uint(v)
	case uint64:
		return Uint(v)
	case uintptr:
		return Uint(v)
	case float32:
		return Float32(v)
	case float64:
		return Float(v)
	case string:
		return String(v)
	case []byte:
		return String(v)
	case bool:
		return Bool(v)
	case error:
		return String(v.Error())
	case fmt.Stringer:
		return String(v.String())
	default:
		return valueOfKind(v)
	}
}

// valueOfKind handles named types whose underlying kind is numeric, string
// or bool, such as type Celsius float64.
func valueOfKind(v any) Renderable {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint())
	case reflect.Float32:
		return Float32(rv.Float())
	case reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	default:
		return String(fmt.Sprint(v))
	}
}

// Values adapts each element of args with [Value].
func Values(args ...any) []Renderable {
	out := make([]Renderable, len(args))
	for i, a := range args {
		out[i] = Value(a)
	}
	return out
}
