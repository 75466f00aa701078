package argtok

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coerce resolves tok to a T: the parsed explicit value when the token has
// a non-empty one, else the policy default for the token's fallback slot,
// else an Invalid error carrying required. It's the extension point for
// coercions beyond the built-in ones; parse errors surface to the user
// as-is.
func Coerce[T any](tok Token, required string, p Policy[T], parse func(string) (T, error)) (T, error) {
	if s, ok := tok.explicitValue(); ok {
		return parse(s)
	}
	if v, ok := p[tok.FallbackSlot()]; ok {
		return v, nil
	}
	var zero T
	return zero, Invalid(required)
}

// String resolves tok's raw value: the explicit value verbatim when present
// and non-empty, else the policy fallback.
func String(tok Token, required string, p Policy[string]) (string, error) {
	return Coerce(tok, required, p, func(s string) (string, error) {
		return s, nil
	})
}

// Number resolves tok to a float64.
func Number(tok Token, required string, p Policy[float64]) (float64, error) {
	return Coerce(tok, required, p, func(s string) (float64, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) {
			return 0, Invalid(fmt.Sprintf("%s must have a number value (e.g. %s)", tok.subject(), tok.example("42")))
		}
		return f, nil
	})
}

// The explicit values Bool accepts, case sensitively.
var boolWords = map[string]bool{
	"true": true, "1": true, "yes": true, "y": true, "on": true,
	"false": false, "0": false, "no": false, "n": false, "off": false,
}

// Bool interprets tok as a switch. A flag with a missing or empty value is
// true, or false when negated. Explicit values come from a fixed
// vocabulary, and negation flips whatever matched. No fallback policy
// applies.
func Bool(tok Token) (bool, error) {
	s, ok := tok.explicitValue()
	if !ok {
		return !tok.IsInverted, nil
	}
	v, ok := boolWords[s]
	if !ok {
		return false, Invalid(fmt.Sprintf("%s must have a boolean value (e.g. %s)", tok.subject(), tok.example("true")))
	}
	if tok.IsInverted {
		v = !v
	}
	return v, nil
}
