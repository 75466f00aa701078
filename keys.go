package argtok

import (
	"strings"

	"github.com/huandu/xstrings"
)

// KeyForField derives the wire key for an option from a Go field or
// identifier name, so ListenAddr matches --listen-addr. Handy for building
// the tables callers dispatch Token.Key against.
func KeyForField(fieldName string) string {
	return strings.Replace(xstrings.ToSnakeCase(fieldName), "_", "-", -1)
}
