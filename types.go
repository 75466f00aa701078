package argtok

import (
	"fmt"
	"time"
)

// Duration resolves tok to a time.Duration, in time.ParseDuration's
// notation.
func Duration(tok Token, required string, p Policy[time.Duration]) (time.Duration, error) {
	return Coerce(tok, required, p, func(s string) (time.Duration, error) {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, Invalid(fmt.Sprintf("%s must have a duration value (e.g. %s)", tok.subject(), tok.example("30s")))
		}
		return d, nil
	})
}
