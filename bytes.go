package argtok

import (
	"encoding"
	"fmt"

	"github.com/dustin/go-humanize"
)

// ByteSize coerces from human readable byte quantities like 100GB. See
// https://godoc.org/github.com/dustin/go-humanize.
type ByteSize int64

var _ encoding.TextUnmarshaler = (*ByteSize)(nil)

func (me *ByteSize) UnmarshalText(text []byte) (err error) {
	ui64, err := humanize.ParseBytes(string(text))
	if err != nil {
		return
	}
	*me = ByteSize(ui64)
	return
}

func (me ByteSize) Int64() int64 {
	return int64(me)
}

func (me ByteSize) String() string {
	return humanize.Bytes(uint64(me))
}

// Bytes resolves tok to a ByteSize.
func Bytes(tok Token, required string, p Policy[ByteSize]) (ByteSize, error) {
	return Coerce(tok, required, p, func(s string) (ByteSize, error) {
		ui64, err := humanize.ParseBytes(s)
		if err != nil {
			return 0, Invalid(fmt.Sprintf("%s must have a byte size value (e.g. %s)", tok.subject(), tok.example("100MB")))
		}
		return ByteSize(ui64), nil
	})
}
