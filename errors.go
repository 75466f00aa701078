package argtok

import (
	"fmt"
	"strings"

	"github.com/bradfitz/iter"
)

// ExitInvalid is the process exit status for rejected input, errno's
// invalid-argument code.
const ExitInvalid = 22

// CodeInvalid tags validation failures machine-readably.
const CodeInvalid = "EINVAL"

// ArgumentError is a classified parse failure. It's a plain value so
// callers and tests can compare errors directly.
type ArgumentError struct {
	Msg  string
	Exit int
	Code string
}

func (me ArgumentError) Error() string {
	return me.Msg
}

// Invalid classifies msg as a validation failure: exit status 22, code
// EINVAL.
func Invalid(msg string) ArgumentError {
	return ArgumentError{Msg: msg, Exit: ExitInvalid, Code: CodeInvalid}
}

// Help requests that the caller print text and exit cleanly. Downstream
// handling recognizes it by exact message equality against the help text,
// not by type.
func Help(text string) ArgumentError {
	return ArgumentError{Msg: text}
}

// UnknownOption classifies tok as matching no recognized option. The
// message shows the flag as typed, without any value. When known keys are
// supplied and one is close to what was typed, the message suggests it.
func UnknownOption(tok Token, known ...string) ArgumentError {
	name := tok.Raw
	if i := strings.IndexByte(name, '='); i != -1 {
		name = name[:i]
	}
	msg := fmt.Sprintf("unknown option: %q", name)
	if s := closest(tok.Key, known); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", flagPrefix+s)
	}
	return Invalid(msg)
}

// closest returns the candidate within edit distance 2 of key, or "".
func closest(key string, candidates []string) string {
	best := ""
	bestDistance := 3
	for _, c := range candidates {
		if d := editDistance(key, c); d < bestDistance {
			bestDistance = d
			best = c
		}
	}
	return best
}

func editDistance(a, b string) int {
	row := make([]int, len(b)+1)
	for j := range iter.N(len(b) + 1) {
		row[j] = j
	}
	for i := range iter.N(len(a)) {
		prev := row[0]
		row[0] = i + 1
		for j := range iter.N(len(b)) {
			cur := row[j+1]
			switch {
			case a[i] == b[j]:
				row[j+1] = prev
			case prev <= row[j] && prev <= row[j+1]:
				row[j+1] = prev + 1
			case row[j] <= row[j+1]:
				row[j+1] = row[j] + 1
			default:
				row[j+1]++
			}
			prev = cur
		}
	}
	return row[len(b)]
}
