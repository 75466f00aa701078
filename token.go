package argtok

import "strings"

// Tokens beginning with this prefix are flags; the prefix alone is the
// stop-parsing sentinel.
const flagPrefix = "--"

// Flag names beginning with this prefix invert the flag's meaning. It's
// stripped from the key during classification.
const negatePrefix = "no-"

// Token is the classification of a single raw argument. Classify creates
// it, nothing modifies it afterwards.
type Token struct {
	// The original argument, unmodified, kept for error messages.
	Raw string
	// The flag name with prefixes stripped. Empty for positional
	// arguments, the literal "--" for the sentinel.
	Key string
	// The text after the first '=' for flags, the argument itself for
	// positionals. Meaningless unless HasValue.
	Value string
	// Distinguishes --flag= (true, empty Value) from --flag (false).
	// Always true for positionals, false for the sentinel.
	HasValue bool
	// The raw argument began with the flag prefix.
	IsFlag bool
	// The flag name carried the negation prefix.
	IsInverted bool
}

// Classify parses one raw argument. It never fails: anything not beginning
// with the flag prefix is a positional argument whose value is the argument
// itself.
func Classify(raw string) Token {
	if raw == flagPrefix {
		return Token{Raw: raw, Key: flagPrefix}
	}
	if !strings.HasPrefix(raw, flagPrefix) {
		return Token{Raw: raw, Value: raw, HasValue: true}
	}
	tok := Token{Raw: raw, IsFlag: true}
	key := raw[len(flagPrefix):]
	// Only the first '=' splits key from value.
	if i := strings.IndexByte(key, '='); i != -1 {
		tok.Value = key[i+1:]
		tok.HasValue = true
		key = key[:i]
	}
	if strings.HasPrefix(key, negatePrefix) {
		key = key[len(negatePrefix):]
		tok.IsInverted = true
	}
	tok.Key = key
	return tok
}

// IsSentinel reports whether the token is the bare "--" telling the caller
// to stop flag parsing. Note that --no- also yields an empty Key, but with
// IsFlag set: that's an unrecognized flag, not a positional.
func (me Token) IsSentinel() bool {
	return me.Key == flagPrefix && !me.IsFlag
}

// IsPositional reports whether the token is a plain argument, carrying its
// own text as its value.
func (me Token) IsPositional() bool {
	return !me.IsFlag && !me.IsSentinel()
}

// subject names the token in generated error messages: the flag's own key,
// or the word "argument".
func (me Token) subject() string {
	if me.IsFlag && me.Key != "" {
		return flagPrefix + me.Key
	}
	return "argument"
}

// example renders a correct usage of the token carrying the given value.
func (me Token) example(value string) string {
	if me.IsFlag && me.Key != "" {
		return flagPrefix + me.Key + "=" + value
	}
	return value
}
