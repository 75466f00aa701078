package argtok

// Slot selects one of the four fallback defaults a flag falls through to
// when it carries no usable value.
type Slot struct {
	// The flag carried the negation prefix.
	Inverted bool
	// The flag carried an explicit empty value (--flag=) rather than no
	// value at all (--flag).
	Empty bool
}

// The four slots, named for the switch state they describe.
var (
	Enabled       = Slot{}
	Disabled      = Slot{Inverted: true}
	EnabledEmpty  = Slot{Empty: true}
	DisabledEmpty = Slot{Inverted: true, Empty: true}
)

// Policy maps fallback slots to defaults of the coercion's target type.
// Missing slots have no fallback: resolution fails for them.
type Policy[T any] map[Slot]T

// FallbackSlot returns the slot consulted when the token lacks a usable
// value. An explicit empty value flips the slot's negation side: --flag=
// resolves through DisabledEmpty and --no-flag= through EnabledEmpty, not
// the other way around.
func (me Token) FallbackSlot() Slot {
	switch {
	case !me.HasValue && !me.IsInverted:
		return Enabled
	case !me.HasValue:
		return Disabled
	case me.IsInverted:
		return EnabledEmpty
	default:
		return DisabledEmpty
	}
}

// explicitValue returns the token's own value when it's usable for
// coercion: present and non-empty.
func (me Token) explicitValue() (string, bool) {
	if me.HasValue && me.Value != "" {
		return me.Value, true
	}
	return "", false
}
