package notation

import "fmt"

// ErrorKind classifies why a piece of order text failed to parse, per
// spec.md §7's "typed error kinds (UnknownCommand, MalformedSupport,
// MalformedConvoy, ...)".
type ErrorKind int

const (
	// UnknownNation: the text before ':' doesn't match any of the seven
	// great powers.
	UnknownNation ErrorKind = iota
	// MalformedUnit: the unit-type token isn't "A" or "F".
	MalformedUnit
	// MalformedRegion: a region token isn't a 3-letter province, optionally
	// followed by "/" and a coast.
	MalformedRegion
	// UnknownCommand: the command keyword isn't one of hold/holds, "->",
	// supports, convoys, build, disband.
	UnknownCommand
	// MalformedSupport: a "supports" command is missing its supported
	// unit's type/region, or has a dangling "->" with no destination.
	MalformedSupport
	// MalformedConvoy: a "convoys" command is missing its convoyed unit's
	// type/region/destination, or convoys a non-army.
	MalformedConvoy
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownNation:
		return "unknown nation"
	case MalformedUnit:
		return "malformed unit"
	case MalformedRegion:
		return "malformed region"
	case UnknownCommand:
		return "unknown command"
	case MalformedSupport:
		return "malformed support"
	case MalformedConvoy:
		return "malformed convoy"
	default:
		return "unknown"
	}
}

// ParseError is returned by every parser in this package. Text carries the
// token(s) that failed so a caller can report a precise location without
// this package needing to track line/column state.
type ParseError struct {
	Kind ErrorKind
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("notation: %s: %q", e.Kind, e.Text)
}
