package diplomacy

import (
	"io"

	"github.com/rs/zerolog"
)

// log is this package's diagnostic logger. It is silent by default since
// the resolvers perform no I/O of their own; a caller embedding this
// package redirects it with SetLogger to surface Szykman cycle-breaking
// and civil-disorder disbandment decisions in its own log stream.
var log = zerolog.New(io.Discard).With().Str("component", "diplomacy").Logger()

// SetLogger replaces the package's diagnostic logger. Pass zerolog.Nop()
// to silence it again.
func SetLogger(l zerolog.Logger) {
	log = l.With().Str("component", "diplomacy").Logger()
}
