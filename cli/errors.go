package cli

import "errors"

// ErrMalformed indicates a line that does not match any recognized
// command's field grammar (wrong field count, bad number, bad routeId).
// Every cli-level failure collapses to a single "ERROR n" line; this
// sentinel exists for internal tests that want to distinguish a grammar
// failure from a core-level rejection.
var ErrMalformed = errors.New("cli: malformed command")
