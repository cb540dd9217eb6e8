// Package cli implements the line-oriented command protocol: one
// command per line, fields separated by ';', a leading '#' or an
// empty line is a no-op, and any command failure writes a single
// "ERROR <n>" line to the error channel (n is the 1-indexed input line
// number, counting comments and blank lines).
//
// The dispatcher owns no retry or rollback logic itself — every mutating
// command it forwards to routeops.Engine is already atomic; cli's only
// job is parsing, validating field grammar, and mapping success/failure to
// the wire protocol.
package cli
