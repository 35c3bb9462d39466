// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// merges an optional run file with flags into the application's
// configuration; flags win.
package cli
