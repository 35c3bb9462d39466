// Package app wires the maze solver together: it loads the image, applies
// the selected endpoints and barriers, runs the search, reports the outcome
// and writes the rendered result.
package app
