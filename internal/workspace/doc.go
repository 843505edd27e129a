// Package workspace holds the blocking filesystem primitives the build runs on:
// preparing (wiping and recreating) the output directory and reading, writing and
// copying single files.
//
// Reading a file that does not exist is not an error: ReadFile returns nil content
// and callers decide how to handle absence. Every other failure is returned as a
// fatal filesystem error; nothing is retried and partial output is left in place.
package workspace
