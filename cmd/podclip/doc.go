// Package main hosts the podclip CLI entrypoint and command graph.
//
// The Cobra command tree exposes the time-code and clip-planning helpers as
// offline utilities, reads and writes episodes and clip records in the local
// store, runs the API server, and scaffolds configuration. Commands that do
// not touch the store skip config loading entirely.
package main
