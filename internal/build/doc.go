// Package build runs a complete docsite build: wipe the output directory, write the
// docsify scaffold, materialize the source tree, then synthesize the sidebar.
//
// Every run is a full destructive rebuild. Stages run sequentially and the first
// failure aborts the run; cancellation is only observed between stages.
package build
