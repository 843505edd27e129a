// Package daemon implements watch mode: an initial build followed by full rebuilds
// whenever the source tree changes or a cron schedule fires, with an optional HTTP
// server for previewing the output and scraping metrics.
package daemon
