// Package metrics provides the build observability hooks.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so recording never needs a nil check:
//
//	b := build.New(cfg)                                   // NoopRecorder
//	b = b.WithRecorder(metrics.NewPrometheusRecorder(reg)) // scraped via HTTPHandler(reg)
//
// The Prometheus recorder is activated by the watch command when it serves the
// build output over HTTP.
package metrics
