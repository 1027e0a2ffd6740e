// Package metrics records generation metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics collection never requires nil checks:
//
//	gen := generator.New(generator.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder registers its collectors on the supplied registry, and
// HTTPHandler exposes that registry for scraping while the watch command runs.
package metrics
