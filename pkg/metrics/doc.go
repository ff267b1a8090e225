// Package metrics provides Prometheus instrumentation for streamkit.
//
// The core stream package stays free of observability concerns; this package
// decorates streams from the outside through the public API. Instrument wraps
// a stream so that every evaluation and every element pulled through it is
// counted, and ObserveResult records terminal-operation failures.
//
// # Quick Start
//
//	reg := metrics.DefaultRegistry
//
//	s := metrics.Instrument(reg, "orders", stream.FromSlice(orders))
//	total, err := stream.Sum(s.Map(orderValue))
//	reg.ObserveResult("orders", err)
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
package metrics
