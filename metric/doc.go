// Package metric provides a Prometheus registry wrapper for queue metrics.
//
// # Overview
//
// Queues export their observability metrics through a Registry: a thin
// wrapper around prometheus.Registry that namespaces registrations by
// queue instance name and converts duplicate registrations into
// classified errors instead of panics.
//
// A Registry is created once per process (or per test) and handed to
// queues via the queue.WithMetrics option:
//
//	reg := metric.NewRegistry()
//	q, err := queue.NewQueue[byte](
//	    queue.WithLimit[byte](1 << 20),
//	    queue.WithMetrics[byte](reg, "ingest_staging"),
//	)
//
// The optional Server exposes the registry over HTTP for scraping:
//
//	srv := metric.NewServer(9090, "/metrics", reg)
//	go srv.Start()
//	defer srv.Stop()
//
// Go runtime and process collectors are attached automatically.
package metric
