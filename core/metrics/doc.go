// Package metrics declares the Prometheus collectors shared by the reconciler, the translator
// and the cache. Collectors are registered on the default registry and served at /metrics.
package metrics
