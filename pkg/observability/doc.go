/*
Package observability provides hooks for monitoring a knobs registry.

It includes Prometheus counters for assignment outcomes, structured logging of
every assignment, and a combinator to attach several hook sets at once.

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	reg := registry.New(registry.WithHooks(observability.Combine(
		metrics.Hooks(),
		observability.LogHooks(logger),
	)))
*/
package observability
