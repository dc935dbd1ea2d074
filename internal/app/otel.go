package app

import (
	"fmt"
	"sync"
	"text/tabwriter"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/asyncwalk/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
)

var (
	otelOnce  sync.Once
	spanStats = telemetry.NewStatsProcessor()
)

// setupOTel registers the global tracer provider feeding spanStats.
// Tracers obtained before the first call delegate to the first provider
// installed, so it is installed once per process.
func setupOTel() *telemetry.StatsProcessor {
	otelOnce.Do(func() {
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(spanStats),
		)
		otel.SetTracerProvider(tp)
	})
	return spanStats
}

func (a *App) printStats(stats []telemetry.OpStats) {
	w := tabwriter.NewWriter(a.stderr, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "OP\tCOUNT\tERRORS\tMEAN\tMAX")
	for _, s := range stats {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
			s.Name, s.Count, s.Errors, s.Mean().Round(time.Microsecond), s.Max.Round(time.Microsecond))
	}
	_ = w.Flush()
}
