package telemetry

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var _ sdktrace.SpanProcessor = (*StatsProcessor)(nil)

// OpStats aggregates the ended spans sharing one name.
type OpStats struct {
	Name   string        `json:"name"`
	Count  int           `json:"count"`
	Errors int           `json:"errors"`
	Total  time.Duration `json:"total"`
	Max    time.Duration `json:"max"`
}

// Mean returns the average span duration.
func (s OpStats) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// StatsProcessor is an sdktrace.SpanProcessor that counts spans per name and
// keeps their latency.
type StatsProcessor struct {
	mu  sync.Mutex
	ops map[string]*OpStats
}

// NewStatsProcessor returns an empty processor.
func NewStatsProcessor() *StatsProcessor {
	return &StatsProcessor{ops: make(map[string]*OpStats)}
}

// OnStart does nothing; spans are accounted when they end.
func (p *StatsProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd accounts one finished span.
func (p *StatsProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	d := s.EndTime().Sub(s.StartTime())

	p.mu.Lock()
	defer p.mu.Unlock()

	op, ok := p.ops[s.Name()]
	if !ok {
		op = &OpStats{Name: s.Name()}
		p.ops[s.Name()] = op
	}
	op.Count++
	op.Total += d
	op.Max = max(op.Max, d)
	if s.Status().Code == codes.Error {
		op.Errors++
	}
}

// Reset drops every aggregate.
func (p *StatsProcessor) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.ops)
}

// Snapshot returns the aggregates sorted by span name.
func (p *StatsProcessor) Snapshot() []OpStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]OpStats, 0, len(p.ops))
	for _, op := range p.ops {
		out = append(out, *op)
	}
	slices.SortFunc(out, func(a, b OpStats) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return out
}

// ForceFlush does nothing.
func (p *StatsProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *StatsProcessor) Shutdown(_ context.Context) error {
	return nil
}
