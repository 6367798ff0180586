package metrics

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Tool call outcomes recorded alongside each call.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Attribute keys attached to the exported instruments.
const (
	attrTool     = "tool"
	attrOutcome  = "outcome"
	attrEndpoint = "endpoint"
	attrStatus   = "status"
)

// Recorder captures per-tool and per-endpoint call tallies. In-memory
// counts are always kept; OpenTelemetry instruments are recorded when the
// export pipeline is enabled. A nil Recorder is safe to call.
type Recorder struct {
	mu         sync.Mutex
	toolCalls  map[string]int
	toolErrors map[string]int
	requests   map[string]int
	inst       *instruments
}

// NewRecorder returns a Recorder keeping in-memory tallies only.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(inst *instruments) *Recorder {
	return &Recorder{
		toolCalls:  make(map[string]int),
		toolErrors: make(map[string]int),
		requests:   make(map[string]int),
		inst:       inst,
	}
}

// RecordToolCall counts one tool invocation and its latency.
func (r *Recorder) RecordToolCall(ctx context.Context, tool, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.toolCalls[tool]++
	if outcome != OutcomeOK {
		r.toolErrors[tool]++
	}
	r.mu.Unlock()

	if r.inst != nil {
		attrs := metric.WithAttributes(
			attribute.String(attrTool, tool),
			attribute.String(attrOutcome, outcome),
		)
		r.inst.toolCalls.Add(ctx, 1, attrs)
		r.inst.toolLatencyMs.Record(ctx, float64(elapsed.Milliseconds()), attrs)
	}
}

// RecordProviderRequest counts one upstream request. A status of 0 means
// the request never produced a response.
func (r *Recorder) RecordProviderRequest(ctx context.Context, endpoint string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.requests[endpoint]++
	r.mu.Unlock()

	if r.inst != nil {
		attrs := metric.WithAttributes(
			attribute.String(attrEndpoint, endpoint),
			attribute.Int(attrStatus, status),
		)
		r.inst.providerCalls.Add(ctx, 1, attrs)
		r.inst.providerLatencyMs.Record(ctx, float64(elapsed.Milliseconds()), attrs)
	}
}

// ToolCalls returns the invocations recorded for one tool.
func (r *Recorder) ToolCalls(tool string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.toolCalls[tool]
}

// ToolErrors returns the failed invocations recorded for one tool.
func (r *Recorder) ToolErrors(tool string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.toolErrors[tool]
}

// ProviderRequests returns the upstream requests recorded for an endpoint.
func (r *Recorder) ProviderRequests(endpoint string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[endpoint]
}
