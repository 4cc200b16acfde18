package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Span times one step of a user action (building the prompt, calling
// the completion service, dispatching).
type Span struct {
	Name    string    `json:"name"`
	startTs time.Time `json:"-"`
	Elapsed *int64    `json:"elapsed"`
}

type traceContextKey string

const ContextTraceKey traceContextKey = "trace"

// Trace is simply a list of spans for one request
type Trace struct {
	Spans   []*Span `json:"spans"`
	startTs time.Time
	TotalMs *int64 `json:"totalMs"`
}

func NewTrace() (newTrace *Trace, endTrace func()) {
	newTrace = &Trace{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return newTrace, newTrace.End
}

func (t *Trace) End() {
	elapsed := time.Since(t.startTs).Milliseconds()
	if t.TotalMs == nil {
		t.TotalMs = &elapsed
	}
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

// StartNewSpan ends the last span and begins a new one
// not thread safe
func (t *Trace) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if len(t.Spans) > 0 {
		t.Spans[len(t.Spans)-1].End()
	}
	t.Spans = append(t.Spans, newSpan)
	return newSpan, newSpan.End
}

func (t *Trace) ToJsonBytes() ([]byte, error) {
	bytes, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}

func ContextWithTrace(ctx context.Context, t *Trace) context.Context {
	return context.WithValue(ctx, ContextTraceKey, t)
}

// StartSpan opens a span on the trace stored in ctx. When ctx carries no
// trace the returned end func is a no-op.
func StartSpan(ctx context.Context, name string) func() {
	t, ok := ctx.Value(ContextTraceKey).(*Trace)
	if !ok || t == nil {
		return func() {}
	}
	_, end := t.StartNewSpan(name)
	return end
}
