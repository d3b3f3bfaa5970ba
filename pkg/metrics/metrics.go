package metrics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Registry stores counters for exposition and mirrors them to OTel
// counter instruments.
type Registry struct {
	mu       sync.Mutex
	counters map[string]int64 // key = fullKey(name, labels)
	meter    metric.Meter
	otelCtrs map[string]metric.Int64Counter // base name -> instrument
}

func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]int64),
		meter:    otel.GetMeterProvider().Meter("emotions_api"),
		otelCtrs: make(map[string]metric.Int64Counter),
	}
}

// fullKey makes a deterministic key from name and labels.
func fullKey(name string, labels map[string]string) string {
	if len(labels) == 0 {
		return name
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
	}
	b.WriteByte('}')
	return b.String()
}

// Inc increases a named counter by one with labels, mirroring the
// increment to the matching OpenTelemetry instrument.
func (r *Registry) Inc(ctx context.Context, name string, labels map[string]string) {
	key := fullKey(name, labels)

	r.mu.Lock()
	r.counters[key]++
	inst, ok := r.otelCtrs[name]
	if !ok {
		inst, _ = r.meter.Int64Counter(name)
		r.otelCtrs[name] = inst
	}
	r.mu.Unlock()

	if inst != nil {
		attrs := make([]attribute.KeyValue, 0, len(labels))
		for k, v := range labels {
			attrs = append(attrs, attribute.String(k, v))
		}
		inst.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// SnapshotLines returns sorted text lines representing current counters.
func (r *Registry) SnapshotLines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.counters))
	for k := range r.counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s %d", k, r.counters[k]))
	}
	return lines
}

// Handler writes counters in simple text format.
func (r *Registry) Handler(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
	for _, line := range r.SnapshotLines() {
		if _, err := c.Response().Write([]byte(line + "\n")); err != nil {
			return err
		}
	}
	return nil
}
