package status

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric keys written by the engine and systems
const (
	KeyFrames      = "engine.frames"
	KeyTicks       = "engine.ticks"
	KeyDroppedTick = "engine.dropped_ticks"
	KeyBodies      = "world.bodies"
	KeySpawnTotal  = "spawn.total"
	KeyCullTotal   = "cull.total"
	KeyBounceTotal = "bounce.total"
	KeyChargePower = "charge.power"
	KeyCharging    = "charge.active"
	KeyFocused     = "focus.focused"
	KeyFocusSource = "focus.source"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; update loops write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Float]
	Labels *MetricMap[Label]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Float](),
		Labels: NewMetricMap[Label](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Labels.Count()
}

// Summary renders the given keys as "key=value" pairs in argument order, unknown keys are skipped
func (r *Registry) Summary(keys ...string) string {
	var b strings.Builder
	for _, k := range keys {
		var val string
		if p, ok := r.Ints.Lookup(k); ok {
			val = strconv.FormatInt(p.Load(), 10)
		} else if p, ok := r.Floats.Lookup(k); ok {
			val = strconv.FormatFloat(p.Load(), 'f', 2, 64)
		} else if p, ok := r.Bools.Lookup(k); ok {
			val = strconv.FormatBool(p.Load())
		} else if p, ok := r.Labels.Lookup(k); ok {
			val = p.Load()
		} else {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		short := k
		if i := strings.LastIndexByte(k, '.'); i >= 0 {
			short = k[i+1:]
		}
		b.WriteString(short)
		b.WriteByte('=')
		b.WriteString(val)
	}
	return b.String()
}
