package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// MaxLabelLen bounds label metrics in bytes, cut on a rune boundary
const MaxLabelLen = 20

// Float is a float64 gauge stored as raw bits, zero value reads 0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Store(v float64) { f.bits.Store(math.Float64bits(v)) }

func (f *Float) Load() float64 { return math.Float64frombits(f.bits.Load()) }

// Add applies delta with a CAS loop and returns the result
func (f *Float) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Label is a short string metric such as the last focus source
type Label struct {
	v atomic.Value
}

// Store keeps at most MaxLabelLen bytes of s
func (l *Label) Store(s string) {
	if len(s) > MaxLabelLen {
		cut := MaxLabelLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	l.v.Store(s)
}

func (l *Label) Load() string {
	s, _ := l.v.Load().(string)
	return s
}
