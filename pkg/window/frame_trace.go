package window

import (
	"slices"
	"sync"
	"time"
)

const (
	frameTraceSamplesDefault   = 240
	defaultFrameTraceThreshold = 16667 * time.Microsecond
)

// FramePhaseTimings captures time spent in each phase of Prepare (ms).
type FramePhaseTimings struct {
	LayoutMs float64 `json:"layoutMs"`
	PaintMs  float64 `json:"paintMs"`
}

// FrameCounts captures per-frame workload indicators.
type FrameCounts struct {
	WidgetCount  int `json:"widgetCount"`
	PaintedCount int `json:"paintedCount"`
}

// FrameFlags captures contextual flags for a frame.
type FrameFlags struct {
	Initial         bool `json:"initial,omitempty"`
	Clipped         bool `json:"clipped,omitempty"`
	ResizeRequested bool `json:"resizeRequested,omitempty"`
}

// FrameSample is a single frame trace sample.
type FrameSample struct {
	Timestamp int64             `json:"ts"`
	FrameMs   float64           `json:"frameMs"`
	Phases    FramePhaseTimings `json:"phases"`
	Counts    FrameCounts       `json:"counts"`
	Flags     FrameFlags        `json:"flags"`
}

// FrameTimeline is a chronological view of the trace buffer.
type FrameTimeline struct {
	Samples     []FrameSample `json:"samples"`
	SlowFrames  int           `json:"slowFrames"`
	ThresholdMs float64       `json:"thresholdMs"`
}

// Slowest returns the longest frame in the timeline.
func (t FrameTimeline) Slowest() (FrameSample, bool) {
	if len(t.Samples) == 0 {
		return FrameSample{}, false
	}
	slowest := t.Samples[0]
	for _, sample := range t.Samples[1:] {
		if sample.FrameMs > slowest.FrameMs {
			slowest = sample
		}
	}
	return slowest, true
}

// FrameTraceBuffer keeps the most recent frame samples. The slow frame
// count covers every frame added, not only the retained ones.
type FrameTraceBuffer struct {
	mu        sync.RWMutex
	ring      []FrameSample
	next      int
	filled    bool
	slow      int
	threshold time.Duration
}

// NewFrameTraceBuffer returns a buffer retaining capacity samples. Frames
// longer than threshold count as slow. Non-positive arguments select the
// defaults: 240 samples and one 60 Hz frame.
func NewFrameTraceBuffer(capacity int, threshold time.Duration) *FrameTraceBuffer {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultFrameTraceThreshold
	}
	return &FrameTraceBuffer{ring: make([]FrameSample, capacity), threshold: threshold}
}

// Capacity returns the number of samples retained.
func (b *FrameTraceBuffer) Capacity() int {
	return len(b.ring)
}

// Add records sample, evicting the oldest one when full.
func (b *FrameTraceBuffer) Add(sample FrameSample, frameDuration time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ring[b.next] = sample
	b.next++
	if b.next == len(b.ring) {
		b.next = 0
		b.filled = true
	}
	if frameDuration > b.threshold {
		b.slow++
	}
}

// Snapshot copies the retained samples, oldest first.
func (b *FrameTraceBuffer) Snapshot() FrameTimeline {
	b.mu.RLock()
	defer b.mu.RUnlock()

	timeline := FrameTimeline{SlowFrames: b.slow, ThresholdMs: durationToMillis(b.threshold)}
	if b.filled {
		timeline.Samples = append(slices.Clone(b.ring[b.next:]), b.ring[:b.next]...)
	} else if b.next > 0 {
		timeline.Samples = slices.Clone(b.ring[:b.next])
	}
	return timeline
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
