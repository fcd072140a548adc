package scan

import (
	"sync"
	"time"
)

// State names the driver's observable phase.
type State string

const (
	StateIdle          State = "idle"
	StatePlanning      State = "planning"
	StateScanning      State = "scanning"
	StateRangeComplete State = "range_complete"
	StateStopped       State = "stopped"
	StateFailed        State = "failed"
)

// SkippedHeight records a height the run gave up on and why.
type SkippedHeight struct {
	Height    uint64 `json:"height"`
	LastError string `json:"last_error"`
}

// Status is the point-in-time progress snapshot served to operators.
type Status struct {
	State           State           `json:"state"`
	CurrentRange    string          `json:"current_range,omitempty"`
	HeightsTotal    uint64          `json:"heights_total"`
	HeightsDone     uint64          `json:"heights_done"`
	RewardsFound    uint64          `json:"rewards_found"`
	RewardsInserted uint64          `json:"rewards_inserted"`
	Skipped         []SkippedHeight `json:"skipped,omitempty"`
	StartedAt       time.Time       `json:"started_at,omitempty"`
	Elapsed         string          `json:"elapsed,omitempty"`
	BlocksPerSec    float64         `json:"blocks_per_sec"`
	ETA             string          `json:"eta,omitempty"`
}

// Tracker accumulates progress across a run and produces snapshots. Safe
// for concurrent use; the driver writes, the admin server reads.
type Tracker struct {
	mu sync.Mutex

	state           State
	currentRange    Range
	hasRange        bool
	heightsTotal    uint64
	heightsDone     uint64
	rewardsFound    uint64
	rewardsInserted uint64
	skipped         []SkippedHeight
	startedAt       time.Time
}

// NewTracker returns an idle tracker.
func NewTracker() *Tracker {
	return &Tracker{state: StateIdle}
}

// StartRun resets counters for a new run covering total heights.
func (t *Tracker) StartRun(total uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StatePlanning
	t.heightsTotal = total
	t.heightsDone = 0
	t.rewardsFound = 0
	t.rewardsInserted = 0
	t.skipped = nil
	t.hasRange = false
	t.startedAt = time.Now()
}

// BeginRange marks the start of a range sweep.
func (t *Tracker) BeginRange(r Range) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateScanning
	t.currentRange = r
	t.hasRange = true
}

// RangeDone marks the current range complete.
func (t *Tracker) RangeDone() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateRangeComplete
}

// HeightDone accounts one processed height with the rewards it yielded.
func (t *Tracker) HeightDone(found, inserted uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.heightsDone++
	t.rewardsFound += found
	t.rewardsInserted += inserted
}

// Skip records a height the run gave up on.
func (t *Tracker) Skip(height uint64, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.heightsDone++
	t.skipped = append(t.skipped, SkippedHeight{Height: height, LastError: err.Error()})
}

// Stop marks a run ended by a graceful cancel, not a failure.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateStopped
	t.hasRange = false
}

// Finish moves the tracker to its terminal run state.
func (t *Tracker) Finish(failed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if failed {
		t.state = StateFailed
		return
	}
	t.state = StateIdle
	t.hasRange = false
}

// Snapshot returns the current status.
func (t *Tracker) Snapshot() Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Status{
		State:           t.state,
		HeightsTotal:    t.heightsTotal,
		HeightsDone:     t.heightsDone,
		RewardsFound:    t.rewardsFound,
		RewardsInserted: t.rewardsInserted,
		Skipped:         append([]SkippedHeight(nil), t.skipped...),
		StartedAt:       t.startedAt,
	}
	if t.hasRange {
		s.CurrentRange = t.currentRange.String()
	}
	if !t.startedAt.IsZero() {
		elapsed := time.Since(t.startedAt)
		s.Elapsed = elapsed.Round(time.Second).String()
		if elapsed > 0 && t.heightsDone > 0 {
			s.BlocksPerSec = float64(t.heightsDone) / elapsed.Seconds()
			remaining := t.heightsTotal - t.heightsDone
			if s.BlocksPerSec > 0 && remaining > 0 {
				eta := time.Duration(float64(remaining)/s.BlocksPerSec) * time.Second
				s.ETA = eta.Round(time.Second).String()
			}
		}
	}
	return s
}
