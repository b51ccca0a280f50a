package converge

import (
	"fmt"
	"io"
	"time"

	metrics "github.com/rcrowley/go-metrics"
)

// Stats holds the metrics for a single search.
type Stats struct {
	registry metrics.Registry

	candidates      metrics.Counter // Tuples enumerated.
	rejected        metrics.Counter // Tuples failing the mean test.
	checked         metrics.Counter // Tuples handed to the checker.
	matches         metrics.Counter // Tuples which converged.
	redistributions metrics.Counter // Steps which moved balls.
	rotations       metrics.Counter // Steps which only rotated.
	steps           metrics.Histogram
	searchTimer     metrics.Timer
}

func NewStats() *Stats {
	r := metrics.NewRegistry()
	return &Stats{
		registry:        r,
		candidates:      metrics.GetOrRegisterCounter("counter/candidates", r),
		rejected:        metrics.GetOrRegisterCounter("counter/candidates/rejected", r),
		checked:         metrics.GetOrRegisterCounter("counter/checked", r),
		matches:         metrics.GetOrRegisterCounter("counter/matches", r),
		redistributions: metrics.GetOrRegisterCounter("counter/step/redistribute", r),
		rotations:       metrics.GetOrRegisterCounter("counter/step/rotate", r),
		steps:           metrics.GetOrRegisterHistogram("histogram/steps", r, metrics.NewUniformSample(1028)),
		searchTimer:     metrics.GetOrRegisterTimer("timer/search", r),
	}
}

func (s *Stats) step(moved bool) {
	if s == nil {
		return
	}
	if moved {
		s.redistributions.Inc(1)
	} else {
		s.rotations.Inc(1)
	}
}

func (s *Stats) result(r Result) {
	if s == nil {
		return
	}
	s.checked.Inc(1)
	if r.Converged {
		s.matches.Inc(1)
		s.steps.Update(int64(r.Steps))
	}
}

// WriteTo dumps every registered metric to w.
func (s *Stats) WriteTo(w io.Writer) {
	metrics.WriteOnce(s.registry, w)
}

// Report holds the totals of a search.
type Report struct {
	dur        time.Duration // Time spent searching.
	Candidates int64
	Rejected   int64
	Checked    int64
	Matches    int64
	MeanSteps  float64 // Mean steps to converge over matches.
}

func (r *Report) String() string {
	return fmt.Sprintf("dur=%s candidates=%d rejected=%d checked=%d matches=%d meanSteps=%.2f",
		r.dur.Round(time.Millisecond), r.Candidates, r.Rejected, r.Checked, r.Matches, r.MeanSteps)
}

// Report generates a report of everything recorded so far.
func (s *Stats) Report() *Report {
	return &Report{
		dur:        time.Duration(s.searchTimer.Sum()),
		Candidates: s.candidates.Count(),
		Rejected:   s.rejected.Count(),
		Checked:    s.checked.Count(),
		Matches:    s.matches.Count(),
		MeanSteps:  s.steps.Mean(),
	}
}
