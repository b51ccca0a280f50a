package converge

import "go.uber.org/zap"

// DefaultMaxAttempts bounds how many steps a check simulates.
const DefaultMaxAttempts = 10

// Result describes the outcome of a single check.
type Result struct {
	Converged bool
	Steps     int      // Transforms applied before convergence, or MaxAttempts.
	Final     Sequence // State when the check stopped.
}

// Checker simulates the redistribution process on candidate sequences.
type Checker struct {
	MaxAttempts int

	stats *Stats
	lgr   *zap.Logger
}

// NewChecker returns a Checker bounded by maxAttempts. A nil logger or
// stats is allowed.
func NewChecker(maxAttempts int, stats *Stats, lgr *zap.Logger) *Checker {
	if lgr == nil {
		lgr = zap.NewNop()
	}
	return &Checker{MaxAttempts: maxAttempts, stats: stats, lgr: lgr}
}

// Check reports whether seq converges to target within DefaultMaxAttempts.
func Check(seq []int, target int) bool {
	return NewChecker(DefaultMaxAttempts, nil, nil).Check(seq, target)
}

func (c *Checker) Check(seq []int, target int) bool {
	return c.Run(seq, target).Converged
}

// Run simulates up to MaxAttempts steps on a private copy of seq. Before
// each step the copy is tested for uniformity at target.
func (c *Checker) Run(seq []int, target int) Result {
	s := NewSequence(seq...)
	r := Result{Final: s}
	for r.Steps < c.MaxAttempts {
		if s.Uniform(target) {
			r.Converged = true
			break
		}
		c.stats.step(s.redistribute())
		s.rotate()
		r.Steps++
	}
	c.stats.result(r)
	if ce := c.lgr.Check(zap.DebugLevel, "Checked sequence"); ce != nil {
		ce.Write(zapSeq("seq", seq), zap.Int("target", target), zap.Bool("converged", r.Converged),
			zap.Int("steps", r.Steps), zapSeq("final", r.Final))
	}
	return r
}
