package converge

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Search enumerates candidate tuples and checks those whose mean is the target.
type Search struct {
	config  Config
	checker *Checker
	stats   *Stats
	lgr     *zap.Logger
}

// NewSearch validates config and returns a Search recording into stats.
func NewSearch(config Config, stats *Stats, lgr *zap.Logger) (*Search, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if stats == nil {
		stats = NewStats()
	}
	if lgr == nil {
		lgr = zap.NewNop()
	}
	return &Search{
		config:  config,
		checker: NewChecker(config.MaxAttempts, stats, lgr),
		stats:   stats,
		lgr:     lgr,
	}, nil
}

// meanIs reports whether sum spread over n positions is exactly target.
func meanIs(sum, n, target int) bool {
	return sum%n == 0 && sum/n == target
}

// Qualifies reports whether t is worth checking: its mean must be exactly the target.
func (s *Search) Qualifies(t Sequence) bool {
	return len(t) == s.config.Arity && meanIs(t.Sum(), len(t), s.config.Target)
}

// Run visits every tuple in [Min,Max)^Arity in ascending order, last position
// fastest, and calls emit with a copy of each tuple which converges. It stops
// at the first emit error or when ctx is done.
func (s *Search) Run(ctx context.Context, emit func(Sequence) error) error {
	defer s.stats.searchTimer.UpdateSince(time.Now())

	tuple := make(Sequence, s.config.Arity)
	for i := range tuple {
		tuple[i] = s.config.Min
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.stats.candidates.Inc(1)
		if !s.Qualifies(tuple) {
			s.stats.rejected.Inc(1)
		} else if s.checker.Check(tuple, s.config.Target) {
			if err := emit(tuple.Clone()); err != nil {
				return err
			}
		}
		if !s.next(tuple) {
			return nil
		}
	}
}

// next advances tuple like an odometer. It returns false once every tuple
// has been visited.
func (s *Search) next(tuple Sequence) bool {
	for i := len(tuple) - 1; i >= 0; i-- {
		tuple[i]++
		if tuple[i] < s.config.Max {
			return true
		}
		tuple[i] = s.config.Min
	}
	return false
}
