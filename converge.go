package converge

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

type Converge struct {
	config Config
	lgr    *zap.Logger
	stats  *Stats
	search *Search
}

// NewConverge returns a runner for the search described by c.
func (c *Config) NewConverge(lgr *zap.Logger) (*Converge, error) {
	if lgr == nil {
		lgr = zap.NewNop()
	}
	stats := NewStats()
	search, err := NewSearch(*c, stats, lgr)
	if err != nil {
		return nil, err
	}
	return &Converge{config: *c, lgr: lgr, stats: stats, search: search}, nil
}

func (c *Converge) Stats() *Stats { return c.stats }

// Run writes each converging tuple to w, one per line. SIGINT and SIGTERM
// cancel the search.
func (c *Converge) Run(ctx context.Context, w io.Writer) error {
	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancelFn()
		case <-ctx.Done():
		}
	}()

	start := time.Now()
	c.lgr.Info("Starting search", zap.Object("config", &c.config))

	bw := bufio.NewWriter(w)
	err := c.search.Run(ctx, func(s Sequence) error {
		c.lgr.Debug("Found match", zapSeq("tuple", s))
		_, err := fmt.Fprintln(bw, s)
		return err
	})
	if ferr := bw.Flush(); err == nil && ferr != nil {
		err = ferr
	}
	if err != nil {
		c.lgr.Warn("Search stopped", zap.Error(err), zap.Stringer("report", c.stats.Report()))
		return err
	}
	c.lgr.Info("Finished search", zap.Stringer("report", c.stats.Report()),
		zap.Duration("runtime", time.Since(start)))
	return nil
}
